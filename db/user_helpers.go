package db

import (
	"database/sql"
	"fmt"
)

func GetUser(userId string) (*User, error) {
	var user User
	err := Conn.Get(&user, "SELECT * FROM users WHERE id = $1", userId)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("error getting user: %v", err)
	}

	return &user, nil
}

func GetUserByEmail(email string) (*User, error) {
	var user User
	err := Conn.Get(&user, "SELECT * FROM users WHERE email = $1", email)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("error getting user: %v", err)
	}

	return &user, nil
}

func ListUsers(limit, offset int) ([]*User, error) {
	var users []*User
	err := Conn.Select(&users, "SELECT * FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2", limit, offset)

	if err != nil {
		return nil, fmt.Errorf("error listing users: %v", err)
	}

	return users, nil
}

func CreateUser(username, email, passwordHash string) (*User, error) {
	var user User
	err := Conn.Get(&user, "INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3) RETURNING *", username, email, passwordHash)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func UpdateUserBio(userId string, bio *string) (*User, error) {
	var user User
	err := Conn.Get(&user, "UPDATE users SET bio = $1 WHERE id = $2 RETURNING *", bio, userId)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("error updating user: %v", err)
	}

	return &user, nil
}

// DeleteUser removes the user row. Posts, comments, and likes cascade at the
// schema level. Returns false when no row matched.
func DeleteUser(userId string) (bool, error) {
	res, err := Conn.Exec("DELETE FROM users WHERE id = $1", userId)

	if err != nil {
		return false, fmt.Errorf("error deleting user: %v", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error deleting user: %v", err)
	}

	return rows == 1, nil
}
