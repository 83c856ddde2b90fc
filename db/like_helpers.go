package db

import "fmt"

func LikeExists(userId, postId string) (bool, error) {
	var exists bool
	err := Conn.Get(&exists, "SELECT EXISTS (SELECT 1 FROM post_likes WHERE user_id = $1 AND post_id = $2)", userId, postId)

	if err != nil {
		return false, fmt.Errorf("error checking like: %v", err)
	}

	return exists, nil
}

// CreateLike inserts the like row. The (user_id, post_id) primary key makes
// a concurrent duplicate surface as a unique violation, which the caller
// must classify with IsNonUniqueErr - the likes_count bump happens in the
// insert trigger, never here.
func CreateLike(userId, postId string) error {
	_, err := Conn.Exec("INSERT INTO post_likes (user_id, post_id) VALUES ($1, $2)", userId, postId)
	return err
}

func DeleteLike(userId, postId string) (bool, error) {
	res, err := Conn.Exec("DELETE FROM post_likes WHERE user_id = $1 AND post_id = $2", userId, postId)

	if err != nil {
		return false, fmt.Errorf("error deleting like: %v", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error deleting like: %v", err)
	}

	return rows == 1, nil
}
