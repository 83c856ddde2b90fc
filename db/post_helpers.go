package db

import (
	"database/sql"
	"fmt"
)

func GetPost(postId string) (*Post, error) {
	var post Post
	err := Conn.Get(&post, "SELECT * FROM posts WHERE id = $1", postId)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("error getting post: %v", err)
	}

	return &post, nil
}

// GetPostAuthor fetches only the author id for the ownership check on
// delete. Empty string means the post doesn't exist.
func GetPostAuthor(postId string) (string, error) {
	var authorId string
	err := Conn.Get(&authorId, "SELECT author_id FROM posts WHERE id = $1", postId)

	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}

		return "", fmt.Errorf("error getting post author: %v", err)
	}

	return authorId, nil
}

func PostExists(postId string) (bool, error) {
	var exists bool
	err := Conn.Get(&exists, "SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1)", postId)

	if err != nil {
		return false, fmt.Errorf("error checking post: %v", err)
	}

	return exists, nil
}

func ListPosts(limit, offset int) ([]*Post, error) {
	var posts []*Post
	err := Conn.Select(&posts, "SELECT * FROM posts ORDER BY created_at DESC LIMIT $1 OFFSET $2", limit, offset)

	if err != nil {
		return nil, fmt.Errorf("error listing posts: %v", err)
	}

	return posts, nil
}

func CreatePost(authorId, content string) (*Post, error) {
	var post Post
	err := Conn.Get(&post, "INSERT INTO posts (author_id, content) VALUES ($1, $2) RETURNING *", authorId, content)

	if err != nil {
		return nil, err
	}

	return &post, nil
}

func DeletePost(postId string) (bool, error) {
	res, err := Conn.Exec("DELETE FROM posts WHERE id = $1", postId)

	if err != nil {
		return false, fmt.Errorf("error deleting post: %v", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error deleting post: %v", err)
	}

	return rows == 1, nil
}
