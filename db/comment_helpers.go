package db

import "fmt"

func CreateComment(authorId, postId, content string) (*Comment, error) {
	var comment Comment
	err := Conn.Get(&comment, "INSERT INTO comments (author_id, post_id, content) VALUES ($1, $2, $3) RETURNING *", authorId, postId, content)

	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// ListComments returns a post's comments in conversation order.
func ListComments(postId string) ([]*Comment, error) {
	var comments []*Comment
	err := Conn.Select(&comments, "SELECT * FROM comments WHERE post_id = $1 ORDER BY created_at ASC", postId)

	if err != nil {
		return nil, fmt.Errorf("error listing comments: %v", err)
	}

	return comments, nil
}
