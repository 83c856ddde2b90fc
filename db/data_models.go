package db

import (
	"time"

	"apibench-server/shared"
)

// Row models below are server-side only. Models exposed over the wire live
// in shared and are produced via the ToApi() converters, which keeps
// password hashes and role flags out of responses.

type User struct {
	Id           string    `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Bio          *string   `db:"bio"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
}

func (user *User) ToApi() *shared.User {
	return &shared.User{
		Id:        user.Id,
		Username:  user.Username,
		Email:     user.Email,
		Bio:       user.Bio,
		CreatedAt: user.CreatedAt,
	}
}

type Post struct {
	Id         string    `db:"id"`
	AuthorId   string    `db:"author_id"`
	Content    string    `db:"content"`
	LikesCount int       `db:"likes_count"`
	CreatedAt  time.Time `db:"created_at"`
}

func (post *Post) ToApi() *shared.Post {
	return &shared.Post{
		Id:        post.Id,
		AuthorId:  post.AuthorId,
		Content:   post.Content,
		LikeCount: post.LikesCount,
		CreatedAt: post.CreatedAt,
	}
}

type Comment struct {
	Id        string    `db:"id"`
	AuthorId  string    `db:"author_id"`
	PostId    string    `db:"post_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

func (comment *Comment) ToApi() *shared.Comment {
	return &shared.Comment{
		Id:        comment.Id,
		AuthorId:  comment.AuthorId,
		PostId:    comment.PostId,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}

type PostLike struct {
	UserId    string    `db:"user_id"`
	PostId    string    `db:"post_id"`
	CreatedAt time.Time `db:"created_at"`
}
