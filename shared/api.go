package shared

import "time"

// Wire shapes for the benchmark API. All ids are UUID strings and all
// timestamps serialize as ISO-8601 (RFC 3339).

type User struct {
	Id        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Bio       *string   `json:"bio"`
	CreatedAt time.Time `json:"createdAt"`
}

type Post struct {
	Id        string    `json:"id"`
	AuthorId  string    `json:"authorId"`
	Content   string    `json:"content"`
	LikeCount int       `json:"likeCount"`
	CreatedAt time.Time `json:"createdAt"`
}

type Comment struct {
	Id        string    `json:"id"`
	AuthorId  string    `json:"authorId"`
	PostId    string    `json:"post_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Bio *string `json:"bio"`
}

type CreatePostRequest struct {
	Content string `json:"content"`
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}
