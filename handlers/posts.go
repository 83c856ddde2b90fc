package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"apibench-server/db"
	"apibench-server/shared"
)

func CreatePostHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for CreatePostHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("Error reading request body: %v\n", err)
		writeApiError(w, shared.ApiError{
			Status: http.StatusInternalServerError,
			Msg:    "Internal server error",
		})
		return
	}
	defer r.Body.Close()

	var requestBody shared.CreatePostRequest
	if err := json.Unmarshal(body, &requestBody); err != nil {
		log.Printf("Error parsing request body: %v\n", err)
		writeApiError(w, shared.ApiError{
			Status: http.StatusBadRequest,
			Msg:    "Invalid request body",
		})
		return
	}

	if requestBody.Content == "" {
		log.Println("Received empty content field")
		writeApiError(w, shared.ApiError{
			Status: http.StatusBadRequest,
			Msg:    "content field is required",
		})
		return
	}

	post, err := db.CreatePost(auth.UserId, requestBody.Content)

	if err != nil {
		log.Printf("Error creating post: %v\n", err)
		writeApiError(w, shared.ApiError{
			Status: http.StatusBadRequest,
			Msg:    "Could not create post",
		})
		return
	}

	writeJson(w, http.StatusCreated, post.ToApi())

	log.Println("Successfully created post", post.Id)
}

func ListPostsHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for ListPostsHandler")

	limit, offset := limitOffset(r)

	posts, err := db.ListPosts(limit, offset)

	if err != nil {
		log.Printf("Error listing posts: %v\n", err)
		writeApiError(w, shared.ApiError{
			Status: http.StatusInternalServerError,
			Msg:    "Internal server error",
		})
		return
	}

	apiPosts := make([]*shared.Post, 0, len(posts))
	for _, post := range posts {
		apiPosts = append(apiPosts, post.ToApi())
	}

	writeJson(w, http.StatusOK, apiPosts)
}

func GetPostHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for GetPostHandler")

	postId, ok := uuidVar(r, "postId")
	if !ok {
		writeApiError(w, shared.ApiError{
			Status: http.StatusNotFound,
			Msg:    "Post not found",
		})
		return
	}

	post, err := db.GetPost(postId)

	if err != nil {
		log.Printf("Error getting post: %v\n", err)
		writeApiError(w, shared.ApiError{
			Status: http.StatusInternalServerError,
			Msg:    "Internal server error",
		})
		return
	}

	if post == nil {
		writeApiError(w, shared.ApiError{
			Status: http.StatusNotFound,
			Msg:    "Post not found",
		})
		return
	}

	writeJson(w, http.StatusOK, post.ToApi())
}

func DeletePostHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for DeletePostHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	postId, ok := uuidVar(r, "postId")
	if !ok {
		writeApiError(w, shared.ApiError{
			Status: http.StatusNotFound,
			Msg:    "Post not found",
		})
		return
	}

	authorId, err := db.GetPostAuthor(postId)

	if err != nil {
		log.Printf("Error getting post author: %v\n", err)
		writeApiError(w, shared.ApiError{
			Status: http.StatusInternalServerError,
			Msg:    "Internal server error",
		})
		return
	}

	if authorId == "" {
		writeApiError(w, shared.ApiError{
			Status: http.StatusNotFound,
			Msg:    "Post not found",
		})
		return
	}

	if !auth.CanModify(authorId) {
		log.Println("caller is neither post author nor admin")
		writeApiError(w, shared.ApiError{
			Status: http.StatusForbidden,
			Msg:    "Forbidden",
		})
		return
	}

	// Comments and likes cascade with the post row
	if _, err := db.DeletePost(postId); err != nil {
		log.Printf("Error deleting post: %v\n", err)
		writeApiError(w, shared.ApiError{
			Status: http.StatusInternalServerError,
			Msg:    "Internal server error",
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)

	log.Println("Successfully deleted post", postId)
}
