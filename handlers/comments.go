package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"apibench-server/db"
	"apibench-server/shared"
)

func CreateCommentHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for CreateCommentHandler")

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

	var requestBody shared.CreateCommentRequest
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

	exists, err := db.PostExists(postId)

	if err != nil {
		log.Printf("Error checking post: %v\n", err)
		writeApiError(w, shared.ApiError{
			Status: http.StatusInternalServerError,
			Msg:    "Internal server error",
		})
		return
	}

	if !exists {
		writeApiError(w, shared.ApiError{
			Status: http.StatusNotFound,
			Msg:    "Post not found",
		})
		return
	}

	comment, err := db.CreateComment(auth.UserId, postId, requestBody.Content)

	if err != nil {
		// The post can vanish between the existence check and the insert
		if db.IsForeignKeyErr(err) {
			writeApiError(w, shared.ApiError{
				Status: http.StatusNotFound,
				Msg:    "Post not found",
			})
			return
		}

		log.Printf("Error creating comment: %v\n", err)
		writeApiError(w, shared.ApiError{
			Status: http.StatusBadRequest,
			Msg:    "Could not create comment",
		})
		return
	}

	writeJson(w, http.StatusCreated, comment.ToApi())

	log.Println("Successfully created comment", comment.Id)
}

func ListCommentsHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for ListCommentsHandler")

	postId, ok := uuidVar(r, "postId")
	if !ok {
		writeApiError(w, shared.ApiError{
			Status: http.StatusNotFound,
			Msg:    "Post not found",
		})
		return
	}

	exists, err := db.PostExists(postId)

	if err != nil {
		log.Printf("Error checking post: %v\n", err)
		writeApiError(w, shared.ApiError{
			Status: http.StatusInternalServerError,
			Msg:    "Internal server error",
		})
		return
	}

	if !exists {
		writeApiError(w, shared.ApiError{
			Status: http.StatusNotFound,
			Msg:    "Post not found",
		})
		return
	}

	comments, err := db.ListComments(postId)

	if err != nil {
		log.Printf("Error listing comments: %v\n", err)
		writeApiError(w, shared.ApiError{
			Status: http.StatusInternalServerError,
			Msg:    "Internal server error",
		})
		return
	}

	apiComments := make([]*shared.Comment, 0, len(comments))
	for _, comment := range comments {
		apiComments = append(apiComments, comment.ToApi())
	}

	writeJson(w, http.StatusOK, apiComments)
}
