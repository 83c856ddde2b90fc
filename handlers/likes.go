package handlers

import (
	"log"
	"net/http"

	"apibench-server/db"
	"apibench-server/shared"
)

func LikePostHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for LikePostHandler")

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

	liked, err := db.LikeExists(auth.UserId, postId)

	if err != nil {
		log.Printf("Error checking like: %v\n", err)
		writeApiError(w, shared.ApiError{
			Status: http.StatusInternalServerError,
			Msg:    "Internal server error",
		})
		return
	}

	if liked {
		writeApiError(w, shared.ApiError{
			Status: http.StatusConflict,
			Msg:    "Post already liked",
		})
		return
	}

	err = db.CreateLike(auth.UserId, postId)

	if err != nil {
		// Two concurrent likes race past the check above; the primary key
		// decides the winner and the loser gets the same 409 as the
		// pre-checked path.
		if db.IsNonUniqueErr(err) {
			writeApiError(w, shared.ApiError{
				Status: http.StatusConflict,
				Msg:    "Post already liked",
			})
			return
		}

		if db.IsForeignKeyErr(err) {
			writeApiError(w, shared.ApiError{
				Status: http.StatusNotFound,
				Msg:    "Post not found",
			})
			return
		}

		log.Printf("Error creating like: %v\n", err)
		writeApiError(w, shared.ApiError{
			Status: http.StatusInternalServerError,
			Msg:    "Internal server error",
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)

	log.Println("Successfully liked post", postId)
}

func UnlikePostHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for UnlikePostHandler")

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

	deleted, err := db.DeleteLike(auth.UserId, postId)

	if err != nil {
		log.Printf("Error deleting like: %v\n", err)
		writeApiError(w, shared.ApiError{
			Status: http.StatusInternalServerError,
			Msg:    "Internal server error",
		})
		return
	}

	if !deleted {
		writeApiError(w, shared.ApiError{
			Status: http.StatusNotFound,
			Msg:    "Post or like not found",
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)

	log.Println("Successfully unliked post", postId)
}
