package routes

import (
	"fmt"
	"net/http"

	"apibench-server/handlers"

	"github.com/gorilla/mux"
)

func AddHealthRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "OK")
	})
}

func AddApiRoutes(r *mux.Router) {
	r.HandleFunc("/auth/login", handlers.LoginHandler).Methods("POST")
	r.HandleFunc("/auth/me", handlers.MeHandler).Methods("GET")

	r.HandleFunc("/users", handlers.CreateUserHandler).Methods("POST")
	r.HandleFunc("/users", handlers.ListUsersHandler).Methods("GET")
	r.HandleFunc("/users/{userId}", handlers.GetUserHandler).Methods("GET")
	r.HandleFunc("/users/{userId}", handlers.UpdateUserHandler).Methods("PUT")
	r.HandleFunc("/users/{userId}", handlers.DeleteUserHandler).Methods("DELETE")

	r.HandleFunc("/posts", handlers.CreatePostHandler).Methods("POST")
	r.HandleFunc("/posts", handlers.ListPostsHandler).Methods("GET")
	r.HandleFunc("/posts/{postId}", handlers.GetPostHandler).Methods("GET")
	r.HandleFunc("/posts/{postId}", handlers.DeletePostHandler).Methods("DELETE")

	r.HandleFunc("/posts/{postId}/comments", handlers.CreateCommentHandler).Methods("POST")
	r.HandleFunc("/posts/{postId}/comments", handlers.ListCommentsHandler).Methods("GET")

	r.HandleFunc("/posts/{postId}/like", handlers.LikePostHandler).Methods("POST")
	r.HandleFunc("/posts/{postId}/like", handlers.UnlikePostHandler).Methods("DELETE")
}
