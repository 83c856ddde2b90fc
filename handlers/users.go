package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"apibench-server/db"
	"apibench-server/shared"
	"apibench-server/token"
)

func CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for CreateUserHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}
	if !requireAdmin(w, auth) {
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

	var requestBody shared.CreateUserRequest
	if err := json.Unmarshal(body, &requestBody); err != nil {
		log.Printf("Error parsing request body: %v\n", err)
		writeApiError(w, shared.ApiError{
			Status: http.StatusBadRequest,
			Msg:    "Invalid request body",
		})
		return
	}

	if requestBody.Username == "" || requestBody.Email == "" || requestBody.Password == "" {
		log.Println("missing required field in create user request")
		writeApiError(w, shared.ApiError{
			Status: http.StatusBadRequest,
			Msg:    "username, email, and password are required",
		})
		return
	}

	passwordHash, err := token.HashPassword(requestBody.Password)

	if err != nil {
		log.Printf("Error hashing password: %v\n", err)
		writeApiError(w, shared.ApiError{
			Status: http.StatusInternalServerError,
			Msg:    "Internal server error",
		})
		return
	}

	user, err := db.CreateUser(requestBody.Username, requestBody.Email, passwordHash)

	if err != nil {
		log.Printf("Error creating user: %v\n", err)
		// Duplicate username/email lands here too
		writeApiError(w, shared.ApiError{
			Status: http.StatusBadRequest,
			Msg:    "Could not create user",
		})
		return
	}

	writeJson(w, http.StatusCreated, user.ToApi())

	log.Println("Successfully created user", user.Id)
}

func ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for ListUsersHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}
	if !requireAdmin(w, auth) {
		return
	}

	limit, offset := limitOffset(r)

	users, err := db.ListUsers(limit, offset)

	if err != nil {
		log.Printf("Error listing users: %v\n", err)
		writeApiError(w, shared.ApiError{
			Status: http.StatusInternalServerError,
			Msg:    "Internal server error",
		})
		return
	}

	apiUsers := make([]*shared.User, 0, len(users))
	for _, user := range users {
		apiUsers = append(apiUsers, user.ToApi())
	}

	writeJson(w, http.StatusOK, apiUsers)
}

func GetUserHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for GetUserHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}
	if !requireAdmin(w, auth) {
		return
	}

	userId, ok := uuidVar(r, "userId")
	if !ok {
		writeApiError(w, shared.ApiError{
			Status: http.StatusNotFound,
			Msg:    "User not found",
		})
		return
	}

	user, err := db.GetUser(userId)

	if err != nil {
		log.Printf("Error getting user: %v\n", err)
		writeApiError(w, shared.ApiError{
			Status: http.StatusInternalServerError,
			Msg:    "Internal server error",
		})
		return
	}

	if user == nil {
		writeApiError(w, shared.ApiError{
			Status: http.StatusNotFound,
			Msg:    "User not found",
		})
		return
	}

	writeJson(w, http.StatusOK, user.ToApi())
}

func UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for UpdateUserHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}
	if !requireAdmin(w, auth) {
		return
	}

	userId, ok := uuidVar(r, "userId")
	if !ok {
		writeApiError(w, shared.ApiError{
			Status: http.StatusNotFound,
			Msg:    "User not found",
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

	var requestBody shared.UpdateUserRequest
	if err := json.Unmarshal(body, &requestBody); err != nil {
		log.Printf("Error parsing request body: %v\n", err)
		writeApiError(w, shared.ApiError{
			Status: http.StatusBadRequest,
			Msg:    "Invalid request body",
		})
		return
	}

	user, err := db.UpdateUserBio(userId, requestBody.Bio)

	if err != nil {
		log.Printf("Error updating user: %v\n", err)
		writeApiError(w, shared.ApiError{
			Status: http.StatusInternalServerError,
			Msg:    "Internal server error",
		})
		return
	}

	if user == nil {
		writeApiError(w, shared.ApiError{
			Status: http.StatusNotFound,
			Msg:    "User not found",
		})
		return
	}

	writeJson(w, http.StatusOK, user.ToApi())
}

func DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for DeleteUserHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}
	if !requireAdmin(w, auth) {
		return
	}

	userId, ok := uuidVar(r, "userId")
	if !ok {
		writeApiError(w, shared.ApiError{
			Status: http.StatusNotFound,
			Msg:    "User not found",
		})
		return
	}

	deleted, err := db.DeleteUser(userId)

	if err != nil {
		log.Printf("Error deleting user: %v\n", err)
		writeApiError(w, shared.ApiError{
			Status: http.StatusInternalServerError,
			Msg:    "Internal server error",
		})
		return
	}

	if !deleted {
		writeApiError(w, shared.ApiError{
			Status: http.StatusNotFound,
			Msg:    "User not found",
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)

	log.Println("Successfully deleted user", userId)
}
