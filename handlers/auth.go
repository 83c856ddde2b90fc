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

func LoginHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for LoginHandler")

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

	var requestBody shared.LoginRequest
	if err := json.Unmarshal(body, &requestBody); err != nil {
		log.Printf("Error parsing request body: %v\n", err)
		writeApiError(w, shared.ApiError{
			Status: http.StatusBadRequest,
			Msg:    "Invalid request body",
		})
		return
	}

	user, err := db.GetUserByEmail(requestBody.Email)

	if err != nil {
		log.Printf("Error getting user: %v\n", err)
		writeApiError(w, shared.ApiError{
			Status: http.StatusInternalServerError,
			Msg:    "Internal server error",
		})
		return
	}

	// Unknown email and wrong password return the same body so the two are
	// indistinguishable to the caller.
	if user == nil || !token.VerifyPassword(requestBody.Password, user.PasswordHash) {
		writeApiError(w, shared.ApiError{
			Status: http.StatusUnauthorized,
			Msg:    "Invalid credentials",
		})
		return
	}

	accessToken, err := token.Sign(user.Id, user.IsAdmin)

	if err != nil {
		log.Printf("Error signing token: %v\n", err)
		writeApiError(w, shared.ApiError{
			Status: http.StatusInternalServerError,
			Msg:    "Internal server error",
		})
		return
	}

	writeJson(w, http.StatusOK, shared.LoginResponse{AccessToken: accessToken})

	log.Println("Successfully logged in user", user.Id)
}

func MeHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for MeHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	user, err := db.GetUser(auth.UserId)

	if err != nil {
		log.Printf("Error getting user: %v\n", err)
		writeApiError(w, shared.ApiError{
			Status: http.StatusInternalServerError,
			Msg:    "Internal server error",
		})
		return
	}

	// The token can outlive the user row
	if user == nil {
		writeApiError(w, shared.ApiError{
			Status: http.StatusUnauthorized,
			Msg:    "Unauthorized",
		})
		return
	}

	writeJson(w, http.StatusOK, user.ToApi())
}
