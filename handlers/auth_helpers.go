package handlers

import (
	"log"
	"net/http"
	"strings"

	"apibench-server/shared"
	"apibench-server/token"
	"apibench-server/types"
)

// authenticate resolves the caller from the Authorization header. On any
// failure it writes the 401 itself and returns nil, so handlers just bail
// when they get nil back.
func authenticate(w http.ResponseWriter, r *http.Request) *types.ServerAuth {
	authHeader := r.Header.Get("Authorization")

	if authHeader == "" {
		log.Println("no auth header")
		writeApiError(w, shared.ApiError{
			Status: http.StatusUnauthorized,
			Msg:    "Unauthorized",
		})
		return nil
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		log.Println("invalid auth header")
		writeApiError(w, shared.ApiError{
			Status: http.StatusUnauthorized,
			Msg:    "Unauthorized",
		})
		return nil
	}

	claims, err := token.Verify(strings.TrimPrefix(authHeader, "Bearer "))

	if err != nil {
		log.Printf("error verifying auth token: %v\n", err)
		writeApiError(w, shared.ApiError{
			Status: http.StatusUnauthorized,
			Msg:    "Unauthorized",
		})
		return nil
	}

	return &types.ServerAuth{
		UserId:  claims.UserId,
		IsAdmin: claims.IsAdmin,
	}
}

// requireAdmin writes the 403 itself when the caller lacks the admin role.
func requireAdmin(w http.ResponseWriter, auth *types.ServerAuth) bool {
	if !auth.IsAdmin {
		log.Println("caller is not an admin")
		writeApiError(w, shared.ApiError{
			Status: http.StatusForbidden,
			Msg:    "Forbidden",
		})
		return false
	}

	return true
}
