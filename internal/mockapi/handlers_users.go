package mockapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/splitmacha/splitmacha/internal/models"
)

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.ListUsers())
}

// handleMe answers GET /api/v1/users/me. The only route requiring a bearer
// token: the caller's identity comes from the token claims.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	claims, err := s.bearerClaims(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized", err.Error())
		return
	}

	user, found := s.store.FindUserByID(claims.UserID)
	if !found {
		writeError(w, http.StatusNotFound, "User not found",
			fmt.Sprintf("No user with id: %s", claims.UserID))
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleUserByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	user, found := s.store.FindUserByID(id)
	if !found {
		writeError(w, http.StatusNotFound, "Not found",
			fmt.Sprintf("No user with id: %s", id))
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	user, found := s.store.FindUserByEmail(email)
	if !found {
		writeError(w, http.StatusNotFound, "User not found",
			fmt.Sprintf("No user with email: %s", email))
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if _, exists := s.store.FindUserByEmail(req.Email); exists {
		writeError(w, http.StatusConflict, "Conflict", "User already exists")
		return
	}

	currency := req.PreferredCurrency
	if currency == "" {
		currency = "INR"
	}

	now := nowStamp()
	user := models.User{
		ID:                NewID("user"),
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		AvatarURL:         req.AvatarURL,
		FirebaseUID:       req.FirebaseUID,
		IsActive:          true,
		PreferredCurrency: currency,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	s.store.InsertUser(user, "")

	s.logger.Info("User created", "user_id", user.ID)
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, found := s.store.UpdateUser(id, req)
	if !found {
		writeError(w, http.StatusNotFound, "Not found",
			fmt.Sprintf("No user with id: %s", id))
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleSearchUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	writeJSON(w, http.StatusOK, s.store.SearchUsers(query))
}
