package mockapi

import (
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/splitmacha/splitmacha/internal/models"
)

// handleLogin answers POST /api/v1/auth/login.
//
// Lookup is a linear scan by case-insensitive, trimmed email. Seeded users
// carry no password hash and accept any password; users created through
// registration are verified against their stored hash.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, found := s.store.FindUserByEmail(req.Email)
	if !found {
		s.logger.Info("Login: no matching user", "email", req.Email)
		writeError(w, http.StatusNotFound, "User not found",
			fmt.Sprintf("No user with email: %s", req.Email))
		return
	}

	if hash, ok := s.store.PasswordHash(user.ID); ok {
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
			s.logger.Info("Login: password mismatch", "email", req.Email)
			writeError(w, http.StatusUnauthorized, "Unauthorized", "Invalid email or password")
			return
		}
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Server error", "Failed to create session")
		return
	}

	s.logger.Info("Login successful", "user_id", user.ID, "email", user.Email)
	writeJSON(w, http.StatusOK, models.AuthResponse{
		User:    user,
		Token:   token,
		Message: "Login successful",
	})
}

// handleRegister answers POST /api/v1/auth/register. A duplicate email (by
// the same normalized match as login) is a 409 conflict.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if _, exists := s.store.FindUserByEmail(req.Email); exists {
		s.logger.Info("Register: duplicate email", "email", req.Email)
		writeError(w, http.StatusConflict, "Conflict", "User already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Failed to hash password", "error", err)
		writeError(w, http.StatusInternalServerError, "Server error", "Failed to create account")
		return
	}

	now := nowStamp()
	user := models.User{
		ID:                NewID("user"),
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		AvatarURL:         "https://i.pravatar.cc/150",
		FirebaseUID:       NewID("firebase"),
		IsActive:          true,
		PreferredCurrency: "INR",
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	s.store.InsertUser(user, string(hash))

	token, err := s.tokens.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Server error", "Failed to create session")
		return
	}

	s.logger.Info("User registered", "user_id", user.ID, "email", user.Email)
	writeJSON(w, http.StatusOK, models.AuthResponse{
		User:    user,
		Token:   token,
		Message: "Registration successful",
	})
}

// bearerClaims extracts and validates the Authorization header.
func (s *Server) bearerClaims(r *http.Request) (*TokenClaims, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, ErrMissingToken
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, ErrInvalidToken
	}
	return s.tokens.Validate(parts[1])
}
