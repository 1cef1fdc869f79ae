package handlers

import (
	"net/http"

	"gms-backend/internal/auth"
	"gms-backend/internal/middleware"
	"gms-backend/internal/models"
	"gms-backend/internal/repositories"
	"gms-backend/pkg/utils"
)

// credentialError is deliberately identical for unknown email and wrong
// password so the login form never leaks which one failed.
const credentialError = "incorrect email or password"

type AuthHandler struct {
	UserRepo   *repositories.UserRepository
	JWTManager *auth.JWTManager
}

func NewAuthHandler(userRepo *repositories.UserRepository, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{UserRepo: userRepo, JWTManager: jwtManager}
}

// Signup self-registers a viewer account. The new session starts immediately;
// any role beyond read-only is granted later through user management.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	if _, err := h.UserRepo.GetByEmail(r.Context(), req.Email); err == nil {
		utils.Error(w, http.StatusConflict, "Email already registered")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RoleViewer,
		IsActive:     true,
	}
	if err := h.UserRepo.Create(r.Context(), user); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	token, err := h.JWTManager.GenerateToken(user)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	utils.JSON(w, http.StatusCreated, "Account created", &models.LoginResponse{
		Token:  token,
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	user, err := h.UserRepo.GetByEmail(r.Context(), req.Email)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, credentialError)
		return
	}
	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		utils.Error(w, http.StatusUnauthorized, credentialError)
		return
	}
	if !user.IsActive {
		utils.Error(w, http.StatusForbidden, "Account is disabled")
		return
	}

	if user.TOTPEnabled {
		tempToken, err := h.JWTManager.GenerateTempToken(user)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to generate token")
			return
		}
		utils.JSON(w, http.StatusOK, "TOTP verification required", &models.LoginResponse{
			UserID:      user.ID,
			Name:        user.Name,
			Email:       user.Email,
			Role:        user.Role,
			TOTPPending: true,
			TempToken:   tempToken,
		})
		return
	}

	h.issueSession(w, user)
}

func (h *AuthHandler) VerifyTOTP(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyTOTPRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	claims, err := h.JWTManager.ValidateTempToken(req.TempToken)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "Invalid or expired temporary token")
		return
	}

	user, err := h.UserRepo.Get(r.Context(), claims.UserID)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "User not found")
		return
	}
	if !auth.ValidateTOTPCode(user.TOTPSecret, req.Code) {
		utils.Error(w, http.StatusUnauthorized, "Invalid verification code")
		return
	}

	h.issueSession(w, user)
}

// Me returns the authenticated user's profile for session restore.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.UserRepo.Get(r.Context(), userID)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "User not found")
		return
	}
	utils.JSON(w, http.StatusOK, "User fetched", user)
}

func (h *AuthHandler) issueSession(w http.ResponseWriter, user *models.User) {
	token, err := h.JWTManager.GenerateToken(user)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	utils.JSON(w, http.StatusOK, "Login successful", &models.LoginResponse{
		Token:  token,
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	})
}
