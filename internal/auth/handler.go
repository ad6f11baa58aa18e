package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"
)

const (
	refreshCookieName = "refresh_token"
	refreshCookiePath = "/api/refresh/token"
)

type Handler struct {
	authService  Service
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewHandler(
	authService Service,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *Handler {
	return &Handler{
		authService:  authService,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func setRefreshCookie(w http.ResponseWriter, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    refreshToken,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
		Path:     refreshCookiePath,
	})
}

func clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     refreshCookiePath,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Password == "" || strings.TrimSpace(req.Username) == "" {
		h.respondError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	_, accessToken, refreshToken, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			h.respondError(w, http.StatusUnauthorized, "Invalid username or password.")
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	setRefreshCookie(w, refreshToken)
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Logged in successfully!",
		"data": map[string]string{
			"access_token": accessToken,
		},
	})
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	accessToken, err := bearerToken(r)
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	if err := h.authService.Logout(r.Context(), userID, accessToken); err != nil {
		if errors.Is(err, ErrInternalError) {
			h.respondError(w, http.StatusInternalServerError, "Error during logout request.")
			return
		}
		h.respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	clearRefreshCookie(w)
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "You have been logged out.",
	})
}

func (h *Handler) RefreshAccessToken(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	accessToken, refreshToken, err := h.authService.RefreshAccessToken(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			h.respondError(w, http.StatusUnauthorized, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Could not refresh token")
		return
	}

	setRefreshCookie(w, refreshToken)
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data": map[string]string{
			"access_token": accessToken,
		},
	})
}
