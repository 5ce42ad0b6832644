package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/lifehub/lifehub/internal/error_values"
	"github.com/lifehub/lifehub/internal/service"
	"github.com/lifehub/lifehub/pkg/entity"
	"github.com/lifehub/lifehub/pkg/httputil"
)

const sessionMaxAge = time.Hour * 24 * 7

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Success bool         `json:"success"`
	User    *entity.User `json:"user"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		if writeIfValidationErr(w, err) {
			logger.Error("registering error: invalid fields")
			return
		}
		if errors.Is(err, errorvalues.ErrEmailTaken) {
			logger.Error("registering error: email taken")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "Email already registered")
			return
		}
		logger.Error("registering error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "Registration failed")
		return
	}
	token, err := s.tokenService.GenerateToken(user.ID)
	if err != nil {
		logger.Error("registering error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "Registration failed")
		return
	}
	s.setSessionCookie(w, token)
	httputil.WriteJSONResponse(w, http.StatusOK, AuthResponse{Success: true, User: user})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if writeIfValidationErr(w, err) {
			logger.Error("login error: missing fields")
			return
		}
		// One answer for unknown email and wrong password
		if errors.Is(err, errorvalues.ErrWrongCredentials) {
			logger.Error("login error: wrong credentials")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		logger.Error("login error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "Login failed")
		return
	}
	token, err := s.tokenService.GenerateToken(user.ID)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "Login failed")
		return
	}
	s.setSessionCookie(w, token)
	httputil.WriteJSONResponse(w, http.StatusOK, AuthResponse{Success: true, User: user})
	logger.Info("successful login")
}

// Logout drops the session cookie. There is no server-side token state, so
// this is idempotent and never fails.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	s.clearSessionCookie(w)
	httputil.WriteJSONResponse(w, http.StatusOK, SuccessResponse{Success: true})
	GetLoggerFromCtx(r.Context()).Info("logged out")
}
