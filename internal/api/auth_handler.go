package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/lmercier/pokecard-api/internal/api/middleware"
	"github.com/lmercier/pokecard-api/internal/api/shared"
	"github.com/lmercier/pokecard-api/internal/domain"
	"github.com/lmercier/pokecard-api/internal/platform/logger"
	"github.com/lmercier/pokecard-api/internal/service/auth"
	"github.com/lmercier/pokecard-api/internal/store"
)

// AuthHandler handles user account API requests: registration, login,
// and the authenticated profile endpoint.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	validator        *validator.Validate
	logger           *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordHasher auth.PasswordHasher,
	passwordVerifier auth.PasswordVerifier,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordHasher:   passwordHasher,
		passwordVerifier: passwordVerifier,
		validator:        validator.New(),
		logger:           logger.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /users requests.
// The email is normalized to lower case before the uniqueness check so
// Test@x.com and test@x.com resolve to the same account. The duplicate
// pre-check gives the friendly message; the unique index on email is
// the authoritative signal when two registrations race.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		log.Warn("registration validation failed", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Email and password must be provided")
		return
	}

	user, err := domain.NewUser(req.Email, req.Password)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	// Fast-path duplicate check for a friendly message.
	if _, err := h.userStore.GetByEmail(r.Context(), user.Email); err == nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			GetSafeErrorMessage(store.ErrEmailExists))
		return
	} else if !errors.Is(err, store.ErrUserNotFound) {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create user", err)
		return
	}

	hash, err := h.passwordHasher.Hash(user.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create user", err)
		return
	}
	user.HashedPassword = hash
	user.Password = ""

	if err := h.userStore.Create(r.Context(), user); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("user registered",
		slog.Int64("user_id", user.ID),
		slog.String("email", user.Email))
	shared.RespondWithJSON(w, r, http.StatusCreated, userToResponse(user))
}

// Login handles POST /users/login requests.
// An unknown email is 404 while a wrong password is 400; the contract
// distinguishes the two. Token signing fails closed with 500 when the
// signing secret is not configured.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		log.Warn("login validation failed", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Email and password must be provided")
		return
	}

	email := domain.NormalizeEmail(req.Email)
	user, err := h.userStore.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound,
				GetSafeErrorMessage(store.ErrUserNotFound))
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to authenticate user", err)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		log.Debug("password mismatch", slog.String("email", email))
		shared.RespondWithError(w, r, http.StatusBadRequest,
			GetSafeErrorMessage(auth.ErrInvalidCredentials))
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			"Failed to generate authentication token", err)
		return
	}

	log.Info("user logged in", slog.Int64("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}

// Me handles GET /users/me requests.
// The auth middleware has already validated the bearer token and placed
// the user ID in the request context.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := middleware.GetUserID(r)
	if !ok || userID == 0 {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}
