package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hitekgroup/hitek-site-backend/database"
	"github.com/hitekgroup/hitek-site-backend/errs"
	"github.com/hitekgroup/hitek-site-backend/models"
)

type authHandler struct {
	responder   Responder
	logger      zerolog.Logger
	profileRepo *database.ProfileRepo
	jwtSecret   []byte
	sessionTTL  time.Duration
}

func newAuthHandler(profileRepo *database.ProfileRepo, jwtSecret []byte, sessionTTL time.Duration) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		profileRepo: profileRepo,
		jwtSecret:   jwtSecret,
		sessionTTL:  sessionTTL,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	Profile   models.Profile `json:"profile"`
}

// login authenticates an admin and issues a session token
// @Summary Admin login
// @Description Verifies credentials against the stored password hash and returns a signed session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Admin credentials"
// @Success 200 {object} loginResponse "Session token and profile"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid login payload"
// @Failure 401 {object} ErrorResponse "Unauthorized - Invalid credentials"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error during login"
// @Router /auth/login [post]
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode login request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if err := validate.Struct(req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("login", err))
			return
		}

		profile, err := h.profileRepo.FindByEmail(req.Email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find profile", "profile", err))
			return
		}

		// Same error for unknown email and wrong password
		if profile == nil || !profile.CheckPassword(req.Password) {
			h.logger.Warn().Str("email", req.Email).Msg("Rejected login attempt")
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}

		now := time.Now().UTC()
		token, err := issueSessionToken(h.jwtSecret, *profile, h.sessionTTL, now)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to issue session token", err))
			return
		}

		h.logger.Info().Str("email", profile.Email).Msg("Admin signed in")

		h.responder.WriteJSON(w, loginResponse{
			Token:     token,
			ExpiresAt: now.Add(h.sessionTTL),
			Profile:   *profile,
		})
	}
}

// session returns the profile behind the current session token
// @Summary Current session
// @Description Returns the admin profile associated with the presented session token
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} models.Profile "Authenticated profile"
// @Failure 401 {object} ErrorResponse "Unauthorized - Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching profile"
// @Router /auth/session [get]
func (h authHandler) session() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		profile, err := h.profileRepo.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find profile", "profile", err))
			return
		}
		if profile == nil {
			// Token was valid but the account no longer exists
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}

// logout ends the current session
// @Summary Admin logout
// @Description Sessions are stateless tokens; logout acknowledges so clients discard theirs
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Success message"
// @Failure 401 {object} ErrorResponse "Unauthorized - Missing or invalid token"
// @Router /auth/logout [post]
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "logged out",
		})
	}
}
