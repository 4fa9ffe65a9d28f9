package http

import (
	"encoding/json"
	"net/http"

	"github.com/ndanilov/shelf-viewer/internal/logger"
	"github.com/ndanilov/shelf-viewer/internal/utils"
	"github.com/ndanilov/shelf-viewer/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var signUpData models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&signUpData); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.AddUser(ctx, signUpData)
	if err != nil {
		log.Err(err).Str("username", signUpData.Username).Msg("sign-up failed")
		h.writeError(w, err)
		return
	}

	log.Debug().Int64("id", user.UserID).Str("username", user.Username).Msg("user successfully signed up")

	h.writeToken(w, r, user)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var signInData models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&signInData); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Authenticate(ctx, signInData.Username, signInData.Password)
	if err != nil {
		log.Err(err).Str("username", signInData.Username).Msg("sign-in failed")
		h.writeError(w, err)
		return
	}

	h.writeToken(w, r, user)
}

// token mirrors signIn for clients that authenticate with OAuth2-style form
// credentials instead of a JSON body.
func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form data was passed")
		http.Error(w, "invalid form data was passed", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.services.AuthService.Authenticate(ctx, username, password)
	if err != nil {
		log.Err(err).Str("username", username).Msg("token request failed")
		h.writeError(w, err)
		return
	}

	h.writeToken(w, r, user)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.CurrentUserFromContext(r.Context())
	if !ok {
		log.Error().Msg("no current user in request context")
		h.unauthorized(w)
		return
	}

	if _, err := utils.WriteJSON(w, user.Profile(), http.StatusOK); err != nil {
		log.Err(err).Msg("writing user profile failed")
	}
}

// writeToken issues an access token for user and writes it as the response
// body.
func (h *Handler) writeToken(w http.ResponseWriter, r *http.Request, user models.User) {
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateAccessToken(r.Context(), user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if _, err = utils.WriteJSON(w, token, http.StatusOK); err != nil {
		log.Err(err).Msg("writing token response failed")
	}
}

// writeError maps a service or store error to its HTTP status. Bodies carry
// the error message for client errors and a generic status text for server
// errors; every 401 carries the bearer challenge.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	switch {
	case status == http.StatusUnauthorized:
		w.Header().Set("WWW-Authenticate", bearerChallenge)
		http.Error(w, err.Error(), status)
	case status >= http.StatusInternalServerError:
		http.Error(w, http.StatusText(status), status)
	default:
		http.Error(w, err.Error(), status)
	}
}

// unauthorized writes the uniform 401 used whenever credentials cannot be
// validated, regardless of the underlying cause.
func (h *Handler) unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", bearerChallenge)
	http.Error(w, "Could not validate credentials", http.StatusUnauthorized)
}
