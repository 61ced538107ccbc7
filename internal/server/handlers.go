package server

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

type statusResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type oauthCallbackResponse struct {
	RefreshToken string `json:"refreshToken"`
	Note         string `json:"note"`
}

// handleStatus handles GET /
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.sendJSON(w, http.StatusOK, statusResponse{
		Status:  "ok",
		Service: serviceName,
	})
}

// handleAuth redirects the operator to the Google consent URL.
// Only meaningful in oauth auth mode.
func (s *Server) handleAuth(w http.ResponseWriter, r *http.Request) {
	url, err := s.drive.AuthCodeURL("state-token")
	if err != nil {
		s.sendJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// handleOAuthCallback exchanges the authorization code and surfaces the
// refresh token for manual copy into configuration.
func (s *Server) handleOAuthCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		s.sendJSON(w, http.StatusBadRequest, errorResponse{Error: "missing code parameter"})
		return
	}

	token, err := s.drive.Exchange(r.Context(), code)
	if err != nil {
		log.Error().Err(err).Msg("oauth code exchange failed")
		s.sendJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	if token.RefreshToken == "" {
		s.sendJSON(w, http.StatusOK, oauthCallbackResponse{
			Note: "no refresh token returned, revoke the app's access and run the consent flow again",
		})
		return
	}

	s.sendJSON(w, http.StatusOK, oauthCallbackResponse{
		RefreshToken: token.RefreshToken,
		Note:         "set OAUTH_REFRESH_TOKEN to this value and restart the service",
	})
}
