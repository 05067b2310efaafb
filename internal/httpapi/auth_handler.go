package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/KARINGU-RAVI/Nxt-trendz-app/internal/auth"
	"github.com/KARINGU-RAVI/Nxt-trendz-app/internal/session"
)

// Submitter is implemented by auth.Flow.
type Submitter interface {
	Submit(ctx context.Context, mode auth.Mode, creds auth.Credentials) (auth.Result, error)
}

type AuthHandler struct {
	flow Submitter
}

func NewAuthHandler(flow Submitter) *AuthHandler {
	return &AuthHandler{flow: flow}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Mode     string `json:"mode"`
}

type loginResponse struct {
	Message  string `json:"message,omitempty"`
	JWTToken string `json:"jwt_token,omitempty"`
	NextMode string `json:"next_mode"`
}

// Login runs one submission of the combined sign-in/sign-up form.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	res, err := h.flow.Submit(r.Context(), auth.ParseMode(body.Mode), auth.Credentials{
		Username: body.Username,
		Password: body.Password,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "sign in failed")
		return
	}

	resp := loginResponse{Message: res.Message, NextMode: string(res.NextMode)}

	switch res.Status {
	case auth.StatusAuthenticated:
		session.Write(w, res.Token, time.Now())
		resp.JWTToken = res.Token
		writeJSON(w, http.StatusOK, resp)
	case auth.StatusRegistered:
		writeJSON(w, http.StatusCreated, resp)
	case auth.StatusAlreadyExists:
		writeJSON(w, http.StatusConflict, resp)
	case auth.StatusEmptyField:
		writeJSON(w, http.StatusBadRequest, resp)
	case auth.StatusInvalidCredentials, auth.StatusRemoteAuthFailed:
		writeJSON(w, http.StatusUnauthorized, resp)
	default:
		writeError(w, http.StatusInternalServerError, "sign in failed")
	}
}
