package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/bakeclub/backend/auth"
	"github.com/bakeclub/backend/httpjson"
	"github.com/bakeclub/backend/logger"
)

func (h *UserHttpHandler) Login(w http.ResponseWriter, r *http.Request) {
	type loginRequest struct {
		Firstname string `json:"firstname"`
		Lastname  string `json:"lastname"`
		Password  string `json:"password"`
	}

	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	member, err := h.userSrvc.Login(r.Context(), request.Firstname, request.Lastname, request.Password)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	token, err := auth.GenerateJWT(
		member.UUID,
		member.Firstname,
		member.Lastname,
		member.IsAdmin,
		h.JwtKey)
	if err != nil {
		err = fmt.Errorf("failed to generate JWT: %w", err)
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	cookie := http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Path:     "/",
		MaxAge:   24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteDefaultMode,
		Secure:   r.TLS != nil,
	}
	http.SetCookie(w, &cookie)

	httpjson.WriteSuccessJson(w, token)
}
