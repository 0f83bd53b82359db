package http

import (
	"encoding/json"
	"net/http"

	"github.com/bakeclub/backend/httpjson"
	"github.com/bakeclub/backend/logger"
	"github.com/bakeclub/backend/user"
)

func (h *UserHttpHandler) Register(w http.ResponseWriter, r *http.Request) {
	type registerRequest struct {
		Firstname  string `json:"firstname"`
		Lastname   string `json:"lastname"`
		Password   string `json:"password"`
		InviteCode string `json:"invite_code"`
	}

	var request registerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	newUser, err := h.userSrvc.CreateUser(r.Context(), user.CreateUserParams{
		Firstname:  request.Firstname,
		Lastname:   request.Lastname,
		Password:   request.Password,
		InviteCode: request.InviteCode,
	})

	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, User{
		UUID:      newUser.UUID.String(),
		Firstname: newUser.Firstname,
		Lastname:  newUser.Lastname,
		IsAdmin:   newUser.IsAdmin,
	})
}
