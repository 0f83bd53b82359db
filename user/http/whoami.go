package http

import (
	"net/http"

	"github.com/bakeclub/backend/auth"
	"github.com/bakeclub/backend/httpjson"
	"github.com/bakeclub/backend/logger"
	"github.com/bakeclub/backend/srvcerror"
	"github.com/google/uuid"
)

func (h *UserHttpHandler) WhoAmI(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(auth.CtxJwtClaimsKey).(*auth.JwtClaims)
	if !ok || claims == nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, srvcerror.ErrUnauthorized())
		return
	}

	memberUuid, err := uuid.Parse(claims.UUID)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	member, err := h.userSrvc.GetUserByUUID(r.Context(), memberUuid)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, User{
		UUID:      member.UUID.String(),
		Firstname: member.Firstname,
		Lastname:  member.Lastname,
		IsAdmin:   member.IsAdmin,
	})
}
