package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/shift-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/shift-scheduler/internal/dto"
	"github.com/BruksfildServices01/shift-scheduler/internal/httperr"
	"github.com/BruksfildServices01/shift-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/shift-scheduler/internal/middleware"
	"github.com/BruksfildServices01/shift-scheduler/internal/store"
)

type MeHandler struct {
	users user.Repository
}

func NewMeHandler(users user.Repository) *MeHandler {
	return &MeHandler{users: users}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	u, err := h.users.GetUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.Unauthorized(c, "user_not_found", "Authenticated user no longer exists.")
			return
		}
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewUserDTO(u))
}
