package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/shift-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/shift-scheduler/internal/dto"
	"github.com/BruksfildServices01/shift-scheduler/internal/httperr"
	"github.com/BruksfildServices01/shift-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/shift-scheduler/internal/middleware"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
	"github.com/BruksfildServices01/shift-scheduler/internal/timezone"
	"github.com/BruksfildServices01/shift-scheduler/internal/usecase/assignment"
)

type StaffHandler struct {
	users    user.Repository
	myShifts *assignment.MyShifts
}

func NewStaffHandler(users user.Repository, myShifts *assignment.MyShifts) *StaffHandler {
	return &StaffHandler{users: users, myShifts: myShifts}
}

// MyShifts lists the caller's shifts. An optional tz query parameter picks
// the IANA location the times are rendered in.
func (h *StaffHandler) MyShifts(c *gin.Context) {
	tz := c.Query("tz")
	if tz != "" && !timezone.IsValid(tz) {
		httperr.BadRequest(c, "invalid_timezone", "tz must be an IANA timezone name.")
		return
	}

	shifts, err := h.myShifts.Execute(
		c.Request.Context(),
		middleware.UserID(c),
		timezone.Location(tz),
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, shifts)
}

func (h *StaffHandler) ListStaff(c *gin.Context) {
	users, err := h.users.ListUsersByRole(c.Request.Context(), models.RoleStaff)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out := make([]dto.UserSummaryDTO, 0, len(users))
	for i := range users {
		out = append(out, *dto.NewUserSummary(&users[i]))
	}
	httpresp.List(c, out)
}
