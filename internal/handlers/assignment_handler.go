package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/shift-scheduler/internal/httperr"
	"github.com/BruksfildServices01/shift-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/shift-scheduler/internal/infra/export"
	"github.com/BruksfildServices01/shift-scheduler/internal/middleware"
	"github.com/BruksfildServices01/shift-scheduler/internal/usecase/assignment"
)

type AssignmentHandler struct {
	assign *assignment.AssignShift
	list   *assignment.ListAssignments
	export *assignment.ExportRoster
}

func NewAssignmentHandler(
	assign *assignment.AssignShift,
	list *assignment.ListAssignments,
	export *assignment.ExportRoster,
) *AssignmentHandler {
	return &AssignmentHandler{
		assign: assign,
		list:   list,
		export: export,
	}
}

type CreateAssignmentRequest struct {
	ShiftID string `json:"shiftId"`
	StaffID string `json:"staffId"`
}

func (h *AssignmentHandler) Create(c *gin.Context) {
	var req CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	shiftID, err := uuid.Parse(req.ShiftID)
	if err != nil {
		httperr.BadRequest(c, "invalid_shift_id", "shiftId must be a UUID.")
		return
	}
	staffID, err := uuid.Parse(req.StaffID)
	if err != nil {
		httperr.BadRequest(c, "invalid_staff_id", "staffId must be a UUID.")
		return
	}

	out, err := h.assign.Execute(c.Request.Context(), assignment.AssignInput{
		ShiftID:   shiftID,
		StaffID:   staffID,
		ManagerID: middleware.UserID(c),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, out)
}

func (h *AssignmentHandler) List(c *gin.Context) {
	items, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *AssignmentHandler) Export(c *gin.Context) {
	loc, err := h.export.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, export.ErrDisabled) {
			httperr.ServiceUnavailable(c, "export_disabled", "Roster export is not configured.")
			return
		}
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, loc)
}
