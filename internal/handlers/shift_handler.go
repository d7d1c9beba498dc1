package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/shift-scheduler/internal/dto"
	"github.com/BruksfildServices01/shift-scheduler/internal/httperr"
	"github.com/BruksfildServices01/shift-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/shift-scheduler/internal/middleware"
	"github.com/BruksfildServices01/shift-scheduler/internal/usecase/shift"
)

// ======================================================
// HANDLER
// ======================================================

type ShiftHandler struct {
	create *shift.CreateShift
	list   *shift.ListShifts
	get    *shift.GetShift
	delete *shift.DeleteShift
}

func NewShiftHandler(
	create *shift.CreateShift,
	list *shift.ListShifts,
	get *shift.GetShift,
	del *shift.DeleteShift,
) *ShiftHandler {
	return &ShiftHandler{
		create: create,
		list:   list,
		get:    get,
		delete: del,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateShiftRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ShiftHandler) Create(c *gin.Context) {
	var req CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	start, err := parseInstant(req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_time", "startTime must be an ISO 8601 date-time.")
		return
	}
	end, err := parseInstant(req.EndTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_end_time", "endTime must be an ISO 8601 date-time.")
		return
	}

	s, err := h.create.Execute(c.Request.Context(), shift.CreateShiftInput{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   start,
		EndTime:     end,
		CreatedBy:   middleware.UserID(c),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.NewShiftDTO(s))
}

// ======================================================
// READ
// ======================================================

func (h *ShiftHandler) List(c *gin.Context) {
	shifts, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out := make([]dto.ShiftDTO, 0, len(shifts))
	for i := range shifts {
		out = append(out, dto.NewShiftDTO(&shifts[i]))
	}
	httpresp.List(c, out)
}

func (h *ShiftHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	s, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewShiftDTO(s))
}

// ======================================================
// DELETE
// ======================================================

func (h *ShiftHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"shiftId": id})
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return uuid.Nil, false
	}
	return id, true
}
