package handlers

import (
	"net/http"
	"time"

	"meetly/services/scheduling"
	"meetly/utils"

	"github.com/gin-gonic/gin"
)

// MeetingHandler exposes the meeting lifecycle over HTTP.
type MeetingHandler struct {
	Scheduler scheduling.MeetingScheduler
}

func NewMeetingHandler(scheduler scheduling.MeetingScheduler) *MeetingHandler {
	return &MeetingHandler{Scheduler: scheduler}
}

// parseDate interprets the wire date. Empty is reported as a missing field,
// anything unparseable as a validation failure.
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, utils.ErrMissingFields()
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, utils.ErrValidation("invalid date")
	}
	return t, nil
}

// Get returns all meetings.
func (h *MeetingHandler) Get(c *gin.Context) {
	meetings, err := h.Scheduler.Get(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meetings)
}

// GetByID returns a single meeting.
func (h *MeetingHandler) GetByID(c *gin.Context) {
	meeting, err := h.Scheduler.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meeting)
}

// GetByBusinessID returns all meetings for a business.
func (h *MeetingHandler) GetByBusinessID(c *gin.Context) {
	meetings, err := h.Scheduler.GetByBusinessID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meetings)
}

// GetByServiceID returns all meetings referencing a service.
func (h *MeetingHandler) GetByServiceID(c *gin.Context) {
	meetings, err := h.Scheduler.GetByServiceID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meetings)
}

// Create books a meeting for the authenticated user.
func (h *MeetingHandler) Create(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId"`
		Date      string `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	start, err := parseDate(input.Date)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	userID := c.GetString("userID")
	resp, err := h.Scheduler.Create(c.Request.Context(), input.ServiceID, start, userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Update moves an existing meeting to a new start time.
func (h *MeetingHandler) Update(c *gin.Context) {
	var input struct {
		Date string `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	start, err := parseDate(input.Date)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	resp, err := h.Scheduler.Update(c.Request.Context(), c.Param("id"), start)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete removes a meeting.
func (h *MeetingHandler) Delete(c *gin.Context) {
	if err := h.Scheduler.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
