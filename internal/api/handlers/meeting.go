package handlers

import (
	"net/http"

	"bookclub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MeetingHandler handles HTTP requests for meetings
type MeetingHandler struct {
	meetingService service.MeetingServiceInterface
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService service.MeetingServiceInterface) *MeetingHandler {
	return &MeetingHandler{
		meetingService: meetingService,
	}
}

// ListMeetings lists every meeting, most recent first
// @Summary List meetings
// @Description Get all meetings with their joined books and {member, status} attendance pairs
// @Tags meetings
// @Accept json
// @Produce json
// @Success 200 {array} service.MeetingResponse "Successfully retrieved meetings"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /meetings [get]
func (h *MeetingHandler) ListMeetings(c *gin.Context) {
	meetings, err := h.meetingService.ListMeetings()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, meetings)
}

// GetMeeting retrieves a meeting by ID
// @Summary Get meeting by ID
// @Description Get a specific meeting by its UUID
// @Tags meetings
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID (UUID)"
// @Success 200 {object} service.MeetingResponse "Successfully retrieved meeting"
// @Failure 400 {object} ErrorResponse "Invalid meeting ID"
// @Failure 404 {object} ErrorResponse "Meeting not found"
// @Router /meetings/{id} [get]
func (h *MeetingHandler) GetMeeting(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting ID"})
		return
	}

	meeting, err := h.meetingService.GetMeetingByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, meeting)
}

// CreateMeeting creates a new meeting with its attendee roster
// @Summary Create a new meeting
// @Description Create a meeting together with its attendance rows in one transaction. Date and time are required; every supplied attendee is recorded as ATTENDING; the title defaults to one derived from the date.
// @Tags meetings
// @Accept json
// @Produce json
// @Param meeting body service.CreateMeetingRequest true "Meeting data"
// @Success 201 {object} service.MeetingResponse "Successfully created meeting"
// @Failure 400 {object} ErrorResponse "Missing or invalid field"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /meetings [post]
func (h *MeetingHandler) CreateMeeting(c *gin.Context) {
	var req service.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meeting, err := h.meetingService.CreateMeeting(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, meeting)
}

// UpdateMeeting updates an existing meeting
// @Summary Update meeting
// @Description Update a meeting's fields and replace its attendee roster wholesale in one transaction. Title, date and time are required.
// @Tags meetings
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID (UUID)"
// @Param meeting body service.UpdateMeetingRequest true "Updated meeting data"
// @Success 200 {object} service.MeetingResponse "Successfully updated meeting"
// @Failure 400 {object} ErrorResponse "Missing or invalid field"
// @Failure 404 {object} ErrorResponse "Meeting not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /meetings/{id} [put]
func (h *MeetingHandler) UpdateMeeting(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting ID"})
		return
	}

	var req service.UpdateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meeting, err := h.meetingService.UpdateMeeting(id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, meeting)
}

// DeleteMeeting deletes a meeting
// @Summary Delete meeting
// @Description Delete a meeting by ID; its attendance and book-association rows are removed with it
// @Tags meetings
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID (UUID)"
// @Success 200 {object} map[string]string "Successfully deleted meeting"
// @Failure 400 {object} ErrorResponse "Invalid meeting ID"
// @Failure 404 {object} ErrorResponse "Meeting not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /meetings/{id} [delete]
func (h *MeetingHandler) DeleteMeeting(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting ID"})
		return
	}

	if err := h.meetingService.DeleteMeeting(id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meeting deleted successfully"})
}
