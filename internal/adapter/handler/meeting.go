package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/notulensi/internal/adapter/dto/common"
	"github.com/johnquangdev/notulensi/internal/adapter/dto/meeting"
	"github.com/johnquangdev/notulensi/internal/adapter/presenter"
	"github.com/johnquangdev/notulensi/internal/domain/entities"
	meetingUsecase "github.com/johnquangdev/notulensi/internal/usecase/meeting"
)

// Meeting handles meeting and minutes HTTP requests
type Meeting struct {
	meetingService meetingUsecase.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService meetingUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

func toCreateInput(req meeting.CreateMeetingRequest) meetingUsecase.CreateMeetingInput {
	return meetingUsecase.CreateMeetingInput{
		Title:          req.Title,
		Agenda:         req.Agenda,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Location:       req.Location,
		NotulisID:      req.NotulisID,
		ParticipantIDs: req.ParticipantIDs,
	}
}

// Dashboard handles GET /meetings
// @Summary      Meeting dashboard
// @Description  Splits visible meetings into upcoming and past
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        scope   query     string  false  "all or my"
// @Param        search  query     string  false  "Matches title or agenda"
// @Success      200     {object}  meeting.DashboardResponse
// @Router       /meetings [get]
func (h *Meeting) Dashboard(c echo.Context) error {
	var req meeting.DashboardRequest
	if err := bind(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	scope := meetingUsecase.ScopeAll
	if req.Scope == string(meetingUsecase.ScopeMy) {
		scope = meetingUsecase.ScopeMy
	}

	out, err := h.meetingService.Dashboard(c.Request().Context(), actor(c), meetingUsecase.DashboardFilter{
		Scope:  scope,
		Search: req.Search,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToDashboardResponse(out))
}

// Archive handles GET /meetings/archive
// @Summary      Meeting archive
// @Description  Lists meetings dated before today, newest first
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        search      query     string  false  "Matches title or agenda"
// @Param        start_date  query     string  false  "YYYY-MM-DD, inclusive"
// @Param        end_date    query     string  false  "YYYY-MM-DD, inclusive"
// @Success      200         {object}  common.ListResponse
// @Router       /meetings/archive [get]
func (h *Meeting) Archive(c echo.Context) error {
	var req meeting.ArchiveRequest
	if err := bind(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	meetings, err := h.meetingService.Archive(c.Request().Context(), meetingUsecase.ArchiveFilter{
		Search:    req.Search,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, common.NewListResponse(presenter.ToMeetingListResponse(meetings), len(meetings)))
}

// Create handles POST /meetings
// @Summary      Schedule a meeting
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      meeting.CreateMeetingRequest  true  "Meeting details"
// @Success      200      {object}  meeting.MeetingResponse
// @Failure      400      {object}  common.ErrorResponse  "Invalid notulis or participant"
// @Router       /meetings [post]
func (h *Meeting) Create(c echo.Context) error {
	var req meeting.CreateMeetingRequest
	if err := bind(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.meetingService.Create(c.Request().Context(), actor(c), toCreateInput(req))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// Get handles GET /meetings/:id
// @Summary      Meeting detail
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Meeting ID"
// @Success      200  {object}  meeting.MeetingResponse
// @Failure      403  {object}  common.ErrorResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /meetings/{id} [get]
func (h *Meeting) Get(c echo.Context) error {
	m, err := h.meetingService.Get(c.Request().Context(), actor(c), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// Update handles PUT /meetings/:id
// @Summary      Edit meeting details
// @Description  Admin only. Minutes are kept.
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                        true  "Meeting ID"
// @Param        request  body      meeting.UpdateMeetingRequest  true  "Meeting details"
// @Success      200      {object}  meeting.MeetingResponse
// @Router       /meetings/{id} [put]
func (h *Meeting) Update(c echo.Context) error {
	var req meeting.UpdateMeetingRequest
	if err := bind(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.meetingService.UpdateDetails(c.Request().Context(), actor(c), c.Param("id"), meetingUsecase.UpdateDetailsInput{
		CreateMeetingInput: toCreateInput(req.CreateMeetingRequest),
		Status:             entities.MeetingStatus(req.Status),
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// Delete handles DELETE /meetings/:id
// @Summary      Delete a meeting
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Meeting ID"
// @Success      200  {object}  common.MessageResponse
// @Router       /meetings/{id} [delete]
func (h *Meeting) Delete(c echo.Context) error {
	if err := h.meetingService.Delete(c.Request().Context(), actor(c), c.Param("id")); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, common.MessageResponse{Message: "Meeting deleted"})
}

// UpdateSummary handles PUT /meetings/:id/minutes/summary
// @Summary      Replace the minutes summary
// @Tags         Minutes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                        true  "Meeting ID"
// @Param        request  body      meeting.UpdateSummaryRequest  true  "Summary"
// @Success      200      {object}  meeting.MeetingResponse
// @Router       /meetings/{id}/minutes/summary [put]
func (h *Meeting) UpdateSummary(c echo.Context) error {
	var req meeting.UpdateSummaryRequest
	if err := bind(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.meetingService.UpdateSummary(c.Request().Context(), actor(c), c.Param("id"), req.Summary)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// CreateActionItem handles POST /meetings/:id/action-items
// @Summary      Add an action item
// @Description  New items always start Open. The PIC must be a participant.
// @Tags         Minutes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                     true  "Meeting ID"
// @Param        request  body      meeting.ActionItemRequest  true  "Action item"
// @Success      200      {object}  meeting.ActionItemResponse
// @Router       /meetings/{id}/action-items [post]
func (h *Meeting) CreateActionItem(c echo.Context) error {
	return h.saveActionItem(c, "")
}

// UpdateActionItem handles PUT /meetings/:id/action-items/:itemId
// @Summary      Edit an action item
// @Tags         Minutes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                     true  "Meeting ID"
// @Param        itemId   path      string                     true  "Action item ID"
// @Param        request  body      meeting.ActionItemRequest  true  "Action item"
// @Success      200      {object}  meeting.ActionItemResponse
// @Router       /meetings/{id}/action-items/{itemId} [put]
func (h *Meeting) UpdateActionItem(c echo.Context) error {
	return h.saveActionItem(c, c.Param("itemId"))
}

func (h *Meeting) saveActionItem(c echo.Context, itemID string) error {
	var req meeting.ActionItemRequest
	if err := bind(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	_, item, err := h.meetingService.SaveActionItem(c.Request().Context(), actor(c), c.Param("id"), meetingUsecase.ActionItemInput{
		ID:       itemID,
		Task:     req.Task,
		PICID:    req.PICID,
		Deadline: req.Deadline,
		Status:   entities.ActionItemStatus(req.Status),
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToActionItemResponse(item))
}

// DeleteActionItem handles DELETE /meetings/:id/action-items/:itemId
// @Summary      Remove an action item
// @Tags         Minutes
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string  true  "Meeting ID"
// @Param        itemId  path      string  true  "Action item ID"
// @Success      200     {object}  meeting.MeetingResponse
// @Router       /meetings/{id}/action-items/{itemId} [delete]
func (h *Meeting) DeleteActionItem(c echo.Context) error {
	m, err := h.meetingService.DeleteActionItem(c.Request().Context(), actor(c), c.Param("id"), c.Param("itemId"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// AddAttachment handles POST /meetings/:id/attachments
// @Summary      Record an attachment
// @Description  Only the file name is stored; the type is inferred from its extension
// @Tags         Minutes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                        true  "Meeting ID"
// @Param        request  body      meeting.AddAttachmentRequest  true  "File name"
// @Success      200      {object}  meeting.AttachmentResponse
// @Router       /meetings/{id}/attachments [post]
func (h *Meeting) AddAttachment(c echo.Context) error {
	var req meeting.AddAttachmentRequest
	if err := bind(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	_, att, err := h.meetingService.AddAttachment(c.Request().Context(), actor(c), c.Param("id"), req.FileName)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToAttachmentResponse(att))
}

// DeleteAttachment handles DELETE /meetings/:id/attachments/:attachmentId
// @Summary      Remove an attachment
// @Tags         Minutes
// @Produce      json
// @Security     BearerAuth
// @Param        id            path      string  true  "Meeting ID"
// @Param        attachmentId  path      string  true  "Attachment ID"
// @Success      200           {object}  meeting.MeetingResponse
// @Router       /meetings/{id}/attachments/{attachmentId} [delete]
func (h *Meeting) DeleteAttachment(c echo.Context) error {
	m, err := h.meetingService.DeleteAttachment(c.Request().Context(), actor(c), c.Param("id"), c.Param("attachmentId"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// AddParticipant handles POST /meetings/:id/participants
// @Summary      Add a participant
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                         true  "Meeting ID"
// @Param        request  body      meeting.AddParticipantRequest  true  "User"
// @Success      200      {object}  meeting.MeetingResponse
// @Router       /meetings/{id}/participants [post]
func (h *Meeting) AddParticipant(c echo.Context) error {
	var req meeting.AddParticipantRequest
	if err := bind(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.meetingService.AddParticipant(c.Request().Context(), actor(c), c.Param("id"), req.UserID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// RemoveParticipant handles DELETE /meetings/:id/participants/:userId
// @Summary      Remove a participant
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string  true  "Meeting ID"
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  meeting.MeetingResponse
// @Router       /meetings/{id}/participants/{userId} [delete]
func (h *Meeting) RemoveParticipant(c echo.Context) error {
	m, err := h.meetingService.RemoveParticipant(c.Request().Context(), actor(c), c.Param("id"), c.Param("userId"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}
