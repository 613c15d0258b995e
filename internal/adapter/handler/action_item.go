package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/notulensi/internal/adapter/dto/actionitem"
	"github.com/johnquangdev/notulensi/internal/adapter/dto/common"
	"github.com/johnquangdev/notulensi/internal/adapter/presenter"
	"github.com/johnquangdev/notulensi/internal/domain/entities"
	actionItemUsecase "github.com/johnquangdev/notulensi/internal/usecase/actionitem"
)

// ActionItem serves the cross-meeting action plan
type ActionItem struct {
	actionItemService *actionItemUsecase.Service
	logger            *zap.Logger
}

// NewActionItemHandler creates a new action item handler
func NewActionItemHandler(actionItemService *actionItemUsecase.Service, logger *zap.Logger) *ActionItem {
	return &ActionItem{
		actionItemService: actionItemService,
		logger:            logger,
	}
}

// List handles GET /action-items
// @Summary      Action plan
// @Description  Every meeting's action items, filtered and ordered by deadline
// @Tags         Action Items
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Matches the task"
// @Param        status  query     string  false  "all, Open, On Progress or Done"
// @Param        pic_id  query     string  false  "PIC user ID"
// @Param        mine    query     bool    false  "Only items where I am the PIC"
// @Success      200     {object}  common.ListResponse
// @Router       /action-items [get]
func (h *ActionItem) List(c echo.Context) error {
	var req actionitem.ListActionItemsRequest
	if err := bind(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	items := h.actionItemService.List(c.Request().Context(), actor(c), actionItemUsecase.ListFilter{
		Filter: actionItemUsecase.Filter{
			Search: req.Search,
			Status: req.Status,
			PICID:  req.PICID,
		},
		Mine: req.Mine,
	})
	return HandleSuccess(h.logger, c, common.NewListResponse(presenter.ToEnrichedActionItemListResponse(items), len(items)))
}

// ChangeStatus handles PATCH /action-items/:meetingId/:itemId/status
// @Summary      Change an action item's status
// @Description  Allowed for anyone who can view the meeting
// @Tags         Action Items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        meetingId  path      string                          true  "Meeting ID"
// @Param        itemId     path      string                          true  "Action item ID"
// @Param        request    body      actionitem.ChangeStatusRequest  true  "New status"
// @Success      200        {object}  actionitem.ActionItemResponse
// @Failure      404        {object}  common.ErrorResponse  "Item no longer exists"
// @Router       /action-items/{meetingId}/{itemId}/status [patch]
func (h *ActionItem) ChangeStatus(c echo.Context) error {
	var req actionitem.ChangeStatusRequest
	if err := bind(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	item, err := h.actionItemService.ChangeStatus(
		c.Request().Context(),
		actor(c),
		c.Param("meetingId"),
		c.Param("itemId"),
		entities.ActionItemStatus(req.Status),
	)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToEnrichedActionItemResponse(item))
}
