package handler

import (
	"context"
	"mime"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/notulensi/errors"
	"github.com/johnquangdev/notulensi/internal/adapter/dto/common"
	"github.com/johnquangdev/notulensi/internal/adapter/dto/meeting"
	"github.com/johnquangdev/notulensi/internal/infrastructure/storage"
	"github.com/johnquangdev/notulensi/internal/usecase/export"
	meetingUsecase "github.com/johnquangdev/notulensi/internal/usecase/meeting"
)

// ExportArchive lists previously archived exports
type ExportArchive interface {
	List(ctx context.Context, prefix string) ([]storage.ArchivedExport, error)
}

// Export serves rendered minutes
type Export struct {
	exportService  *export.Service
	meetingService meetingUsecase.Service
	archive        ExportArchive
	logger         *zap.Logger
}

// NewExportHandler creates a new export handler. archive may be nil when storage is disabled.
func NewExportHandler(exportService *export.Service, meetingService meetingUsecase.Service, archive ExportArchive, logger *zap.Logger) *Export {
	return &Export{
		exportService:  exportService,
		meetingService: meetingService,
		archive:        archive,
		logger:         logger,
	}
}

// Download handles GET /meetings/:id/export
// @Summary      Export minutes as PDF
// @Description  Renders the meeting's minutes to an A4 document
// @Tags         Export
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id      path      string  true   "Meeting ID"
// @Param        locale  query     string  false  "id (default) or en"
// @Success      200     {file}    binary
// @Failure      403     {object}  common.ErrorResponse
// @Failure      404     {object}  common.ErrorResponse
// @Router       /meetings/{id}/export [get]
func (h *Export) Download(c echo.Context) error {
	var req meeting.ExportRequest
	if err := bind(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	res, err := h.exportService.ExportIn(c.Request().Context(), actor(c), c.Param("id"), req.Locale)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	header := c.Response().Header()
	header.Set(echo.HeaderContentDisposition, mime.FormatMediaType("attachment", map[string]string{"filename": res.FileName}))
	header.Set("X-Page-Count", strconv.Itoa(res.Pages))

	if h.logger != nil {
		h.logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.String("file_name", res.FileName),
		)
	}
	return c.Blob(http.StatusOK, export.ContentType, res.Content)
}

// ListArchived handles GET /meetings/:id/exports
// @Summary      Archived exports
// @Description  Previously exported documents with time-limited download URLs
// @Tags         Export
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Meeting ID"
// @Success      200  {object}  common.ListResponse
// @Router       /meetings/{id}/exports [get]
func (h *Export) ListArchived(c echo.Context) error {
	ctx := c.Request().Context()
	m, err := h.meetingService.Get(ctx, actor(c), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	items := []*meeting.ArchivedExportResponse{}
	if h.archive != nil {
		archived, err := h.archive.List(ctx, export.ArchiveKey(m.ID, ""))
		if err != nil {
			return HandleError(h.logger, c, errors.ErrStorageFailed("list exports", err))
		}
		for _, a := range archived {
			items = append(items, &meeting.ArchivedExportResponse{
				Key:      a.Key,
				FileName: a.FileName,
				URL:      a.URL,
			})
		}
	}
	return HandleSuccess(h.logger, c, common.NewListResponse(items, len(items)))
}
