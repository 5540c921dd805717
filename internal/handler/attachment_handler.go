package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	errs "infracore/internal/errors"
	"infracore/internal/service"
)

// AttachmentHandler handles attachment catalog endpoints.
type AttachmentHandler struct {
	attachmentService service.AttachmentService
}

// NewAttachmentHandler creates a new attachment handler.
func NewAttachmentHandler(attachmentService service.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{attachmentService: attachmentService}
}

// Create handles POST /api/attachments (multipart form).
func (h *AttachmentHandler) Create(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrorResponse{
			Error: "multipart form required",
			Code:  "INVALID_FORM",
		})
	}

	files, httpErr := collectFiles(form, attachmentFileRules())
	if httpErr != nil {
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	attachmentForm := service.AttachmentForm{
		Name:           formValue(form, "name"),
		Description:    formValue(form, "description"),
		Category:       formValue(form, "category"),
		Features:       formValue(form, "features"),
		Specifications: formValue(form, "specifications"),
	}

	attachment, err := h.attachmentService.Create(c.Request().Context(), attachmentForm, files)
	if err != nil {
		httpErr := errs.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, attachment)
}

// Update handles PUT /api/attachments/:id (multipart form, sparse fields).
func (h *AttachmentHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrorResponse{
			Error: "invalid attachment ID",
			Code:  "INVALID_UUID",
		})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrorResponse{
			Error: "multipart form required",
			Code:  "INVALID_FORM",
		})
	}

	files, httpErr := collectFiles(form, attachmentFileRules())
	if httpErr != nil {
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	patch := service.AttachmentPatch{
		Name:           formPtr(form, "name"),
		Description:    formPtr(form, "description"),
		Category:       formPtr(form, "category"),
		Features:       formPtr(form, "features"),
		Specifications: formPtr(form, "specifications"),
	}

	attachment, err := h.attachmentService.Update(c.Request().Context(), id, patch, files)
	if err != nil {
		httpErr := errs.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, attachment)
}

// List handles GET /api/attachments.
func (h *AttachmentHandler) List(c echo.Context) error {
	attachments, err := h.attachmentService.List(c.Request().Context())
	if err != nil {
		httpErr := errs.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, attachments)
}

// Get handles GET /api/attachments/:id.
func (h *AttachmentHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrorResponse{
			Error: "invalid attachment ID",
			Code:  "INVALID_UUID",
		})
	}

	attachment, err := h.attachmentService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errs.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, attachment)
}

// Delete handles DELETE /api/attachments/:id.
func (h *AttachmentHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrorResponse{
			Error: "invalid attachment ID",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.attachmentService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errs.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Attachment deleted successfully",
	})
}
