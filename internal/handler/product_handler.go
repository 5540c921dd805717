package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	errs "infracore/internal/errors"
	"infracore/internal/service"
)

// ProductHandler handles product catalog endpoints.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create handles POST /api/products (multipart form).
func (h *ProductHandler) Create(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrorResponse{
			Error: "multipart form required",
			Code:  "INVALID_FORM",
		})
	}

	files, httpErr := collectFiles(form, productFileRules())
	if httpErr != nil {
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	productForm := service.ProductForm{
		Name:                       formValue(form, "name"),
		Description:                formValue(form, "description"),
		Category:                   formValue(form, "category"),
		Features:                   formValue(form, "features"),
		Specifications:             formValue(form, "specifications"),
		Horsepower:                 formValue(form, "horsepower"),
		RatedOperatingCapacity:     formValue(form, "rated_operating_capacity"),
		RatedOperatingCapacityUnit: formValue(form, "rated_operating_capacity_unit"),
		OperatingWeight:            formValue(form, "operating_weight"),
		DigDepth:                   formValue(form, "dig_depth"),
		Featured:                   formValue(form, "featured"),
	}

	product, err := h.productService.Create(c.Request().Context(), productForm, files)
	if err != nil {
		httpErr := errs.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, product)
}

// Update handles PUT /api/products/:id (multipart form, sparse fields).
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrorResponse{
			Error: "invalid product ID",
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

	files, httpErr := collectFiles(form, productFileRules())
	if httpErr != nil {
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	patch := service.ProductPatch{
		Name:                       formPtr(form, "name"),
		Description:                formPtr(form, "description"),
		Category:                   formPtr(form, "category"),
		Features:                   formPtr(form, "features"),
		Specifications:             formPtr(form, "specifications"),
		Horsepower:                 formPtr(form, "horsepower"),
		RatedOperatingCapacity:     formPtr(form, "rated_operating_capacity"),
		RatedOperatingCapacityUnit: formPtr(form, "rated_operating_capacity_unit"),
		OperatingWeight:            formPtr(form, "operating_weight"),
		DigDepth:                   formPtr(form, "dig_depth"),
		Featured:                   formPtr(form, "featured"),
	}

	product, err := h.productService.Update(c.Request().Context(), id, patch, files)
	if err != nil {
		httpErr := errs.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, product)
}

// List handles GET /api/products. Newest first, no pagination.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.productService.List(c.Request().Context())
	if err != nil {
		httpErr := errs.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrorResponse{
			Error: "invalid product ID",
			Code:  "INVALID_UUID",
		})
	}

	product, err := h.productService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errs.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /api/products/:id.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrorResponse{
			Error: "invalid product ID",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.productService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errs.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Product deleted successfully",
	})
}
