package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	errs "infracore/internal/errors"
	"infracore/internal/model"
	"infracore/internal/service"
)

// LeadHandler handles public lead capture endpoints.
type LeadHandler struct {
	leadService service.LeadService
}

// NewLeadHandler creates a new lead handler.
func NewLeadHandler(leadService service.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// ContactRequest is the JSON body of a contact form submission.
type ContactRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Comments  string `json:"comments"`
	Branch    string `json:"branch"`
}

// QuoteRequest is the JSON body of a quote form submission.
type QuoteRequest struct {
	ClientName  string  `json:"client_name"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       string  `json:"phone"`
	Company     string  `json:"company"`
	Street      string  `json:"street"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Country     string  `json:"country"`
	Zip         string  `json:"zip"`
	Interest    string  `json:"interest"`
	Comments    string  `json:"comments"`
	TotalAmount float64 `json:"total_amount"`
}

// QuotationRequest is the JSON body of the direct quotation insert endpoint.
type QuotationRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone"`
	Company         string `json:"company"`
	Street          string `json:"street"`
	City            string `json:"city"`
	State           string `json:"state"`
	Country         string `json:"country"`
	Zip             string `json:"zip"`
	Comments        string `json:"comments"`
	ProductInterest string `json:"productInterest"`
}

// SendContact handles POST /api/contact/send and triggers the notification
// fan-out.
func (h *LeadHandler) SendContact(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg := &model.ContactMessage{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Comments:  req.Comments,
		Branch:    req.Branch,
	}

	if err := h.leadService.SubmitContact(c.Request().Context(), msg); err != nil {
		httpErr := errs.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Message saved and notifications sent (if enabled).",
	})
}

// SendQuote handles POST /api/quote/send and triggers the notification
// fan-out.
func (h *LeadHandler) SendQuote(c echo.Context) error {
	var req QuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	quotation := &model.Quotation{
		ClientName:  req.ClientName,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		Street:      req.Street,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		Zip:         req.Zip,
		Interest:    req.Interest,
		Comments:    req.Comments,
		TotalAmount: req.TotalAmount,
	}

	if err := h.leadService.SubmitQuote(c.Request().Context(), quotation); err != nil {
		httpErr := errs.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Quote saved and notifications sent (if enabled).",
	})
}

// CreateQuotation handles POST /api/quotations, the direct insert variant
// with no notification fan-out.
func (h *LeadHandler) CreateQuotation(c echo.Context) error {
	var req QuotationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	quotation := &model.Quotation{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Company:         req.Company,
		Street:          req.Street,
		City:            req.City,
		State:           req.State,
		Country:         req.Country,
		Zip:             req.Zip,
		Comments:        req.Comments,
		ProductInterest: req.ProductInterest,
	}

	if err := h.leadService.InsertQuotation(c.Request().Context(), quotation); err != nil {
		httpErr := errs.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    quotation,
	})
}
