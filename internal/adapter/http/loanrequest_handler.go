package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	lrDomain "cryptolend-backend/internal/domain/loanrequest"
	"cryptolend-backend/internal/engine"
)

type LoanRequestHandler struct {
	eng  *engine.Engine
	repo lrDomain.Repository
}

func NewLoanRequestHandler(eng *engine.Engine, repo lrDomain.Repository) *LoanRequestHandler {
	return &LoanRequestHandler{eng: eng, repo: repo}
}

type createLoanRequestReq struct {
	BorrowerID     string     `json:"borrower_id"    validate:"required,hex32"`
	Cryptocurrency string     `json:"cryptocurrency" validate:"required,hex32"`
	InterestTerm   string     `json:"interest_term"  validate:"required,hex32"`
	RequestAmount  float64    `json:"request_amount"`
	RequestDate    *time.Time `json:"request_date"`
	ExpiryDate     *time.Time `json:"expiry_date"`
	Status         string     `json:"status"`
}

func (h *LoanRequestHandler) CreateLoanRequest(c echo.Context) error {
	var req createLoanRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	lr := &lrDomain.LoanRequest{
		BorrowerID:       req.BorrowerID,
		CryptocurrencyID: req.Cryptocurrency,
		InterestTermID:   req.InterestTerm,
		RequestAmount:    req.RequestAmount,
		Status:           lrDomain.Status(req.Status),
	}
	changes := engine.NewChangeSet("borrower_id", "cryptocurrency", "interest_term", "request_amount")
	if req.RequestDate != nil {
		lr.RequestDate = req.RequestDate.UTC()
		changes.Mark("request_date")
	}
	if req.ExpiryDate != nil {
		lr.ExpiryDate = req.ExpiryDate.UTC()
		changes.Mark("expiry_date")
	}
	if req.Status != "" {
		changes.Mark("status")
	}

	if err := h.eng.SaveLoanRequest(c.Request().Context(), lr, changes); err != nil {
		return respondSaveError(c, err)
	}
	return c.JSON(http.StatusCreated, lr)
}

func (h *LoanRequestHandler) GetLoanRequest(c echo.Context) error {
	lr, err := h.repo.GetByRequestID(c.Request().Context(), c.Param("request_id"))
	if err != nil {
		return respondLookupError(c, err)
	}
	return c.JSON(http.StatusOK, lr)
}
