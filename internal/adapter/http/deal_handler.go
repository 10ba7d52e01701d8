package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dealDomain "cryptolend-backend/internal/domain/deal"
	"cryptolend-backend/internal/engine"
)

type DealHandler struct {
	eng  *engine.Engine
	repo dealDomain.Repository
}

func NewDealHandler(eng *engine.Engine, repo dealDomain.Repository) *DealHandler {
	return &DealHandler{eng: eng, repo: repo}
}

type createDealReq struct {
	LenderID    string `json:"lender_id"    validate:"required,hex32"`
	LoanDetails string `json:"loan_details" validate:"required,hex32"`
}

func (h *DealHandler) CreateDeal(c echo.Context) error {
	var req createDealReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	d := &dealDomain.Deal{LenderID: req.LenderID, LoanDetailsID: req.LoanDetails}
	changes := engine.NewChangeSet("lenderId", "loanDetails")
	if err := h.eng.SaveDeal(c.Request().Context(), d, changes); err != nil {
		return respondSaveError(c, err)
	}
	return c.JSON(http.StatusCreated, d)
}

type updateDealReq struct {
	LoanDetails *string `json:"loan_details" validate:"omitempty,hex32"`
	IsComplete  *bool   `json:"is_complete"`
}

// UpdateDeal reassigns loanDetails and/or flips completion. Reassigning
// loanDetails forces the completion date to be rederived.
func (h *DealHandler) UpdateDeal(c echo.Context) error {
	d, err := h.repo.GetByDealID(c.Request().Context(), c.Param("deal_id"))
	if err != nil {
		return respondLookupError(c, err)
	}

	var req updateDealReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	changes := engine.NewChangeSet()
	if req.LoanDetails != nil && *req.LoanDetails != d.LoanDetailsID {
		d.LoanDetailsID = *req.LoanDetails
		changes.Mark("loanDetails")
	}
	if req.IsComplete != nil {
		d.IsComplete = *req.IsComplete
		changes.Mark("isComplete")
	}

	if err := h.eng.SaveDeal(c.Request().Context(), d, changes); err != nil {
		return respondSaveError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *DealHandler) GetDeal(c echo.Context) error {
	d, err := h.repo.GetByDealID(c.Request().Context(), c.Param("deal_id"))
	if err != nil {
		return respondLookupError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}
