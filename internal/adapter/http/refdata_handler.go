package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	cryptoDomain "cryptolend-backend/internal/domain/cryptocurrency"
	termDomain "cryptolend-backend/internal/domain/interestterm"
	"cryptolend-backend/internal/engine"
)

// RefDataHandler serves the two reference-data entities: collateral
// cryptocurrencies and interest terms.
type RefDataHandler struct {
	eng     *engine.Engine
	cryptos cryptoDomain.Repository
	terms   termDomain.Repository
}

func NewRefDataHandler(eng *engine.Engine, cryptos cryptoDomain.Repository, terms termDomain.Repository) *RefDataHandler {
	return &RefDataHandler{eng: eng, cryptos: cryptos, terms: terms}
}

type createCryptoReq struct {
	Symbol string `json:"symbol" validate:"required"`
	Name   string `json:"name"   validate:"required"`
}

func (h *RefDataHandler) CreateCryptocurrency(c echo.Context) error {
	var req createCryptoReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	cc := &cryptoDomain.Cryptocurrency{Symbol: req.Symbol, Name: req.Name}
	if err := h.eng.SaveCryptocurrency(c.Request().Context(), cc); err != nil {
		return respondSaveError(c, err)
	}
	return c.JSON(http.StatusCreated, cc)
}

func (h *RefDataHandler) GetCryptocurrency(c echo.Context) error {
	cc, err := h.cryptos.GetByCryptoID(c.Request().Context(), c.Param("crypto_id"))
	if err != nil {
		return respondLookupError(c, err)
	}
	return c.JSON(http.StatusOK, cc)
}

type createTermReq struct {
	LoanLength   int     `json:"loan_length"   validate:"required,gt=0"`
	InterestRate float64 `json:"interest_rate" validate:"required,gt=0"`
}

func (h *RefDataHandler) CreateInterestTerm(c echo.Context) error {
	var req createTermReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	t := &termDomain.InterestTerm{LoanLength: req.LoanLength, InterestRate: req.InterestRate}
	if err := h.eng.SaveInterestTerm(c.Request().Context(), t); err != nil {
		return respondSaveError(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *RefDataHandler) GetInterestTerm(c echo.Context) error {
	t, err := h.terms.GetByTermID(c.Request().Context(), c.Param("term_id"))
	if err != nil {
		return respondLookupError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}
