package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/models"
	"nestegg/internal/services"
	"nestegg/internal/valuation"
)

// InvestmentHandler handles investment-related requests.
type InvestmentHandler struct {
	investmentService services.InvestmentServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService services.InvestmentServicer) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// InvestmentRequest represents the payload for creating or replacing an
// investment.
type InvestmentRequest struct {
	Name                string                   `json:"name" binding:"required,min=1,max=200"`
	InitialAmount       float64                  `json:"initial_amount" binding:"required,gt=0"`
	InterestRate        float64                  `json:"interest_rate" binding:"gte=0"`
	Years               int                      `json:"years" binding:"required,min=1,max=50"`
	Kind                models.InvestmentKind    `json:"kind" binding:"required,investment_kind"`
	MonthlyContribution *float64                 `json:"monthly_contribution" binding:"omitempty,gte=0"`
	CompoundingPolicy   models.CompoundingPolicy `json:"compounding_policy" binding:"omitempty,compounding_policy"`
	SelectedSymbol      string                   `json:"selected_symbol" binding:"max=20"`
}

// toModel builds the entity from the request payload.
func (req *InvestmentRequest) toModel() *models.Investment {
	policy := req.CompoundingPolicy
	if policy == 0 {
		policy = models.CompoundAnnual
	}
	return &models.Investment{
		Name:                req.Name,
		InitialAmount:       req.InitialAmount,
		InterestRate:        req.InterestRate,
		Years:               req.Years,
		Kind:                req.Kind,
		MonthlyContribution: req.MonthlyContribution,
		CompoundingPolicy:   policy,
		SelectedSymbol:      req.SelectedSymbol,
	}
}

// ProjectionResponse represents a projection of an investment's growth.
type ProjectionResponse struct {
	FutureValue  float64   `json:"future_value"`
	YearlyGrowth []float64 `json:"yearly_growth"`
}

// CreateInvestment handles creating an investment
// @Summary     Create investment
// @Description Create a new investment owned by the current owner
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body InvestmentRequest true "Investment details"
// @Success     201 {object} models.Investment "Investment created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Not authenticated"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [post]
func (h *InvestmentHandler) CreateInvestment(c *gin.Context) {
	ownerID, err := getIdentityID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req InvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	investment, err := h.investmentService.Create(ownerID, req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, investment)
}

// ListInvestments handles listing the owner's investments
// @Summary     List investments
// @Description List every investment the current owner holds
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Investment "Investments"
// @Failure     401 {object} ErrorResponse "Not authenticated"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [get]
func (h *InvestmentHandler) ListInvestments(c *gin.Context) {
	ownerID, err := getIdentityID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investments, err := h.investmentService.List(ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"investments": investments})
}

// GetInvestment handles fetching a single investment
// @Summary     Get investment
// @Description Get one of the current owner's investments by id
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Investment ID"
// @Success     200 {object} models.Investment "Investment"
// @Failure     401 {object} ErrorResponse "Not authenticated"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id} [get]
func (h *InvestmentHandler) GetInvestment(c *gin.Context) {
	ownerID, err := getIdentityID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investment, err := h.investmentService.Get(ownerID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, investment)
}

// UpdateInvestment handles replacing an investment
// @Summary     Update investment
// @Description Replace the full investment record at the same owner/id
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Investment ID"
// @Param       request body InvestmentRequest true "Full replacement record"
// @Success     200 {object} models.Investment "Investment updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Not authenticated"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id} [put]
func (h *InvestmentHandler) UpdateInvestment(c *gin.Context) {
	ownerID, err := getIdentityID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req InvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	investment := req.toModel()
	investment.ID = c.Param("id")
	investment.UserID = ownerID

	updated, err := h.investmentService.Update(investment)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteInvestment handles deleting an investment
// @Summary     Delete investment
// @Description Delete an investment; deleting an absent id succeeds
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Investment ID"
// @Success     200 {object} map[string]string "Investment deleted"
// @Failure     401 {object} ErrorResponse "Not authenticated"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id} [delete]
func (h *InvestmentHandler) DeleteInvestment(c *gin.Context) {
	ownerID, err := getIdentityID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.investmentService.Delete(ownerID, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// GetProjection handles projecting an investment's growth
// @Summary     Project investment growth
// @Description Compute the future value and year-by-year growth curve
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Investment ID"
// @Success     200 {object} ProjectionResponse "Projection"
// @Failure     401 {object} ErrorResponse "Not authenticated"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id}/projection [get]
func (h *InvestmentHandler) GetProjection(c *gin.Context) {
	ownerID, err := getIdentityID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investment, err := h.investmentService.Get(ownerID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProjectionResponse{
		FutureValue:  valuation.FutureValue(investment),
		YearlyGrowth: valuation.YearlyGrowth(investment),
	})
}
