package handlers

import (
	"context"
	"net/http"

	request "oficina_xpto/internal/adapter/http/dto/request"
	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BudgetHandler handles HTTP requests for budgets (orçamentos).
type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
	log     *zap.Logger
}

func NewBudgetHandler(uc usecase.IBudgetUseCase, log *zap.Logger) *BudgetHandler {
	return &BudgetHandler{usecase: uc, log: handlerLogger(log, "budget")}
}

// CreateBudget godoc
// @Summary  Quote the service order's current items
// @Tags     budgets
// @Accept   json
// @Produce  json
// @Param    body body     request.CreateBudgetRequest true "Budget"
// @Success  201  {object} response.BudgetResponse
// @Failure  400  {object} pkg.HTTPError
// @Failure  409  {object} pkg.HTTPError
// @Router   /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var payload request.CreateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(created))
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	h.respond(c, h.usecase.GetByID)
}

func (h *BudgetHandler) ListByServiceOrder(c *gin.Context) {
	budgets, err := h.usecase.ListByServiceOrderID(c.Request.Context(), pathID(c, "id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudgets(budgets))
}

func (h *BudgetHandler) SendBudget(c *gin.Context) {
	h.respond(c, h.usecase.Send)
}

// ApproveBudget godoc
// @Summary  Approve a sent budget and start the order's execution
// @Tags     budgets
// @Produce  json
// @Param    id  path     string true "Budget ID"
// @Success  200 {object} response.BudgetResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /budgets/{id}/approve [patch]
func (h *BudgetHandler) ApproveBudget(c *gin.Context) {
	h.respond(c, h.usecase.Approve)
}

func (h *BudgetHandler) RejectBudget(c *gin.Context) {
	h.respond(c, h.usecase.Reject)
}

// ExpireOverdue is meant for a scheduler; it closes every overdue SENT budget.
func (h *BudgetHandler) ExpireOverdue(c *gin.Context) {
	n, err := h.usecase.ExpireOverdue(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	h.log.Info("overdue budgets expired", zap.Int("expired", n))
	c.JSON(http.StatusOK, response.ExpireBudgetsResponse{Expired: n})
}

func (h *BudgetHandler) respond(c *gin.Context, op func(ctx context.Context, id string) (entities.Budget, error)) {
	budget, err := op(c.Request.Context(), pathID(c, "id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}
