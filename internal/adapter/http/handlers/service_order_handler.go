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

// ServiceOrderHandler exposes the service-order lifecycle and its line items.
type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
	log     *zap.Logger
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase, log *zap.Logger) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc, log: handlerLogger(log, "service_order")}
}

// CreateServiceOrder godoc
// @Summary  Open a service order
// @Tags     service-orders
// @Accept   json
// @Produce  json
// @Param    body body     request.CreateServiceOrderRequest true "Service order"
// @Success  201  {object} response.ServiceOrderResponse
// @Failure  400  {object} pkg.HTTPError
// @Failure  404  {object} pkg.HTTPError
// @Router   /service-orders [post]
func (h *ServiceOrderHandler) CreateServiceOrder(c *gin.Context) {
	var payload request.CreateServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromServiceOrder(created))
}

func (h *ServiceOrderHandler) GetServiceOrder(c *gin.Context) {
	h.respond(c, h.usecase.GetByID)
}

func (h *ServiceOrderHandler) ListByCustomer(c *gin.Context) {
	orders, err := h.usecase.ListByCustomerID(c.Request.Context(), pathID(c, "id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrders(orders))
}

// ChangeStatus godoc
// @Summary  Move a service order to another status
// @Tags     service-orders
// @Accept   json
// @Produce  json
// @Param    id   path     string                      true "Service order ID"
// @Param    body body     request.ChangeStatusRequest true "Target status"
// @Success  200  {object} response.ServiceOrderResponse
// @Failure  409  {object} pkg.HTTPError
// @Router   /service-orders/{id}/status [patch]
func (h *ServiceOrderHandler) ChangeStatus(c *gin.Context) {
	var payload request.ChangeStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	h.respond(c, func(ctx context.Context, id string) (entities.ServiceOrder, error) {
		return h.usecase.ChangeStatus(ctx, id, payload.ResolveStatus(), payload.Notes)
	})
}

func (h *ServiceOrderHandler) StartExecution(c *gin.Context) {
	h.respond(c, h.usecase.StartExecution)
}

func (h *ServiceOrderHandler) Finish(c *gin.Context) {
	h.respond(c, h.usecase.Finish)
}

func (h *ServiceOrderHandler) Deliver(c *gin.Context) {
	h.respond(c, h.usecase.Deliver)
}

func (h *ServiceOrderHandler) AddService(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	h.respond(c, func(ctx context.Context, id string) (entities.ServiceOrder, error) {
		return h.usecase.AddService(ctx, id, payload.ID, payload.Quantity)
	})
}

func (h *ServiceOrderHandler) RemoveService(c *gin.Context) {
	h.respond(c, func(ctx context.Context, id string) (entities.ServiceOrder, error) {
		return h.usecase.RemoveService(ctx, id, pathID(c, "item_id"))
	})
}

func (h *ServiceOrderHandler) AddPart(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	h.respond(c, func(ctx context.Context, id string) (entities.ServiceOrder, error) {
		return h.usecase.AddPart(ctx, id, payload.ID, payload.Quantity)
	})
}

func (h *ServiceOrderHandler) RemovePart(c *gin.Context) {
	h.respond(c, func(ctx context.Context, id string) (entities.ServiceOrder, error) {
		return h.usecase.RemovePart(ctx, id, pathID(c, "item_id"))
	})
}

func (h *ServiceOrderHandler) AssignMechanic(c *gin.Context) {
	var payload request.AssignMechanicRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	h.respond(c, func(ctx context.Context, id string) (entities.ServiceOrder, error) {
		return h.usecase.AssignMechanic(ctx, id, payload.MechanicID)
	})
}

func (h *ServiceOrderHandler) UpdateDiagnosis(c *gin.Context) {
	var payload request.UpdateDiagnosisRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	h.respond(c, func(ctx context.Context, id string) (entities.ServiceOrder, error) {
		return h.usecase.UpdateDiagnosis(ctx, id, payload.Diagnosis)
	})
}

// PriceSummary godoc
// @Summary  Price the order's current items
// @Tags     service-orders
// @Produce  json
// @Param    id  path     string true "Service order ID"
// @Success  200 {object} response.PriceSummaryResponse
// @Router   /service-orders/{id}/price [get]
func (h *ServiceOrderHandler) PriceSummary(c *gin.Context) {
	summary, err := h.usecase.PriceSummary(c.Request.Context(), pathID(c, "id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPriceSummary(summary))
}

func (h *ServiceOrderHandler) EstimatedCompletion(c *gin.Context) {
	id := pathID(c, "id")
	at, err := h.usecase.EstimatedCompletion(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.EstimatedCompletionResponse{ServiceOrderID: id, EstimatedCompletion: at})
}

func (h *ServiceOrderHandler) respond(c *gin.Context, op func(ctx context.Context, id string) (entities.ServiceOrder, error)) {
	order, err := op(c.Request.Context(), pathID(c, "id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}
