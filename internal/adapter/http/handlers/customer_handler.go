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

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
	log     *zap.Logger
}

func NewCustomerHandler(uc usecase.ICustomerUseCase, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{usecase: uc, log: handlerLogger(log, "customer")}
}

// CreateCustomer godoc
// @Summary  Register a customer
// @Tags     customers
// @Accept   json
// @Produce  json
// @Param    body body     request.CreateCustomerRequest true "Customer"
// @Success  201  {object} response.CustomerResponse
// @Failure  400  {object} pkg.HTTPError
// @Failure  409  {object} pkg.HTTPError
// @Router   /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCustomer(created))
}

// GetCustomer godoc
// @Summary  Get a customer
// @Tags     customers
// @Produce  json
// @Param    id  path     string true "Customer ID"
// @Success  200 {object} response.CustomerResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.usecase.GetByID(c.Request.Context(), pathID(c, "id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func (h *CustomerHandler) UpdatePersonalInfo(c *gin.Context) {
	var payload request.UpdatePersonalInfoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	h.respond(c, func(ctx context.Context, id string) (entities.Customer, error) {
		return h.usecase.UpdatePersonalInfo(ctx, id, payload.ToInput())
	})
}

func (h *CustomerHandler) ChangeEmail(c *gin.Context) {
	var payload request.ChangeEmailRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	h.respond(c, func(ctx context.Context, id string) (entities.Customer, error) {
		return h.usecase.ChangeEmail(ctx, id, payload.Email)
	})
}

func (h *CustomerHandler) ChangeDocument(c *gin.Context) {
	var payload request.ChangeDocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	h.respond(c, func(ctx context.Context, id string) (entities.Customer, error) {
		return h.usecase.ChangeDocument(ctx, id, payload.Document)
	})
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), pathID(c, "id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CustomerHandler) respond(c *gin.Context, op func(ctx context.Context, id string) (entities.Customer, error)) {
	customer, err := op(c.Request.Context(), pathID(c, "id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}
