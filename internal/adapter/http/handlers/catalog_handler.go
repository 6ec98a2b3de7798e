package handlers

import (
	"net/http"

	request "oficina_xpto/internal/adapter/http/dto/request"
	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler manages the services, parts and mechanics line items refer to.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
	log     *zap.Logger
}

func NewCatalogHandler(uc usecase.ICatalogUseCase, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{usecase: uc, log: handlerLogger(log, "catalog")}
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var payload request.CreateCatalogServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	created, err := h.usecase.CreateService(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCatalogService(created))
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.usecase.GetService(c.Request.Context(), pathID(c, "id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogService(svc))
}

func (h *CatalogHandler) CreatePart(c *gin.Context) {
	var payload request.CreatePartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	created, err := h.usecase.CreatePart(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromPart(created))
}

func (h *CatalogHandler) GetPart(c *gin.Context) {
	part, err := h.usecase.GetPart(c.Request.Context(), pathID(c, "id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPart(part))
}

func (h *CatalogHandler) CreateMechanic(c *gin.Context) {
	var payload request.CreateMechanicRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	created, err := h.usecase.CreateMechanic(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromMechanic(created))
}

func (h *CatalogHandler) GetMechanic(c *gin.Context) {
	m, err := h.usecase.GetMechanic(c.Request.Context(), pathID(c, "id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMechanic(m))
}
