package handlers

import (
	"errors"
	"net/http"
	"strings"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/services"
	"oficina_xpto/internal/domain/valueobjects"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/internal/usecase/interfaces"
	"oficina_xpto/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

type errorMapping struct {
	targets []error
	code    string
	message string
	status  int
}

var errorMappings = []errorMapping{
	{[]error{usecase.ErrCustomerNotFound}, "CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound},
	{[]error{usecase.ErrServiceOrderNotFound}, "SERVICE_ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound},
	{[]error{usecase.ErrBudgetNotFound}, "BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound},
	{[]error{usecase.ErrCatalogServiceNotFound}, "SERVICE_NOT_FOUND", "Catalog service not found", http.StatusNotFound},
	{[]error{usecase.ErrPartNotFound}, "PART_NOT_FOUND", "Part not found", http.StatusNotFound},
	{[]error{usecase.ErrMechanicNotFound}, "MECHANIC_NOT_FOUND", "Mechanic not found", http.StatusNotFound},

	{[]error{usecase.ErrCustomerAlreadyExists}, "CUSTOMER_ALREADY_EXISTS", "Customer already exists", http.StatusConflict},
	{[]error{usecase.ErrActiveBudgetExists}, "ACTIVE_BUDGET_EXISTS", "Service order already has an active budget", http.StatusConflict},
	{[]error{usecase.ErrServiceOrderNotInDiagnosis}, "SERVICE_ORDER_NOT_IN_DIAGNOSIS", "Service order is not under diagnosis", http.StatusConflict},
	{[]error{usecase.ErrMechanicUnavailable}, "MECHANIC_UNAVAILABLE", "Mechanic is not available", http.StatusConflict},
	{[]error{interfaces.ErrConcurrentModification}, "CONCURRENT_MODIFICATION", "Resource was modified concurrently, retry", http.StatusConflict},
	{[]error{entities.ErrAggregateLocked}, "SERVICE_ORDER_LOCKED", "Service order is delivered and cannot be modified", http.StatusConflict},
	{[]error{entities.ErrInsufficientStock}, "INSUFFICIENT_STOCK", "Insufficient part stock", http.StatusConflict},
	{[]error{entities.ErrDocumentTypeMismatch}, "DOCUMENT_TYPE_MISMATCH", "Document does not match customer type", http.StatusConflict},
	{[]error{entities.ErrExpiredCannotBeApproved}, "BUDGET_EXPIRED", "Expired budget cannot be approved", http.StatusConflict},
	{[]error{
		entities.ErrInvalidStatusTransition,
		entities.ErrInvalidTransition,
		entities.ErrOnlyDraftCanBeSent,
		entities.ErrOnlySentCanBeApproved,
		entities.ErrOnlySentCanBeRejected,
		entities.ErrOnlySentCanExpire,
		entities.ErrBudgetNotExpired,
	}, "INVALID_STATUS_TRANSITION", "Invalid status transition", http.StatusConflict},

	{[]error{
		usecase.ErrInvalidCustomerID,
		usecase.ErrInvalidServiceOrderID,
		usecase.ErrInvalidBudgetID,
		usecase.ErrInvalidCatalogID,
		usecase.ErrInvalidValidDays,
		usecase.ErrTooManyItems,
		entities.ErrItemsRequired,
		entities.ErrInvalidName,
		entities.ErrInvalidPhone,
		entities.ErrInvalidAddress,
		entities.ErrInvalidCustomer,
		entities.ErrInvalidCustomerType,
		entities.ErrInvalidQuantity,
		entities.ErrInvalidLineItem,
		entities.ErrInvalidBudgetItem,
		entities.ErrInvalidServiceOrder,
		entities.ErrInvalidBudget,
		entities.ErrInvalidMechanic,
		entities.ErrInvalidCatalogItem,
		valueobjects.ErrInvalidAmount,
		valueobjects.ErrInvalidCurrency,
		valueobjects.ErrInvalidFactor,
		valueobjects.ErrInvalidDivisor,
		valueobjects.ErrCurrencyMismatch,
		valueobjects.ErrInvalidEmail,
		valueobjects.ErrInvalidDocument,
		services.ErrInvalidPercentage,
		services.ErrInvalidQuantity,
		services.ErrInvalidWorkingTime,
	}, "INVALID_REQUEST", "", http.StatusBadRequest},
}

// mapError translates use-case and domain errors. Validation errors keep the
// error text as message since it names the offending field.
func mapError(err error) *pkg.AppError {
	for _, m := range errorMappings {
		for _, target := range m.targets {
			if !errors.Is(err, target) {
				continue
			}
			msg := m.message
			if msg == "" {
				msg = err.Error()
			}
			return pkg.NewDomainError(m.code, msg, err, m.status)
		}
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func respondError(c *gin.Context, log *zap.Logger, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondInvalidPayload(c *gin.Context) {
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}

func pathID(c *gin.Context, name string) string {
	return strings.TrimSpace(c.Param(name))
}

func handlerLogger(log *zap.Logger, area string) *zap.Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return log.With(zap.String("area", area), zap.String("layer", "handler"))
}
