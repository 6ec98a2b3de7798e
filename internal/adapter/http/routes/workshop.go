package routes

import (
	"oficina_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers     = "/customers"
	PathServiceOrders = "/service-orders"
	PathBudgets       = "/budgets"
	PathCatalog       = "/catalog"
	PathMechanics     = "/mechanics"
)

func addCustomerRoutes(rg *gin.RouterGroup, h *handlers.CustomerHandler, orders *handlers.ServiceOrderHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", h.CreateCustomer)
		customers.GET("/:id", h.GetCustomer)
		customers.PUT("/:id", h.UpdatePersonalInfo)
		customers.PATCH("/:id/email", h.ChangeEmail)
		customers.PATCH("/:id/document", h.ChangeDocument)
		customers.DELETE("/:id", h.DeleteCustomer)
		customers.GET("/:id/service-orders", orders.ListByCustomer)
	}
}

func addServiceOrderRoutes(rg *gin.RouterGroup, h *handlers.ServiceOrderHandler, budgets *handlers.BudgetHandler) {
	orders := rg.Group(PathServiceOrders)
	{
		orders.POST("", h.CreateServiceOrder)
		orders.GET("/:id", h.GetServiceOrder)
		orders.PATCH("/:id/status", h.ChangeStatus)
		orders.PATCH("/:id/start", h.StartExecution)
		orders.PATCH("/:id/finish", h.Finish)
		orders.PATCH("/:id/deliver", h.Deliver)
		orders.POST("/:id/services", h.AddService)
		orders.DELETE("/:id/services/:item_id", h.RemoveService)
		orders.POST("/:id/parts", h.AddPart)
		orders.DELETE("/:id/parts/:item_id", h.RemovePart)
		orders.PATCH("/:id/mechanic", h.AssignMechanic)
		orders.PATCH("/:id/diagnosis", h.UpdateDiagnosis)
		orders.GET("/:id/price", h.PriceSummary)
		orders.GET("/:id/estimated-completion", h.EstimatedCompletion)
		orders.GET("/:id/budgets", budgets.ListByServiceOrder)
	}
}

func addBudgetRoutes(rg *gin.RouterGroup, h *handlers.BudgetHandler) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", h.CreateBudget)
		budgets.POST("/expire", h.ExpireOverdue)
		budgets.GET("/:id", h.GetBudget)
		budgets.PATCH("/:id/send", h.SendBudget)
		budgets.PATCH("/:id/approve", h.ApproveBudget)
		budgets.PATCH("/:id/reject", h.RejectBudget)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.POST("/services", h.CreateService)
		catalog.GET("/services/:id", h.GetService)
		catalog.POST("/parts", h.CreatePart)
		catalog.GET("/parts/:id", h.GetPart)
	}

	mechanics := rg.Group(PathMechanics)
	{
		mechanics.POST("", h.CreateMechanic)
		mechanics.GET("/:id", h.GetMechanic)
	}
}
