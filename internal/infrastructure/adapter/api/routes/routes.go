package routes

import (
	coreport "github.com/vidaplus/credit-ledger/internal/domain/port/core"
	"github.com/vidaplus/credit-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/vidaplus/credit-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	accountHandler *handler.AccountHandler,
	generationHandler *handler.GenerationHandler,
	paymentHandler *handler.PaymentHandler,
) {
	accountRoutes := router.Group("/accounts")
	{
		// POST /accounts
		accountRoutes.POST("", accountHandler.Register)

		// GET /accounts/:accountId/balance
		accountRoutes.GET("/:accountId/balance", accountHandler.GetBalance)

		// GET /accounts/:accountId/statement
		accountRoutes.GET("/:accountId/statement", accountHandler.GetStatement)

		// POST /accounts/:accountId/generations
		accountRoutes.POST("/:accountId/generations", generationHandler.Generate)
	}

	// POST /payments/confirmations
	router.POST("/payments/confirmations", paymentHandler.Confirm)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
