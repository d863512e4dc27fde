package handler

import (
	"net/http"

	"mobile-money-ledger/internal/adapter/http/middleware"
	"mobile-money-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	LedgerSvc      ports.LedgerService
	WalletSvc      ports.WalletService
	PinSvc         ports.PinService
	ReconSvc       ports.ReconciliationService
	HealthCheckers []ports.HealthChecker
	AdminKey       string // empty = admin routes reject everything
	Mode           string // gin mode: debug, release, test
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	v1 := r.Group("/api/v1")
	actorAuth := middleware.ActorAuth()

	pinHandler := NewPinHandler(deps.PinSvc)
	pin := v1.Group("/pin", actorAuth)
	{
		pin.POST("", pinHandler.SetPin)
		pin.POST("/verify", pinHandler.VerifyPin)
		pin.GET("/status", pinHandler.Status)
	}

	walletHandler := NewWalletHandler(deps.WalletSvc)
	wallets := v1.Group("/wallets", actorAuth)
	{
		wallets.GET("/me", walletHandler.GetMyWallet)
	}

	txHandler := NewTransactionHandler(deps.LedgerSvc)
	transactions := v1.Group("/transactions", actorAuth)
	{
		transactions.GET("", txHandler.List)
		transactions.GET("/:reference", txHandler.GetByReference)
		transactions.POST("/transfer", txHandler.Transfer)
		transactions.POST("/topup", txHandler.TopUp)
		transactions.POST("/bills", txHandler.BillPayment)
		transactions.POST("/card-deposit", txHandler.CardDeposit)
		transactions.POST("/merchant-payment", txHandler.MerchantPayment)
	}

	wdHandler := NewWithdrawalHandler(deps.LedgerSvc)
	withdrawals := v1.Group("/withdrawals", actorAuth)
	{
		withdrawals.POST("", wdHandler.Submit)
		withdrawals.POST("/:reference/confirm", wdHandler.Confirm)
		withdrawals.POST("/:reference/cancel", wdHandler.Cancel)
	}

	adminHandler := NewAdminHandler(deps.LedgerSvc, deps.WalletSvc, deps.ReconSvc)
	admin := v1.Group("/admin", middleware.AdminAuth(deps.AdminKey, deps.Logger))
	{
		admin.POST("/wallets/:owner_id/adjust", adminHandler.Adjust)
		admin.POST("/wallets/:owner_id/toggle", adminHandler.Toggle)
		admin.GET("/wallets/:owner_id/reconcile", adminHandler.Reconcile)
	}

	return r
}

// HealthCheck pings every registered dependency.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
