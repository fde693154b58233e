package router

import (
	"net/http"
	"time"

	"github.com/emmanuelethelbert04/account-haven/config"
	"github.com/emmanuelethelbert04/account-haven/internal/handler"
	"github.com/emmanuelethelbert04/account-haven/internal/metrics"
	"github.com/emmanuelethelbert04/account-haven/internal/middleware"
	"github.com/emmanuelethelbert04/account-haven/internal/repository"
	"github.com/emmanuelethelbert04/account-haven/internal/service"
	"github.com/emmanuelethelbert04/account-haven/pkg/cloudinary"
	"github.com/emmanuelethelbert04/account-haven/pkg/notifier"
	"github.com/emmanuelethelbert04/account-haven/pkg/ordercode"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client, events *notifier.Client, m *metrics.MarketplaceMetrics, codes *ordercode.Generator) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	listingRepo := repository.NewListingRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	walletRepo := repository.NewWalletRepository(db)
	walletTxRepo := repository.NewWalletTxRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	settingsRepo := repository.NewBankSettingsRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, userRepo, events)
	orderSvc := service.NewOrderService(db, orderRepo, walletRepo, userRepo, notificationRepo, codes, events, m)
	walletSvc := service.NewWalletService(db, walletRepo, walletTxRepo, notificationRepo, m)
	ticketSvc := service.NewTicketService(ticketRepo, m)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	listingHandler := handler.NewListingHandler(listingRepo)
	orderHandler := handler.NewOrderHandler(orderSvc, orderRepo, cloud)
	walletHandler := handler.NewWalletHandler(walletSvc, cloud)
	ticketHandler := handler.NewTicketHandler(ticketSvc)
	bankHandler := handler.NewBankSettingsHandler(settingsRepo)
	notificationHandler := handler.NewNotificationHandler(notificationRepo)
	uploadHandler := handler.NewUploadHandler(cloud)
	adminHandler := handler.NewAdminHandler(adminRepo, settingsRepo)
	adminListingHandler := handler.NewAdminListingHandler(listingRepo)
	adminOrderHandler := handler.NewAdminOrderHandler(orderSvc, orderRepo)
	adminWalletHandler := handler.NewAdminWalletHandler(walletSvc, walletTxRepo)
	adminTicketHandler := handler.NewAdminTicketHandler(ticketSvc)

	authMw := middleware.AuthRequired(&cfg.JWT)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.POST("/logout", authMw, authHandler.Logout)
			authGroup.PATCH("/change-password", authMw, authHandler.ChangePassword)
			authGroup.POST("/forgot-password", authHandler.ForgotPassword)
			authGroup.POST("/reset-password", authHandler.ResetPassword)
		}

		// Public storefront
		api.GET("/listings", listingHandler.List)
		api.GET("/listings/featured", listingHandler.Featured)
		api.GET("/listings/:id", listingHandler.Get)
		api.GET("/bank-settings", bankHandler.Get)
		api.POST("/contact", ticketHandler.Create)

		api.POST("/orders", authMw, orderHandler.Checkout)

		me := api.Group("/me")
		me.Use(authMw)
		{
			me.GET("/orders", orderHandler.ListMine)
			me.GET("/orders/:id", orderHandler.GetMine)
			me.POST("/orders/:id/proof", orderHandler.SubmitProof)
			me.GET("/wallet", walletHandler.GetWallet)
			me.GET("/wallet/transactions", walletHandler.ListTransactions)
			me.POST("/wallet/deposits", walletHandler.RequestDeposit)
			me.GET("/notifications", notificationHandler.List)
			me.PUT("/notifications/:id/read", notificationHandler.MarkRead)
		}

		admin := api.Group("/admin")
		admin.Use(authMw, middleware.AdminRequired())
		{
			admin.GET("/stats", adminHandler.DashboardStats)

			admin.GET("/listings", adminListingHandler.List)
			admin.POST("/listings", adminListingHandler.Create)
			admin.PUT("/listings/:id", adminListingHandler.Update)
			admin.PATCH("/listings/:id/status", adminListingHandler.UpdateStatus)
			admin.DELETE("/listings/:id", adminListingHandler.Delete)
			admin.POST("/listings/images", uploadHandler.UploadListingImage)

			admin.GET("/orders", adminOrderHandler.List)
			admin.GET("/orders/:id", adminOrderHandler.Get)
			admin.POST("/orders/:id/approve", adminOrderHandler.Approve)
			admin.POST("/orders/:id/reject", adminOrderHandler.Reject)
			admin.POST("/orders/:id/deliver", adminOrderHandler.Deliver)

			admin.GET("/wallet/deposits", adminWalletHandler.ListDeposits)
			admin.POST("/wallet/deposits/:id/approve", adminWalletHandler.ApproveDeposit)
			admin.POST("/wallet/deposits/:id/reject", adminWalletHandler.RejectDeposit)

			admin.GET("/tickets", adminTicketHandler.List)
			admin.PUT("/tickets/:id", adminTicketHandler.Update)

			admin.GET("/bank-settings", adminHandler.GetBankSettings)
			admin.PUT("/bank-settings", adminHandler.UpdateBankSettings)
		}
	}

	return r
}
