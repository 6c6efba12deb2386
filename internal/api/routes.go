package api

import (
	"feedlooply-api/internal/config"
	"feedlooply-api/internal/middleware"
	"feedlooply-api/internal/services"
	"feedlooply-api/pkg/logging"

	"github.com/gin-gonic/gin"
)

// API bundles the service adapters behind the HTTP handlers
type API struct {
	Razorpay *services.RazorpayService
	Sheets   *services.SheetsService
	Mail     *services.MailService
	Notify   *services.NotifyService
	Webhook  *services.WebhookNotifier
	Limiter  *services.RedisService // nil when REDIS_URL is not set
}

// NewAPI wires the service adapters from configuration
func NewAPI() *API {
	mail := services.NewMailService()
	sheets := services.NewSheetsService()

	var limiter *services.RedisService
	if config.AppConfig.RedisURL != "" {
		var err error
		limiter, err = services.NewRedisService()
		if err != nil {
			logging.Errorf("rate limiter disabled: %v", err)
			limiter = nil
		}
	}

	return &API{
		Razorpay: services.NewRazorpayService(),
		Sheets:   sheets,
		Mail:     mail,
		Notify:   services.NewNotifyService(mail, sheets),
		Webhook:  services.NewWebhookNotifier(),
		Limiter:  limiter,
	}
}

// SetupRoutes sets up all routes
func SetupRoutes(r *gin.Engine, a *API) {
	r.Use(middleware.RequestID())

	api := r.Group("/api")
	{
		api.POST("/subscribe", a.Subscribe)
		api.POST("/notify", a.NotifyHandler)
		api.POST("/razorpay/order", a.CreateOrder)
		api.POST("/verify-payment", a.VerifyPayment)
		api.POST("/webinar", a.RegisterWebinar)

		debug := api.Group("/debug")
		{
			debug.GET("/sheets", a.DebugSheets)
		}
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "feedlooply-api",
		})
	})
}
