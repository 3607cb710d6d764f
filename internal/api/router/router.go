package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"

	"github.com/simonnirfalk/review-mails/internal/api/handlers/admin"
	"github.com/simonnirfalk/review-mails/internal/api/handlers/debug"
	"github.com/simonnirfalk/review-mails/internal/api/handlers/health"
	"github.com/simonnirfalk/review-mails/internal/api/handlers/webhook"
	"github.com/simonnirfalk/review-mails/internal/config"
	"github.com/simonnirfalk/review-mails/internal/middlewares"
)

// New mounts all routes. debugHandler may be nil; the probe routes are only
// mounted when it is set.
func New(
	cfg *config.Config,
	webhookHandler *webhook.Handler,
	adminHandler *admin.Handler,
	healthHandler *health.Handler,
	debugHandler *debug.Handler,
) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	e.GET("/health", healthHandler.Check)
	e.GET("/metrics", gin.WrapH(promhttp.Handler()))

	hooks := e.Group("/webhooks")
	{
		shop := hooks.Group("/dandomain")
		if cfg.Dandomain.VerifyWebhooks {
			shop.Use(middlewares.VerifyWebhook(cfg.Dandomain.WebhookSecret))
		}
		shop.POST("/order-created", webhookHandler.OrderCreated)
		shop.POST("/order-updated", webhookHandler.OrderUpdated)

		hooks.POST("/engagement", webhookHandler.Engagement)
	}

	adm := e.Group("/admin")
	{
		adm.GET("/jobs", adminHandler.List)
		adm.POST("/jobs/:orderID/cancel", adminHandler.Cancel)
		adm.POST("/jobs/:orderID/uncancel", adminHandler.Uncancel)
		adm.POST("/jobs/:orderID/resend", adminHandler.Resend)
	}

	if debugHandler != nil {
		dbg := e.Group("/debug")
		dbg.GET("/oauth", debugHandler.OAuth)
		dbg.GET("/gql", debugHandler.Order)
	}

	return e
}
