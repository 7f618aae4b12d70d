package api

import (
	"github.com/gin-gonic/gin"

	"github.com/PunisherCE/Parqueaderos/internal/api/handler"
	"github.com/PunisherCE/Parqueaderos/internal/api/middleware"
	"github.com/PunisherCE/Parqueaderos/internal/service"
)

func SetupRouter(as *service.AuthService, ls *service.LedgerService, ps *service.PricingService,
	authMw *middleware.AuthMiddleware, wsManager *handler.WebSocketManager) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// WebSocket endpoint for live occupancy (no auth for the dashboard feed)
	wsHandler := handler.NewWebSocketHandler(wsManager)
	r.GET("/ws", wsHandler.HandleWebSocket)

	authHandler := handler.NewAuthHandler(as)
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
	}

	v1 := r.Group("/api/v1")
	v1.Use(authMw.Authenticate())
	{
		hourlyH := handler.NewHourlyHandler(ls)
		hourlyRoutes := v1.Group("/hourly")
		{
			hourlyRoutes.POST("", hourlyH.Register)
			hourlyRoutes.GET("", hourlyH.List)
			hourlyRoutes.POST("/:plate/bill", hourlyH.Bill)
		}

		subH := handler.NewSubscriptionHandler(ls)
		subRoutes := v1.Group("/subscriptions")
		{
			subRoutes.POST("", subH.Register)
			subRoutes.GET("", subH.List)
			subRoutes.POST("/:plate/renew", subH.Renew)
			subRoutes.DELETE("/:plate", subH.Remove)
		}

		v1.POST("/plates/normalize", hourlyH.NormalizePlate)
		v1.GET("/occupancy", hourlyH.Occupancy)
		v1.GET("/revenue", authMw.AuthorizeRole("admin"), hourlyH.Revenue)

		pricingH := handler.NewPricingHandler(ps)
		pricingRoutes := v1.Group("/pricing")
		{
			pricingRoutes.GET("", pricingH.Get)
			pricingRoutes.PUT("", authMw.AuthorizeRole("admin"), pricingH.Update)
		}
	}
	return r
}
