package server

import (
	"log/slog"

	"github.com/Akash4693/TradeX-backend/internal/middleware"
	"github.com/Akash4693/TradeX-backend/pkg/event"
	"github.com/Akash4693/TradeX-backend/pkg/health"
	"github.com/Akash4693/TradeX-backend/pkg/product"
	"github.com/Akash4693/TradeX-backend/pkg/shop"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	redocMiddleware "github.com/go-openapi/runtime/middleware"
	sloggin "github.com/samber/slog-gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func GetEngine(logger *slog.Logger, basePath string, authentication middleware.AuthenticationMiddleware, authorization middleware.AuthorizationMiddleware, eventHandler event.Handler, productHandler product.Handler, shopHandler shop.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("tradex-backend"))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("authorization")
	r.Use(cors.New(corsConfig))

	r.Use(middleware.CorrelationID())
	r.Use(sloggin.New(logger))
	r.Use(middleware.ErrorHandler())

	router := r.Group(basePath)

	redoc(router, basePath)

	router.GET("/health", health.Health)

	shop.Routes(router, shopHandler)
	event.Routes(router, authentication, authorization, eventHandler)
	product.Routes(router, authentication, authorization, productHandler)

	return r
}

func redoc(router *gin.RouterGroup, basePath string) {
	router.StaticFile("/swagger.yaml", "./swagger/swagger.yaml")

	redocOpts := redocMiddleware.RedocOpts{
		BasePath: basePath,
		SpecURL:  "./swagger.yaml",
	}
	router.GET("/docs", func(c *gin.Context) {
		redocHandler := redocMiddleware.Redoc(redocOpts, nil)
		redocHandler.ServeHTTP(c.Writer, c.Request)
	})
}
