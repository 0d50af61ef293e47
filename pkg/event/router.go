package event

import (
	"github.com/gin-gonic/gin"
)

type AuthenticationMiddleware interface {
	TokenAuthentication(c *gin.Context)
}

type AuthorizationMiddleware interface {
	RequireSeller(c *gin.Context)
	RequireAdministrator(c *gin.Context)
}

func Routes(r *gin.RouterGroup, authentication AuthenticationMiddleware, authorization AuthorizationMiddleware, handler Handler) {
	r.POST("/events", handler.Create)
	r.GET("/events", handler.FindAll)
	r.GET("/events/:id", handler.FindById)
	r.GET("/events/by-shop/:id", handler.FindByShop)

	sellerRouter := r.Group("")
	sellerRouter.Use(authentication.TokenAuthentication, authorization.RequireSeller)
	sellerRouter.DELETE("/events/:id", handler.Delete)

	administratorRouter := r.Group("")
	administratorRouter.Use(authentication.TokenAuthentication, authorization.RequireAdministrator)
	administratorRouter.GET("/events/admin-all", handler.FindAllForAdmin)
}
