package product

import (
	"github.com/gin-gonic/gin"
)

type AuthenticationMiddleware interface {
	TokenAuthentication(c *gin.Context)
}

type AuthorizationMiddleware interface {
	RequireSeller(c *gin.Context)
}

func Routes(r *gin.RouterGroup, authentication AuthenticationMiddleware, authorization AuthorizationMiddleware, handler Handler) {
	r.POST("/products", handler.Create)
	r.GET("/products", handler.FindAll)
	r.GET("/products/:id", handler.FindById)
	r.GET("/products/by-shop/:id", handler.FindByShop)

	sellerRouter := r.Group("")
	sellerRouter.Use(authentication.TokenAuthentication, authorization.RequireSeller)
	sellerRouter.DELETE("/products/:id", handler.Delete)
}
