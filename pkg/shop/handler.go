package shop

import (
	"context"
	"net/http"

	"github.com/Akash4693/TradeX-backend/internal/handler"
	"github.com/Akash4693/TradeX-backend/pkg/model"
	"github.com/gin-gonic/gin"
)

func NewHandler(shopService shopService) Handler {
	return Handler{shopService}
}

type Handler struct {
	shopService shopService
}

type shopService interface {
	FindById(ctx context.Context, id uint) (*model.Shop, error)
}

type shopResponse struct {
	Success bool        `json:"success"`
	Shop    *model.Shop `json:"shop"`
}

// FindById shop
func (h Handler) FindById(c *gin.Context) {
	// swagger:route GET /shops/{id} findShopById
	//
	// Find shop
	//
	// Find a shop by its id
	//
	// responses:
	//	200: ShopResponse
	//	400: Error
	//	404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	shop, err := h.shopService.FindById(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, shopResponse{Success: true, Shop: shop})
}
