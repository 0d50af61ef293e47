package product

import (
	"context"
	"net/http"

	"github.com/Akash4693/TradeX-backend/internal/handler"
	"github.com/Akash4693/TradeX-backend/pkg/assetstore"
	"github.com/Akash4693/TradeX-backend/pkg/model"
	"github.com/gin-gonic/gin"
)

func NewHandler(productService productService) Handler {
	return Handler{productService}
}

type Handler struct {
	productService productService
}

type productService interface {
	Create(ctx context.Context, shopId uint, product model.Product, images []assetstore.RawImage) (*model.Product, error)
	Delete(ctx context.Context, id uint) error
	FindById(ctx context.Context, id uint) (*model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByShopId(ctx context.Context, shopId uint) ([]model.Product, error)
}

type CreateProductRequest struct {
	ShopID        uint                                   `json:"shopId" binding:"required"`
	Name          string                                 `json:"name" binding:"required,notblank"`
	Description   string                                 `json:"description" binding:"required"`
	Category      string                                 `json:"category" binding:"required"`
	Tags          string                                 `json:"tags"`
	OriginalPrice float64                                `json:"originalPrice"`
	DiscountPrice float64                                `json:"discountPrice" binding:"required"`
	Stock         int                                    `json:"stock" binding:"required"`
	Images        handler.OneOrMany[assetstore.RawImage] `json:"images" binding:"required,min=1"`
}

type productResponse struct {
	Success bool           `json:"success"`
	Product *model.Product `json:"product"`
}

type productsResponse struct {
	Success  bool            `json:"success"`
	Products []model.Product `json:"products"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Create product
func (h Handler) Create(c *gin.Context) {
	// swagger:route POST /products createProduct
	//
	// Create product
	//
	// Create a product with one or more images. Images are uploaded to the
	// asset store before the product is persisted.
	//
	// responses:
	//	201: ProductResponse
	//	400: Error
	//	415: Error
	var request CreateProductRequest
	if err := handler.DataBinder(c, &request); err != nil {
		return
	}

	product := model.Product{
		Name:          request.Name,
		Description:   request.Description,
		Category:      request.Category,
		Tags:          request.Tags,
		OriginalPrice: request.OriginalPrice,
		DiscountPrice: request.DiscountPrice,
		Stock:         request.Stock,
	}

	created, err := h.productService.Create(c.Request.Context(), request.ShopID, product, request.Images)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, productResponse{Success: true, Product: created})
}

// FindAll products
func (h Handler) FindAll(c *gin.Context) {
	// swagger:route GET /products findAllProducts
	//
	// Find products
	//
	// Find all products
	//
	// responses:
	//	200: ProductsResponse
	//	400: Error
	products, err := h.productService.FindAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, productsResponse{Success: true, Products: products})
}

// FindById product
func (h Handler) FindById(c *gin.Context) {
	// swagger:route GET /products/{id} findProductById
	//
	// Find product
	//
	// Find a product by its id
	//
	// responses:
	//	200: ProductResponse
	//	400: Error
	//	404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.FindById(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, productResponse{Success: true, Product: product})
}

// FindByShop products
func (h Handler) FindByShop(c *gin.Context) {
	// swagger:route GET /products/by-shop/{id} findProductsByShop
	//
	// Find shop products
	//
	// Find all products of a shop. An unknown shop yields an empty list.
	//
	// responses:
	//	200: ProductsResponse
	//	400: Error
	shopId, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	products, err := h.productService.FindByShopId(c.Request.Context(), shopId)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, productsResponse{Success: true, Products: products})
}

// Delete product
func (h Handler) Delete(c *gin.Context) {
	// swagger:route DELETE /products/{id} deleteProduct
	//
	// Delete product
	//
	// Delete a product and its images. Image deletion failures are logged, not
	// surfaced; the record is removed regardless.
	//
	// security:
	//	oauth2:
	//
	// responses:
	//	200: MessageResponse
	//	400: Error
	//	401: Error
	//	403: Error
	//	404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Success: true, Message: "Product deleted successfully!"})
}
