package event

import (
	"context"
	"net/http"
	"time"

	"github.com/Akash4693/TradeX-backend/internal/handler"
	"github.com/Akash4693/TradeX-backend/pkg/assetstore"
	"github.com/Akash4693/TradeX-backend/pkg/model"
	"github.com/gin-gonic/gin"
)

func NewHandler(eventService eventService) Handler {
	return Handler{eventService}
}

type Handler struct {
	eventService eventService
}

type eventService interface {
	Create(ctx context.Context, shopId uint, event model.Event, images []assetstore.RawImage) (*model.Event, error)
	Delete(ctx context.Context, id uint) error
	FindById(ctx context.Context, id uint) (*model.Event, error)
	FindAll(ctx context.Context) ([]model.Event, error)
	FindByShopId(ctx context.Context, shopId uint) ([]model.Event, error)
	FindAllNewestFirst(ctx context.Context) ([]model.Event, error)
}

type CreateEventRequest struct {
	ShopID        uint                                   `json:"shopId" binding:"required"`
	Name          string                                 `json:"name" binding:"required,notblank"`
	Description   string                                 `json:"description" binding:"required"`
	Category      string                                 `json:"category" binding:"required"`
	Tags          string                                 `json:"tags"`
	OriginalPrice float64                                `json:"originalPrice"`
	DiscountPrice float64                                `json:"discountPrice" binding:"required"`
	Stock         int                                    `json:"stock" binding:"required"`
	StartDate     time.Time                              `json:"startDate" binding:"required"`
	FinishDate    time.Time                              `json:"finishDate" binding:"required,gtfield=StartDate"`
	Images        handler.OneOrMany[assetstore.RawImage] `json:"images" binding:"required,min=1"`
}

type eventResponse struct {
	Success bool         `json:"success"`
	Event   *model.Event `json:"event"`
}

type eventsResponse struct {
	Success bool          `json:"success"`
	Events  []model.Event `json:"events"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Create event
func (h Handler) Create(c *gin.Context) {
	// swagger:route POST /events createEvent
	//
	// Create event
	//
	// Create an event with one or more images. Images are uploaded to the
	// asset store before the event is persisted.
	//
	// responses:
	//	201: EventResponse
	//	400: Error
	//	415: Error
	var request CreateEventRequest
	if err := handler.DataBinder(c, &request); err != nil {
		return
	}

	event := model.Event{
		Name:          request.Name,
		Description:   request.Description,
		Category:      request.Category,
		Tags:          request.Tags,
		OriginalPrice: request.OriginalPrice,
		DiscountPrice: request.DiscountPrice,
		Stock:         request.Stock,
		StartDate:     request.StartDate,
		FinishDate:    request.FinishDate,
		Status:        "Running",
	}

	created, err := h.eventService.Create(c.Request.Context(), request.ShopID, event, request.Images)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, eventResponse{Success: true, Event: created})
}

// FindAll events
func (h Handler) FindAll(c *gin.Context) {
	// swagger:route GET /events findAllEvents
	//
	// Find events
	//
	// Find all events
	//
	// responses:
	//	200: EventsResponse
	//	400: Error
	events, err := h.eventService.FindAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, eventsResponse{Success: true, Events: events})
}

// FindById event
func (h Handler) FindById(c *gin.Context) {
	// swagger:route GET /events/{id} findEventById
	//
	// Find event
	//
	// Find an event by its id
	//
	// responses:
	//	200: EventResponse
	//	400: Error
	//	404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	event, err := h.eventService.FindById(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, eventResponse{Success: true, Event: event})
}

// FindByShop events
func (h Handler) FindByShop(c *gin.Context) {
	// swagger:route GET /events/by-shop/{id} findEventsByShop
	//
	// Find shop events
	//
	// Find all events of a shop. An unknown shop yields an empty list.
	//
	// responses:
	//	200: EventsResponse
	//	400: Error
	shopId, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	events, err := h.eventService.FindByShopId(c.Request.Context(), shopId)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, eventsResponse{Success: true, Events: events})
}

// Delete event
func (h Handler) Delete(c *gin.Context) {
	// swagger:route DELETE /events/{id} deleteEvent
	//
	// Delete event
	//
	// Delete an event and its images. Image deletion failures are logged, not
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

	if err := h.eventService.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Success: true, Message: "Event deleted successfully!"})
}

// FindAllForAdmin events
func (h Handler) FindAllForAdmin(c *gin.Context) {
	// swagger:route GET /events/admin-all findAllEventsForAdmin
	//
	// Find events for admin
	//
	// Find all events, newest first
	//
	// security:
	//	oauth2:
	//
	// responses:
	//	200: EventsResponse
	//	401: Error
	//	403: Error
	events, err := h.eventService.FindAllNewestFirst(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, eventsResponse{Success: true, Events: events})
}
