package event

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gosimple/slug"

	"github.com/Akash4693/TradeX-backend/internal/errdef"
	"github.com/Akash4693/TradeX-backend/pkg/assetstore"
	"github.com/Akash4693/TradeX-backend/pkg/model"
)

const (
	allEventsCacheKey = "events:all"
	cacheExpiration   = time.Minute
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewService(logger *slog.Logger, repository Repository, shopService shopService, assets assetstore.Store, cache cache, publisher publisher) *service {
	return &service{
		logger:      logger,
		repository:  repository,
		shopService: shopService,
		assets:      assets,
		cache:       cache,
		publisher:   publisher,
	}
}

// service coordinates the event lifecycle across the record store and the
// external asset store. The two systems share no transaction boundary; create
// is upload-then-persist, delete is delete-blobs-then-delete-record, and both
// orders are deliberate. Neither direction is atomic: a failure between the
// phases leaves orphaned blobs, never dangling refs (see Create and Delete).
type service struct {
	logger      *slog.Logger
	repository  Repository
	shopService shopService
	assets      assetstore.Store
	cache       cache
	publisher   publisher
}

type Repository interface {
	Create(ctx context.Context, event *model.Event) error
	FindById(ctx context.Context, id uint) (*model.Event, error)
	FindAll(ctx context.Context) ([]model.Event, error)
	FindByShopId(ctx context.Context, shopId uint) ([]model.Event, error)
	FindAllNewestFirst(ctx context.Context) ([]model.Event, error)
	Delete(ctx context.Context, id uint) error
}

type shopService interface {
	FindById(ctx context.Context, id uint) (*model.Shop, error)
}

type cache interface {
	Get(key string) (string, bool)
	Set(key string, value string, expiration time.Duration)
	Delete(keys ...string)
}

type publisher interface {
	Publish(ctx context.Context, routingKey string, body any) error
}

// Create uploads every image and only then persists the event.
//
// The shop is resolved first so an invalid reference costs zero asset store
// calls. Uploads run sequentially in input order; the resulting refs define
// display order. A failed upload aborts the operation without rolling back
// earlier uploads, and a failed record write after all uploads succeeded
// leaves every blob behind. Both failure modes orphan blobs rather than block
// the create path; the reconcile sweep cleans up.
func (s service) Create(ctx context.Context, shopId uint, event model.Event, images []assetstore.RawImage) (*model.Event, error) {
	shop, err := s.shopService.FindById(ctx, shopId)
	if err != nil {
		if errdef.IsNotFound(err) {
			return nil, errdef.NewBadRequest("shop id %d is invalid", shopId)
		}
		return nil, err
	}

	refs, err := assetstore.UploadAll(ctx, s.assets, images)
	if err != nil {
		return nil, errdef.NewBadRequest("failed to upload event images: %v", err)
	}

	event.ShopID = shop.ID
	// snapshot, not a live reference; goes stale if the shop is edited later
	event.Shop = *shop
	event.Images = refs
	event.Slug = slug.Make(event.Name)

	if err := s.repository.Create(ctx, &event); err != nil {
		s.logger.ErrorContext(ctx, "Event not persisted after successful uploads, blobs orphaned", "images", len(refs), "error", err)
		return nil, errdef.NewBadRequest("failed to persist event: %v", err)
	}

	s.cache.Delete(allEventsCacheKey)
	s.publish(ctx, "event.created", &event)

	return &event, nil
}

// Delete removes the event's blobs and then the record.
//
// Blob deletions are issued concurrently and every outcome is awaited; a
// failed blob deletion is logged and never blocks record removal. Only a
// record delete reporting zero affected rows fails the operation.
func (s service) Delete(ctx context.Context, id uint) error {
	event, err := s.repository.FindById(ctx, id)
	if err != nil {
		return err
	}

	outcomes := assetstore.DeleteAll(ctx, s.assets, event.Images)
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			s.logger.WarnContext(ctx, "Failed to delete event image", "publicId", outcome.Ref.PublicID, "error", outcome.Err)
		}
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Delete(allEventsCacheKey)
	s.publish(ctx, "event.deleted", event)

	return nil
}

func (s service) FindById(ctx context.Context, id uint) (*model.Event, error) {
	return s.repository.FindById(ctx, id)
}

func (s service) FindAll(ctx context.Context) ([]model.Event, error) {
	if data, ok := s.cache.Get(allEventsCacheKey); ok {
		var events []model.Event
		if err := json.Unmarshal([]byte(data), &events); err == nil {
			return events, nil
		}
		s.logger.WarnContext(ctx, "Discarding undecodable cache entry", "key", allEventsCacheKey)
	}

	events, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(events); err == nil {
		s.cache.Set(allEventsCacheKey, string(data), cacheExpiration)
	}

	return events, nil
}

// FindByShopId returns the shop's events. An unknown shop yields an empty
// slice, not an error.
func (s service) FindByShopId(ctx context.Context, shopId uint) ([]model.Event, error) {
	return s.repository.FindByShopId(ctx, shopId)
}

func (s service) FindAllNewestFirst(ctx context.Context) ([]model.Event, error) {
	return s.repository.FindAllNewestFirst(ctx)
}

func (s service) publish(ctx context.Context, routingKey string, event *model.Event) {
	if err := s.publisher.Publish(ctx, routingKey, event); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish event notification", "routingKey", routingKey, "event", event.ID, "error", err)
	}
}
