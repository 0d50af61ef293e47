// Package product applies the event lifecycle pattern to catalog listings:
// the same upload-then-persist create and settle-all delete, without the
// listing cache or notifications events carry.
package product

import (
	"context"
	"log/slog"

	"github.com/gosimple/slug"

	"github.com/Akash4693/TradeX-backend/internal/errdef"
	"github.com/Akash4693/TradeX-backend/pkg/assetstore"
	"github.com/Akash4693/TradeX-backend/pkg/model"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewService(logger *slog.Logger, repository Repository, shopService shopService, assets assetstore.Store) *service {
	return &service{
		logger:      logger,
		repository:  repository,
		shopService: shopService,
		assets:      assets,
	}
}

type service struct {
	logger      *slog.Logger
	repository  Repository
	shopService shopService
	assets      assetstore.Store
}

type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindById(ctx context.Context, id uint) (*model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByShopId(ctx context.Context, shopId uint) ([]model.Product, error)
	Delete(ctx context.Context, id uint) error
}

type shopService interface {
	FindById(ctx context.Context, id uint) (*model.Shop, error)
}

func (s service) Create(ctx context.Context, shopId uint, product model.Product, images []assetstore.RawImage) (*model.Product, error) {
	shop, err := s.shopService.FindById(ctx, shopId)
	if err != nil {
		if errdef.IsNotFound(err) {
			return nil, errdef.NewBadRequest("shop id %d is invalid", shopId)
		}
		return nil, err
	}

	refs, err := assetstore.UploadAll(ctx, s.assets, images)
	if err != nil {
		return nil, errdef.NewBadRequest("failed to upload product images: %v", err)
	}

	product.ShopID = shop.ID
	product.Shop = *shop
	product.Images = refs
	product.Slug = slug.Make(product.Name)

	if err := s.repository.Create(ctx, &product); err != nil {
		s.logger.ErrorContext(ctx, "Product not persisted after successful uploads, blobs orphaned", "images", len(refs), "error", err)
		return nil, errdef.NewBadRequest("failed to persist product: %v", err)
	}

	return &product, nil
}

func (s service) Delete(ctx context.Context, id uint) error {
	product, err := s.repository.FindById(ctx, id)
	if err != nil {
		return err
	}

	outcomes := assetstore.DeleteAll(ctx, s.assets, product.Images)
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			s.logger.WarnContext(ctx, "Failed to delete product image", "publicId", outcome.Ref.PublicID, "error", outcome.Err)
		}
	}

	return s.repository.Delete(ctx, id)
}

func (s service) FindById(ctx context.Context, id uint) (*model.Product, error) {
	return s.repository.FindById(ctx, id)
}

func (s service) FindAll(ctx context.Context) ([]model.Product, error) {
	return s.repository.FindAll(ctx)
}

func (s service) FindByShopId(ctx context.Context, shopId uint) ([]model.Product, error) {
	return s.repository.FindByShopId(ctx, shopId)
}
