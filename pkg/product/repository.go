package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/Akash4693/TradeX-backend/internal/errdef"
	"github.com/Akash4693/TradeX-backend/pkg/model"
	"gorm.io/gorm"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db}
}

type repository struct {
	db *gorm.DB
}

func (r repository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r repository) FindById(ctx context.Context, id uint) (*model.Product, error) {
	var product *model.Product
	err := r.db.
		WithContext(ctx).
		First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find product with id %d", id)
	}
	return product, err
}

func (r repository) FindAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.
		WithContext(ctx).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find all products: %v", err)
	}
	return products, nil
}

func (r repository) FindByShopId(ctx context.Context, shopId uint) ([]model.Product, error) {
	var products []model.Product
	err := r.db.
		WithContext(ctx).
		Where("shop_id = ?", shopId).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find products of shop %d: %v", shopId, err)
	}
	return products, nil
}

func (r repository) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if db.Error != nil {
		return fmt.Errorf("failed to delete product with id %d: %v", id, db.Error)
	} else if db.RowsAffected < 1 {
		return errdef.NewBadRequest("failed to delete product with id %d", id)
	}

	return nil
}
