package shop

import (
	"context"
	"errors"

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

func (r repository) FindById(ctx context.Context, id uint) (*model.Shop, error) {
	var shop *model.Shop
	err := r.db.
		WithContext(ctx).
		First(&shop, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find shop with id %d", id)
	}
	return shop, err
}
