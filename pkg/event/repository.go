package event

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

func (r repository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r repository) FindById(ctx context.Context, id uint) (*model.Event, error) {
	var event *model.Event
	err := r.db.
		WithContext(ctx).
		First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find event with id %d", id)
	}
	return event, err
}

func (r repository) FindAll(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	err := r.db.
		WithContext(ctx).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find all events: %v", err)
	}
	return events, nil
}

func (r repository) FindByShopId(ctx context.Context, shopId uint) ([]model.Event, error) {
	var events []model.Event
	err := r.db.
		WithContext(ctx).
		Where("shop_id = ?", shopId).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find events of shop %d: %v", shopId, err)
	}
	return events, nil
}

// FindAllNewestFirst returns every event ordered by creation time descending.
// The ordering is a contract; admins triage newest first.
func (r repository) FindAllNewestFirst(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	err := r.db.
		WithContext(ctx).
		Order("created_at desc").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find all events: %v", err)
	}
	return events, nil
}

func (r repository) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx).Delete(&model.Event{}, id)
	if db.Error != nil {
		return fmt.Errorf("failed to delete event with id %d: %v", id, db.Error)
	} else if db.RowsAffected < 1 {
		return errdef.NewBadRequest("failed to delete event with id %d", id)
	}

	return nil
}
