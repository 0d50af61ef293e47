// Package shop resolves seller storefronts. Shop registration and profile
// management live in the account service; this package only reads.
package shop

import (
	"context"

	"github.com/Akash4693/TradeX-backend/pkg/model"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewService(repository Repository) *service {
	return &service{repository}
}

type Repository interface {
	FindById(ctx context.Context, id uint) (*model.Shop, error)
}

type service struct {
	repository Repository
}

func (s service) FindById(ctx context.Context, id uint) (*model.Shop, error) {
	return s.repository.FindById(ctx, id)
}
