package product_test

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akash4693/TradeX-backend/internal/errdef"
	"github.com/Akash4693/TradeX-backend/pkg/assetstore"
	"github.com/Akash4693/TradeX-backend/pkg/inttest"
	"github.com/Akash4693/TradeX-backend/pkg/model"
	"github.com/Akash4693/TradeX-backend/pkg/product"
	"github.com/Akash4693/TradeX-backend/pkg/shop"
)

func TestProductLifecycle(t *testing.T) {
	t.Parallel()

	const bucket = "tradex-assets"
	const folder = "assets"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := inttest.SetupDB(t)
	s3Client := inttest.SetupS3(t, bucket)

	assets := assetstore.NewS3Store(logger, assetstore.Config{
		Bucket:    bucket,
		Folder:    folder,
		PublicURL: "http://localhost/" + bucket,
	}, s3Client.Client, manager.NewUploader(s3Client.Client))

	shopService := shop.NewService(shop.NewRepository(db))
	service := product.NewService(logger, product.NewRepository(db), shopService, assets)

	sellerShop := &model.Shop{Name: "Bookstore", Email: "books@tradex.org"}
	require.NoError(t, db.Create(sellerShop).Error, "failed to seed shop")

	ctx := context.Background()
	imageData := []byte("fake jpeg bytes")
	rawImage := assetstore.RawImage("data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(imageData))

	created, err := service.Create(ctx, sellerShop.ID, model.Product{
		Name:          "Paper Notebook",
		Description:   "ruled, 200 pages",
		Category:      "stationery",
		DiscountPrice: 4.99,
		Stock:         25,
	}, []assetstore.RawImage{rawImage})
	require.NoError(t, err)
	assert.Equal(t, "paper-notebook", created.Slug)
	assert.Equal(t, sellerShop.Name, created.Shop.Name)

	require.Len(t, created.Images, 1)
	key := created.Images[0].PublicID
	assert.True(t, strings.HasPrefix(key, folder+"/"))
	assert.Equal(t, imageData, s3Client.GetObject(t, bucket, key))

	found, err := service.FindById(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Images, found.Images)

	byShop, err := service.FindByShopId(ctx, sellerShop.ID)
	require.NoError(t, err)
	require.Len(t, byShop, 1)

	require.NoError(t, service.Delete(ctx, created.ID))
	assert.False(t, s3Client.ObjectExists(t, bucket, key), "blob should be gone after product deletion")

	_, err = service.FindById(ctx, created.ID)
	assert.True(t, errdef.IsNotFound(err))
}
