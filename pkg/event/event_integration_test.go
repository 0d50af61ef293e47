package event_test

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/gin-gonic/gin"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	amqpgo "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akash4693/TradeX-backend/internal/middleware"
	"github.com/Akash4693/TradeX-backend/internal/server"
	"github.com/Akash4693/TradeX-backend/pkg/assetstore"
	"github.com/Akash4693/TradeX-backend/pkg/event"
	"github.com/Akash4693/TradeX-backend/pkg/inttest"
	"github.com/Akash4693/TradeX-backend/pkg/model"
	"github.com/Akash4693/TradeX-backend/pkg/product"
	"github.com/Akash4693/TradeX-backend/pkg/queue"
	"github.com/Akash4693/TradeX-backend/pkg/shop"
	"github.com/Akash4693/TradeX-backend/pkg/storage"
)

const bucket = "tradex-assets"
const folder = "assets"
const exchange = "tradex"

func TestEventHandler(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db := inttest.SetupDB(t)
	s3Client := inttest.SetupS3(t, bucket)
	redisClient := inttest.SetupRedis(t)
	amqpClient := inttest.SetupRabbitMQAMQP(t)

	connection, channel, err := queue.Connect(amqpClient.URI(t), exchange)
	require.NoError(t, err, "failed to connect publisher to RabbitMQ")
	t.Cleanup(func() {
		_ = channel.Close()
		_ = connection.Close()
	})

	deliveries := consumeNotifications(t, amqpClient.Channel)

	assets := assetstore.NewS3Store(logger, assetstore.Config{
		Bucket:    bucket,
		Folder:    folder,
		PublicURL: "http://localhost/" + bucket,
	}, s3Client.Client, manager.NewUploader(s3Client.Client))

	cache := storage.NewCache(logger, redisClient)
	publisher := queue.NewPublisher(logger, channel, exchange)

	shopService := shop.NewService(shop.NewRepository(db))
	eventService := event.NewService(logger, event.NewRepository(db), shopService, assets, cache, publisher)
	productService := product.NewService(logger, product.NewRepository(db), shopService, assets)

	privKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err, "failed to generate private key")
	authentication := middleware.NewAuthentication(logger, &privKey.PublicKey)
	authorization := middleware.NewAuthorization(logger)

	client := inttest.SetupHTTPServer(t, func() *gin.Engine {
		return server.GetEngine(logger, "",
			authentication, authorization,
			event.NewHandler(eventService),
			product.NewHandler(productService),
			shop.NewHandler(shopService))
	})

	sellerShop := &model.Shop{Name: "Bookstore", Email: "books@tradex.org"}
	require.NoError(t, db.Create(sellerShop).Error, "failed to seed shop")

	seller := &model.User{ID: 1, Email: "seller@tradex.org", Role: model.SellerRole, ShopID: sellerShop.ID}
	sellerToken := signToken(t, privKey, seller)
	admin := &model.User{ID: 2, Email: "admin@tradex.org", Role: model.AdministratorRole}
	adminToken := signToken(t, privKey, admin)

	imageData := []byte("fake png bytes")
	rawImage := "data:image/png;base64," + base64.StdEncoding.EncodeToString(imageData)

	var createdID uint
	{
		t.Log("CreateEvent")

		body := fmt.Sprintf(`{
			"shopId":        %d,
			"name":          "Summer Sale",
			"description":   "everything must go",
			"category":      "books",
			"discountPrice": 9.99,
			"stock":         10,
			"startDate":     %q,
			"finishDate":    %q,
			"images":        [%q]
		}`, sellerShop.ID, time.Now().Format(time.RFC3339), time.Now().Add(48*time.Hour).Format(time.RFC3339), rawImage)

		var response eventResponse
		client.PostJSON(t, "/events", strings.NewReader(body), &response)

		require.True(t, response.Success)
		require.NotNil(t, response.Event)
		createdID = response.Event.ID
		assert.Equal(t, "summer-sale", response.Event.Slug)
		assert.Equal(t, sellerShop.ID, response.Event.ShopID)
		assert.Equal(t, sellerShop.Name, response.Event.Shop.Name)

		require.Len(t, response.Event.Images, 1)
		key := response.Event.Images[0].PublicID
		assert.True(t, strings.HasPrefix(key, folder+"/"), "asset key should live under the asset folder")
		assert.Equal(t, imageData, s3Client.GetObject(t, bucket, key))

		assertNotification(t, deliveries, "event.created")
	}

	{
		t.Log("CreateEventWithUnknownShopFails")

		body := fmt.Sprintf(`{
			"shopId":        9999,
			"name":          "Ghost Sale",
			"description":   "d",
			"category":      "c",
			"discountPrice": 1,
			"stock":         1,
			"startDate":     %q,
			"finishDate":    %q,
			"images":        [%q]
		}`, time.Now().Format(time.RFC3339), time.Now().Add(time.Hour).Format(time.RFC3339), rawImage)

		client.Do(t, http.MethodPost, "/events", strings.NewReader(body), http.StatusBadRequest,
			inttest.WithHeader("Content-Type", "application/json"))
	}

	{
		t.Log("FindEvents")

		var response eventsResponse
		client.GetJSON(t, "/events", &response)
		require.True(t, response.Success)
		require.Len(t, response.Events, 1)

		var byShop eventsResponse
		client.GetJSON(t, fmt.Sprintf("/events/by-shop/%d", sellerShop.ID), &byShop)
		require.Len(t, byShop.Events, 1)

		var unknownShop eventsResponse
		client.GetJSON(t, "/events/by-shop/9999", &unknownShop)
		assert.Empty(t, unknownShop.Events)
	}

	{
		t.Log("AdminListingRequiresRole")

		client.Do(t, http.MethodGet, "/events/admin-all", nil, http.StatusUnauthorized)
		client.Do(t, http.MethodGet, "/events/admin-all", nil, http.StatusForbidden, inttest.WithAuthToken(sellerToken))

		var response eventsResponse
		client.GetJSON(t, "/events/admin-all", &response, inttest.WithAuthToken(adminToken))
		require.Len(t, response.Events, 1)
	}

	{
		t.Log("DeleteEvent")

		client.Do(t, http.MethodDelete, fmt.Sprintf("/events/%d", createdID), nil, http.StatusUnauthorized)

		var found eventResponse
		client.GetJSON(t, fmt.Sprintf("/events/%d", createdID), &found)
		key := found.Event.Images[0].PublicID

		var response messageResponse
		client.DeleteJSON(t, fmt.Sprintf("/events/%d", createdID), &response, inttest.WithAuthToken(sellerToken))
		require.True(t, response.Success)
		assert.Equal(t, "Event deleted successfully!", response.Message)

		assert.False(t, s3Client.ObjectExists(t, bucket, key), "blob should be gone after event deletion")
		assertNotification(t, deliveries, "event.deleted")

		client.Do(t, http.MethodGet, fmt.Sprintf("/events/%d", createdID), nil, http.StatusNotFound)
		client.Do(t, http.MethodDelete, fmt.Sprintf("/events/%d", createdID), nil, http.StatusNotFound, inttest.WithAuthToken(sellerToken))
	}
}

// consumeNotifications binds an exclusive queue to the notification exchange
// and returns its delivery channel.
func consumeNotifications(t *testing.T, channel *amqpgo.Channel) <-chan amqpgo.Delivery {
	t.Helper()

	err := channel.ExchangeDeclare(exchange, "topic", true, false, false, false, nil)
	require.NoError(t, err, "failed to declare exchange")
	q, err := channel.QueueDeclare("", false, true, true, false, nil)
	require.NoError(t, err, "failed to declare queue")
	err = channel.QueueBind(q.Name, "event.*", exchange, false, nil)
	require.NoError(t, err, "failed to bind queue")
	deliveries, err := channel.Consume(q.Name, "", true, false, false, false, nil)
	require.NoError(t, err, "failed to consume queue")
	return deliveries
}

func assertNotification(t *testing.T, deliveries <-chan amqpgo.Delivery, routingKey string) {
	t.Helper()

	select {
	case delivery := <-deliveries:
		assert.Equal(t, routingKey, delivery.RoutingKey)
		payload := struct {
			ID uint `json:"id"`
		}{}
		require.NoError(t, json.Unmarshal(delivery.Body, &payload))
		assert.NotZero(t, payload.ID)
	case <-time.After(10 * time.Second):
		t.Fatalf("timed out waiting for %q notification", routingKey)
	}
}

func signToken(t *testing.T, privKey *rsa.PrivateKey, user *model.User) string {
	t.Helper()

	token := jwt.New()
	require.NoError(t, token.Set(jwt.ExpirationKey, time.Now().Add(time.Hour)))
	require.NoError(t, token.Set("user", user))
	signed, err := jwt.Sign(token, jwt.WithKey(jwa.RS256, privKey))
	require.NoError(t, err, "failed to sign token")
	return string(signed)
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
