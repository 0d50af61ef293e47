// Command reconcile sweeps the asset store for orphaned blobs. Uploads that
// happened before a failed record write are never rolled back by the service,
// so the store accumulates objects no event or product references. The sweep
// lists the asset folder, subtracts every key the database still points at and
// reports the rest. Pass -delete to remove them.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"gorm.io/gorm"

	"github.com/Akash4693/TradeX-backend/pkg/config"
	"github.com/Akash4693/TradeX-backend/pkg/model"
	"github.com/Akash4693/TradeX-backend/pkg/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "reconcile: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	remove := flag.Bool("delete", false, "delete orphaned blobs instead of only reporting them")
	grace := flag.Duration("grace", time.Hour, "ignore blobs younger than this, they may belong to an in-flight create")
	flag.Parse()

	db, err := newDB(logger)
	if err != nil {
		return err
	}

	client, bucket, folder, err := newAssetStoreClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	referenced, err := referencedKeys(ctx, db)
	if err != nil {
		return err
	}
	logger.Info("Collected referenced asset keys", "count", len(referenced))

	orphans, err := findOrphans(ctx, client, bucket, folder, referenced, *grace)
	if err != nil {
		return err
	}

	if len(orphans) == 0 {
		logger.Info("No orphaned blobs found")
		return nil
	}

	for _, key := range orphans {
		if *remove {
			err := client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{})
			if err != nil {
				logger.Error("Failed to delete orphaned blob", "key", key, "error", err)
				continue
			}
			logger.Info("Deleted orphaned blob", "key", key)
		} else {
			logger.Info("Orphaned blob", "key", key)
		}
	}

	if !*remove {
		logger.Info("Run with -delete to remove the blobs listed above", "orphans", len(orphans))
	}
	return nil
}

// referencedKeys returns every asset key the database still points at.
func referencedKeys(ctx context.Context, db *gorm.DB) (map[string]struct{}, error) {
	keys := make(map[string]struct{})

	var events []model.Event
	if err := db.WithContext(ctx).Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to load events: %v", err)
	}
	for _, event := range events {
		for _, image := range event.Images {
			keys[image.PublicID] = struct{}{}
		}
	}

	var products []model.Product
	if err := db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load products: %v", err)
	}
	for _, product := range products {
		for _, image := range product.Images {
			keys[image.PublicID] = struct{}{}
		}
	}

	return keys, nil
}

func findOrphans(ctx context.Context, client *minio.Client, bucket, folder string, referenced map[string]struct{}, grace time.Duration) ([]string, error) {
	var orphans []string
	cutoff := time.Now().Add(-grace)

	objects := client.ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Prefix:    folder + "/",
		Recursive: true,
	})
	for object := range objects {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list bucket %q: %v", bucket, object.Err)
		}
		if _, ok := referenced[object.Key]; ok {
			continue
		}
		if object.LastModified.After(cutoff) {
			continue
		}
		orphans = append(orphans, object.Key)
	}

	return orphans, nil
}

func newAssetStoreClient() (*minio.Client, string, string, error) {
	endpoint, err := requireEnv("ASSET_STORE_ENDPOINT")
	if err != nil {
		return nil, "", "", err
	}
	accessKey, err := requireEnv("ASSET_STORE_ACCESS_KEY")
	if err != nil {
		return nil, "", "", err
	}
	secretKey, err := requireEnv("ASSET_STORE_SECRET_KEY")
	if err != nil {
		return nil, "", "", err
	}
	bucket, err := requireEnv("ASSET_STORE_BUCKET")
	if err != nil {
		return nil, "", "", err
	}
	folder, err := requireEnv("ASSET_STORE_FOLDER")
	if err != nil {
		return nil, "", "", err
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: true,
	})
	if err != nil {
		return nil, "", "", fmt.Errorf("error creating MinIO client: %v", err)
	}
	return client, bucket, folder, nil
}

func newDB(logger *slog.Logger) (*gorm.DB, error) {
	host, err := requireEnv("DATABASE_HOST")
	if err != nil {
		return nil, err
	}
	port, err := requireEnvAsInt("DATABASE_PORT")
	if err != nil {
		return nil, err
	}
	username, err := requireEnv("DATABASE_USERNAME")
	if err != nil {
		return nil, err
	}
	password, err := requireEnv("DATABASE_PASSWORD")
	if err != nil {
		return nil, err
	}
	name, err := requireEnv("DATABASE_NAME")
	if err != nil {
		return nil, err
	}
	return storage.NewDatabase(logger, config.Postgresql{
		Host:         host,
		Port:         port,
		Username:     username,
		Password:     password,
		DatabaseName: name,
	})
}

func requireEnv(key string) (string, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return "", fmt.Errorf("missing environment variable: %s", key)
	}
	return value, nil
}

func requireEnvAsInt(key string) (int, error) {
	value, err := requireEnv(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s as integer: %v", key, err)
	}
	return n, nil
}
