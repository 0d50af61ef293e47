package config

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"log"
	"os"
	"strconv"
)

func ProvideConfig() Config {
	return Config{
		BasePath: requireEnv("BASE_PATH"),
		Postgresql: Postgresql{
			Host:         requireEnv("DATABASE_HOST"),
			Port:         requireEnvAsInt("DATABASE_PORT"),
			Username:     requireEnv("DATABASE_USERNAME"),
			Password:     requireEnv("DATABASE_PASSWORD"),
			DatabaseName: requireEnv("DATABASE_NAME"),
		},
		Redis: Redis{
			Host: requireEnv("REDIS_HOST"),
			Port: requireEnvAsInt("REDIS_PORT"),
		},
		RabbitMq: RabbitMq{
			Host:     requireEnv("RABBITMQ_HOST"),
			Port:     requireEnvAsInt("RABBITMQ_PORT"),
			Username: requireEnv("RABBITMQ_USERNAME"),
			Password: requireEnv("RABBITMQ_PASSWORD"),
			Exchange: requireEnv("RABBITMQ_EXCHANGE"),
		},
		AssetStore: AssetStore{
			Region:    requireEnv("ASSET_STORE_REGION"),
			Bucket:    requireEnv("ASSET_STORE_BUCKET"),
			Folder:    requireEnv("ASSET_STORE_FOLDER"),
			PublicURL: requireEnv("ASSET_STORE_PUBLIC_URL"),
		},
		Authentication: Authentication{
			PublicKey: requireEnv("AUTHENTICATION_PUBLIC_KEY"),
		},
		Tracing: Tracing{
			JaegerCollectorURL: requireEnv("JAEGER_COLLECTOR_URL"),
		},
	}
}

type Config struct {
	BasePath       string
	Postgresql     Postgresql
	Redis          Redis
	RabbitMq       RabbitMq
	AssetStore     AssetStore
	Authentication Authentication
	Tracing        Tracing
}

type Tracing struct {
	JaegerCollectorURL string
}

type Postgresql struct {
	Host         string
	Port         int
	Username     string
	Password     string
	DatabaseName string
}

type Redis struct {
	Host string
	Port int
}

type RabbitMq struct {
	Host     string
	Port     int
	Username string
	Password string
	Exchange string
}

func (r RabbitMq) GetUrl() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/", r.Username, r.Password, r.Host, r.Port)
}

type AssetStore struct {
	Region    string
	Bucket    string
	Folder    string
	PublicURL string
}

type Authentication struct {
	// PublicKey is the PEM encoded RSA public key matching the account
	// service's signing key.
	PublicKey string
}

func (a Authentication) GetPublicKey() (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(a.PublicKey))
	if block == nil {
		return nil, fmt.Errorf("failed to decode PEM block containing public key")
	}

	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %v", err)
	}

	publicKey, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("public key isn't an RSA key")
	}

	return publicKey, nil
}

func requireEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("Can't find environment variable: %s\n", key)
	}
	return value
}

func requireEnvAsInt(key string) int {
	valueStr := requireEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("Can't parse value as integer: %s", err.Error())
	}
	return value
}
