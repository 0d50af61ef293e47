package assetstore

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestS3Store_Upload(t *testing.T) {
	t.Parallel()

	uploader := &uploaderSpy{}
	store := NewS3Store(discardLogger(), Config{
		Bucket:    "tradex",
		Folder:    "events",
		PublicURL: "https://assets.tradex.example",
	}, &deleterSpy{}, uploader)

	raw := RawImage("data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("img")))
	ref, err := store.Upload(context.Background(), raw)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref.PublicID, "events/"))
	assert.Equal(t, "https://assets.tradex.example/"+ref.PublicID, ref.URL)

	require.NotNil(t, uploader.input)
	assert.Equal(t, "tradex", *uploader.input.Bucket)
	assert.Equal(t, ref.PublicID, *uploader.input.Key)
	assert.Equal(t, "image/jpeg", *uploader.input.ContentType)
	body, err := io.ReadAll(uploader.input.Body)
	require.NoError(t, err)
	assert.Equal(t, []byte("img"), body)
}

func TestS3Store_UploadRejectsUndecodableImage(t *testing.T) {
	t.Parallel()

	uploader := &uploaderSpy{}
	store := NewS3Store(discardLogger(), Config{Bucket: "tradex"}, &deleterSpy{}, uploader)

	_, err := store.Upload(context.Background(), RawImage("not valid base64 !!!"))

	require.Error(t, err)
	assert.Nil(t, uploader.input, "nothing should reach the store for an undecodable image")
}

func TestS3Store_Delete(t *testing.T) {
	t.Parallel()

	deleter := &deleterSpy{}
	store := NewS3Store(discardLogger(), Config{Bucket: "tradex"}, deleter, &uploaderSpy{})

	err := store.Delete(context.Background(), "events/abc")

	require.NoError(t, err)
	require.NotNil(t, deleter.input)
	assert.Equal(t, "tradex", *deleter.input.Bucket)
	assert.Equal(t, "events/abc", *deleter.input.Key)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type uploaderSpy struct {
	input *s3.PutObjectInput
}

func (u *uploaderSpy) Upload(_ context.Context, input *s3.PutObjectInput, _ ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	u.input = input
	return &manager.UploadOutput{}, nil
}

type deleterSpy struct {
	input *s3.DeleteObjectInput
}

func (d *deleterSpy) DeleteObject(_ context.Context, input *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	d.input = input
	return &s3.DeleteObjectOutput{}, nil
}
