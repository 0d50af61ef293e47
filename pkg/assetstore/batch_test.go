package assetstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/Akash4693/TradeX-backend/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadAll_PreservesOrder(t *testing.T) {
	t.Parallel()

	store := &storeSpy{}

	refs, err := UploadAll(context.Background(), store, []RawImage{"a", "b", "c"})

	require.NoError(t, err)
	require.Len(t, refs, 3)
	assert.Equal(t, []string{"a", "b", "c"}, store.uploaded)
	for i, ref := range refs {
		assert.Equal(t, fmt.Sprintf("upload-%d", i), ref.PublicID)
	}
}

func TestUploadAll_AbortsOnFirstFailure(t *testing.T) {
	t.Parallel()

	store := &storeSpy{failUploadAt: map[int]bool{1: true}}

	refs, err := UploadAll(context.Background(), store, []RawImage{"a", "b", "c"})

	require.Error(t, err)
	assert.Nil(t, refs)
	// only uploads before and including the failing one were attempted
	assert.Equal(t, []string{"a", "b"}, store.uploaded)
	assert.ErrorContains(t, err, "uploading image 2 of 3")
}

func TestUploadAll_FirstUploadFailure(t *testing.T) {
	t.Parallel()

	store := &storeSpy{failUploadAt: map[int]bool{0: true}}

	refs, err := UploadAll(context.Background(), store, []RawImage{"a", "b", "c"})

	require.Error(t, err)
	assert.Nil(t, refs)
	// nothing after the first upload was attempted, no refs kept
	assert.Equal(t, []string{"a"}, store.uploaded)
	assert.ErrorContains(t, err, "uploading image 1 of 3")
}

func TestUploadAll_Empty(t *testing.T) {
	t.Parallel()

	refs, err := UploadAll(context.Background(), &storeSpy{}, nil)

	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestDeleteAll_SettlesEveryOutcome(t *testing.T) {
	t.Parallel()

	store := &storeSpy{failDelete: map[string]bool{"k1": true}}
	refs := []model.AssetRef{{PublicID: "k0"}, {PublicID: "k1"}, {PublicID: "k2"}}

	outcomes := DeleteAll(context.Background(), store, refs)

	require.Len(t, outcomes, 3)
	assert.ElementsMatch(t, []string{"k0", "k1", "k2"}, store.deleted)

	// outcomes line up with the input refs even though deletions ran concurrently
	assert.NoError(t, outcomes[0].Err)
	assert.Error(t, outcomes[1].Err)
	assert.Equal(t, "k1", outcomes[1].Ref.PublicID)
	assert.NoError(t, outcomes[2].Err)
}

func TestDeleteAll_AllFailuresCollected(t *testing.T) {
	t.Parallel()

	store := &storeSpy{failDelete: map[string]bool{"a": true, "b": true}}
	refs := []model.AssetRef{{PublicID: "a"}, {PublicID: "b"}}

	outcomes := DeleteAll(context.Background(), store, refs)

	require.Len(t, outcomes, 2)
	assert.Error(t, outcomes[0].Err)
	assert.Error(t, outcomes[1].Err)
}

type storeSpy struct {
	mu           sync.Mutex
	uploaded     []string
	deleted      []string
	failUploadAt map[int]bool // indices of uploads that fail
	failDelete   map[string]bool
}

func (s *storeSpy) Upload(_ context.Context, raw RawImage) (model.AssetRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	index := len(s.uploaded)
	s.uploaded = append(s.uploaded, string(raw))
	if s.failUploadAt[index] {
		return model.AssetRef{}, errors.New("upload failed")
	}
	return model.AssetRef{PublicID: fmt.Sprintf("upload-%d", index), URL: "https://assets/" + string(raw)}, nil
}

func (s *storeSpy) Delete(_ context.Context, publicID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, publicID)
	if s.failDelete[publicID] {
		return errors.New("delete failed")
	}
	return nil
}
