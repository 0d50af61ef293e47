package assetstore

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Akash4693/TradeX-backend/pkg/model"
)

// Store is the capability batch operations drive. Satisfied by [S3Store].
type Store interface {
	Upload(ctx context.Context, raw RawImage) (model.AssetRef, error)
	Delete(ctx context.Context, publicID string) error
}

// UploadAll uploads raws one at a time, in input order, and returns the refs
// in the same order. Input order is display order so uploads must not be
// reordered. The first failure aborts the remaining uploads; refs already
// uploaded are NOT rolled back and stay behind as orphans until the reconcile
// sweep finds them.
func UploadAll(ctx context.Context, store Store, raws []RawImage) ([]model.AssetRef, error) {
	refs := make([]model.AssetRef, 0, len(raws))
	for i, raw := range raws {
		ref, err := store.Upload(ctx, raw)
		if err != nil {
			return nil, fmt.Errorf("uploading image %d of %d: %w", i+1, len(raws), err)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// DeleteOutcome is the settled result of one blob deletion.
type DeleteOutcome struct {
	Ref model.AssetRef
	Err error
}

// DeleteAll issues one deletion per ref concurrently and waits for every call
// to settle. Blob deletions have no ordering dependency between them. All
// outcomes are collected and returned, none abandoned; the caller decides what
// a failed deletion means.
func DeleteAll(ctx context.Context, store Store, refs []model.AssetRef) []DeleteOutcome {
	outcomes := make([]DeleteOutcome, len(refs))

	var group errgroup.Group
	for i, ref := range refs {
		group.Go(func() error {
			outcomes[i] = DeleteOutcome{Ref: ref, Err: store.Delete(ctx, ref.PublicID)}
			return nil
		})
	}
	_ = group.Wait()

	return outcomes
}
