package errdef

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	t.Parallel()

	badRequest := NewBadRequest("invalid shop id %d", 42)
	assert.True(t, IsBadRequest(badRequest))
	assert.False(t, IsNotFound(badRequest))
	assert.EqualError(t, badRequest, "invalid shop id 42")

	notFound := NewNotFound("event %d not found", 1)
	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsBadRequest(notFound))

	assert.True(t, IsUnauthorized(NewUnauthorized("token not valid")))
	assert.True(t, IsForbidden(NewForbidden("seller access denied")))
	assert.True(t, IsDuplicated(NewDuplicated("shop %q already exists", "a")))
	assert.True(t, IsUnsupportedMediaType(NewUnsupportedMediaType("only json")))
}

func TestErrorKindsSurviveWrapping(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("creating event: %w", NewNotFound("shop not found"))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsBadRequest(err))
}
