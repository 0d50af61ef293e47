package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneOrMany_SingleValue(t *testing.T) {
	t.Parallel()

	var images OneOrMany[string]
	err := json.Unmarshal([]byte(`"data:image/png;base64,aGk="`), &images)

	require.NoError(t, err)
	assert.Equal(t, OneOrMany[string]{"data:image/png;base64,aGk="}, images)
}

func TestOneOrMany_Array(t *testing.T) {
	t.Parallel()

	var images OneOrMany[string]
	err := json.Unmarshal([]byte(`["a", "b", "c"]`), &images)

	require.NoError(t, err)
	assert.Equal(t, OneOrMany[string]{"a", "b", "c"}, images)
}

func TestOneOrMany_PreservesOrder(t *testing.T) {
	t.Parallel()

	var images OneOrMany[string]
	err := json.Unmarshal([]byte(`["z", "a", "m"]`), &images)

	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, []string(images))
}

func TestOneOrMany_InvalidValue(t *testing.T) {
	t.Parallel()

	var images OneOrMany[string]
	err := json.Unmarshal([]byte(`123`), &images)

	assert.Error(t, err)
}

func TestOneOrMany_InStruct(t *testing.T) {
	t.Parallel()

	type request struct {
		Images OneOrMany[string] `json:"images"`
	}

	var single request
	require.NoError(t, json.Unmarshal([]byte(`{"images": "one"}`), &single))
	assert.Len(t, single.Images, 1)

	var many request
	require.NoError(t, json.Unmarshal([]byte(`{"images": ["one", "two"]}`), &many))
	assert.Len(t, many.Images, 2)
}
