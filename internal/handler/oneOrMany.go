package handler

import "encoding/json"

// OneOrMany accepts a JSON value that is either a single T or an array of T
// and normalizes both into an ordered slice. Historical clients send a lone
// image string where newer ones send an array; normalization happens once, at
// the binding boundary, so services only ever see a sequence.
type OneOrMany[T any] []T

func (o *OneOrMany[T]) UnmarshalJSON(data []byte) error {
	var many []T
	if err := json.Unmarshal(data, &many); err == nil {
		*o = many
		return nil
	}

	var one T
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*o = OneOrMany[T]{one}
	return nil
}
