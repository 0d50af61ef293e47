package assetstore

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const defaultContentType = "application/octet-stream"

// RawImage is an image payload as clients send it: either a data URI
// ("data:image/png;base64,....") or a bare base64 string.
type RawImage string

// Decode returns the content type and the binary image data. Bare base64
// payloads decode with a generic content type.
func (r RawImage) Decode() (string, []byte, error) {
	payload := string(r)
	contentType := defaultContentType

	if strings.HasPrefix(payload, "data:") {
		meta, encoded, found := strings.Cut(payload, ",")
		if !found {
			return "", nil, fmt.Errorf("malformed data URI")
		}

		meta = strings.TrimPrefix(meta, "data:")
		meta = strings.TrimSuffix(meta, ";base64")
		if meta != "" {
			contentType = meta
		}
		payload = encoded
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decoding image payload: %v", err)
	}
	if len(data) == 0 {
		return "", nil, fmt.Errorf("empty image payload")
	}

	return contentType, data, nil
}
