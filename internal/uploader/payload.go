package uploader

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodePayload decodes a base64 file payload. Browser clients often
// send the FileReader result verbatim, so an optional data-URL prefix
// ("data:application/octet-stream;base64,...") is stripped up to the
// first comma before decoding.
func DecodePayload(data string) ([]byte, error) {
	if strings.HasPrefix(data, "data:") {
		if idx := strings.Index(data, ","); idx >= 0 {
			data = data[idx+1:]
		}
	}

	if data == "" {
		return nil, ErrEmptyPayload
	}

	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	return decoded, nil
}
