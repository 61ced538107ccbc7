package uploader

import (
	"errors"
)

var (
	ErrInvalidPayload = errors.New("invalid base64 file data")
	ErrEmptyPayload   = errors.New("file data is empty")
)
