package drive

import (
	"errors"
)

var (
	ErrNotAuthorized = errors.New("drive client not authorized, complete the oauth consent flow first")
	ErrOAuthOnly     = errors.New("oauth consent flow is only available in oauth auth mode")
)
