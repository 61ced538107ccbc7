package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Drive auth modes
const (
	AuthModeServiceAccount = "service_account"
	AuthModeOAuth          = "oauth"
)

// Config holds server configuration
type Config struct {
	Port          int    // Port to listen on
	Env           string // Environment (development | production)
	BaseURL       string // Base URL for the server
	UploadMaxSize int64  // Maximum request body size in bytes
	BatchWorkers  int    // Concurrent uploads per batch request
	Drive         DriveConfig
}

// DriveConfig holds the Google Drive credential configuration.
// Exactly one auth mode is active; validation depends on it.
type DriveConfig struct {
	AuthMode       string // "service_account" or "oauth"
	ParentFolderID string // Shared folder all uploads land under

	// Service account config
	ServiceAccountJSON string // Raw or base64-encoded credential blob

	// OAuth config
	OAuthClientID     string
	OAuthClientSecret string
	OAuthRedirectURL  string
	OAuthRefreshToken string // May be empty until obtained via /oauth2callback
}

func (c *Config) Log() {
	log.Info().
		Int("port", c.Port).
		Str("env", c.Env).
		Str("base_url", c.BaseURL).
		Int64("upload_max_size", c.UploadMaxSize).
		Int("batch_workers", c.BatchWorkers).
		Str("drive_auth_mode", c.Drive.AuthMode).
		Str("drive_parent_folder", c.Drive.ParentFolderID).
		Msg("server configuration")
}

// NewConfig creates a server configuration from environment variables
func NewConfig() (*Config, error) {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil || port <= 0 {
		log.Error().Err(err).Msg("invalid PORT environment variable")
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "production"
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost"
	}

	uploadMaxSizeStr := os.Getenv("UPLOAD_MAX_SIZE")
	if uploadMaxSizeStr == "" {
		uploadMaxSizeStr = "50MB" // Default value
	}
	uploadMaxSize, err := parseUploadMaxSize(uploadMaxSizeStr)
	if err != nil {
		log.Error().Err(err).Msg("invalid UPLOAD_MAX_SIZE configuration")
		return nil, err
	}

	batchWorkers := 4
	if batchWorkersStr := os.Getenv("BATCH_WORKERS"); batchWorkersStr != "" {
		batchWorkers, err = strconv.Atoi(batchWorkersStr)
		if err != nil || batchWorkers < 1 {
			log.Error().Err(err).Msg("invalid BATCH_WORKERS environment variable")
			return nil, fmt.Errorf("invalid BATCH_WORKERS: %q", batchWorkersStr)
		}
	}

	authMode := os.Getenv("DRIVE_AUTH_MODE")
	if authMode == "" {
		authMode = AuthModeServiceAccount
	}

	driveConfig := DriveConfig{
		AuthMode:           authMode,
		ParentFolderID:     os.Getenv("DRIVE_PARENT_FOLDER_ID"),
		ServiceAccountJSON: os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"),
		OAuthClientID:      os.Getenv("OAUTH_CLIENT_ID"),
		OAuthClientSecret:  os.Getenv("OAUTH_CLIENT_SECRET"),
		OAuthRedirectURL:   os.Getenv("OAUTH_REDIRECT_URL"),
		OAuthRefreshToken:  os.Getenv("OAUTH_REFRESH_TOKEN"),
	}

	if err := validateDriveConfig(driveConfig); err != nil {
		return nil, fmt.Errorf("invalid drive configuration: %w", err)
	}

	return &Config{
		Port:          port,
		Env:           env,
		BaseURL:       baseURL,
		UploadMaxSize: uploadMaxSize,
		BatchWorkers:  batchWorkers,
		Drive:         driveConfig,
	}, nil
}

// validateDriveConfig ensures the drive configuration is valid for the selected auth mode
func validateDriveConfig(cfg DriveConfig) error {
	if cfg.ParentFolderID == "" {
		return fmt.Errorf("DRIVE_PARENT_FOLDER_ID is required")
	}

	switch cfg.AuthMode {
	case AuthModeServiceAccount:
		if cfg.ServiceAccountJSON == "" {
			return fmt.Errorf("GOOGLE_SERVICE_ACCOUNT_JSON is required for service account auth")
		}
	case AuthModeOAuth:
		if cfg.OAuthClientID == "" {
			return fmt.Errorf("OAUTH_CLIENT_ID is required for oauth auth")
		}
		if cfg.OAuthClientSecret == "" {
			return fmt.Errorf("OAUTH_CLIENT_SECRET is required for oauth auth")
		}
		if cfg.OAuthRedirectURL == "" {
			return fmt.Errorf("OAUTH_REDIRECT_URL is required for oauth auth")
		}
		// OAUTH_REFRESH_TOKEN may be empty until the operator completes
		// the consent flow via /oauth2callback.
	default:
		return fmt.Errorf("unsupported drive auth mode: %s", cfg.AuthMode)
	}
	return nil
}

// parseUploadMaxSize parses the UPLOAD_MAX_SIZE environment variable
// Value is expected to be postfixed with "MB" for megabytes or "GB" for gigabytes, e.g. "50MB"
// If no postfix is provided, the value is assumed to be in megabytes
func parseUploadMaxSize(size string) (int64, error) {
	if strings.HasSuffix(size, "GB") {
		value, err := strconv.ParseInt(strings.TrimSuffix(size, "GB"), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid UPLOAD_MAX_SIZE: %w", err)
		}
		return value * 1024 * 1024 * 1024, nil
	} else if strings.HasSuffix(size, "MB") {
		value, err := strconv.ParseInt(strings.TrimSuffix(size, "MB"), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid UPLOAD_MAX_SIZE: %w", err)
		}
		return value * 1024 * 1024, nil
	} else {
		value, err := strconv.ParseInt(size, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid UPLOAD_MAX_SIZE: %w", err)
		}
		return value * 1024 * 1024, nil
	}
}
