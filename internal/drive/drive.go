package drive

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"stlrelay-go/internal/config"
)

const folderMimeType = "application/vnd.google-apps.folder"

// Client wraps the Google Drive API for the operations the upload
// pipeline needs. It is constructed once at startup and is safe for
// concurrent use.
type Client struct {
	service *drive.Service
	oauth   *oauth2.Config // nil in service account mode
}

// Links holds the shareable link metadata for an uploaded file.
type Links struct {
	ViewLink     string
	DownloadLink string
}

// UploadFile holds the parameters for a single file upload.
type UploadFile struct {
	Name     string
	FolderID string
	MimeType string
	Content  io.Reader
}

// NewClient creates a Drive client from configuration. In oauth mode
// without a refresh token, the returned client can only serve the
// consent flow; upload operations return ErrNotAuthorized until the
// operator completes it and restarts with OAUTH_REFRESH_TOKEN set.
func NewClient(ctx context.Context, cfg config.DriveConfig) (*Client, error) {
	switch cfg.AuthMode {
	case config.AuthModeServiceAccount:
		return newServiceAccountClient(ctx, cfg)
	case config.AuthModeOAuth:
		return newOAuthClient(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported drive auth mode: %s", cfg.AuthMode)
	}
}

func newServiceAccountClient(ctx context.Context, cfg config.DriveConfig) (*Client, error) {
	blob := []byte(cfg.ServiceAccountJSON)
	if decoded, err := base64.StdEncoding.DecodeString(cfg.ServiceAccountJSON); err == nil {
		blob = decoded
	}

	creds, err := google.CredentialsFromJSON(ctx, blob, drive.DriveFileScope)
	if err != nil {
		return nil, fmt.Errorf("invalid service account credentials: %w", err)
	}

	service, err := drive.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	log.Debug().Msg("drive client authenticated with service account")
	return &Client{service: service}, nil
}

func newOAuthClient(ctx context.Context, cfg config.DriveConfig) (*Client, error) {
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.OAuthClientID,
		ClientSecret: cfg.OAuthClientSecret,
		RedirectURL:  cfg.OAuthRedirectURL,
		Scopes:       []string{drive.DriveFileScope},
		Endpoint:     google.Endpoint,
	}

	client := &Client{oauth: oauthConfig}

	if cfg.OAuthRefreshToken == "" {
		log.Warn().Msg("no refresh token configured, uploads disabled until oauth consent flow completes")
		return client, nil
	}

	tokenSource := oauthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.OAuthRefreshToken})
	service, err := drive.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	log.Debug().Msg("drive client authenticated with oauth refresh token")
	client.service = service
	return client, nil
}

// CreateFolder creates a folder under the given parent and returns its ID.
func (c *Client) CreateFolder(ctx context.Context, name, parentID string) (string, error) {
	if c.service == nil {
		return "", ErrNotAuthorized
	}

	folder := &drive.File{
		Name:     name,
		MimeType: folderMimeType,
		Parents:  []string{parentID},
	}

	created, err := c.service.Files.Create(folder).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create folder %q: %w", name, err)
	}

	return created.Id, nil
}

// Upload streams the file content into the destination folder and
// returns the new file's ID.
func (c *Client) Upload(ctx context.Context, req UploadFile) (string, error) {
	if c.service == nil {
		return "", ErrNotAuthorized
	}

	file := &drive.File{
		Name:    req.Name,
		Parents: []string{req.FolderID},
	}

	created, err := c.service.Files.Create(file).
		Media(req.Content, googleapi.ContentType(req.MimeType)).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload %q: %w", req.Name, err)
	}

	return created.Id, nil
}

// ShareWithAnyone grants world-readable access to the file.
func (c *Client) ShareWithAnyone(ctx context.Context, fileID string) error {
	if c.service == nil {
		return ErrNotAuthorized
	}

	permission := &drive.Permission{
		Role: "reader",
		Type: "anyone",
	}

	if _, err := c.service.Permissions.Create(fileID, permission).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to share file %s: %w", fileID, err)
	}

	return nil
}

// FileLinks fetches the view and download links for a file.
func (c *Client) FileLinks(ctx context.Context, fileID string) (Links, error) {
	if c.service == nil {
		return Links{}, ErrNotAuthorized
	}

	file, err := c.service.Files.Get(fileID).
		Fields("webViewLink", "webContentLink").
		Context(ctx).
		Do()
	if err != nil {
		return Links{}, fmt.Errorf("failed to get links for file %s: %w", fileID, err)
	}

	return Links{
		ViewLink:     file.WebViewLink,
		DownloadLink: file.WebContentLink,
	}, nil
}

// FolderLink returns the browser URL for a folder.
func (c *Client) FolderLink(folderID string) string {
	return fmt.Sprintf("https://drive.google.com/drive/folders/%s", folderID)
}
