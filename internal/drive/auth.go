package drive

import (
	"context"

	"golang.org/x/oauth2"
)

// AuthCodeURL returns the Google consent URL for the operator-facing
// oauth flow. Offline access with forced approval, so the exchange
// always yields a refresh token.
func (c *Client) AuthCodeURL(state string) (string, error) {
	if c.oauth == nil {
		return "", ErrOAuthOnly
	}
	return c.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce), nil
}

// Exchange trades an authorization code for tokens.
func (c *Client) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	if c.oauth == nil {
		return nil, ErrOAuthOnly
	}
	return c.oauth.Exchange(ctx, code)
}
