// Package google implements the Google identity provider used for login.
package google

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"sugarrush/config"
	"sugarrush/internal/domain/entity"
	"sugarrush/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

const (
	defaultTimeout     = 10 * time.Second
	defaultUserInfoAPI = "https://www.googleapis.com/"
)

// Provider is the Google implementation of service.IdentityProvider.
type Provider struct {
	oauth       *oauth2.Config
	userInfoAPI string
	revokeURL   string
	httpClient  *http.Client
}

// NewProvider builds the provider from the googleOAuth config section.
func NewProvider(cfg *config.Config) service.IdentityProvider {
	return newProvider(cfg.GoogleOAuth, googleoauth.Endpoint, defaultUserInfoAPI)
}

func newProvider(cfg *config.GoogleOAuthConfig, endpoint oauth2.Endpoint, userInfoAPI string) *Provider {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Provider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       cfg.Scopes,
			Endpoint:     endpoint,
		},
		userInfoAPI: userInfoAPI,
		revokeURL:   cfg.RevokeURL,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// AuthorizationURL returns the Google consent page URL for state.
func (p *Provider) AuthorizationURL(state string) string {
	return p.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades code for an access token and reads the caller's profile with it.
func (p *Provider) Exchange(ctx context.Context, code string) (*entity.ExternalIdentity, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)

	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(errors.Wrap(service.ErrExchangeFailed, err.Error()), "exchange authorization code")
	}

	api, err := oauth2api.NewService(ctx,
		option.WithHTTPClient(p.oauth.Client(ctx, token)),
		option.WithEndpoint(p.userInfoAPI),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create userinfo client")
	}

	info, err := api.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrap(errors.Wrap(service.ErrExchangeFailed, err.Error()), "fetch userinfo")
	}
	if info.Id == "" {
		return nil, errors.Wrap(service.ErrExchangeFailed, "userinfo has no id")
	}

	return &entity.ExternalIdentity{
		GoogleID:    info.Id,
		AccessToken: token.AccessToken,
		Name:        info.Name,
		Email:       info.Email,
	}, nil
}

// Revoke asks Google to invalidate accessToken.
func (p *Provider) Revoke(ctx context.Context, accessToken string) error {
	target, err := url.Parse(p.revokeURL)
	if err != nil {
		return errors.Wrap(err, "parse revoke url")
	}
	query := target.Query()
	query.Set("token", accessToken)
	target.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), http.NoBody)
	if err != nil {
		return errors.Wrap(err, "failed to create revoke request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to revoke token")
	}
	defer resp.Body.Close()

	// Google answers 400 for unknown or already revoked tokens.
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return errors.Errorf("token revocation failed with status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
