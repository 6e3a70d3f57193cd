package masto

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Standard OAuth scopes understood by Mastodon-style instances. AppConfig
// takes them space-delimited, e.g. "read write follow".
const (
	ScopeRead   = "read"
	ScopeWrite  = "write"
	ScopeFollow = "follow"
)

// OutOfBandRedirect is the conventional redirect URI for applications without
// a web callback; the instance displays the authorization code to the user
// instead of redirecting.
const OutOfBandRedirect = "urn:ietf:wg:oauth:2.0:oob"

// AppConfig describes the application to register with an instance.
type AppConfig struct {
	// ClientName is the display name shown to the user on the consent screen
	ClientName string

	// RedirectURIs is where the instance sends the user after authorization.
	// Use OutOfBandRedirect for terminal applications.
	RedirectURIs string

	// Scopes is the space-delimited set of scopes to request
	Scopes string

	// Website is the application's homepage (optional)
	Website string
}

// Registration is the first stage of the three-leg authorization flow: it
// knows the target instance and nothing else. Register moves it forward.
// A failed flow is not resumable; start over with a fresh Registration.
type Registration struct {
	base       string
	httpClient *http.Client
}

// NewRegistration starts a registration flow against the instance at base,
// e.g. "https://mastodon.social".
func NewRegistration(base string) *Registration {
	return &Registration{
		base: strings.TrimSuffix(base, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Register creates the application on the instance and returns the second
// flow stage holding the issued client credentials. A response missing
// client_id or client_secret fails with ErrClientIDRequired or
// ErrClientSecretRequired respectively.
func (r *Registration) Register(ctx context.Context, app AppConfig) (*RegisteredApp, error) {
	data := url.Values{
		"client_name":   {app.ClientName},
		"redirect_uris": {app.RedirectURIs},
		"scopes":        {app.Scopes},
	}
	if app.Website != "" {
		data.Set("website", app.Website)
	}

	raw, err := r.postForm(ctx, r.base+"/api/v1/apps", data)
	if err != nil {
		return nil, err
	}

	created, err := decodePayload[appResponse](raw)
	if err != nil {
		return nil, err
	}
	if created.ClientID == "" {
		return nil, ErrClientIDRequired
	}
	if created.ClientSecret == "" {
		return nil, ErrClientSecretRequired
	}

	return &RegisteredApp{
		base:         r.base,
		clientID:     created.ClientID,
		clientSecret: created.ClientSecret,
		redirect:     app.RedirectURIs,
		scopes:       app.Scopes,
		httpClient:   r.httpClient,
	}, nil
}

// RegisteredApp is the second flow stage: the application exists on the
// instance and holds client credentials, but no user has authorized it yet.
type RegisteredApp struct {
	base         string
	clientID     string
	clientSecret string
	redirect     string
	scopes       string
	httpClient   *http.Client
}

// ClientID returns the client id the instance issued.
func (a *RegisteredApp) ClientID() string { return a.clientID }

// ClientSecret returns the client secret the instance issued.
func (a *RegisteredApp) ClientSecret() string { return a.clientSecret }

// AuthorizeURL builds the user-facing authorization URL. Pure computation,
// no network call: direct the user to this URL in a browser and capture the
// authorization code they come back with out of band.
func (a *RegisteredApp) AuthorizeURL() string {
	params := url.Values{}
	params.Set("client_id", a.clientID)
	params.Set("redirect_uri", a.redirect)
	params.Set("response_type", "code")
	params.Set("scope", a.scopes)

	return a.base + "/oauth/authorize?" + params.Encode()
}

// ExchangeCode trades the user's authorization code for an access token and
// completes the flow, yielding an authenticated client. An API error body
// (an invalid or expired code, say) comes back as *APIError.
func (a *RegisteredApp) ExchangeCode(ctx context.Context, code string) (*Client, error) {
	data := url.Values{
		"client_id":     {a.clientID},
		"client_secret": {a.clientSecret},
		"code":          {code},
		"grant_type":    {"authorization_code"},
		"redirect_uri":  {a.redirect},
	}

	reg := &Registration{base: a.base, httpClient: a.httpClient}
	raw, err := reg.postForm(ctx, a.base+"/oauth/token", data)
	if err != nil {
		return nil, err
	}

	token, err := decodePayload[tokenResponse](raw)
	if err != nil {
		return nil, err
	}
	if token.AccessToken == "" {
		return nil, ErrAccessTokenRequired
	}

	return NewClient(AppData{
		Base:         a.base,
		ClientID:     a.clientID,
		ClientSecret: a.clientSecret,
		Redirect:     a.redirect,
		Token:        token.AccessToken,
	}), nil
}

// postForm sends one form-urlencoded POST and returns the raw response body.
// Registration-stage calls are the one place requests go out without a bearer
// token.
func (r *Registration) postForm(ctx context.Context, rawurl string, data url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawurl, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	return raw, nil
}

// appResponse is the subset of the app-registration response the flow needs.
type appResponse struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// tokenResponse is the OAuth2 token endpoint response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`
	CreatedAt   int64  `json:"created_at"`
}
