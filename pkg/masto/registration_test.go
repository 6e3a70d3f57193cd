package masto

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("issues client credentials", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/v1/apps", r.URL.Path)
			require.NoError(t, r.ParseForm())
			require.Equal(t, "testclient", r.PostForm.Get("client_name"))
			require.Equal(t, OutOfBandRedirect, r.PostForm.Get("redirect_uris"))
			require.Equal(t, "read write", r.PostForm.Get("scopes"))
			require.Equal(t, "https://example.com", r.PostForm.Get("website"))

			_, _ = w.Write([]byte(`{"id":"7","client_id":"abc","client_secret":"shhh"}`))
		}))
		defer srv.Close()

		registered, err := NewRegistration(srv.URL).Register(context.Background(), AppConfig{
			ClientName:   "testclient",
			RedirectURIs: OutOfBandRedirect,
			Scopes:       ScopeRead + " " + ScopeWrite,
			Website:      "https://example.com",
		})
		require.NoError(t, err)
		require.Equal(t, "abc", registered.ClientID())
		require.Equal(t, "shhh", registered.ClientSecret())
	})

	t.Run("missing client_id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"client_secret":"shhh"}`))
		}))
		defer srv.Close()

		_, err := NewRegistration(srv.URL).Register(context.Background(), AppConfig{ClientName: "t"})
		require.ErrorIs(t, err, ErrClientIDRequired)
	})

	t.Run("missing client_secret", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"client_id":"abc"}`))
		}))
		defer srv.Close()

		_, err := NewRegistration(srv.URL).Register(context.Background(), AppConfig{ClientName: "t"})
		require.ErrorIs(t, err, ErrClientSecretRequired)
	})

	t.Run("instance rejects registration", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"error":"Validation failed: Redirect URI must be a valid URI"}`))
		}))
		defer srv.Close()

		_, err := NewRegistration(srv.URL).Register(context.Background(), AppConfig{ClientName: "t"})

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Contains(t, apiErr.Code, "Validation failed")
	})
}

func TestAuthorizeURL(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte(`{"client_id":"abc","client_secret":"shhh"}`))
	}))
	defer srv.Close()

	registered, err := NewRegistration(srv.URL).Register(context.Background(), AppConfig{
		ClientName:   "testclient",
		RedirectURIs: OutOfBandRedirect,
		Scopes:       ScopeRead,
	})
	require.NoError(t, err)
	requestsAfterRegister := requests.Load()

	authorizeURL := registered.AuthorizeURL()
	require.Contains(t, authorizeURL, srv.URL+"/oauth/authorize?")
	require.Contains(t, authorizeURL, "client_id=abc")
	require.Contains(t, authorizeURL, "redirect_uri=urn%3Aietf%3Awg%3Aoauth%3A2.0%3Aoob")
	require.Contains(t, authorizeURL, "response_type=code")
	require.Contains(t, authorizeURL, "scope=read")

	require.Equal(t, requestsAfterRegister, requests.Load(), "building the URL must not touch the network")
}

func TestExchangeCode(t *testing.T) {
	t.Parallel()

	register := func(t *testing.T, handler http.HandlerFunc) *RegisteredApp {
		t.Helper()

		srv := httptest.NewServer(handler)
		t.Cleanup(srv.Close)

		registered, err := NewRegistration(srv.URL).Register(context.Background(), AppConfig{
			ClientName:   "testclient",
			RedirectURIs: OutOfBandRedirect,
			Scopes:       ScopeRead,
		})
		require.NoError(t, err)
		return registered
	}

	t.Run("yields authenticated client", func(t *testing.T) {
		registered := register(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/v1/apps" {
				_, _ = w.Write([]byte(`{"client_id":"abc","client_secret":"shhh"}`))
				return
			}

			require.Equal(t, "/oauth/token", r.URL.Path)
			require.NoError(t, r.ParseForm())
			require.Equal(t, "abc", r.PostForm.Get("client_id"))
			require.Equal(t, "shhh", r.PostForm.Get("client_secret"))
			require.Equal(t, "the-code", r.PostForm.Get("code"))
			require.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
			require.Equal(t, OutOfBandRedirect, r.PostForm.Get("redirect_uri"))

			_, _ = w.Write([]byte(`{"access_token":"tok123","token_type":"Bearer","scope":"read","created_at":1756500000}`))
		})

		client, err := registered.ExchangeCode(context.Background(), "the-code")
		require.NoError(t, err)
		require.Equal(t, "tok123", client.Data.Token)
		require.Equal(t, "abc", client.Data.ClientID)
		require.Equal(t, "shhh", client.Data.ClientSecret)
		require.Equal(t, OutOfBandRedirect, client.Data.Redirect)
		require.True(t, client.Data.Authenticated())
	})

	t.Run("empty access token", func(t *testing.T) {
		registered := register(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/v1/apps" {
				_, _ = w.Write([]byte(`{"client_id":"abc","client_secret":"shhh"}`))
				return
			}
			_, _ = w.Write([]byte(`{"token_type":"Bearer"}`))
		})

		_, err := registered.ExchangeCode(context.Background(), "the-code")
		require.ErrorIs(t, err, ErrAccessTokenRequired)
	})

	t.Run("rejected code", func(t *testing.T) {
		registered := register(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/v1/apps" {
				_, _ = w.Write([]byte(`{"client_id":"abc","client_secret":"shhh"}`))
				return
			}
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"The provided authorization grant is invalid"}`))
		})

		_, err := registered.ExchangeCode(context.Background(), "expired-code")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "invalid_grant", apiErr.Code)
	})
}
