package masto

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(AppData{
		Base:     srv.URL,
		ClientID: "client-id",
		Token:    "test-token",
	})
	return client, srv
}

func TestDispatchSuccess(t *testing.T) {
	t.Parallel()

	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/v1/accounts/verify_credentials", r.URL.Path)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":42,"username":"amelia","acct":"amelia@example.social","followers_count":7}`))
	})

	account, err := client.VerifyCredentials(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(42), account.ID)
	require.Equal(t, "amelia", account.Username)
	require.Equal(t, "amelia@example.social", account.Acct)
	require.Equal(t, int64(7), account.FollowersCount)
}

func TestDispatchAPIError(t *testing.T) {
	t.Parallel()

	t.Run("error body on success status", func(t *testing.T) {
		client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error":"invalid_scope","error_description":"The requested scope is invalid"}`))
		})

		_, err := client.VerifyCredentials(context.Background())

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "invalid_scope", apiErr.Code)
		require.Equal(t, "The requested scope is invalid", apiErr.Description)
	})

	t.Run("error body on 401 without body route", func(t *testing.T) {
		// Routes without a request body skip the status-class check, so the
		// payload shape decides the outcome even on a 4xx response.
		client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"The access token is invalid"}`))
		})

		_, err := client.VerifyCredentials(context.Background())

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "The access token is invalid", apiErr.Code)
	})

	t.Run("error body on collection route", func(t *testing.T) {
		client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error":"Record not found"}`))
		})

		_, err := client.Followers(context.Background(), 1)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "Record not found", apiErr.Code)
	})
}

func TestDispatchStatusClassification(t *testing.T) {
	t.Parallel()

	t.Run("client error wins over body on 422", func(t *testing.T) {
		// Body-carrying routes classify the status first: the error body is
		// never inspected.
		client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"error":"Validation failed"}`))
		})

		_, err := client.NewStatus(context.Background(), NewStatusBuilder("hello"))

		var clientErr *ClientError
		require.ErrorAs(t, err, &clientErr)
		require.Equal(t, http.StatusUnprocessableEntity, clientErr.StatusCode)
	})

	t.Run("server error on 503", func(t *testing.T) {
		client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := client.NewStatus(context.Background(), NewStatusBuilder("hello"))

		var serverErr *ServerError
		require.ErrorAs(t, err, &serverErr)
		require.Equal(t, http.StatusServiceUnavailable, serverErr.StatusCode)
	})
}

func TestDispatchDecodeError(t *testing.T) {
	t.Parallel()

	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<!doctype html><h1>nginx error page</h1>`))
	})

	_, err := client.VerifyCredentials(context.Background())

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.Error(t, decodeErr.Unwrap())
}

func TestDecodePayload(t *testing.T) {
	t.Parallel()

	t.Run("success shape preferred when both fit", func(t *testing.T) {
		// A payload carrying both recognisable fields decodes as the success
		// type; the error shape is only consulted when success decoding gives
		// nothing.
		account, err := decodePayload[Account]([]byte(`{"id":9,"username":"eve","error":"also here"}`))
		require.NoError(t, err)
		require.Equal(t, int64(9), account.ID)
	})

	t.Run("zero-value success with error body is an API error", func(t *testing.T) {
		// Unknown fields are ignored by the decoder, so an error payload
		// "succeeds" as a zero Account. The zero guard catches it.
		_, err := decodePayload[Account]([]byte(`{"error":"Record not found"}`))

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "Record not found", apiErr.Code)
	})

	t.Run("empty object is not an error", func(t *testing.T) {
		_, err := decodePayload[Empty]([]byte(`{}`))
		require.NoError(t, err)
	})

	t.Run("idempotent decoding", func(t *testing.T) {
		raw := []byte(`[{"id":1,"content":"one"},{"id":2,"content":"two"}]`)

		first, err := decodePayload[[]Status](raw)
		require.NoError(t, err)
		second, err := decodePayload[[]Status](raw)
		require.NoError(t, err)

		require.Empty(t, cmp.Diff(first, second))
	})
}

func TestDispatchAccessTokenRequired(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	})
	client.Data.Token = ""

	_, err := client.VerifyCredentials(context.Background())
	require.ErrorIs(t, err, ErrAccessTokenRequired)
	require.Zero(t, requests.Load(), "precondition failure must not reach the network")
}

func TestDispatchNetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // deliberately unreachable

	client := NewClient(AppData{Base: srv.URL, Token: "tok"})
	_, err := client.VerifyCredentials(context.Background())

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	require.Error(t, netErr.Unwrap())
}

func TestNewStatusRequest(t *testing.T) {
	t.Parallel()

	seen := make(chan *http.Request, 2)
	bodies := make(chan map[string]any, 2)
	keys := make(chan string, 2)

	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		seen <- r
		bodies <- payload
		keys <- r.Header.Get("Idempotency-Key")
		_, _ = w.Write([]byte(`{"id":100,"content":"<p>hello world</p>"}`))
	})

	builder := NewStatusBuilder("hello world")
	builder.Visibility = VisibilityUnlisted
	builder.SpoilerText = "greeting"

	status, err := client.NewStatus(context.Background(), builder)
	require.NoError(t, err)
	require.Equal(t, int64(100), status.ID)

	r := <-seen
	require.Equal(t, http.MethodPost, r.Method)
	require.Equal(t, "/api/v1/statuses", r.URL.Path)
	require.Equal(t, "application/json", r.Header.Get("Content-Type"))

	payload := <-bodies
	require.Equal(t, "hello world", payload["status"])
	require.Equal(t, "unlisted", payload["visibility"])
	require.Equal(t, "greeting", payload["spoiler_text"])
	require.NotContains(t, payload, "in_reply_to_id")

	firstKey := <-keys
	require.NotEmpty(t, firstKey)

	// A retry of the same logical post is a new request with a new key.
	_, err = client.NewStatus(context.Background(), builder)
	require.NoError(t, err)
	<-seen
	<-bodies
	require.NotEqual(t, firstKey, <-keys)
}

func TestRouteURL(t *testing.T) {
	t.Parallel()

	client := NewClient(AppData{Base: "https://example.social", Token: "tok"})

	t.Run("id placeholder", func(t *testing.T) {
		o := &callOptions{}
		WithID(42)(o)
		url := client.routeURL(Route{Path: "accounts/{id}/followers"}, o)
		require.Equal(t, "https://example.social/api/v1/accounts/42/followers", url)
	})

	t.Run("escaped path value", func(t *testing.T) {
		o := &callOptions{}
		WithPathValue("café culture")(o)
		url := client.routeURL(Route{Path: "timelines/tag/{tag}"}, o)
		require.Equal(t, "https://example.social/api/v1/timelines/tag/caf%C3%A9%20culture", url)
	})

	t.Run("query parameters", func(t *testing.T) {
		o := &callOptions{}
		WithQuery("local", "true")(o)
		WithQuery("id[]", "1")(o)
		WithQuery("id[]", "2")(o)
		url := client.routeURL(Route{Path: "timelines/public"}, o)
		require.Equal(t, "https://example.social/api/v1/timelines/public?id%5B%5D=1&id%5B%5D=2&local=true", url)
	})
}
