package masto

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"reflect"
	"strings"
)

// ============================================================================
// Route descriptors
// ============================================================================

// BodyKind describes what kind of request body a route carries.
type BodyKind int

const (
	// BodyNone routes send no request body (GET, simple POST/DELETE).
	BodyNone BodyKind = iota

	// BodyJSON routes send a JSON object built from named parameters.
	BodyJSON

	// BodyMultipart routes send a multipart form carrying file contents,
	// used for media upload and batched profile-field updates.
	BodyMultipart
)

// ResponseKind describes the shape of a route's success payload.
type ResponseKind int

const (
	// ResponseObject routes return a single JSON object.
	ResponseObject ResponseKind = iota

	// ResponseCollection routes return a JSON array.
	ResponseCollection

	// ResponsePaginated routes return a JSON array plus Link-header
	// continuation metadata.
	ResponsePaginated
)

// Route is the static definition of one logical operation: its HTTP method,
// server path, body shape and response shape. Every route this package
// dispatches is fully known at compile time; none is built from untrusted
// input.
type Route struct {
	Name     string
	Method   string
	Path     string // relative to /api/v1/, may contain one "{id}" placeholder
	Body     BodyKind
	Response ResponseKind
}

// ============================================================================
// Call options
// ============================================================================

type callOptions struct {
	id       string
	query    url.Values
	form     map[string]any
	jsonBody any
	files    map[string]string
	headers  map[string]string
}

// CallOption customises a single dispatch: the id placeholder, query
// parameters, body fields, file attachments or extra headers.
type CallOption func(*callOptions)

// WithID substitutes id into the route's placeholder segment.
func WithID(id int64) CallOption {
	return func(o *callOptions) { o.id = fmt.Sprintf("%d", id) }
}

// WithPathValue substitutes an arbitrary value into the route's placeholder
// segment, path-escaped. Used by the few non-numeric placeholders (hashtags).
func WithPathValue(value string) CallOption {
	return func(o *callOptions) { o.id = url.PathEscape(value) }
}

// WithQuery appends one query parameter. Repeat for multi-value keys.
func WithQuery(key, value string) CallOption {
	return func(o *callOptions) {
		if o.query == nil {
			o.query = url.Values{}
		}
		o.query.Add(key, value)
	}
}

// WithForm sets named body fields. For BodyJSON routes they become the JSON
// object; for BodyMultipart routes they become plain form fields.
func WithForm(fields map[string]any) CallOption {
	return func(o *callOptions) { o.form = fields }
}

// WithJSON sends v, marshaled whole, as the JSON body of a BodyJSON route.
// It takes precedence over WithForm fields.
func WithJSON(v any) CallOption {
	return func(o *callOptions) { o.jsonBody = v }
}

// WithFile attaches the contents of the file at path as the named multipart
// field. Only meaningful on BodyMultipart routes.
func WithFile(field, path string) CallOption {
	return func(o *callOptions) {
		if o.files == nil {
			o.files = map[string]string{}
		}
		o.files[field] = path
	}
}

// WithHeader sets one extra request header, e.g. Idempotency-Key.
func WithHeader(key, value string) CallOption {
	return func(o *callOptions) {
		if o.headers == nil {
			o.headers = map[string]string{}
		}
		o.headers[key] = value
	}
}

// ============================================================================
// Dispatch
// ============================================================================

// routeURL builds the absolute URL for a route invocation. A route path has
// at most one placeholder segment.
func (c *Client) routeURL(r Route, o *callOptions) string {
	path := r.Path
	if o.id != "" {
		if i := strings.Index(path, "{"); i >= 0 {
			if j := strings.Index(path, "}"); j > i {
				path = path[:i] + o.id + path[j+1:]
			}
		}
	}
	u := c.url("/api/v1/" + path)
	if len(o.query) > 0 {
		u += "?" + o.query.Encode()
	}
	return u
}

// send executes one route invocation and returns the raw response. The
// access-token precondition is checked before any I/O.
func (c *Client) send(ctx context.Context, r Route, o *callOptions) (*http.Response, error) {
	if c.Data.Token == "" {
		return nil, ErrAccessTokenRequired
	}

	var body io.Reader
	var contentType string

	switch r.Body {
	case BodyJSON:
		payload := o.jsonBody
		if payload == nil {
			payload = o.form
		}
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(buf)
		contentType = "application/json"

	case BodyMultipart:
		buf, ct, err := buildMultipart(o)
		if err != nil {
			return nil, err
		}
		body = buf
		contentType = ct
	}

	return c.do(ctx, r.Method, c.routeURL(r, o), body, contentType, o.headers)
}

// dispatch executes one route invocation and decodes the success payload as T.
//
// For body-carrying routes the HTTP status class is inspected first: 4xx and
// 5xx stop immediately with ClientError/ServerError, without touching the
// body (some endpoints return a decodable-looking body on error that must not
// be mistaken for the success type). Body-less routes carry no status-class
// check and go straight to payload discrimination, matching the per-route
// behavior of the API.
func dispatch[T any](ctx context.Context, c *Client, r Route, opts ...CallOption) (T, error) {
	var zero T

	o := &callOptions{}
	for _, opt := range opts {
		opt(o)
	}

	resp, err := c.send(ctx, r, o)
	if err != nil {
		return zero, err
	}
	defer resp.Body.Close()

	if r.Body != BodyNone {
		if err := classifyStatus(resp.StatusCode); err != nil {
			return zero, err
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, &NetworkError{Err: err}
	}

	return decodePayload[T](raw)
}

// classifyStatus maps 4xx and 5xx status codes onto their error kinds.
func classifyStatus(status int) error {
	switch {
	case status >= 400 && status < 500:
		return &ClientError{StatusCode: status}
	case status >= 500:
		return &ServerError{StatusCode: status}
	}
	return nil
}

// decodePayload resolves the success-or-error ambiguity of a response body.
//
// The success shape is the common case and is tried first. Go's decoder
// ignores unknown object fields, so an API error body "succeeds" as a zero
// value of a struct target; a zero result paired with an error-shaped body is
// therefore treated as the error it is. When neither shape fits, the failure
// from the first (success-shape) attempt is the one propagated, since that is
// the diagnostic one for API drift.
func decodePayload[T any](raw []byte) (T, error) {
	var zero, out T

	if err := json.Unmarshal(raw, &out); err != nil {
		if apiErr := asAPIError(raw); apiErr != nil {
			return zero, apiErr
		}
		return zero, &DecodeError{Err: err}
	}

	if reflect.DeepEqual(out, zero) {
		if apiErr := asAPIError(raw); apiErr != nil {
			return zero, apiErr
		}
	}
	return out, nil
}

// asAPIError reports whether raw is shaped like the instance's error payload.
// The Code guard matters: an empty JSON object would otherwise qualify.
func asAPIError(raw []byte) *APIError {
	var e APIError
	if err := json.Unmarshal(raw, &e); err == nil && e.Code != "" {
		return &e
	}
	return nil
}

// buildMultipart assembles a multipart form from file attachments and plain
// fields.
func buildMultipart(o *callOptions) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for field, value := range o.form {
		if err := w.WriteField(field, fmt.Sprintf("%v", value)); err != nil {
			return nil, "", err
		}
	}

	for field, path := range o.files {
		f, err := os.Open(path)
		if err != nil {
			return nil, "", err
		}
		part, err := w.CreateFormFile(field, f.Name())
		if err != nil {
			f.Close()
			return nil, "", err
		}
		if _, err := io.Copy(part, f); err != nil {
			f.Close()
			return nil, "", err
		}
		f.Close()
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
