package masto

import (
	"context"
	"io"
	"net/http"

	"github.com/fedikit/masto/pkg/httpx"
)

// Page is one page of results from a list-returning endpoint, plus the
// continuation URLs the instance handed back in the response's Link header.
// Pages are one-shot snapshots: advancing never mutates the page it was
// called on, and nothing is cached or deduplicated across pages - the server
// is the sole source of truth for page boundaries and ordering.
type Page[T any] struct {
	client *Client

	// Items is the ordered sequence of entities on this page.
	Items []T

	next string
	prev string
}

// dispatchPage executes a paginated route invocation and wraps the response
// in a Page.
func dispatchPage[T any](ctx context.Context, c *Client, r Route, opts ...CallOption) (*Page[T], error) {
	o := &callOptions{}
	for _, opt := range opts {
		opt(o)
	}

	resp, err := c.send(ctx, r, o)
	if err != nil {
		return nil, err
	}
	return newPage[T](c, resp)
}

// newPage decodes resp's body as a page of T, applying the same
// success-or-error discrimination as dispatch, and captures the rel="next"
// and rel="prev" continuation URLs verbatim from the Link header. The URLs
// are extracted exactly once, here; they are never recomputed from item
// contents.
func newPage[T any](c *Client, resp *http.Response) (*Page[T], error) {
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	items, err := decodePayload[[]T](raw)
	if err != nil {
		return nil, err
	}

	next, prev := httpx.ParseLink(resp.Header.Get("Link"))
	return &Page[T]{
		client: c,
		Items:  items,
		next:   next,
		prev:   prev,
	}, nil
}

// NextURL returns the continuation URL for forward traversal, or "" when this
// page is the end of the result set.
func (p *Page[T]) NextURL() string { return p.next }

// PrevURL returns the continuation URL for backward traversal, or "" when
// this page is the start of the result set.
func (p *Page[T]) PrevURL() string { return p.prev }

// NextPage fetches the next page through the client's authenticated
// transport. A page with no next link returns (nil, nil) without making a
// request: the end of the results is not an error.
func (p *Page[T]) NextPage(ctx context.Context) (*Page[T], error) {
	return p.follow(ctx, p.next)
}

// PrevPage is the backward counterpart of NextPage.
func (p *Page[T]) PrevPage(ctx context.Context) (*Page[T], error) {
	return p.follow(ctx, p.prev)
}

func (p *Page[T]) follow(ctx context.Context, link string) (*Page[T], error) {
	if link == "" {
		return nil, nil
	}

	resp, err := p.client.do(ctx, http.MethodGet, link, nil, "", nil)
	if err != nil {
		return nil, err
	}
	return newPage[T](p.client, resp)
}
