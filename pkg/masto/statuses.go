package masto

import (
	"context"

	"github.com/fedikit/masto/pkg/idx"
)

// GetStatus fetches one status by id.
func (c *Client) GetStatus(ctx context.Context, id int64) (Status, error) {
	return dispatch[Status](ctx, c, routeGetStatus, WithID(id))
}

// GetContext returns the thread around a status.
func (c *Client) GetContext(ctx context.Context, id int64) (Context, error) {
	return dispatch[Context](ctx, c, routeGetContext, WithID(id))
}

// GetCard returns the link preview card of a status.
func (c *Client) GetCard(ctx context.Context, id int64) (Card, error) {
	return dispatch[Card](ctx, c, routeGetCard, WithID(id))
}

// RebloggedBy lists the accounts that boosted a status.
func (c *Client) RebloggedBy(ctx context.Context, id int64) ([]Account, error) {
	return dispatch[[]Account](ctx, c, routeRebloggedBy, WithID(id))
}

// FavouritedBy lists the accounts that favourited a status.
func (c *Client) FavouritedBy(ctx context.Context, id int64) ([]Account, error) {
	return dispatch[[]Account](ctx, c, routeFavouritedBy, WithID(id))
}

// Reblog boosts a status.
func (c *Client) Reblog(ctx context.Context, id int64) (Status, error) {
	return dispatch[Status](ctx, c, routeReblog, WithID(id))
}

// Unreblog removes a boost.
func (c *Client) Unreblog(ctx context.Context, id int64) (Status, error) {
	return dispatch[Status](ctx, c, routeUnreblog, WithID(id))
}

// Favourite favourites a status.
func (c *Client) Favourite(ctx context.Context, id int64) (Status, error) {
	return dispatch[Status](ctx, c, routeFavourite, WithID(id))
}

// Unfavourite removes a favourite.
func (c *Client) Unfavourite(ctx context.Context, id int64) (Status, error) {
	return dispatch[Status](ctx, c, routeUnfavourite, WithID(id))
}

// DeleteStatus deletes one of the session's own statuses.
func (c *Client) DeleteStatus(ctx context.Context, id int64) (Empty, error) {
	return dispatch[Empty](ctx, c, routeDeleteStatus, WithID(id))
}

// NewStatus posts a new status. Each post carries a ULID Idempotency-Key so
// a retried call (by the caller; this client never retries on its own)
// cannot double-post.
func (c *Client) NewStatus(ctx context.Context, status StatusBuilder) (Status, error) {
	return dispatch[Status](ctx, c, routeNewStatus,
		WithJSON(status),
		WithHeader("Idempotency-Key", idx.New().String()),
	)
}

// Favourites returns the first page of the session's favourited statuses.
// Walk further pages with Page.NextPage.
func (c *Client) Favourites(ctx context.Context) (*Page[Status], error) {
	return dispatchPage[Status](ctx, c, routeFavourites)
}

// UploadMedia uploads the file at path as a media attachment; attach the
// returned id to a status via StatusBuilder.MediaIDs.
func (c *Client) UploadMedia(ctx context.Context, path string) (Attachment, error) {
	return dispatch[Attachment](ctx, c, routeUploadMedia, WithFile("file", path))
}

// Reports lists the reports the session has filed.
func (c *Client) Reports(ctx context.Context) ([]Report, error) {
	return dispatch[[]Report](ctx, c, routeReports)
}

// FileReport reports an account over the given statuses.
func (c *Client) FileReport(ctx context.Context, accountID int64, statusIDs []int64, comment string) (Report, error) {
	return dispatch[Report](ctx, c, routeReport, WithForm(map[string]any{
		"account_id": accountID,
		"status_ids": statusIDs,
		"comment":    comment,
	}))
}

// Search queries statuses, accounts and hashtags at once. With resolve set,
// the instance will try to fetch unknown remote resources.
func (c *Client) Search(ctx context.Context, query string, resolve bool) (SearchResult, error) {
	return dispatch[SearchResult](ctx, c, routeSearch, WithForm(map[string]any{
		"q":       query,
		"resolve": resolve,
	}))
}
