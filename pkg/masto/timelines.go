package masto

import "context"

// HomeTimeline returns the statuses of the accounts the session follows.
func (c *Client) HomeTimeline(ctx context.Context) ([]Status, error) {
	return dispatch[[]Status](ctx, c, routeHomeTimeline)
}

// PublicTimeline returns the federated timeline, or only this instance's
// statuses when local is set.
func (c *Client) PublicTimeline(ctx context.Context, local bool) ([]Status, error) {
	opts := []CallOption{}
	if local {
		opts = append(opts, WithQuery("local", "1"))
	}
	return dispatch[[]Status](ctx, c, routePublicTimeline, opts...)
}

// TagTimeline returns the timeline for one hashtag (without the leading #),
// federated or local.
func (c *Client) TagTimeline(ctx context.Context, hashtag string, local bool) ([]Status, error) {
	opts := []CallOption{WithPathValue(hashtag)}
	if local {
		opts = append(opts, WithQuery("local", "1"))
	}
	return dispatch[[]Status](ctx, c, routeTagTimeline, opts...)
}
