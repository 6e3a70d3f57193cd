package masto

import "context"

// GetInstance returns metadata about the instance itself.
func (c *Client) GetInstance(ctx context.Context) (Instance, error) {
	return dispatch[Instance](ctx, c, routeInstance)
}

// CustomEmojis lists the instance's custom emoji.
func (c *Client) CustomEmojis(ctx context.Context) ([]Emoji, error) {
	return dispatch[[]Emoji](ctx, c, routeCustomEmojis)
}
