package masto

import "context"

// Notifications lists the session's notifications, newest first.
func (c *Client) Notifications(ctx context.Context) ([]Notification, error) {
	return dispatch[[]Notification](ctx, c, routeNotifications)
}

// GetNotification fetches one notification by id.
func (c *Client) GetNotification(ctx context.Context, id int64) (Notification, error) {
	return dispatch[Notification](ctx, c, routeGetNotification, WithID(id))
}

// ClearNotifications deletes all of the session's notifications.
func (c *Client) ClearNotifications(ctx context.Context) (Empty, error) {
	return dispatch[Empty](ctx, c, routeClearNotifications)
}
