package masto

import (
	"context"
	"fmt"
)

// VerifyCredentials returns the account the session is authenticated as.
func (c *Client) VerifyCredentials(ctx context.Context) (Account, error) {
	return dispatch[Account](ctx, c, routeVerifyCredentials)
}

// GetAccount fetches one account by id.
func (c *Client) GetAccount(ctx context.Context, id int64) (Account, error) {
	return dispatch[Account](ctx, c, routeGetAccount, WithID(id))
}

// Followers lists the accounts following the given account.
func (c *Client) Followers(ctx context.Context, id int64) ([]Account, error) {
	return dispatch[[]Account](ctx, c, routeFollowers, WithID(id))
}

// Following lists the accounts the given account follows.
func (c *Client) Following(ctx context.Context, id int64) ([]Account, error) {
	return dispatch[[]Account](ctx, c, routeFollowing, WithID(id))
}

// Follow follows an account.
func (c *Client) Follow(ctx context.Context, id int64) (Account, error) {
	return dispatch[Account](ctx, c, routeFollow, WithID(id))
}

// Unfollow unfollows an account.
func (c *Client) Unfollow(ctx context.Context, id int64) (Account, error) {
	return dispatch[Account](ctx, c, routeUnfollow, WithID(id))
}

// BlockAccount blocks an account.
func (c *Client) BlockAccount(ctx context.Context, id int64) (Account, error) {
	return dispatch[Account](ctx, c, routeBlock, WithID(id))
}

// UnblockAccount unblocks an account.
func (c *Client) UnblockAccount(ctx context.Context, id int64) (Account, error) {
	return dispatch[Account](ctx, c, routeUnblock, WithID(id))
}

// MuteAccount mutes an account.
func (c *Client) MuteAccount(ctx context.Context, id int64) (Account, error) {
	return dispatch[Account](ctx, c, routeMute, WithID(id))
}

// UnmuteAccount unmutes an account.
func (c *Client) UnmuteAccount(ctx context.Context, id int64) (Account, error) {
	return dispatch[Account](ctx, c, routeUnmute, WithID(id))
}

// Relationships returns the authenticated account's relationship to each of
// the given accounts.
func (c *Client) Relationships(ctx context.Context, ids ...int64) ([]Relationship, error) {
	opts := make([]CallOption, 0, len(ids))
	for _, id := range ids {
		opts = append(opts, WithQuery("id[]", fmt.Sprintf("%d", id)))
	}
	return dispatch[[]Relationship](ctx, c, routeRelationships, opts...)
}

// SearchAccounts searches accounts by name. A query in username@domain form
// triggers a remote lookup if the account is not yet known to the instance.
func (c *Client) SearchAccounts(ctx context.Context, query string) ([]Account, error) {
	return dispatch[[]Account](ctx, c, routeSearchAccounts, WithQuery("q", query))
}

// StatusFilters narrows an account-statuses listing. Zero values are
// omitted from the request.
type StatusFilters struct {
	OnlyMedia      bool
	ExcludeReplies bool
	SinceID        int64
	MaxID          int64
}

// AccountStatuses lists an account's statuses with optional filters.
func (c *Client) AccountStatuses(ctx context.Context, id int64, filters StatusFilters) ([]Status, error) {
	opts := []CallOption{WithID(id)}
	if filters.OnlyMedia {
		opts = append(opts, WithQuery("only_media", "1"))
	}
	if filters.ExcludeReplies {
		opts = append(opts, WithQuery("exclude_replies", "1"))
	}
	if filters.SinceID != 0 {
		opts = append(opts, WithQuery("since_id", fmt.Sprintf("%d", filters.SinceID)))
	}
	if filters.MaxID != 0 {
		opts = append(opts, WithQuery("max_id", fmt.Sprintf("%d", filters.MaxID)))
	}
	return dispatch[[]Status](ctx, c, routeAccountStatuses, opts...)
}

// FollowRemote follows an account on another instance by its URI.
func (c *Client) FollowRemote(ctx context.Context, uri string) (Account, error) {
	return dispatch[Account](ctx, c, routeFollowRemote, WithForm(map[string]any{"uri": uri}))
}

// CredentialsBuilder carries profile changes for UpdateCredentials. Empty
// fields are left untouched; DisplayName and Note go out as form fields,
// Avatar and Header as file uploads.
type CredentialsBuilder struct {
	DisplayName string
	Note        string
	Avatar      string // path to an image file
	Header      string // path to an image file
}

// UpdateCredentials updates the authenticated account's profile via a
// multipart PATCH.
func (c *Client) UpdateCredentials(ctx context.Context, changes CredentialsBuilder) (Account, error) {
	fields := map[string]any{}
	if changes.DisplayName != "" {
		fields["display_name"] = changes.DisplayName
	}
	if changes.Note != "" {
		fields["note"] = changes.Note
	}

	opts := []CallOption{WithForm(fields)}
	if changes.Avatar != "" {
		opts = append(opts, WithFile("avatar", changes.Avatar))
	}
	if changes.Header != "" {
		opts = append(opts, WithFile("header", changes.Header))
	}
	return dispatch[Account](ctx, c, routeUpdateCredentials, opts...)
}

// Blocks lists the accounts the session has blocked.
func (c *Client) Blocks(ctx context.Context) ([]Account, error) {
	return dispatch[[]Account](ctx, c, routeBlocks)
}

// Mutes lists the accounts the session has muted.
func (c *Client) Mutes(ctx context.Context) ([]Account, error) {
	return dispatch[[]Account](ctx, c, routeMutes)
}

// FollowRequests lists pending follow requests against the session's account.
func (c *Client) FollowRequests(ctx context.Context) ([]Account, error) {
	return dispatch[[]Account](ctx, c, routeFollowRequests)
}

// AuthorizeFollowRequest accepts a pending follow request.
func (c *Client) AuthorizeFollowRequest(ctx context.Context, id int64) (Empty, error) {
	return dispatch[Empty](ctx, c, routeAuthorizeFollow, WithForm(map[string]any{"id": id}))
}

// RejectFollowRequest declines a pending follow request.
func (c *Client) RejectFollowRequest(ctx context.Context, id int64) (Empty, error) {
	return dispatch[Empty](ctx, c, routeRejectFollow, WithForm(map[string]any{"id": id}))
}

// DomainBlocks lists the domains the session has blocked.
func (c *Client) DomainBlocks(ctx context.Context) ([]string, error) {
	return dispatch[[]string](ctx, c, routeDomainBlocks)
}

// BlockDomain blocks every account on a domain.
func (c *Client) BlockDomain(ctx context.Context, domain string) (Empty, error) {
	return dispatch[Empty](ctx, c, routeBlockDomain, WithForm(map[string]any{"domain": domain}))
}

// UnblockDomain lifts a domain block.
func (c *Client) UnblockDomain(ctx context.Context, domain string) (Empty, error) {
	return dispatch[Empty](ctx, c, routeUnblockDomain, WithForm(map[string]any{"domain": domain}))
}
