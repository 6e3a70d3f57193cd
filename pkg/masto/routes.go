package masto

import "net/http"

// The route table. One descriptor per logical operation; the typed methods
// in accounts.go, statuses.go, timelines.go, notifications.go and
// instance.go are thin calls through dispatch with these.
var (
	// Accounts
	routeVerifyCredentials = Route{Name: "verify_credentials", Method: http.MethodGet, Path: "accounts/verify_credentials", Response: ResponseObject}
	routeGetAccount        = Route{Name: "get_account", Method: http.MethodGet, Path: "accounts/{id}", Response: ResponseObject}
	routeFollowers         = Route{Name: "followers", Method: http.MethodGet, Path: "accounts/{id}/followers", Response: ResponseCollection}
	routeFollowing         = Route{Name: "following", Method: http.MethodGet, Path: "accounts/{id}/following", Response: ResponseCollection}
	routeFollow            = Route{Name: "follow", Method: http.MethodGet, Path: "accounts/{id}/follow", Response: ResponseObject}
	routeUnfollow          = Route{Name: "unfollow", Method: http.MethodGet, Path: "accounts/{id}/unfollow", Response: ResponseObject}
	routeBlock             = Route{Name: "block", Method: http.MethodGet, Path: "accounts/{id}/block", Response: ResponseObject}
	routeUnblock           = Route{Name: "unblock", Method: http.MethodGet, Path: "accounts/{id}/unblock", Response: ResponseObject}
	routeMute              = Route{Name: "mute", Method: http.MethodGet, Path: "accounts/{id}/mute", Response: ResponseObject}
	routeUnmute            = Route{Name: "unmute", Method: http.MethodGet, Path: "accounts/{id}/unmute", Response: ResponseObject}
	routeRelationships     = Route{Name: "relationships", Method: http.MethodGet, Path: "accounts/relationships", Response: ResponseCollection}
	routeSearchAccounts    = Route{Name: "search_accounts", Method: http.MethodGet, Path: "accounts/search", Response: ResponseCollection}
	routeAccountStatuses   = Route{Name: "account_statuses", Method: http.MethodGet, Path: "accounts/{id}/statuses", Response: ResponseCollection}
	routeFollowRemote      = Route{Name: "follows", Method: http.MethodPost, Path: "follows", Body: BodyJSON, Response: ResponseObject}
	routeUpdateCredentials = Route{Name: "update_credentials", Method: http.MethodPatch, Path: "accounts/update_credentials", Body: BodyMultipart, Response: ResponseObject}

	// Lists around the authenticated account
	routeBlocks          = Route{Name: "blocks", Method: http.MethodGet, Path: "blocks", Response: ResponseCollection}
	routeMutes           = Route{Name: "mutes", Method: http.MethodGet, Path: "mutes", Response: ResponseCollection}
	routeFollowRequests  = Route{Name: "follow_requests", Method: http.MethodGet, Path: "follow_requests", Response: ResponseCollection}
	routeAuthorizeFollow = Route{Name: "authorize_follow_request", Method: http.MethodPost, Path: "accounts/follow_requests/authorize", Body: BodyJSON, Response: ResponseObject}
	routeRejectFollow    = Route{Name: "reject_follow_request", Method: http.MethodPost, Path: "accounts/follow_requests/reject", Body: BodyJSON, Response: ResponseObject}

	// Domain blocks
	routeDomainBlocks  = Route{Name: "domain_blocks", Method: http.MethodGet, Path: "domain_blocks", Response: ResponseCollection}
	routeBlockDomain   = Route{Name: "block_domain", Method: http.MethodPost, Path: "domain_blocks", Body: BodyJSON, Response: ResponseObject}
	routeUnblockDomain = Route{Name: "unblock_domain", Method: http.MethodDelete, Path: "domain_blocks", Body: BodyJSON, Response: ResponseObject}

	// Statuses
	routeGetStatus    = Route{Name: "get_status", Method: http.MethodGet, Path: "statuses/{id}", Response: ResponseObject}
	routeGetContext   = Route{Name: "get_context", Method: http.MethodGet, Path: "statuses/{id}/context", Response: ResponseObject}
	routeGetCard      = Route{Name: "get_card", Method: http.MethodGet, Path: "statuses/{id}/card", Response: ResponseObject}
	routeRebloggedBy  = Route{Name: "reblogged_by", Method: http.MethodGet, Path: "statuses/{id}/reblogged_by", Response: ResponseCollection}
	routeFavouritedBy = Route{Name: "favourited_by", Method: http.MethodGet, Path: "statuses/{id}/favourited_by", Response: ResponseCollection}
	routeReblog       = Route{Name: "reblog", Method: http.MethodPost, Path: "statuses/{id}/reblog", Response: ResponseObject}
	routeUnreblog     = Route{Name: "unreblog", Method: http.MethodPost, Path: "statuses/{id}/unreblog", Response: ResponseObject}
	routeFavourite    = Route{Name: "favourite", Method: http.MethodPost, Path: "statuses/{id}/favourite", Response: ResponseObject}
	routeUnfavourite  = Route{Name: "unfavourite", Method: http.MethodPost, Path: "statuses/{id}/unfavourite", Response: ResponseObject}
	routeDeleteStatus = Route{Name: "delete_status", Method: http.MethodDelete, Path: "statuses/{id}", Response: ResponseObject}
	routeNewStatus    = Route{Name: "new_status", Method: http.MethodPost, Path: "statuses", Body: BodyJSON, Response: ResponseObject}
	routeFavourites   = Route{Name: "favourites", Method: http.MethodGet, Path: "favourites", Response: ResponsePaginated}

	// Media
	routeUploadMedia = Route{Name: "media", Method: http.MethodPost, Path: "media", Body: BodyMultipart, Response: ResponseObject}

	// Timelines
	routeHomeTimeline   = Route{Name: "home_timeline", Method: http.MethodGet, Path: "timelines/home", Response: ResponseCollection}
	routePublicTimeline = Route{Name: "public_timeline", Method: http.MethodGet, Path: "timelines/public", Response: ResponseCollection}
	routeTagTimeline    = Route{Name: "tag_timeline", Method: http.MethodGet, Path: "timelines/tag/{tag}", Response: ResponseCollection}

	// Notifications
	routeNotifications      = Route{Name: "notifications", Method: http.MethodGet, Path: "notifications", Response: ResponseCollection}
	routeGetNotification    = Route{Name: "get_notification", Method: http.MethodGet, Path: "notifications/{id}", Response: ResponseObject}
	routeClearNotifications = Route{Name: "clear_notifications", Method: http.MethodPost, Path: "notifications/clear", Response: ResponseObject}

	// Reports and search
	routeReports = Route{Name: "reports", Method: http.MethodGet, Path: "reports", Response: ResponseCollection}
	routeReport  = Route{Name: "report", Method: http.MethodPost, Path: "reports", Body: BodyJSON, Response: ResponseObject}
	routeSearch  = Route{Name: "search", Method: http.MethodPost, Path: "search", Body: BodyJSON, Response: ResponseObject}

	// Instance
	routeInstance     = Route{Name: "instance", Method: http.MethodGet, Path: "instance", Response: ResponseObject}
	routeCustomEmojis = Route{Name: "custom_emojis", Method: http.MethodGet, Path: "custom_emojis", Response: ResponseCollection}
)
