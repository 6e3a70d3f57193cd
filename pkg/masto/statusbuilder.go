package masto

// Visibility levels a status can be posted with.
const (
	VisibilityPublic   = "public"
	VisibilityUnlisted = "unlisted"
	VisibilityPrivate  = "private"
	VisibilityDirect   = "direct"
)

// StatusBuilder is the compose form for a new status. Zero values are
// omitted from the request, so the instance's defaults apply.
type StatusBuilder struct {
	// Status is the text of the post
	Status string `json:"status"`

	// InReplyToID threads the post under an existing status
	InReplyToID int64 `json:"in_reply_to_id,omitempty"`

	// MediaIDs attaches previously uploaded media
	MediaIDs []int64 `json:"media_ids,omitempty"`

	// Sensitive marks attached media as sensitive
	Sensitive bool `json:"sensitive,omitempty"`

	// SpoilerText is shown in place of the content until revealed
	SpoilerText string `json:"spoiler_text,omitempty"`

	// Visibility is one of the Visibility* constants
	Visibility string `json:"visibility,omitempty"`
}

// NewStatusBuilder starts a compose form with the given text.
func NewStatusBuilder(text string) StatusBuilder {
	return StatusBuilder{Status: text}
}
