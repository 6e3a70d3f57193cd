package masto

// AppData is the durable record of one authorized application+user pair
// against one instance. Save it (JSON, the credstore, whatever suits the
// caller) to avoid re-running the registration flow on every start, and
// rehydrate with NewClient.
//
// AppData is never mutated after construction; registration-flow state
// transitions always produce a fresh value.
type AppData struct {
	// Base is the origin URL of the instance, e.g. "https://mastodon.social"
	Base string `json:"base"`

	// ClientID is the client id issued when the application was registered
	ClientID string `json:"client_id"`

	// ClientSecret is the client secret issued alongside ClientID
	ClientSecret string `json:"client_secret"`

	// Redirect is the redirect URI registered with the instance. It must
	// match the value used at registration time on every later call.
	Redirect string `json:"redirect"`

	// Token is the bearer access token. Empty until the authorization step
	// of the registration flow completes.
	Token string `json:"token"`
}

// Authenticated reports whether the record carries an access token and may
// therefore be used for authenticated requests. A record without a token is
// only useful for continuing the registration flow.
func (d AppData) Authenticated() bool { return d.Token != "" }
