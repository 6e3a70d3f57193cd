/*
Package masto is a client for Mastodon-style social network instances.

# Overview

The package is organized around two main types:

  - Registration / RegisteredApp: the three-leg OAuth2 flow that turns an
    application descriptor into a durable session record
  - Client: authenticated access to the instance's REST API

# Registering an application

A first run has no credentials, so the flow starts from the instance URL:

	reg := masto.NewRegistration("https://mastodon.social")

	app, err := reg.Register(ctx, masto.AppConfig{
		ClientName:   "my-app",
		RedirectURIs: masto.OutOfBandRedirect,
		Scopes:       masto.ScopeRead + " " + masto.ScopeWrite,
	})
	if err != nil {
		return err
	}

	// Open this in a browser; the user authorizes and reads back a code.
	fmt.Println(app.AuthorizeURL())

	client, err := app.ExchangeCode(ctx, codeFromUser)

Each stage is a distinct type only constructible from its predecessor, so a
half-finished flow cannot be mistaken for an authenticated session. Nothing is
retried automatically; redoing the flow means starting from NewRegistration.

# Resuming a session

Client.Data is the five-field session record (instance, client credentials,
redirect URI, access token). Persist it anywhere - it round-trips through JSON
- and rebuild the client later without touching the flow again:

	client := masto.NewClient(savedData)

The credstore package in this module offers a ready-made SQLite store for
exactly these records.

# Making requests

All API operations are context-aware methods on Client:

	me, err := client.VerifyCredentials(ctx)
	statuses, err := client.HomeTimeline(ctx)
	posted, err := client.NewStatus(ctx, masto.NewStatusBuilder("hello fedi"))

List endpoints with server-side paging return a Page whose NextPage and
PrevPage follow the continuation URLs the instance put in the response's Link
header:

	page, err := client.Favourites(ctx)
	for page != nil {
		for _, st := range page.Items {
			fmt.Println(st.URL)
		}
		page, err = page.NextPage(ctx)
		if err != nil {
			return err
		}
	}

# Error handling

Failures come back as typed errors, discriminated with errors.As / errors.Is:

  - *APIError: the instance returned a structured error body
  - *ClientError / *ServerError: a 4xx/5xx with no structured detail
  - *NetworkError: the transport failed before a response arrived
  - *DecodeError: the body matched neither the success nor the error shape
    (usually API drift)
  - ErrAccessTokenRequired and friends: preconditions caught before any I/O

No error is ever swallowed or retried internally; the caller owns retry
policy. The optional Throttle on Client only paces requests before they are
sent.

# Concurrency

A Client holds no mutable state: the session record is immutable after
construction and every call is one request-response round trip. Share one
Client across goroutines freely.
*/
package masto
