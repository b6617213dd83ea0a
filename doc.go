// Package webmate provides the shared HTTP transport of the webmate Go SDK
// and the types every subsystem facade builds on.
//
// The transport wraps [github.com/go-resty/resty/v2] with webmate
// authentication, URI templates, typed errors and pluggable logging. The
// subsystem facades live in sub-packages (artifact, blob, mailtest,
// packagemgmt, testmgmt); package session bundles them behind one client.
//
// # Basic Usage
//
//	c := webmate.New(webmate.DefaultBaseURL,
//	    webmate.WithAuthInfo(webmate.AuthInfo{Username: "me@example.com", APIToken: token}),
//	)
//
//	if err := c.Connect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	s := session.New(c)
//	addr, err := s.MailTest.CreateTestMailAddress(ctx, projectID, testRunID)
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained;
// all configuration is validated when [Client.Connect] is called.
// [LoadConfig] reads the same settings from WEBMATE_* environment variables.
//
// # Errors
//
// Every failure matches one of [ErrNoResponse], [ErrMalformedResponse],
// [ErrUnexpectedStatus] or [ErrInvalidRequest] via errors.Is. Facades never
// retry.
//
// # Retry Behaviour
//
// [DefaultRetryPolicy] retries idempotent requests on HTTP 429 and 5xx, and
// on transient connection errors. POST requests, context cancellation,
// deadline exceeded and DNS resolution errors are never retried. Supply a
// custom function via [WithRetryPolicy] to override this behaviour.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger]. A
// *logrus.Logger works as is. The default [NoopLogger] discards all output.
package webmate
