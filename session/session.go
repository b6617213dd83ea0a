// Package session bundles the webmate subsystem facades behind a single
// transport.
package session

import (
	webmate "github.com/testfabrik/webmate-go-client"
	"github.com/testfabrik/webmate-go-client/artifact"
	"github.com/testfabrik/webmate-go-client/blob"
	"github.com/testfabrik/webmate-go-client/mailtest"
	"github.com/testfabrik/webmate-go-client/packagemgmt"
	"github.com/testfabrik/webmate-go-client/testmgmt"
)

// Session gives access to every subsystem facade. All facades share the
// transport passed to [New].
type Session struct {
	Artifacts *artifact.Client
	Blobs     *blob.Client
	MailTest  *mailtest.Client
	Packages  *packagemgmt.Client
	TestMgmt  *testmgmt.Client
}

func New(transport webmate.Transport) *Session {
	artifacts := artifact.NewClient(transport)
	blobs := blob.NewClient(transport)

	return &Session{
		Artifacts: artifacts,
		Blobs:     blobs,
		MailTest:  mailtest.NewClient(transport, artifacts),
		Packages:  packagemgmt.NewClient(transport, blobs),
		TestMgmt:  testmgmt.NewClient(transport),
	}
}
