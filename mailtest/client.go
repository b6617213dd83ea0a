// Package mailtest is the facade to the webmate mail test subsystem. It
// hands out mail addresses bound to a test run and retrieves the mails those
// addresses received.
package mailtest

import (
	"context"
	"fmt"

	webmate "github.com/testfabrik/webmate-go-client"
	"github.com/testfabrik/webmate-go-client/artifact"
)

var createTestMailAddressTemplate = webmate.NewUriTemplate("/mailtest/testmail/${projectId}")

// ArtifactStore is the part of the artifact subsystem the mail test facade
// needs. *artifact.Client implements it.
type ArtifactStore interface {
	QueryArtifacts(ctx context.Context, projectID webmate.ProjectID, testRunID webmate.TestRunID, types ...artifact.Type) ([]artifact.Info, error)
	GetArtifact(ctx context.Context, id artifact.ID) (artifact.Artifact, error)
}

// Client is the facade to the mail test subsystem.
type Client struct {
	transport webmate.Transport
	artifacts ArtifactStore
}

// NewClient creates a Client. If artifacts is nil an artifact client on
// transport is used.
func NewClient(transport webmate.Transport, artifacts ArtifactStore) *Client {
	if artifacts == nil {
		artifacts = artifact.NewClient(transport)
	}
	return &Client{transport: transport, artifacts: artifacts}
}

// CreateTestMailAddress creates a mail address for a test run in a project.
func (c *Client) CreateTestMailAddress(ctx context.Context, projectID webmate.ProjectID, testRunID webmate.TestRunID) (TestMailAddress, error) {
	body, err := c.transport.SendPOST(ctx, createTestMailAddressTemplate,
		webmate.PathParams{"projectId": projectID.String()},
		map[string]string{"testRunId": testRunID.String()},
	)
	if err != nil {
		return TestMailAddress{}, fmt.Errorf("could not create MailTest address: %w", err)
	}

	account, err := webmate.DecodeJSON[TestMailAccount](body)
	if err != nil {
		return TestMailAddress{}, fmt.Errorf("error reading data: %w", err)
	}

	return account.EmailAddress, nil
}

// GetMailsInTestRun returns the mails received in a test run. Mails whose
// artifact cannot be fetched or read are logged and left out; only a failed
// artifact query or a cancelled context fails the call.
func (c *Client) GetMailsInTestRun(ctx context.Context, projectID webmate.ProjectID, testRunID webmate.TestRunID) ([]TestMail, error) {
	infos, err := c.artifacts.QueryArtifacts(ctx, projectID, testRunID, artifact.TypeMailContent)
	if err != nil {
		return nil, fmt.Errorf("could not get mails of test run %s: %w", testRunID, err)
	}

	logger := c.transport.Logger()
	mails := make([]TestMail, 0, len(infos))

	for _, info := range infos {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		a, err := c.artifacts.GetArtifact(ctx, info.ID)
		if err != nil {
			logger.Warnf("Could not retrieve artifact [%s]: %v", info.ID, err)
			continue
		}

		m, err := FromArtifact(a)
		if err != nil {
			logger.Warnf("Could not read mail from artifact [%s]: %v", info.ID, err)
			continue
		}

		mails = append(mails, m)
	}

	return mails, nil
}
