package mailtest

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	oaerrors "github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"

	webmate "github.com/testfabrik/webmate-go-client"
	"github.com/testfabrik/webmate-go-client/artifact"
)

// TestMailAddress is a mail address that receives the mails of a test run.
// On the wire it is a plain JSON string.
type TestMailAddress struct {
	Address string
}

func (a TestMailAddress) String() string { return a.Address }

func (a TestMailAddress) MarshalText() ([]byte, error) {
	return []byte(a.Address), nil
}

func (a *TestMailAddress) UnmarshalText(b []byte) error {
	a.Address = strings.TrimSpace(string(b))
	return nil
}

// TestMailAccount is the response to creating a test mail address.
type TestMailAccount struct {
	EmailAddress TestMailAddress `json:"emailAddress"`
}

func (a *TestMailAccount) Validate(_ strfmt.Registry) error {
	if err := validate.RequiredString("emailAddress", "body", a.EmailAddress.Address); err != nil {
		return oaerrors.CompositeValidationError(err)
	}
	return nil
}

// TestMail is a mail received by a test mail address during a test run.
type TestMail struct {
	ArtifactID artifact.ID
	ProjectID  webmate.ProjectID
	TestRunID  webmate.TestRunID
	From       string
	To         []string
	Subject    string
	Body       string

	// Content is the full mail content as stored by webmate.
	Content json.RawMessage
}

type mailContent struct {
	From         string          `json:"from"`
	To           []string        `json:"to"`
	EmailContent json.RawMessage `json:"emailContent"`
}

type emailContent struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// FromArtifact builds a TestMail from a stored Mail.MailContent artifact.
func FromArtifact(a artifact.Artifact) (TestMail, error) {
	if a.TypeName != artifact.TypeMailContent {
		return TestMail{}, fmt.Errorf("artifact %s has type %q, not %q", a.ID, a.TypeName, artifact.TypeMailContent)
	}

	if len(a.Data) == 0 {
		return TestMail{}, errors.New("artifact " + a.ID.String() + " has no data")
	}

	var mc mailContent
	if err := json.Unmarshal(a.Data, &mc); err != nil {
		return TestMail{}, fmt.Errorf("artifact %s: %w", a.ID, err)
	}

	m := TestMail{
		ArtifactID: a.ID,
		ProjectID:  a.ProjectID,
		TestRunID:  a.TestRunID,
		From:       mc.From,
		To:         mc.To,
		Content:    mc.EmailContent,
	}

	if len(mc.EmailContent) > 0 {
		var ec emailContent
		if err := json.Unmarshal(mc.EmailContent, &ec); err == nil {
			m.Subject = ec.Subject
			m.Body = ec.Body
		}
	}

	return m, nil
}
