// Package artifact is the facade to the webmate artifact store, which holds
// objects captured during test runs (mails, screenshots, logs).
package artifact

import (
	"encoding/json"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
	"github.com/google/uuid"

	webmate "github.com/testfabrik/webmate-go-client"
)

// ID identifies a stored artifact.
type ID struct{ uuid.UUID }

func ParseID(s string) (ID, error) {
	id, err := uuid.Parse(s)
	return ID{id}, err
}

func NewID() ID { return ID{uuid.New()} }

// Type names an artifact type, e.g. "Mail.MailContent".
type Type string

const TypeMailContent Type = "Mail.MailContent"

func (t Type) String() string { return string(t) }

// Info is the metadata of an artifact as returned by an artifact query.
type Info struct {
	ID           ID                `json:"id"`
	TypeName     Type              `json:"typeName"`
	ProjectID    webmate.ProjectID `json:"projectId"`
	TestRunID    webmate.TestRunID `json:"testRunId"`
	CreationTime strfmt.DateTime   `json:"creationTime"`
}

func (i *Info) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("id", "body", i.ID.UUID); err != nil {
		res = append(res, err)
	}

	if err := validate.RequiredString("typeName", "body", string(i.TypeName)); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// Artifact is a stored artifact including its content.
type Artifact struct {
	Info
	Data json.RawMessage `json:"data"`
}

func (a *Artifact) Validate(formats strfmt.Registry) error {
	return a.Info.Validate(formats)
}
