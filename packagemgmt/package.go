package packagemgmt

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
	"github.com/google/uuid"

	webmate "github.com/testfabrik/webmate-go-client"
	"github.com/testfabrik/webmate-go-client/blob"
)

// PackageID identifies an application package.
type PackageID struct{ uuid.UUID }

func ParsePackageID(s string) (PackageID, error) {
	id, err := uuid.Parse(s)
	return PackageID{id}, err
}

func NewPackageID() PackageID { return PackageID{uuid.New()} }

// Package is an application package (APK or iOS app) stored in a project.
type Package struct {
	ID        PackageID         `json:"id"`
	ProjectID webmate.ProjectID `json:"projectId"`
	BlobID    blob.ID           `json:"blobId"`
	Name      string            `json:"name"`
	Extension string            `json:"extension"`
}

func (p *Package) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("id", "body", p.ID.UUID); err != nil {
		res = append(res, err)
	}

	if err := validate.RequiredString("name", "body", p.Name); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}
