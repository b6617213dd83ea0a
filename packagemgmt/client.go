// Package packagemgmt is the facade to the webmate package management
// subsystem, which stores the application packages used in mobile tests.
package packagemgmt

import (
	"context"
	"fmt"

	webmate "github.com/testfabrik/webmate-go-client"
	"github.com/testfabrik/webmate-go-client/blob"
)

var (
	createPackageTemplate = webmate.NewUriTemplate("/projects/${projectId}/packages")
	getPackageTemplate    = webmate.NewUriTemplate("/package/packages/${packageId}")
)

// BlobStore stores raw package contents. *blob.Client implements it.
type BlobStore interface {
	PutBlob(ctx context.Context, projectID webmate.ProjectID, data []byte, contentType string) (blob.ID, error)
}

// Client is the facade to the package management subsystem.
type Client struct {
	transport webmate.Transport
	blobs     BlobStore
}

// NewClient creates a Client. blobs is only needed by
// [Client.UploadApplicationPackage]; if nil, a blob client on transport is used.
func NewClient(transport webmate.Transport, blobs BlobStore) *Client {
	if blobs == nil {
		blobs = blob.NewClient(transport)
	}
	return &Client{transport: transport, blobs: blobs}
}

// CreatePackage creates a package record in a project referencing an
// already uploaded blob. Empty name or extension are left out of the request.
func (c *Client) CreatePackage(ctx context.Context, projectID webmate.ProjectID, blobID blob.ID, name, extension string) (Package, error) {
	data := map[string]string{"blobId": blobID.String()}
	if name != "" {
		data["name"] = name
	}
	if extension != "" {
		data["extension"] = extension
	}

	body, err := c.transport.SendPOST(ctx, createPackageTemplate, webmate.PathParams{"projectId": projectID.String()}, data)
	if err != nil {
		return Package{}, fmt.Errorf("could not create package: %w", err)
	}

	p, err := webmate.DecodeJSON[Package](body)
	if err != nil {
		return Package{}, fmt.Errorf("error reading package data: %w", err)
	}

	return p, nil
}

// GetPackage fetches a package by id.
func (c *Client) GetPackage(ctx context.Context, packageID PackageID) (Package, error) {
	body, err := c.transport.SendGET(ctx, getPackageTemplate, webmate.PathParams{"packageId": packageID.String()})
	if err != nil {
		return Package{}, fmt.Errorf("could not get package: %w", err)
	}

	p, err := webmate.DecodeJSON[Package](body)
	if err != nil {
		return Package{}, fmt.Errorf("error reading package data: %w", err)
	}

	return p, nil
}

// UploadApplicationPackage uploads appPackage as a blob and creates a package
// record for it. If creating the record fails the uploaded blob is left in
// place.
func (c *Client) UploadApplicationPackage(ctx context.Context, projectID webmate.ProjectID, appPackage []byte, name, extension string) (Package, error) {
	blobID, err := c.blobs.PutBlob(ctx, projectID, appPackage, ContentTypeForExtension(extension))
	if err != nil {
		return Package{}, fmt.Errorf("could not upload application package: %w", err)
	}

	c.transport.Logger().Debugf("webmate: uploaded package %q as blob %s", name, blobID)

	return c.CreatePackage(ctx, projectID, blobID, name, extension)
}
