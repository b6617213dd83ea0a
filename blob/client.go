// Package blob is the facade to the webmate blob store. Blobs are raw
// binary payloads referenced by higher level records such as packages.
package blob

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	webmate "github.com/testfabrik/webmate-go-client"
)

var putBlobTemplate = webmate.NewUriTemplate("/projects/${projectId}/blobs")

// ID identifies a stored blob.
type ID struct{ uuid.UUID }

func ParseID(s string) (ID, error) {
	id, err := uuid.Parse(s)
	return ID{id}, err
}

func NewID() ID { return ID{uuid.New()} }

// Client is the facade to the blob subsystem.
type Client struct {
	transport webmate.Transport
}

func NewClient(transport webmate.Transport) *Client {
	return &Client{transport: transport}
}

// PutBlob uploads data to the blob store of a project and returns the id of
// the new blob. contentType is sent as the request content type; if empty
// the data is sent as application/octet-stream.
func (c *Client) PutBlob(ctx context.Context, projectID webmate.ProjectID, data []byte, contentType string) (ID, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if data == nil {
		data = []byte{}
	}

	body, err := c.transport.Do(ctx, webmate.Request{
		Method:      http.MethodPost,
		Template:    putBlobTemplate,
		PathParams:  webmate.PathParams{"projectId": projectID.String()},
		Body:        data,
		ContentType: contentType,
	})
	if err != nil {
		return ID{}, fmt.Errorf("could not upload blob: %w", err)
	}

	id, err := webmate.DecodeJSON[ID](body)
	if err != nil {
		return ID{}, fmt.Errorf("could not read blob id: %w", err)
	}

	if id.UUID == uuid.Nil {
		return ID{}, fmt.Errorf("could not read blob id: %w", &webmate.Error{Kind: webmate.ErrMalformedResponse, Err: errors.New("nil blob id")})
	}

	return id, nil
}
