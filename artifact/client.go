package artifact

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	webmate "github.com/testfabrik/webmate-go-client"
)

var (
	queryArtifactsTemplate = webmate.NewUriTemplate("/projects/${projectId}/artifact-infos")
	getArtifactTemplate    = webmate.NewUriTemplate("/artifact/artifacts/${artifactId}")
)

// Client is the facade to the artifact subsystem.
type Client struct {
	transport webmate.Transport
}

func NewClient(transport webmate.Transport) *Client {
	return &Client{transport: transport}
}

// QueryArtifacts lists the artifacts of a test run in a project. If types is
// non-empty only artifacts of those types are returned.
func (c *Client) QueryArtifacts(ctx context.Context, projectID webmate.ProjectID, testRunID webmate.TestRunID, types ...Type) ([]Info, error) {
	query := url.Values{}
	query.Set("testRunId", testRunID.String())

	if len(types) > 0 {
		names := make([]string, 0, len(types))
		for _, t := range types {
			names = append(names, t.String())
		}
		query.Set("types", strings.Join(names, ","))
	}

	body, err := c.transport.Do(ctx, webmate.Request{
		Method:     http.MethodGet,
		Template:   queryArtifactsTemplate,
		PathParams: webmate.PathParams{"projectId": projectID.String()},
		Query:      query,
	})
	if err != nil {
		return nil, fmt.Errorf("could not query artifacts: %w", err)
	}

	infos, err := webmate.DecodeJSONList[Info](body)
	if err != nil {
		return nil, fmt.Errorf("could not read artifact infos: %w", err)
	}

	return infos, nil
}

// GetArtifact fetches a single artifact including its content.
func (c *Client) GetArtifact(ctx context.Context, id ID) (Artifact, error) {
	body, err := c.transport.SendGET(ctx, getArtifactTemplate, webmate.PathParams{"artifactId": id.String()})
	if err != nil {
		return Artifact{}, fmt.Errorf("could not get artifact %s: %w", id, err)
	}

	a, err := webmate.DecodeJSON[Artifact](body)
	if err != nil {
		return Artifact{}, fmt.Errorf("could not read artifact %s: %w", id, err)
	}

	return a, nil
}
