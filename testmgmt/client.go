// Package testmgmt is the facade to the webmate test management subsystem:
// tests, their executions and the runs of an execution.
package testmgmt

import (
	"context"
	"fmt"

	webmate "github.com/testfabrik/webmate-go-client"
)

var (
	getTestExecutionTemplate        = webmate.NewUriTemplate("/testmgmt/testexecutions/${testExecutionId}")
	getTestExecutionsOfTestTemplate = webmate.NewUriTemplate("/testmgmt/tests/${testId}/testexecutions")
	getTestRunTemplate              = webmate.NewUriTemplate("/testmgmt/testruns/${testRunId}")
)

// Client is the facade to the test management subsystem.
type Client struct {
	transport webmate.Transport
}

func NewClient(transport webmate.Transport) *Client {
	return &Client{transport: transport}
}

func (c *Client) GetTestExecution(ctx context.Context, id TestExecutionID) (TestExecutionSummary, error) {
	body, err := c.transport.SendGET(ctx, getTestExecutionTemplate, webmate.PathParams{"testExecutionId": id.String()})
	if err != nil {
		return TestExecutionSummary{}, fmt.Errorf("could not get test execution: %w", err)
	}

	s, err := webmate.DecodeJSON[TestExecutionSummary](body)
	if err != nil {
		return TestExecutionSummary{}, fmt.Errorf("error reading test execution data: %w", err)
	}

	return s, nil
}

// GetTestExecutionsOfTest lists all executions of a test.
func (c *Client) GetTestExecutionsOfTest(ctx context.Context, testID TestID) ([]TestExecutionSummary, error) {
	body, err := c.transport.SendGET(ctx, getTestExecutionsOfTestTemplate, webmate.PathParams{"testId": testID.String()})
	if err != nil {
		return nil, fmt.Errorf("could not get test executions: %w", err)
	}

	list, err := webmate.DecodeJSONList[TestExecutionSummary](body)
	if err != nil {
		return nil, fmt.Errorf("error reading test execution data: %w", err)
	}

	return list, nil
}

func (c *Client) GetTestRun(ctx context.Context, id webmate.TestRunID) (TestRunInfo, error) {
	body, err := c.transport.SendGET(ctx, getTestRunTemplate, webmate.PathParams{"testRunId": id.String()})
	if err != nil {
		return TestRunInfo{}, fmt.Errorf("could not get test run: %w", err)
	}

	r, err := webmate.DecodeJSON[TestRunInfo](body)
	if err != nil {
		return TestRunInfo{}, fmt.Errorf("error reading test run data: %w", err)
	}

	return r, nil
}
