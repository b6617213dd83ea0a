package testmgmt

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
	"github.com/google/uuid"

	webmate "github.com/testfabrik/webmate-go-client"
)

// TestID identifies a test.
type TestID struct{ uuid.UUID }

// TestExecutionID identifies one execution of a test.
type TestExecutionID struct{ uuid.UUID }

func ParseTestID(s string) (TestID, error) {
	id, err := uuid.Parse(s)
	return TestID{id}, err
}

func ParseTestExecutionID(s string) (TestExecutionID, error) {
	id, err := uuid.Parse(s)
	return TestExecutionID{id}, err
}

func NewTestID() TestID { return TestID{uuid.New()} }

func NewTestExecutionID() TestExecutionID { return TestExecutionID{uuid.New()} }

// TestExecutionSummary describes a test execution without its results.
type TestExecutionSummary struct {
	ID               TestExecutionID               `json:"id"`
	TestID           TestID                        `json:"testId"`
	Version          int                           `json:"version"`
	Creator          webmate.UserID                `json:"creator"`
	ExecutionStatus  TestExecutionExecutionStatus  `json:"executionStatus,omitempty"`
	EvaluationStatus TestExecutionEvaluationStatus `json:"evaluationStatus,omitempty"`
	CreationTime     strfmt.DateTime               `json:"creationTime"`
}

func (s *TestExecutionSummary) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("id", "body", s.ID.UUID); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("testId", "body", s.TestID.UUID); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// TestRunInfo is the state of a test run.
type TestRunInfo struct {
	ID              webmate.TestRunID      `json:"id"`
	TestExecutionID TestExecutionID        `json:"testExecutionId"`
	Name            string                 `json:"name"`
	ExecutionStatus TestRunExecutionStatus `json:"executionStatus,omitempty"`
}

func (r *TestRunInfo) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("id", "body", r.ID.UUID); err != nil {
		res = append(res, err)
	}

	if err := validate.RequiredString("executionStatus", "body", string(r.ExecutionStatus)); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}
