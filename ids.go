package webmate

import "github.com/google/uuid"

// ProjectID identifies a webmate project.
type ProjectID struct{ uuid.UUID }

// TestRunID identifies a single run of a test.
type TestRunID struct{ uuid.UUID }

// UserID identifies a webmate user.
type UserID struct{ uuid.UUID }

func ParseProjectID(s string) (ProjectID, error) {
	id, err := uuid.Parse(s)
	return ProjectID{id}, err
}

func ParseTestRunID(s string) (TestRunID, error) {
	id, err := uuid.Parse(s)
	return TestRunID{id}, err
}

func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	return UserID{id}, err
}

// NewProjectID returns a random project id, mostly useful in tests.
func NewProjectID() ProjectID { return ProjectID{uuid.New()} }

// NewTestRunID returns a random test run id.
func NewTestRunID() TestRunID { return TestRunID{uuid.New()} }

// NewUserID returns a random user id.
func NewUserID() UserID { return UserID{uuid.New()} }
