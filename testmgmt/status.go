package testmgmt

import "fmt"

// TestRunExecutionStatus is the lifecycle state of a test run.
type TestRunExecutionStatus string

const (
	TestRunCreated   TestRunExecutionStatus = "created"
	TestRunRunning   TestRunExecutionStatus = "running"
	TestRunStopped   TestRunExecutionStatus = "stopped"
	TestRunFailed    TestRunExecutionStatus = "failed"
	TestRunCompleted TestRunExecutionStatus = "completed"
)

func (s TestRunExecutionStatus) String() string { return string(s) }

// IsFinal reports whether a run in this state will not change anymore.
func (s TestRunExecutionStatus) IsFinal() bool {
	return s == TestRunStopped || s == TestRunFailed || s == TestRunCompleted
}

func (s TestRunExecutionStatus) MarshalText() ([]byte, error) {
	return marshalStatus(string(s), testRunExecutionStatuses)
}

func (s *TestRunExecutionStatus) UnmarshalText(b []byte) error {
	v, err := unmarshalStatus(b, testRunExecutionStatuses)
	*s = TestRunExecutionStatus(v)
	return err
}

// TestExecutionExecutionStatus is the lifecycle state of a test execution.
type TestExecutionExecutionStatus string

const (
	ExecutionCreated  TestExecutionExecutionStatus = "created"
	ExecutionRunning  TestExecutionExecutionStatus = "running"
	ExecutionFinished TestExecutionExecutionStatus = "finished"
	ExecutionAborted  TestExecutionExecutionStatus = "aborted"
)

func (s TestExecutionExecutionStatus) String() string { return string(s) }

func (s TestExecutionExecutionStatus) MarshalText() ([]byte, error) {
	return marshalStatus(string(s), executionStatuses)
}

func (s *TestExecutionExecutionStatus) UnmarshalText(b []byte) error {
	v, err := unmarshalStatus(b, executionStatuses)
	*s = TestExecutionExecutionStatus(v)
	return err
}

// TestExecutionEvaluationStatus is the verdict of a test execution.
type TestExecutionEvaluationStatus string

const (
	EvaluationPending TestExecutionEvaluationStatus = "pending"
	EvaluationPassed  TestExecutionEvaluationStatus = "passed"
	EvaluationFailed  TestExecutionEvaluationStatus = "failed"
	EvaluationUnknown TestExecutionEvaluationStatus = "unknown"
)

func (s TestExecutionEvaluationStatus) String() string { return string(s) }

func (s TestExecutionEvaluationStatus) MarshalText() ([]byte, error) {
	return marshalStatus(string(s), evaluationStatuses)
}

func (s *TestExecutionEvaluationStatus) UnmarshalText(b []byte) error {
	v, err := unmarshalStatus(b, evaluationStatuses)
	*s = TestExecutionEvaluationStatus(v)
	return err
}

var (
	testRunExecutionStatuses = []string{"created", "running", "stopped", "failed", "completed"}
	executionStatuses        = []string{"created", "running", "finished", "aborted"}
	evaluationStatuses       = []string{"pending", "passed", "failed", "unknown"}
)

func marshalStatus(v string, allowed []string) ([]byte, error) {
	for _, a := range allowed {
		if v == a {
			return []byte(v), nil
		}
	}
	return nil, fmt.Errorf("invalid status %q, must be one of %v", v, allowed)
}

func unmarshalStatus(b []byte, allowed []string) (string, error) {
	v := string(b)
	for _, a := range allowed {
		if v == a {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown status %q, must be one of %v", v, allowed)
}
