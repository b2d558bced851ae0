package usecase

import "fmt"

// Stage identifies the pipeline step a failure originated from.
type Stage string

const (
	StageInvoke  Stage = "invoke_model"
	StageDeliver Stage = "deliver_reply"
)

// Error is a pipeline failure tagged with the stage that produced it. The
// handler funnels every Error into the chat notification and the 500
// response, so failure handling stays visible in the type contract instead
// of hiding in control flow.
type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("usecase: %s: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newError(stage Stage, err error) *Error {
	return &Error{Stage: stage, Err: err}
}
