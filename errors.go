package tui

import "fmt"

// PipelineError is a fatal error caught at a fiber's top level. The
// fiber that encounters one converts it into a Stop message carrying
// Reason before exiting; it is never propagated synchronously back
// across a channel.
type PipelineError struct {
	Fiber string // which fiber failed: "input", "dispatcher", "screenbuffer", "renderer", "cursor"
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("tui: %s fiber failed: %v", e.Fiber, e.Err)
}

func (e *PipelineError) Unwrap() error { return e.Err }

// StopReason builds the Reason string a fiber should attach to the Stop
// message it emits after catching a PipelineError.
func StopReason(err *PipelineError) string {
	if err == nil {
		return "stop"
	}
	return err.Error()
}
