package shader

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStage is returned for a stage other than vertex or fragment.
	ErrInvalidStage = errors.New("invalid shader stage")
	// ErrDeleted is the terminal error of a program released with Delete.
	ErrDeleted = errors.New("program deleted")
)

// ShaderCompileError carries the driver's compile log for one stage.
type ShaderCompileError struct {
	Stage Stage
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("%s shader compile error: %s", e.Stage, e.Log)
}

// ProgramLinkError carries the driver's link log.
type ProgramLinkError struct {
	Log string
}

func (e *ProgramLinkError) Error() string {
	return fmt.Sprintf("program link error: %s", e.Log)
}

// SourceFetchError reports that shader source could not be read.
type SourceFetchError struct {
	Name string
	Err  error
}

func (e *SourceFetchError) Error() string {
	return fmt.Sprintf("fetch shader source %s: %v", e.Name, e.Err)
}

func (e *SourceFetchError) Unwrap() error {
	return e.Err
}
