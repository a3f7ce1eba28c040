package shader

import (
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// AttachShaderFS reads name from fsys and attaches it as the given stage.
// A read failure leaves the program untouched.
func (p *Program) AttachShaderFS(fsys fs.FS, name string, stage Stage) error {
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		return p.fetchFailed(name, err)
	}
	return p.AttachShaderSource(string(src), stage)
}

// AttachShaderFile reads a shader from disk and attaches it.
func (p *Program) AttachShaderFile(path string, stage Stage) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return p.fetchFailed(path, err)
	}
	return p.AttachShaderSource(string(src), stage)
}

func (p *Program) fetchFailed(name string, err error) error {
	p.log.Error("shader source unavailable", zap.String("name", name), zap.Error(err))
	return &SourceFetchError{Name: name, Err: err}
}
