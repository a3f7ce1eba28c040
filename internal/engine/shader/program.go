// Package shader manages the lifecycle of GPU shader programs: attaching
// stage sources, linking, validating and introspecting attribute and
// uniform locations.
//
// Two policies are supported. Immediate checks every step as it happens.
// Deferred only submits work and validates once, on the first Use, so the
// driver can compile in the background. Both end in the same state.
package shader

import (
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"

	"github.com/Faultbox/glprogram/internal/logger"
)

// Program is a vertex/fragment shader program on a Device.
//
// Errors are logged and returned; a program that fails to compile or link
// moves to StateFailed and stays there. Build a new Program to retry.
type Program struct {
	dev    Device
	policy Policy
	log    *zap.Logger

	handle uint32
	state  State
	err    error

	// Shader handles kept alive until the first Use (Deferred only).
	vertex   uint32
	fragment uint32

	// Compile failures seen at attach time (Immediate only). The handles
	// are gone by link time, so this is all that is known about them.
	compileErrs map[Stage]*ShaderCompileError

	// validated guards the one-shot check performed by the first Use.
	validated bool

	attrib  map[string]int32
	uniform map[string]int32
}

// Option configures a Program.
type Option func(*Program)

// WithLogger sets the logger used to report compile and link errors.
func WithLogger(l *zap.Logger) Option {
	return func(p *Program) {
		p.log = l
	}
}

// New creates an empty program on dev.
func New(dev Device, policy Policy, opts ...Option) *Program {
	p := &Program{
		dev:         dev,
		policy:      policy,
		compileErrs: make(map[Stage]*ShaderCompileError),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = logger.Named("shader")
	}
	p.handle = dev.CreateProgram()
	return p
}

// Policy returns the validation policy.
func (p *Program) Policy() Policy { return p.policy }

// State returns the lifecycle state.
func (p *Program) State() State { return p.state }

// Err returns the error that failed the program, or nil.
func (p *Program) Err() error { return p.err }

// Handle returns the device program name, 0 once failed.
func (p *Program) Handle() uint32 { return p.handle }

// Attrib returns the location of a vertex attribute.
func (p *Program) Attrib(name string) (int32, bool) {
	loc, ok := p.attrib[name]
	return loc, ok
}

// Uniform returns the location of a uniform.
func (p *Program) Uniform(name string) (int32, bool) {
	loc, ok := p.uniform[name]
	return loc, ok
}

// Attribs returns a copy of the attribute bindings.
func (p *Program) Attribs() map[string]int32 { return maps.Clone(p.attrib) }

// Uniforms returns a copy of the uniform bindings.
func (p *Program) Uniforms() map[string]int32 { return maps.Clone(p.uniform) }

// AttachShaderSource compiles source as the given stage and attaches it.
//
// Under Immediate the compile status is checked here and the shader object
// is released right away. Under Deferred the call returns without waiting
// for the compiler and the shader object is kept for diagnostics.
func (p *Program) AttachShaderSource(source string, stage Stage) error {
	if !stage.Valid() {
		err := fmt.Errorf("%w: 0x%X", ErrInvalidStage, uint32(stage))
		p.log.Error("invalid shader stage", zap.Uint32("stage", uint32(stage)), zap.Uint32("program", p.handle))
		return err
	}
	if p.state == StateFailed {
		return p.err
	}

	switch p.policy {
	case Deferred:
		shader := p.retained(stage)
		if shader == 0 {
			shader = p.dev.CreateShader(stage)
			p.dev.AttachShader(p.handle, shader)
			p.setRetained(stage, shader)
		}
		p.dev.ShaderSource(shader, source)
		p.dev.CompileShader(shader)
		return nil

	default:
		shader := p.dev.CreateShader(stage)
		p.dev.AttachShader(p.handle, shader)
		p.dev.ShaderSource(shader, source)
		p.dev.CompileShader(shader)

		var err error
		if !p.dev.CompileStatus(shader) {
			cerr := &ShaderCompileError{Stage: stage, Log: p.dev.ShaderInfoLog(shader)}
			p.compileErrs[stage] = cerr
			p.report(cerr)
			err = cerr
		} else {
			delete(p.compileErrs, stage)
		}
		p.dev.DeleteShader(shader)
		return err
	}
}

// BindAttribLocation requests explicit attribute locations. It must be
// called before Link. The bindings are kept as-is after linking; attribute
// introspection only runs when no bindings were given.
func (p *Program) BindAttribLocation(locations map[string]uint32) error {
	if len(locations) == 0 {
		return nil
	}
	if p.state == StateFailed {
		return p.err
	}

	p.attrib = make(map[string]int32, len(locations))
	for _, name := range slices.Sorted(maps.Keys(locations)) {
		loc := locations[name]
		p.dev.BindAttribLocation(p.handle, loc, name)
		p.attrib[name] = int32(loc)
	}
	return nil
}

// Link links the attached stages. Under Immediate the result is validated
// and introspected here. Under Deferred the request is only submitted.
func (p *Program) Link() error {
	if p.state == StateFailed {
		return p.err
	}

	p.dev.LinkProgram(p.handle)

	if p.policy == Deferred {
		p.state = StateLinkPending
		p.validated = false
		return nil
	}
	return p.validate()
}

// Use makes the program current. Under Deferred the first call after a Link
// validates it, introspects the program and releases the shader objects;
// later calls only activate. A failed program activates the null program.
func (p *Program) Use() {
	if p.policy == Deferred && !p.validated && p.state != StateFailed {
		p.validated = true
		_ = p.validate()
		p.releaseShaders()
	}
	p.dev.UseProgram(p.handle)
}

// Delete releases the program and any shader objects still held.
func (p *Program) Delete() {
	p.releaseShaders()
	if p.handle != 0 {
		p.dev.DeleteProgram(p.handle)
		p.handle = 0
	}
	if p.state != StateFailed {
		p.state = StateFailed
		p.err = ErrDeleted
	}
}

// validate checks link status, picks the most specific diagnostic on
// failure and introspects on success. Shared by both policies.
func (p *Program) validate() error {
	if !p.dev.LinkStatus(p.handle) {
		err := p.linkFailure()
		p.report(err)
		p.dev.DeleteProgram(p.handle)
		p.handle = 0
		p.state = StateFailed
		p.err = err
		return err
	}

	p.introspect()
	p.state = StateReady
	p.log.Debug("program ready",
		zap.Uint32("program", p.handle),
		zap.Stringer("policy", p.policy),
		zap.Int("attribs", len(p.attrib)),
		zap.Int("uniforms", len(p.uniform)),
	)
	return nil
}

// linkFailure prefers a vertex compile error, then a fragment compile
// error, then the program's own link log.
func (p *Program) linkFailure() error {
	for _, stage := range []Stage{StageVertex, StageFragment} {
		if cerr := p.compileFailure(stage); cerr != nil {
			return cerr
		}
	}
	return &ProgramLinkError{Log: p.dev.ProgramInfoLog(p.handle)}
}

// compileFailure returns the compile error of a stage if one is known.
func (p *Program) compileFailure(stage Stage) *ShaderCompileError {
	shader := p.retained(stage)
	if shader == 0 {
		return p.compileErrs[stage]
	}
	if p.dev.CompileStatus(shader) {
		return nil
	}
	return &ShaderCompileError{Stage: stage, Log: p.dev.ShaderInfoLog(shader)}
}

func (p *Program) introspect() {
	if len(p.attrib) == 0 {
		n := p.dev.ActiveAttribCount(p.handle)
		p.attrib = make(map[string]int32, n)
		for i := 0; i < n; i++ {
			name := p.dev.ActiveAttribName(p.handle, i)
			p.attrib[name] = p.dev.AttribLocation(p.handle, name)
		}
	}

	n := p.dev.ActiveUniformCount(p.handle)
	p.uniform = make(map[string]int32, n)
	for i := 0; i < n; i++ {
		name := p.dev.ActiveUniformName(p.handle, i)
		p.uniform[name] = p.dev.UniformLocation(p.handle, name)
	}
}

func (p *Program) report(err error) {
	switch e := err.(type) {
	case *ShaderCompileError:
		p.log.Error("shader compile error",
			zap.Stringer("stage", e.Stage),
			zap.String("log", e.Log),
			zap.Uint32("program", p.handle),
		)
	case *ProgramLinkError:
		p.log.Error("program link error",
			zap.String("log", e.Log),
			zap.Uint32("program", p.handle),
		)
	default:
		p.log.Error("shader program error", zap.Error(err), zap.Uint32("program", p.handle))
	}
}

func (p *Program) retained(stage Stage) uint32 {
	if stage == StageVertex {
		return p.vertex
	}
	return p.fragment
}

func (p *Program) setRetained(stage Stage, shader uint32) {
	if stage == StageVertex {
		p.vertex = shader
	} else {
		p.fragment = shader
	}
}

func (p *Program) releaseShaders() {
	if p.vertex != 0 {
		p.dev.DeleteShader(p.vertex)
		p.vertex = 0
	}
	if p.fragment != 0 {
		p.dev.DeleteShader(p.fragment)
		p.fragment = 0
	}
}
