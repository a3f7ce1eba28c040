// Package gldevice implements shader.Device on an OpenGL 4.1 core context.
package gldevice

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/glprogram/internal/engine/shader"
)

// Device issues shader calls on the OpenGL context current on the calling
// thread.
type Device struct{}

var _ shader.Device = (*Device)(nil)

// New loads the OpenGL function pointers. A context must be current.
func New() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl.Init failed: %w", err)
	}
	return &Device{}, nil
}

// Version returns the GL_VERSION string of the current context.
func (d *Device) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (d *Device) CreateProgram() uint32        { return gl.CreateProgram() }
func (d *Device) DeleteProgram(program uint32) { gl.DeleteProgram(program) }
func (d *Device) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}
func (d *Device) LinkProgram(program uint32) { gl.LinkProgram(program) }
func (d *Device) UseProgram(program uint32)  { gl.UseProgram(program) }

func (d *Device) BindAttribLocation(program, location uint32, name string) {
	gl.BindAttribLocation(program, location, gl.Str(name+"\x00"))
}

func (d *Device) LinkStatus(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (d *Device) ProgramInfoLog(program uint32) string {
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return ""
	}
	log := make([]byte, logLen)
	gl.GetProgramInfoLog(program, logLen, nil, &log[0])
	return trimLog(log)
}

func (d *Device) CreateShader(stage shader.Stage) uint32 {
	return gl.CreateShader(uint32(stage))
}

func (d *Device) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (d *Device) ShaderSource(shader uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
}

func (d *Device) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (d *Device) CompileStatus(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (d *Device) ShaderInfoLog(shader uint32) string {
	var logLen int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return ""
	}
	log := make([]byte, logLen)
	gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
	return trimLog(log)
}

func (d *Device) ActiveAttribCount(program uint32) int {
	var n int32
	gl.GetProgramiv(program, gl.ACTIVE_ATTRIBUTES, &n)
	return int(n)
}

func (d *Device) ActiveAttribName(program uint32, index int) string {
	var maxLen int32
	gl.GetProgramiv(program, gl.ACTIVE_ATTRIBUTE_MAX_LENGTH, &maxLen)
	if maxLen <= 0 {
		return ""
	}
	var (
		length int32
		size   int32
		xtype  uint32
	)
	name := make([]byte, maxLen)
	gl.GetActiveAttrib(program, uint32(index), maxLen, &length, &size, &xtype, &name[0])
	return string(name[:length])
}

func (d *Device) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) ActiveUniformCount(program uint32) int {
	var n int32
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORMS, &n)
	return int(n)
}

func (d *Device) ActiveUniformName(program uint32, index int) string {
	var maxLen int32
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)
	if maxLen <= 0 {
		return ""
	}
	var (
		length int32
		size   int32
		xtype  uint32
	)
	name := make([]byte, maxLen)
	gl.GetActiveUniform(program, uint32(index), maxLen, &length, &size, &xtype, &name[0])
	return string(name[:length])
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// trimLog drops the NUL terminator and trailing newlines drivers append.
func trimLog(log []byte) string {
	return strings.TrimRight(string(log), "\x00\r\n ")
}
