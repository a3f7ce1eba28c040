package shader

// Device is the subset of a graphics context the program lifecycle drives.
// Handles are device object names; 0 never names a live object.
//
// Implementations are not expected to be safe for concurrent use.
type Device interface {
	CreateProgram() uint32
	DeleteProgram(program uint32)
	AttachShader(program, shader uint32)
	BindAttribLocation(program, location uint32, name string)
	LinkProgram(program uint32)
	LinkStatus(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)

	CreateShader(stage Stage) uint32
	DeleteShader(shader uint32)
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	CompileStatus(shader uint32) bool
	ShaderInfoLog(shader uint32) string

	ActiveAttribCount(program uint32) int
	ActiveAttribName(program uint32, index int) string
	AttribLocation(program uint32, name string) int32
	ActiveUniformCount(program uint32) int
	ActiveUniformName(program uint32, index int) string
	UniformLocation(program uint32, name string) int32
}
