package shader

import (
	"fmt"
	"strings"
)

// fakeDevice is an in-memory Device that records calls. Sources containing
// "#error" fail to compile; a program with a stage source containing
// "#link-error" fails to link.
type fakeDevice struct {
	next     uint32
	programs map[uint32]*fakeProgram
	shaders  map[uint32]*fakeShader

	// Active inputs reported by every linked program, in driver order.
	attribs  []string
	uniforms []string

	calls  map[string]int
	used   []uint32
	misuse []string
}

type fakeProgram struct {
	shaders []uint32
	bound   map[string]uint32
	linked  bool
	ok      bool
	log     string
	deleted bool
}

type fakeShader struct {
	stage    Stage
	source   string
	compiled bool
	ok       bool
	deleted  bool
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		programs: make(map[uint32]*fakeProgram),
		shaders:  make(map[uint32]*fakeShader),
		attribs:  []string{"aNormal", "aPosition"},
		uniforms: []string{"uColor", "uModelView", "uProjection"},
		calls:    make(map[string]int),
	}
}

func (d *fakeDevice) program(name string, id uint32) *fakeProgram {
	d.calls[name]++
	p, ok := d.programs[id]
	if !ok || p.deleted {
		d.misuse = append(d.misuse, fmt.Sprintf("%s on program %d", name, id))
		return &fakeProgram{}
	}
	return p
}

func (d *fakeDevice) shader(name string, id uint32) *fakeShader {
	d.calls[name]++
	s, ok := d.shaders[id]
	if !ok || s.deleted {
		d.misuse = append(d.misuse, fmt.Sprintf("%s on shader %d", name, id))
		return &fakeShader{}
	}
	return s
}

func (d *fakeDevice) CreateProgram() uint32 {
	d.calls["CreateProgram"]++
	d.next++
	d.programs[d.next] = &fakeProgram{bound: make(map[string]uint32)}
	return d.next
}

func (d *fakeDevice) DeleteProgram(program uint32) {
	d.program("DeleteProgram", program).deleted = true
}

func (d *fakeDevice) AttachShader(program, shader uint32) {
	p := d.program("AttachShader", program)
	p.shaders = append(p.shaders, shader)
}

func (d *fakeDevice) BindAttribLocation(program, location uint32, name string) {
	d.program("BindAttribLocation", program).bound[name] = location
}

func (d *fakeDevice) LinkProgram(program uint32) {
	p := d.program("LinkProgram", program)
	p.linked = true
	p.ok = false

	var vertex, fragment int
	for _, id := range p.shaders {
		// Deleted shaders stay usable while attached.
		s := d.shaders[id]
		if !s.compiled || !s.ok {
			p.log = "one or more attached shaders not successfully compiled"
			return
		}
		if strings.Contains(s.source, "#link-error") {
			p.log = "unresolved varying vColor"
			return
		}
		switch s.stage {
		case StageVertex:
			vertex++
		case StageFragment:
			fragment++
		}
	}
	if vertex != 1 || fragment != 1 {
		p.log = "program needs exactly one vertex and one fragment shader"
		return
	}
	p.ok = true
	p.log = ""
}

func (d *fakeDevice) LinkStatus(program uint32) bool {
	p := d.program("LinkStatus", program)
	return p.linked && p.ok
}

func (d *fakeDevice) ProgramInfoLog(program uint32) string {
	return d.program("ProgramInfoLog", program).log
}

func (d *fakeDevice) UseProgram(program uint32) {
	d.calls["UseProgram"]++
	d.used = append(d.used, program)
}

func (d *fakeDevice) CreateShader(stage Stage) uint32 {
	d.calls["CreateShader"]++
	d.next++
	d.shaders[d.next] = &fakeShader{stage: stage}
	return d.next
}

func (d *fakeDevice) DeleteShader(shader uint32) {
	d.shader("DeleteShader", shader).deleted = true
}

func (d *fakeDevice) ShaderSource(shader uint32, source string) {
	s := d.shader("ShaderSource", shader)
	s.source = source
	s.compiled = false
}

func (d *fakeDevice) CompileShader(shader uint32) {
	s := d.shader("CompileShader", shader)
	s.compiled = true
	s.ok = !strings.Contains(s.source, "#error")
}

func (d *fakeDevice) CompileStatus(shader uint32) bool {
	s := d.shader("CompileStatus", shader)
	return s.compiled && s.ok
}

func (d *fakeDevice) ShaderInfoLog(shader uint32) string {
	s := d.shader("ShaderInfoLog", shader)
	if s.ok {
		return ""
	}
	return fmt.Sprintf("ERROR: 0:1: %s syntax error", s.stage)
}

func (d *fakeDevice) ActiveAttribCount(program uint32) int {
	d.program("ActiveAttribCount", program)
	return len(d.attribs)
}

func (d *fakeDevice) ActiveAttribName(program uint32, index int) string {
	d.program("ActiveAttribName", program)
	return d.attribs[index]
}

// AttribLocation honors explicit bindings and otherwise assigns slots in
// driver order.
func (d *fakeDevice) AttribLocation(program uint32, name string) int32 {
	p := d.program("AttribLocation", program)
	if loc, ok := p.bound[name]; ok {
		return int32(loc)
	}
	for i, a := range d.attribs {
		if a == name {
			return int32(i)
		}
	}
	return -1
}

func (d *fakeDevice) ActiveUniformCount(program uint32) int {
	d.program("ActiveUniformCount", program)
	return len(d.uniforms)
}

func (d *fakeDevice) ActiveUniformName(program uint32, index int) string {
	d.program("ActiveUniformName", program)
	return d.uniforms[index]
}

func (d *fakeDevice) UniformLocation(program uint32, name string) int32 {
	d.program("UniformLocation", program)
	for i, u := range d.uniforms {
		if u == name {
			return int32(i)
		}
	}
	return -1
}

// liveShaders counts shader objects not yet deleted.
func (d *fakeDevice) liveShaders() int {
	n := 0
	for _, s := range d.shaders {
		if !s.deleted {
			n++
		}
	}
	return n
}
