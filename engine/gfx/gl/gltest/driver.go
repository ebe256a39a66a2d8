// Package gltest provides an in-memory glbackend.Driver for tests that
// have no OpenGL context.
//
// The fake keeps a GL-style object table and applies a few compile rules
// that are enough to exercise error paths: a stage needs a #version line,
// balanced braces and parentheses, and a main function. A program links
// when exactly one compiled vertex and one compiled fragment stage are
// attached. Uniforms are found by scanning "uniform <type> <name>;"
// declarations.
package gltest

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	glbackend "github.com/hubastard/firstgl/engine/gfx/gl"
)

var (
	uniformDecl = regexp.MustCompile(`(?m)^\s*uniform\s+\w+\s+(\w+)\s*;`)
	mainDecl    = regexp.MustCompile(`\bvoid\s+main\s*\(`)
)

type shader struct {
	stage    glbackend.Stage
	src      string
	compiled bool
	log      string
	uniforms []string
	// deleted marks glDeleteShader on a still-attached shader.
	deleted bool
}

type program struct {
	attached []uint32
	linked   bool
	log      string
	uniforms map[string]int32
	values   map[int32]any
}

var _ glbackend.Driver = (*Driver)(nil)

// Driver simulates the GL object table.
type Driver struct {
	next     uint32
	shaders  map[uint32]*shader
	programs map[uint32]*program
	current  uint32

	// UseCalls counts UseProgram invocations.
	UseCalls int
	// DroppedWrites counts uniform writes to location -1.
	DroppedWrites int
}

func NewDriver() *Driver {
	return &Driver{
		shaders:  map[uint32]*shader{},
		programs: map[uint32]*program{},
	}
}

func (d *Driver) id() uint32 {
	d.next++
	return d.next
}

func (d *Driver) CreateShader(stage glbackend.Stage) uint32 {
	if stage != glbackend.StageVertex && stage != glbackend.StageFragment {
		return 0
	}
	id := d.id()
	d.shaders[id] = &shader{stage: stage}
	return id
}

func (d *Driver) ShaderSource(id uint32, src string) {
	if sh, ok := d.shaders[id]; ok {
		sh.src = src
	}
}

func (d *Driver) CompileShader(id uint32) {
	sh, ok := d.shaders[id]
	if !ok {
		return
	}
	sh.log = compileLog(sh.src)
	sh.compiled = sh.log == ""
	sh.uniforms = nil
	if sh.compiled {
		for _, m := range uniformDecl.FindAllStringSubmatch(sh.src, -1) {
			sh.uniforms = append(sh.uniforms, m[1])
		}
	}
}

func compileLog(src string) string {
	trimmed := strings.TrimSpace(src)
	if trimmed == "" {
		return "ERROR: 0:1: '' : syntax error: unexpected end of file, no shader source"
	}
	if !strings.HasPrefix(trimmed, "#version") {
		return "ERROR: 0:1: '' : #version required and missing."
	}
	if line, tok, ok := unbalanced(src); ok {
		return fmt.Sprintf("ERROR: 0:%d: '%c' : syntax error: unbalanced delimiter", line, tok)
	}
	if !mainDecl.MatchString(src) {
		return "ERROR: 0:1: 'main' : function not defined: missing entry point"
	}
	return ""
}

func unbalanced(src string) (line int, tok rune, ok bool) {
	pairs := map[rune]rune{')': '(', '}': '{'}
	var stack []rune
	line = 1
	for _, r := range src {
		switch r {
		case '\n':
			line++
		case '(', '{':
			stack = append(stack, r)
		case ')', '}':
			if len(stack) == 0 || stack[len(stack)-1] != pairs[r] {
				return line, r, true
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		return line, stack[len(stack)-1], true
	}
	return 0, 0, false
}

func (d *Driver) ShaderCompiled(id uint32) bool {
	sh, ok := d.shaders[id]
	return ok && sh.compiled
}

func (d *Driver) ShaderInfoLog(id uint32, bufSize int32) string {
	sh, ok := d.shaders[id]
	if !ok {
		return ""
	}
	return truncate(sh.log, bufSize)
}

// truncate mirrors glGet*InfoLog: bufSize counts the terminator.
func truncate(s string, bufSize int32) string {
	if bufSize <= 0 {
		return ""
	}
	if int32(len(s)) > bufSize-1 {
		return s[:bufSize-1]
	}
	return s
}

func (d *Driver) DeleteShader(id uint32) {
	sh, ok := d.shaders[id]
	if !ok {
		return
	}
	if d.attachedAnywhere(id) {
		sh.deleted = true
		return
	}
	delete(d.shaders, id)
}

func (d *Driver) attachedAnywhere(id uint32) bool {
	for _, p := range d.programs {
		for _, a := range p.attached {
			if a == id {
				return true
			}
		}
	}
	return false
}

func (d *Driver) CreateProgram() uint32 {
	id := d.id()
	d.programs[id] = &program{uniforms: map[string]int32{}, values: map[int32]any{}}
	return id
}

func (d *Driver) AttachShader(prog, sh uint32) {
	p, ok := d.programs[prog]
	if !ok {
		return
	}
	if _, ok := d.shaders[sh]; !ok {
		return
	}
	p.attached = append(p.attached, sh)
}

func (d *Driver) DetachShader(prog, sh uint32) {
	p, ok := d.programs[prog]
	if !ok {
		return
	}
	for i, a := range p.attached {
		if a == sh {
			p.attached = append(p.attached[:i], p.attached[i+1:]...)
			break
		}
	}
	if s, ok := d.shaders[sh]; ok && s.deleted && !d.attachedAnywhere(sh) {
		delete(d.shaders, sh)
	}
}

func (d *Driver) LinkProgram(id uint32) {
	p, ok := d.programs[id]
	if !ok {
		return
	}
	p.linked, p.log = false, ""
	p.uniforms = map[string]int32{}
	p.values = map[int32]any{}

	var vertex, fragment int
	names := map[string]bool{}
	for _, a := range p.attached {
		sh := d.shaders[a]
		if !sh.compiled {
			p.log = fmt.Sprintf("ERROR: Linking %s stage: one or more attached shaders not successfully compiled", strings.ToLower(sh.stage.String()))
			return
		}
		switch sh.stage {
		case glbackend.StageVertex:
			vertex++
		case glbackend.StageFragment:
			fragment++
		}
		for _, u := range sh.uniforms {
			names[u] = true
		}
	}
	if vertex != 1 || fragment != 1 {
		p.log = "ERROR: Linking: program needs exactly one vertex and one fragment stage"
		return
	}

	sorted := make([]string, 0, len(names))
	for n := range names {
		sorted = append(sorted, n)
	}
	sort.Strings(sorted)
	for i, n := range sorted {
		p.uniforms[n] = int32(i)
	}
	p.linked = true
}

func (d *Driver) ProgramLinked(id uint32) bool {
	p, ok := d.programs[id]
	return ok && p.linked
}

func (d *Driver) ProgramInfoLog(id uint32, bufSize int32) string {
	p, ok := d.programs[id]
	if !ok {
		return ""
	}
	return truncate(p.log, bufSize)
}

func (d *Driver) DeleteProgram(id uint32) {
	p, ok := d.programs[id]
	if !ok {
		return
	}
	attached := p.attached
	delete(d.programs, id)
	for _, sh := range attached {
		if s, ok := d.shaders[sh]; ok && s.deleted && !d.attachedAnywhere(sh) {
			delete(d.shaders, sh)
		}
	}
	if d.current == id {
		d.current = 0
	}
}

func (d *Driver) UseProgram(id uint32) {
	d.UseCalls++
	if id != 0 {
		if _, ok := d.programs[id]; !ok {
			return
		}
	}
	d.current = id
}

func (d *Driver) UniformLocation(prog uint32, name string) int32 {
	p, ok := d.programs[prog]
	if !ok || !p.linked {
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *Driver) write(loc int32, v any) {
	p, ok := d.programs[d.current]
	if loc == -1 || !ok || !p.linked {
		d.DroppedWrites++
		return
	}
	p.values[loc] = v
}

func (d *Driver) Uniform1i(loc int32, v int32)                 { d.write(loc, v) }
func (d *Driver) Uniform1f(loc int32, v float32)               { d.write(loc, v) }
func (d *Driver) Uniform3fv(loc int32, v *[3]float32)          { d.write(loc, *v) }
func (d *Driver) Uniform4fv(loc int32, v *[4]float32)          { d.write(loc, *v) }
func (d *Driver) UniformMatrix4fv(loc int32, m *[4][4]float32) { d.write(loc, *m) }

// Current returns the program made current by UseProgram.
func (d *Driver) Current() uint32 { return d.current }

// LiveShaders returns the number of shader objects still in the table,
// including those flagged for deletion but still attached.
func (d *Driver) LiveShaders() int { return len(d.shaders) }

func (d *Driver) LivePrograms() int { return len(d.programs) }

// Uniform returns the last value written to name in program prog.
func (d *Driver) Uniform(prog uint32, name string) (any, bool) {
	p, ok := d.programs[prog]
	if !ok {
		return nil, false
	}
	loc, ok := p.uniforms[name]
	if !ok {
		return nil, false
	}
	v, ok := p.values[loc]
	return v, ok
}
