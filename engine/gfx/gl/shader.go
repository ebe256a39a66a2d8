package glbackend

import (
	"errors"
	"log"

	"github.com/bloeys/gglm/gglm"
	"github.com/hubastard/firstgl/engine/assets"
)

// Status is the outcome of building a ShaderProgram.
type Status struct {
	Linked      bool
	Diagnostics []Diagnostic
}

// Err joins the diagnostics, or returns nil for a clean link.
func (s Status) Err() error {
	if s.Linked && len(s.Diagnostics) == 0 {
		return nil
	}
	errs := make([]error, 0, len(s.Diagnostics)+1)
	for _, d := range s.Diagnostics {
		errs = append(errs, d)
	}
	if !s.Linked && len(errs) == 0 {
		errs = append(errs, ErrLink)
	}
	return errors.Join(errs...)
}

type options struct {
	logger      *log.Logger
	logLimit    int32
	linkOnError bool
}

// Option configures NewShaderProgram.
type Option func(*options)

// WithLogger sends diagnostics to l instead of DiagnosticLog.
func WithLogger(l *log.Logger) Option { return func(o *options) { o.logger = l } }

// WithInfoLogLimit caps fetched driver logs at n bytes.
func WithInfoLogLimit(n int32) Option {
	return func(o *options) {
		if n > 0 {
			o.logLimit = n
		}
	}
}

// WithoutLinkOnCompileFailure skips linking when a stage failed to compile.
// No program object is created in that case and ID returns 0.
func WithoutLinkOnCompileFailure() Option { return func(o *options) { o.linkOnError = false } }

// ShaderProgram is a linked vertex + fragment program.
type ShaderProgram struct {
	drv    Driver
	id     uint32
	status Status
	opts   options
	locs   map[string]int32
}

// LoadShaderProgram builds a program from two shader files.
func LoadShaderProgram(drv Driver, vertexPath, fragmentPath string, opts ...Option) *ShaderProgram {
	return NewShaderProgram(drv, assets.File(vertexPath), assets.File(fragmentPath), opts...)
}

// NewShaderProgram compiles vertex and fragment, links them and releases
// the stage objects. Failures are logged and recorded in Status; the
// program is returned either way.
func NewShaderProgram(drv Driver, vertex, fragment assets.Source, opts ...Option) *ShaderProgram {
	sp := &ShaderProgram{
		drv: drv,
		opts: options{
			logger:      DiagnosticLog,
			logLimit:    DefaultInfoLogLimit,
			linkOnError: true,
		},
		locs: map[string]int32{},
	}
	for _, o := range opts {
		o(&sp.opts)
	}

	vsrc := sp.load(vertex, StageVertex)
	fsrc := sp.load(fragment, StageFragment)

	var stages []uint32
	defer func() {
		for _, sh := range stages {
			if sp.id != 0 {
				drv.DetachShader(sp.id, sh)
			}
			drv.DeleteShader(sh)
		}
	}()

	compiled := true
	for _, st := range []struct {
		stage Stage
		src   string
	}{{StageVertex, vsrc}, {StageFragment, fsrc}} {
		sh := drv.CreateShader(st.stage)
		stages = append(stages, sh)
		drv.ShaderSource(sh, st.src)
		drv.CompileShader(sh)
		if !sp.check(sh, st.stage.String()) {
			compiled = false
		}
	}

	if !compiled && !sp.opts.linkOnError {
		return sp
	}

	sp.id = drv.CreateProgram()
	for _, sh := range stages {
		drv.AttachShader(sp.id, sh)
	}
	drv.LinkProgram(sp.id)
	sp.status.Linked = sp.check(sp.id, ProgramTag)
	return sp
}

func (sp *ShaderProgram) load(src assets.Source, stage Stage) string {
	if src == nil {
		sp.report(Diagnostic{Tag: stage.String(), Kind: ErrSourceUnavailable, Log: "no source"})
		return ""
	}
	text, err := src.Load()
	if err != nil {
		sp.report(Diagnostic{Tag: stage.String(), Kind: ErrSourceUnavailable, Log: err.Error()})
		return ""
	}
	return text
}

// ID returns the program object name; it may name a program that failed to link.
func (sp *ShaderProgram) ID() uint32 { return sp.id }

func (sp *ShaderProgram) Status() Status { return sp.status }

// Valid reports whether the program linked.
func (sp *ShaderProgram) Valid() bool { return sp.status.Linked }

func (sp *ShaderProgram) Err() error { return sp.status.Err() }

// Use makes this the current program.
func (sp *ShaderProgram) Use() { sp.drv.UseProgram(sp.id) }

// Delete releases the program object.
func (sp *ShaderProgram) Delete() {
	if sp.id == 0 {
		return
	}
	sp.drv.DeleteProgram(sp.id)
	sp.id = 0
	sp.status.Linked = false
	clear(sp.locs)
}

// Uniform writes go to the current program, so call Use first.
// Unknown names resolve to -1 and the write is dropped by the driver.

func (sp *ShaderProgram) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	sp.drv.Uniform1i(sp.location(name), i)
}

func (sp *ShaderProgram) SetInt(name string, v int32) {
	sp.drv.Uniform1i(sp.location(name), v)
}

func (sp *ShaderProgram) SetFloat(name string, v float32) {
	sp.drv.Uniform1f(sp.location(name), v)
}

func (sp *ShaderProgram) SetVec3(name string, v *gglm.Vec3) {
	sp.drv.Uniform3fv(sp.location(name), &v.Data)
}

func (sp *ShaderProgram) SetVec4(name string, v *gglm.Vec4) {
	sp.drv.Uniform4fv(sp.location(name), &v.Data)
}

func (sp *ShaderProgram) SetMat4(name string, m *gglm.Mat4) {
	sp.drv.UniformMatrix4fv(sp.location(name), &m.Data)
}

func (sp *ShaderProgram) location(name string) int32 {
	if loc, ok := sp.locs[name]; ok {
		return loc
	}
	loc := int32(-1)
	if sp.id != 0 {
		loc = sp.drv.UniformLocation(sp.id, name)
	}
	sp.locs[name] = loc
	return loc
}
