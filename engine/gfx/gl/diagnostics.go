package glbackend

import (
	"errors"
	"fmt"
	"log"
	"os"
)

// DiagnosticLog receives shader diagnostics unless a program was built
// WithLogger.
var DiagnosticLog = log.New(os.Stdout, "", 0)

// ProgramTag tags link diagnostics; stage diagnostics use Stage.String.
const ProgramTag = "PROGRAM"

// DefaultInfoLogLimit caps driver logs, terminator included.
const DefaultInfoLogLimit = 1024

var (
	ErrSourceUnavailable = errors.New("shader source unavailable")
	ErrStageCompile      = errors.New("shader stage failed to compile")
	ErrLink              = errors.New("shader program failed to link")
)

const separator = " -- --------------------------------------------------- -- "

// Diagnostic is one failure observed while building a ShaderProgram.
type Diagnostic struct {
	Tag  string // VERTEX, FRAGMENT or PROGRAM
	Kind error  // one of the Err* sentinels
	Log  string // driver info log, or the read error text
}

func (d Diagnostic) Error() string {
	var head string
	switch d.Kind {
	case ErrSourceUnavailable:
		head = "ERROR::SHADER::FILE_NOT_SUCCESSFULLY_READ of type: "
	case ErrLink:
		head = "ERROR::PROGRAM_LINKING_ERROR of type: "
	default:
		head = "ERROR::SHADER_COMPILATION_ERROR of type: "
	}
	return fmt.Sprintf("%s%s\n%s\n%s", head, d.Tag, d.Log, separator)
}

func (d Diagnostic) Unwrap() error { return d.Kind }

// check queries compile or link status of id and records a diagnostic on
// failure. It reports whether the object is usable.
func (sp *ShaderProgram) check(id uint32, tag string) bool {
	if tag == ProgramTag {
		if sp.drv.ProgramLinked(id) {
			return true
		}
		sp.report(Diagnostic{Tag: tag, Kind: ErrLink, Log: sp.drv.ProgramInfoLog(id, sp.opts.logLimit)})
		return false
	}
	if sp.drv.ShaderCompiled(id) {
		return true
	}
	sp.report(Diagnostic{Tag: tag, Kind: ErrStageCompile, Log: sp.drv.ShaderInfoLog(id, sp.opts.logLimit)})
	return false
}

func (sp *ShaderProgram) report(d Diagnostic) {
	sp.status.Diagnostics = append(sp.status.Diagnostics, d)
	sp.opts.logger.Println(d.Error())
}
