// Package render emits an inferred Type tree as indented declaration text.
package render

import (
	"go/token"
	"io"
	"strings"

	"github.com/iancoleman/strcase"

	"shapegen/internal/infer"
)

// Options configures the spelling of primitive types in rendered
// declarations. Empty spellings fall back to the defaults. Naming options
// rewrite field names at output time only; the inferred tree always keeps
// names exactly as observed.
type Options struct {
	String  string
	Integer string
	Float   string
	Bool    string
	Any     string
	Unknown string

	// PascalCaseFields converts emitted field names to PascalCase.
	PascalCaseFields bool
	// FieldMappings overrides individual field names, checked before the
	// PascalCase conversion.
	FieldMappings map[string]string
}

// DefaultOptions returns the default primitive spellings.
func DefaultOptions() Options {
	return Options{
		String:  "string",
		Integer: "int64",
		Float:   "float64",
		Bool:    "bool",
		Any:     "any",
		Unknown: "unknown",
	}
}

const indentUnit = "    "

// Renderer writes Type trees as declaration text. Rendering is a single
// top-to-bottom traversal and is deterministic: the same tree and options
// always produce byte-identical output.
type Renderer struct {
	opts Options
}

// New creates a Renderer, filling unset spellings from DefaultOptions.
func New(opts Options) *Renderer {
	def := DefaultOptions()
	if opts.String == "" {
		opts.String = def.String
	}
	if opts.Integer == "" {
		opts.Integer = def.Integer
	}
	if opts.Float == "" {
		opts.Float = def.Float
	}
	if opts.Bool == "" {
		opts.Bool = def.Bool
	}
	if opts.Any == "" {
		opts.Any = def.Any
	}
	if opts.Unknown == "" {
		opts.Unknown = def.Unknown
	}
	return &Renderer{opts: opts}
}

// Render writes the declaration text for t to w. The only failure mode is
// the sink refusing the write.
func (r *Renderer) Render(w io.Writer, t *infer.Type) error {
	_, err := io.WriteString(w, r.RenderString(t))
	return err
}

// RenderDecl writes the declaration bound to a named constant, as
// "const <name> = <decl>;" followed by a newline.
func (r *Renderer) RenderDecl(w io.Writer, name string, t *infer.Type) error {
	var sb strings.Builder
	sb.WriteString("const ")
	sb.WriteString(r.fieldName(name))
	sb.WriteString(" = ")
	r.writeType(&sb, t, 0)
	sb.WriteString(";\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderString renders t into a string.
func (r *Renderer) RenderString(t *infer.Type) string {
	var sb strings.Builder
	r.writeType(&sb, t, 0)
	return sb.String()
}

func (r *Renderer) writeType(sb *strings.Builder, t *infer.Type, indent int) {
	switch t.Kind {
	case infer.Unknown:
		sb.WriteString(r.opts.Unknown)
	case infer.Any:
		sb.WriteString(r.opts.Any)
	case infer.Bool:
		sb.WriteString(r.opts.Bool)
	case infer.Integer:
		// Observed ranges drive unification only; they never render.
		sb.WriteString(r.opts.Integer)
	case infer.Float:
		sb.WriteString(r.opts.Float)
	case infer.String:
		sb.WriteString(r.opts.String)
	case infer.Array:
		sb.WriteString("[]")
		r.writeType(sb, t.Child, indent)
	case infer.Optional:
		sb.WriteString("?")
		r.writeType(sb, t.Child, indent)
	case infer.Object:
		sb.WriteString("{\n")
		for _, f := range t.Fields {
			for i := 0; i <= indent; i++ {
				sb.WriteString(indentUnit)
			}
			sb.WriteString(r.fieldName(f.Name))
			sb.WriteString(": ")
			r.writeType(sb, f.Type, indent+1)
			sb.WriteString(",\n")
		}
		for i := 0; i < indent; i++ {
			sb.WriteString(indentUnit)
		}
		sb.WriteString("}")
	}
}

// fieldName applies the configured naming overrides and escapes names that
// cannot appear as bare identifiers.
func (r *Renderer) fieldName(name string) string {
	if mapped, ok := r.opts.FieldMappings[name]; ok {
		name = mapped
	} else if r.opts.PascalCaseFields {
		name = strcase.ToCamel(name)
	}
	if isBareIdentifier(name) {
		return name
	}
	return escapeIdentifier(name)
}

// isBareIdentifier reports whether name can be emitted without escaping:
// letter or underscore first, alphanumerics or underscores after, and not a
// reserved keyword of the declaration syntax.
func isBareIdentifier(name string) bool {
	if name == "" || token.IsKeyword(name) {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

var rawEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// escapeIdentifier emits the raw-identifier form used for names that are
// not valid bare identifiers.
func escapeIdentifier(name string) string {
	return `@"` + rawEscaper.Replace(name) + `"`
}
