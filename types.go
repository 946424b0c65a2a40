package jsonflat

// Separator joins path segments into a flattened key.
const Separator = "."

// DefaultIndent is the indentation used when FormatOpt.Indent is empty.
const DefaultIndent = "  "

// Severity expresses how a policy violation is handled.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

func (s Severity) String() string {
	switch s {
	case Warn:
		return "warn"
	case Error:
		return "error"
	}
	return "ignore"
}

// ParseSeverity converts "ignore", "warn" or "error" into a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "", "ignore":
		return Ignore, nil
	case "warn":
		return Warn, nil
	case "error":
		return Error, nil
	}
	return Ignore, invalidArgument("unknown severity " + `"` + s + `"`)
}

// Strictness configures enforcement for duplicate input keys and colliding
// flattened keys.
type Strictness struct {
	OnDuplicateKey Severity // Duplicate keys inside one input object.
	OnCollision    Severity // Two paths flattening to the same key.
}

// FormatOpt controls text output.
type FormatOpt struct {
	Indent  string // Defaults to DefaultIndent.
	Compact bool   // Single line, no indentation.
}

// Options configures a Flattener. The zero value is usable: encoding/json
// driver, no limits, last-write-wins on collisions, indented output.
type Options struct {
	Driver     JSONDriver
	Strictness Strictness
	MaxDepth   int   // Maximum container nesting; 0 disables.
	MaxBytes   int64 // Maximum input size; 0 disables.
	Format     FormatOpt
	// IssueSink receives warnings (Severity Warn). It must be safe for
	// concurrent use when the Flattener is shared between goroutines.
	IssueSink func(Issue)
}

func (o Options) driver() JSONDriver {
	if o.Driver == nil {
		return DefaultJSONDriver()
	}
	return o.Driver
}

func (o Options) warn(it Issue) {
	if o.IssueSink != nil {
		o.IssueSink(it)
	}
}
