package jsonflat

import (
	"io"

	eng "github.com/reoring/jsonflat/internal/engine"
	jsonsrc "github.com/reoring/jsonflat/source/json"
)

// TokenKind enumerates JSON token kinds.
type TokenKind = eng.Kind

const (
	TokenBeginObject = eng.KindBeginObject
	TokenEndObject   = eng.KindEndObject
	TokenBeginArray  = eng.KindBeginArray
	TokenEndArray    = eng.KindEndArray
	TokenKey         = eng.KindKey
	TokenString      = eng.KindString
	TokenNumber      = eng.KindNumber
	TokenBool        = eng.KindBool
	TokenNull        = eng.KindNull
)

// Token describes a token in the input stream. Offset records the byte position
// when known (-1 otherwise).
type Token struct {
	Kind   TokenKind
	String string // Stored for key/string tokens.
	Number string // Literal text of number tokens.
	Bool   bool
	Offset int64
}

// Source abstracts over token-producing JSON readers.
type Source interface {
	NextToken() (Token, error)
	Location() int64 // byte offset; -1 if unknown
}

// JSONDriver converts JSON input into a Source. Drivers are selected per
// Flattener through Options.Driver; see package source for lookup by name.
type JSONDriver interface {
	NewReader(r io.Reader) Source
	NewBytes(b []byte) Source
	Name() string
}

// DefaultDriverName is the name of the driver used when Options.Driver is nil.
const DefaultDriverName = "encoding/json"

// DefaultJSONDriver returns the encoding/json-backed driver.
func DefaultJSONDriver() JSONDriver { return defaultJSONDriver{} }

type defaultJSONDriver struct{}

func (defaultJSONDriver) NewReader(r io.Reader) Source {
	return &engineSourceAdapter{inner: jsonsrc.NewReader(r)}
}
func (defaultJSONDriver) NewBytes(b []byte) Source {
	return &engineSourceAdapter{inner: jsonsrc.NewBytes(b)}
}
func (defaultJSONDriver) Name() string { return DefaultDriverName }

// SourceFromEngine wraps an engine.TokenSource as a jsonflat.Source.
func SourceFromEngine(inner eng.TokenSource) Source {
	return &engineSourceAdapter{inner: inner}
}

// EnforceSource wraps a Source with duplicate key and depth enforcement.
// Duplicate keys reported at Warn go to opt.IssueSink.
func EnforceSource(s Source, opt Options) Source {
	eo := eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
	}
	if eo.Disabled() {
		return s
	}
	if opt.IssueSink != nil {
		eo.IssueSink = func(si eng.SimpleIssue) { opt.IssueSink(fromEngineIssue(si)) }
	}
	// Fast-path: unwrap to avoid public<->engine adapter round-trips.
	if ea, ok := s.(*engineSourceAdapter); ok {
		return &engineSourceAdapter{inner: eng.WrapWithEnforcement(ea.inner, eo)}
	}
	return &engineSourceAdapter{inner: eng.WrapWithEnforcement(publicSourceAdapter{s}, eo)}
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}

type engineSourceAdapter struct {
	inner eng.TokenSource
}

func (s *engineSourceAdapter) NextToken() (Token, error) {
	t, err := s.inner.NextToken()
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: t.Kind, String: t.String, Number: t.Number, Bool: t.Bool, Offset: t.Offset}, nil
}
func (s *engineSourceAdapter) Location() int64 { return s.inner.Location() }

// publicSourceAdapter exposes a caller-supplied Source to the engine.
type publicSourceAdapter struct{ s Source }

func (p publicSourceAdapter) NextToken() (eng.Token, error) {
	t, err := p.s.NextToken()
	if err != nil {
		return eng.Token{}, err
	}
	return eng.Token{Kind: t.Kind, String: t.String, Number: t.Number, Bool: t.Bool, Offset: t.Offset}, nil
}
func (p publicSourceAdapter) Location() int64 { return p.s.Location() }
