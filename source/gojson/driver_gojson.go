// Package gojson provides a token source backed by goccy/go-json.
package gojson

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	"github.com/reoring/jsonflat"
	eng "github.com/reoring/jsonflat/internal/engine"
)

// Name is the driver name reported by Driver().Name().
const Name = "go-json"

// Driver returns a jsonflat.JSONDriver backed by goccy/go-json.
func Driver() jsonflat.JSONDriver { return driverGoJSON{} }

type driverGoJSON struct{}

func (driverGoJSON) NewReader(r io.Reader) jsonflat.Source {
	return jsonflat.SourceFromEngine(NewReader(r))
}
func (driverGoJSON) NewBytes(b []byte) jsonflat.Source {
	return jsonflat.SourceFromEngine(NewBytes(b))
}
func (driverGoJSON) Name() string { return Name }

// ---- engine.TokenSource implementation using go-json Decoder ----

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	expectingKey bool
}

type source struct {
	dec   *j.Decoder
	stack []frame
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON using go-json.
// The input is read fully and checked before the first token is produced.
func NewReader(r io.Reader) eng.TokenSource {
	b, err := io.ReadAll(r)
	if err != nil {
		return &failedSource{err: err, offset: -1}
	}
	return NewBytes(b)
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON using go-json.
// A grammar error anywhere in b is returned by the first NextToken call.
func NewBytes(b []byte) eng.TokenSource {
	if bad := checkGrammar(b); bad != nil {
		return bad
	}
	dec := j.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	return &source{dec: dec}
}

// checkGrammar rejects input that is not exactly one well-formed JSON value.
// go-json's Decoder.Token skips commas and colons without checking them and
// accepts numbers such as 01, so the token stream alone cannot tell
// {"a":1 "b":2} from {"a":1,"b":2}.
func checkGrammar(b []byte) *failedSource {
	var raw json.RawMessage
	err := json.Unmarshal(b, &raw)
	if err == nil {
		return nil
	}
	offset := int64(-1)
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		offset = syn.Offset
	}
	return &failedSource{err: err, offset: offset}
}

// failedSource reports the same error on every call.
type failedSource struct {
	err    error
	offset int64
}

func (f *failedSource) NextToken() (eng.Token, error) { return eng.Token{}, f.err }
func (f *failedSource) Location() int64               { return f.offset }

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.stack = append(s.stack, frame{kind: kindObject, expectingKey: true})
			return eng.Token{Kind: eng.KindBeginObject, Offset: -1}, nil
		case '}':
			s.pop()
			return eng.Token{Kind: eng.KindEndObject, Offset: -1}, nil
		case '[':
			s.stack = append(s.stack, frame{kind: kindArray})
			return eng.Token{Kind: eng.KindBeginArray, Offset: -1}, nil
		case ']':
			s.pop()
			return eng.Token{Kind: eng.KindEndArray, Offset: -1}, nil
		}
	case string:
		if n := len(s.stack); n > 0 {
			top := &s.stack[n-1]
			if top.kind == kindObject && top.expectingKey {
				top.expectingKey = false
				return eng.Token{Kind: eng.KindKey, String: v, Offset: -1}, nil
			}
		}
		s.valueDone()
		return eng.Token{Kind: eng.KindString, String: v, Offset: -1}, nil
	case bool:
		s.valueDone()
		return eng.Token{Kind: eng.KindBool, Bool: v, Offset: -1}, nil
	case j.Number:
		s.valueDone()
		return eng.Token{Kind: eng.KindNumber, Number: string(v), Offset: -1}, nil
	case float64:
		s.valueDone()
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: -1}, nil
	}
	s.valueDone()
	return eng.Token{Kind: eng.KindNull, Offset: -1}, nil
}

func (s *source) pop() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
	s.valueDone()
}

func (s *source) valueDone() {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.kind == kindObject && !top.expectingKey {
			top.expectingKey = true
		}
	}
}

func (s *source) Location() int64 { return -1 }
