package jsonflat

import (
	"io"
	"strings"
)

// Flattener turns JSON text into flattened JSON text. A Flattener is
// immutable once built and safe for concurrent use.
type Flattener struct {
	opt Options
}

// New returns a Flattener configured by opt.
func New(opt Options) *Flattener { return &Flattener{opt: opt} }

// Options returns a copy of the configuration.
func (f *Flattener) Options() Options { return f.opt }

// FlattenToText flattens the JSON object in text and formats the result.
//
// Blank text fails with ErrInvalidArgument before any parsing. Text that is
// not valid JSON fails with ErrMalformedInput, and valid JSON whose top
// level is not an object fails with ErrInvalidArgument.
func (f *Flattener) FlattenToText(text string) (string, error) {
	out, err := f.FlattenToObject(text)
	if err != nil {
		return "", err
	}
	return f.Format(out)
}

// FlattenToObject validates, parses and flattens text without formatting
// the result. It fails the same way FlattenToText does.
func (f *Flattener) FlattenToObject(text string) (*Object, error) {
	if strings.TrimSpace(text) == "" {
		return nil, invalidArgument("cannot flatten empty input")
	}
	root, err := ParseBytes([]byte(text), f.opt)
	if err != nil {
		return nil, err
	}
	return f.FlattenValue(root)
}

// FlattenBytes is FlattenToText for a byte slice. A nil slice is absent
// input and fails with ErrInvalidArgument.
func (f *Flattener) FlattenBytes(data []byte) (string, error) {
	if data == nil {
		return "", invalidArgument("cannot flatten absent input")
	}
	return f.FlattenToText(string(data))
}

// FlattenReader reads r to the end and flattens its content. A nil reader
// is absent input and fails with ErrInvalidArgument.
func (f *Flattener) FlattenReader(r io.Reader) (string, error) {
	if r == nil {
		return "", invalidArgument("cannot flatten absent input")
	}
	data, err := readAll(r, f.opt.MaxBytes)
	if err != nil {
		return "", err
	}
	return f.FlattenToText(string(data))
}

// FlattenValue flattens an already parsed tree.
func (f *Flattener) FlattenValue(root Value) (*Object, error) {
	return Flatten(root, f.opt)
}

// Format renders a flattened object with the configured output options.
func (f *Flattener) Format(o *Object) (string, error) {
	return FormatObject(o, f.opt.Format)
}

// FlattenToText flattens text with default Options.
func FlattenToText(text string) (string, error) {
	return New(Options{}).FlattenToText(text)
}
