package jsonflat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	j "github.com/goccy/go-json"
)

// Format serializes v as JSON text. Object members are written in insertion
// order and numbers keep their literal text. Output is indented with
// opt.Indent (DefaultIndent when empty) unless opt.Compact is set.
func Format(v Value, opt FormatOpt) (string, error) {
	if v.Kind() == KindObject && v.Object().Len() == 0 {
		return "{}", nil
	}
	compact, err := appendJSON(nil, v)
	if err != nil {
		return "", err
	}
	if opt.Compact {
		return string(compact), nil
	}
	indent := opt.Indent
	if indent == "" {
		indent = DefaultIndent
	}
	var out bytes.Buffer
	if err := j.Indent(&out, compact, "", indent); err != nil {
		return "", fmt.Errorf("jsonflat: indent output: %w", err)
	}
	return out.String(), nil
}

// FormatObject is Format for an Object, typically the result of Flatten.
func FormatObject(o *Object, opt FormatOpt) (string, error) {
	return Format(ObjectValue(o), opt)
}

func appendJSON(dst []byte, v Value) ([]byte, error) {
	switch v.Kind() {
	case KindNull:
		return append(dst, "null"...), nil
	case KindBool:
		return strconv.AppendBool(dst, v.Bool()), nil
	case KindNumber:
		lit := v.Number()
		if !validNumber(lit) {
			return nil, fmt.Errorf("jsonflat: invalid number literal %q", lit)
		}
		return append(dst, lit...), nil
	case KindString:
		return appendString(dst, v.Str())
	case KindArray:
		dst = append(dst, '[')
		for i, e := range v.Array() {
			if i > 0 {
				dst = append(dst, ',')
			}
			var err error
			if dst, err = appendJSON(dst, e); err != nil {
				return nil, err
			}
		}
		return append(dst, ']'), nil
	case KindObject:
		dst = append(dst, '{')
		for i, m := range v.Object().Members() {
			if i > 0 {
				dst = append(dst, ',')
			}
			var err error
			if dst, err = appendString(dst, m.Key); err != nil {
				return nil, err
			}
			dst = append(dst, ':')
			if dst, err = appendJSON(dst, m.Value); err != nil {
				return nil, err
			}
		}
		return append(dst, '}'), nil
	}
	return nil, fmt.Errorf("jsonflat: cannot format %s", v.Kind())
}

func appendString(dst []byte, s string) ([]byte, error) {
	b, err := j.Marshal(s)
	if err != nil {
		return nil, err
	}
	return append(dst, b...), nil
}

// validNumber reports whether lit matches the JSON number grammar. go-json's
// Valid accepts literals such as 01 and 1., so the check goes through
// encoding/json, whose Number encoder rejects anything outside RFC 8259.
func validNumber(lit string) bool {
	if lit == "" {
		return false
	}
	_, err := json.Marshal(json.Number(lit))
	return err == nil
}
