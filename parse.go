package jsonflat

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Parse consumes exactly one JSON value from src and builds its tree.
// Anything but end of input after that value is malformed input.
func Parse(src Source) (Value, error) {
	tok, err := src.NextToken()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return Value{}, malformed(err, src.Location())
	}
	v, err := parseValue(src, tok)
	if err != nil {
		return Value{}, err
	}
	tok, err = src.NextToken()
	switch {
	case errors.Is(err, io.EOF):
		return v, nil
	case err != nil:
		return Value{}, malformed(err, src.Location())
	default:
		return Value{}, malformed(fmt.Errorf("unexpected %s after top-level value", tok.Kind), tok.Offset)
	}
}

// ParseBytes parses data with the driver and limits configured in opt.
func ParseBytes(data []byte, opt Options) (Value, error) {
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return Value{}, Issues{{
			Path:    "/",
			Code:    CodeTruncated,
			Message: fmt.Sprintf("input is %d bytes, limit is %d", len(data), opt.MaxBytes),
			Offset:  opt.MaxBytes,
		}}
	}
	return Parse(EnforceSource(opt.driver().NewBytes(data), opt))
}

// ParseReader reads r fully, honoring opt.MaxBytes, and parses the result.
func ParseReader(r io.Reader, opt Options) (Value, error) {
	data, err := readAll(r, opt.MaxBytes)
	if err != nil {
		return Value{}, err
	}
	return ParseBytes(data, opt)
}

// readAll reads at most limit+1 bytes so an oversized input is detected
// without buffering all of it.
func readAll(r io.Reader, limit int64) ([]byte, error) {
	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func parseValue(src Source, tok Token) (Value, error) {
	switch tok.Kind {
	case TokenBeginObject:
		return parseObject(src)
	case TokenBeginArray:
		return parseArray(src)
	case TokenString:
		return StringValue(tok.String), nil
	case TokenNumber:
		return NumberValue(tok.Number), nil
	case TokenBool:
		return BoolValue(tok.Bool), nil
	case TokenNull:
		return NullValue(), nil
	}
	return Value{}, malformed(fmt.Errorf("unexpected %s", tok.Kind), tok.Offset)
}

func parseObject(src Source) (Value, error) {
	obj := NewObject()
	for {
		tok, err := next(src)
		if err != nil {
			return Value{}, err
		}
		if tok.Kind == TokenEndObject {
			return ObjectValue(obj), nil
		}
		if tok.Kind != TokenKey {
			return Value{}, malformed(fmt.Errorf("expected object key, got %s", tok.Kind), tok.Offset)
		}
		vt, err := next(src)
		if err != nil {
			return Value{}, err
		}
		v, err := parseValue(src, vt)
		if err != nil {
			return Value{}, err
		}
		obj.Set(tok.String, v)
	}
}

func parseArray(src Source) (Value, error) {
	arr := []Value{}
	for {
		tok, err := next(src)
		if err != nil {
			return Value{}, err
		}
		if tok.Kind == TokenEndArray {
			return ArrayValue(arr...), nil
		}
		v, err := parseValue(src, tok)
		if err != nil {
			return Value{}, err
		}
		arr = append(arr, v)
	}
}

// next reads a token inside a container, where end of input is premature.
func next(src Source) (Token, error) {
	tok, err := src.NextToken()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return Token{}, malformed(err, src.Location())
	}
	return tok, nil
}
