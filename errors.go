package jsonflat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/jsonflat/i18n"
	eng "github.com/reoring/jsonflat/internal/engine"
)

// Issue codes
const (
	CodeInvalidArgument = "invalid_argument"
	CodeMalformedInput  = "malformed_input"
	CodeDuplicateKey    = eng.CodeDuplicateKey
	CodeTooDeep         = eng.CodeTooDeep
	CodeTruncated       = "truncated"
	CodeKeyCollision    = "key_collision"
)

// Error kinds. Every Issue belongs to exactly one of them, so callers can
// branch with errors.Is without inspecting codes.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrMalformedInput  = errors.New("malformed input")
)

// Issue represents a single failure or warning.
type Issue struct {
	Path    string // JSON Pointer into the input (for example: /c/d).
	Code    string // One of the codes listed above.
	Message string
	Key     string // Flattened key, for key_collision.
	Cause   error  // Optional: underlying error.
	Offset  int64  // Byte offset in the input source (-1 when unknown).
}

// Kind returns ErrInvalidArgument or ErrMalformedInput.
func (it Issue) Kind() error {
	switch it.Code {
	case CodeInvalidArgument, CodeKeyCollision:
		return ErrInvalidArgument
	}
	return ErrMalformedInput
}

// Issues is a collection of issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string { return iss.render(nil) }

// Localized summarizes the first few issues, naming each code through tr.
func (iss Issues) Localized(tr i18n.Translator) string { return iss.render(tr) }

func (iss Issues) render(tr i18n.Translator) string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(iss), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		code := it.Code
		if tr != nil {
			code = tr.Message(it.Code, map[string]string{"key": it.Key})
		}
		// e.g. malformed_input at /: unexpected EOF
		fmt.Fprintf(b, "%s at %s", code, normalizePath(it.Path))
		if it.Message != "" {
			b.WriteString(": ")
			b.WriteString(it.Message)
		}
	}
	if n := len(iss); n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Is matches ErrInvalidArgument or ErrMalformedInput against the kind of
// any contained issue.
func (iss Issues) Is(target error) bool {
	for _, it := range iss {
		if it.Kind() == target {
			return true
		}
	}
	return false
}

// Unwrap exposes the underlying causes.
func (iss Issues) Unwrap() []error {
	var errs []error
	for _, it := range iss {
		if it.Cause != nil {
			errs = append(errs, it.Cause)
		}
	}
	return errs
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

func invalidArgument(msg string) error {
	return Issues{{Path: "/", Code: CodeInvalidArgument, Message: msg, Offset: -1}}
}

// malformed converts errors raised while reading tokens into Issues. Issues
// raised by the enforcement layer keep their code and path.
func malformed(err error, offset int64) error {
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return Issues{{Path: ie.Path, Code: ie.Code, Message: ie.Message, Offset: ie.Offset}}
	}
	return Issues{{Path: "/", Code: CodeMalformedInput, Message: err.Error(), Cause: err, Offset: offset}}
}

func fromEngineIssue(si eng.SimpleIssue) Issue {
	return Issue{Path: si.Path, Code: si.Code, Message: si.Message, Offset: si.Offset}
}

func normalizePath(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
