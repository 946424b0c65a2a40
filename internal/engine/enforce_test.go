package engine

import (
	"errors"
	"io"
	"testing"
)

type tokens struct {
	toks []Token
	i    int
}

func (s *tokens) NextToken() (Token, error) {
	if s.i >= len(s.toks) {
		return Token{}, io.EOF
	}
	t := s.toks[s.i]
	s.i++
	return t, nil
}
func (s *tokens) Location() int64 { return -1 }

func drain(src TokenSource) error {
	for {
		if _, err := src.NextToken(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// {"a":1,"o":{"a":2,"a":3}}
func dupInput() *tokens {
	return &tokens{toks: []Token{
		{Kind: KindBeginObject},
		{Kind: KindKey, String: "a"},
		{Kind: KindNumber, Number: "1"},
		{Kind: KindKey, String: "o"},
		{Kind: KindBeginObject},
		{Kind: KindKey, String: "a"},
		{Kind: KindNumber, Number: "2"},
		{Kind: KindKey, String: "a", Offset: 20},
		{Kind: KindNumber, Number: "3"},
		{Kind: KindEndObject},
		{Kind: KindEndObject},
	}}
}

func TestEnforce_DuplicateIgnore(t *testing.T) {
	if err := drain(WrapWithEnforcement(dupInput(), EnforceOptions{})); err != nil {
		t.Fatalf("err: %v", err)
	}
}

func TestEnforce_DuplicateWarn(t *testing.T) {
	var got []SimpleIssue
	src := WrapWithEnforcement(dupInput(), EnforceOptions{
		OnDuplicate: DupWarn,
		IssueSink:   func(si SimpleIssue) { got = append(got, si) },
	})
	if err := drain(src); err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 issue, got %v", got)
	}
	if got[0].Code != CodeDuplicateKey || got[0].Path != "/o/a" || got[0].Offset != 20 {
		t.Fatalf("unexpected issue: %+v", got[0])
	}
}

func TestEnforce_DuplicateError(t *testing.T) {
	err := drain(WrapWithEnforcement(dupInput(), EnforceOptions{OnDuplicate: DupError}))
	var ie IssueError
	if !errors.As(err, &ie) {
		t.Fatalf("expected IssueError, got %v", err)
	}
	if ie.Code != CodeDuplicateKey || ie.Path != "/o/a" {
		t.Fatalf("unexpected issue: %+v", ie.SimpleIssue)
	}
}

func TestEnforce_SameKeyInSiblingObjectsIsNotDuplicate(t *testing.T) {
	// {"x":{"a":1},"y":{"a":2}}
	src := &tokens{toks: []Token{
		{Kind: KindBeginObject},
		{Kind: KindKey, String: "x"},
		{Kind: KindBeginObject},
		{Kind: KindKey, String: "a"},
		{Kind: KindNumber, Number: "1"},
		{Kind: KindEndObject},
		{Kind: KindKey, String: "y"},
		{Kind: KindBeginObject},
		{Kind: KindKey, String: "a"},
		{Kind: KindNumber, Number: "2"},
		{Kind: KindEndObject},
		{Kind: KindEndObject},
	}}
	if err := drain(WrapWithEnforcement(src, EnforceOptions{OnDuplicate: DupError})); err != nil {
		t.Fatalf("err: %v", err)
	}
}

func TestEnforce_MaxDepth(t *testing.T) {
	// {"a":[{"b":1}]}
	in := func() *tokens {
		return &tokens{toks: []Token{
			{Kind: KindBeginObject},
			{Kind: KindKey, String: "a"},
			{Kind: KindBeginArray},
			{Kind: KindBeginObject},
			{Kind: KindKey, String: "b"},
			{Kind: KindNumber, Number: "1"},
			{Kind: KindEndObject},
			{Kind: KindEndArray},
			{Kind: KindEndObject},
		}}
	}
	if err := drain(WrapWithEnforcement(in(), EnforceOptions{MaxDepth: 3})); err != nil {
		t.Fatalf("depth 3 should pass: %v", err)
	}
	err := drain(WrapWithEnforcement(in(), EnforceOptions{MaxDepth: 2}))
	var ie IssueError
	if !errors.As(err, &ie) || ie.Code != CodeTooDeep || ie.Path != "/a/0" {
		t.Fatalf("expected too_deep at /a/0, got %v", err)
	}
}

func TestEnforceOptions_Disabled(t *testing.T) {
	if !(EnforceOptions{}).Disabled() {
		t.Fatalf("zero options should be disabled")
	}
	if (EnforceOptions{MaxDepth: 1}).Disabled() || (EnforceOptions{OnDuplicate: DupWarn}).Disabled() {
		t.Fatalf("options with limits should be enabled")
	}
}

func TestJoinJSONPointer(t *testing.T) {
	if got := JoinJSONPointer("/a", "b/c~d"); got != "/a/b~1c~0d" {
		t.Fatalf("got %s", got)
	}
	if got := JoinJSONPointer("", ""); got != "/" {
		t.Fatalf("got %s", got)
	}
}
