package jsonflat

import "testing"

func TestObject_SetKeepsFirstPosition(t *testing.T) {
	o := NewObject()
	if o.Set("a", NumberValue("1")) {
		t.Fatalf("first Set reported replace")
	}
	o.Set("b", NumberValue("2"))
	if !o.Set("a", NumberValue("3")) {
		t.Fatalf("second Set did not report replace")
	}
	if keys := o.Keys(); len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("keys: %v", keys)
	}
	if v, ok := o.Get("a"); !ok || v.Number() != "3" {
		t.Fatalf("a = %v, %v", v, ok)
	}
	if _, ok := o.Get("missing"); ok {
		t.Fatalf("unexpected key")
	}
}

func TestObject_ZeroValueAndNil(t *testing.T) {
	var o Object
	o.Set("a", NullValue())
	if o.Len() != 1 {
		t.Fatalf("len: %d", o.Len())
	}
	var nilObj *Object
	if nilObj.Len() != 0 || nilObj.Keys() != nil || nilObj.Members() != nil {
		t.Fatalf("nil object should be empty")
	}
	if _, ok := nilObj.Get("a"); ok {
		t.Fatalf("nil object has no keys")
	}
}

func TestValue_Accessors(t *testing.T) {
	if NullValue().Kind() != KindNull || (Value{}).Kind() != KindNull {
		t.Fatalf("zero value must be null")
	}
	if s := StringValue("x"); s.Str() != "x" || s.Number() != "" {
		t.Fatalf("string accessors")
	}
	if n := NumberValue("7"); n.Number() != "7" || n.Str() != "" {
		t.Fatalf("number accessors")
	}
	if ObjectValue(nil).IsLeaf() || !ArrayValue().IsLeaf() || !NullValue().IsLeaf() {
		t.Fatalf("IsLeaf")
	}
	if KindObject.String() != "object" || Kind(99).String() != "Kind(99)" {
		t.Fatalf("Kind.String")
	}
}

func TestValue_Equal(t *testing.T) {
	a := mustParse(t, `{"a":[1,{"b":null}],"c":"d"}`)
	b := mustParse(t, `{"a":[1,{"b":null}],"c":"d"}`)
	if !a.Equal(b) {
		t.Fatalf("expected equal")
	}
	if a.Equal(mustParse(t, `{"c":"d","a":[1,{"b":null}]}`)) {
		t.Fatalf("order must matter")
	}
	if NumberValue("1.0").Equal(NumberValue("1")) {
		t.Fatalf("numbers compare by literal")
	}
	if BoolValue(true).Equal(StringValue("true")) {
		t.Fatalf("kinds differ")
	}
}
