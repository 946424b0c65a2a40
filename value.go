package jsonflat

import "fmt"

// Kind tags the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is a JSON value. The zero Value is null.
//
// Numbers keep the literal text they were parsed from, so a Value never
// loses precision or changes the spelling of a number on its way through
// the flattener.
type Value struct {
	kind Kind
	b    bool
	s    string // string payload, or number literal
	arr  []Value
	obj  *Object
}

// NullValue returns the JSON null.
func NullValue() Value { return Value{} }

// BoolValue returns a JSON boolean.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// NumberValue returns a JSON number from its literal text. The literal is
// not validated.
func NumberValue(lit string) Value { return Value{kind: KindNumber, s: lit} }

// StringValue returns a JSON string.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// ArrayValue returns a JSON array holding elems.
func ArrayValue(elems ...Value) Value { return Value{kind: KindArray, arr: elems} }

// ObjectValue wraps o as a Value. A nil o is treated as an empty object.
func ObjectValue(o *Object) Value {
	if o == nil {
		o = NewObject()
	}
	return Value{kind: KindObject, obj: o}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsLeaf reports whether v is a leaf for flattening: anything but an object.
func (v Value) IsLeaf() bool { return v.kind != KindObject }

// Bool returns the boolean payload; false for other kinds.
func (v Value) Bool() bool { return v.b }

// Number returns the number literal; "" for other kinds.
func (v Value) Number() string {
	if v.kind != KindNumber {
		return ""
	}
	return v.s
}

// Str returns the string payload; "" for other kinds.
func (v Value) Str() string {
	if v.kind != KindString {
		return ""
	}
	return v.s
}

// Array returns the array elements; nil for other kinds.
func (v Value) Array() []Value { return v.arr }

// Object returns the object payload; nil for other kinds.
func (v Value) Object() *Object { return v.obj }

// Equal reports deep equality. Numbers compare by literal text and objects
// compare member by member, in order.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindNumber, KindString:
		return v.s == o.s
	case KindArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return v.obj.Equal(o.obj)
	}
	return false
}

// Member is one key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is an insertion-ordered JSON object.
type Object struct {
	members []Member
	index   map[string]int
}

// NewObject returns an empty Object.
func NewObject() *Object { return &Object{index: map[string]int{}} }

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	i, ok := o.index[key]
	if !ok {
		return Value{}, false
	}
	return o.members[i].Value, true
}

// Set stores v under key and reports whether key was already present. An
// existing key keeps its position and takes the new value.
func (o *Object) Set(key string, v Value) (replaced bool) {
	if o.index == nil {
		o.index = map[string]int{}
	}
	if i, ok := o.index[key]; ok {
		o.members[i].Value = v
		return true
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: v})
	return false
}

// Members returns the members in insertion order. The slice must not be
// modified.
func (o *Object) Members() []Member {
	if o == nil {
		return nil
	}
	return o.members
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}
	return keys
}

// Equal reports whether both objects hold equal members in the same order.
func (o *Object) Equal(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}
	om := other.Members()
	for i, m := range o.Members() {
		if m.Key != om[i].Key || !m.Value.Equal(om[i].Value) {
			return false
		}
	}
	return true
}
