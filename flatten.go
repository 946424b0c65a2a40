package jsonflat

import (
	eng "github.com/reoring/jsonflat/internal/engine"
)

// Flatten rewrites root into a one-level object whose keys are the
// Separator-joined paths to every leaf, in depth-first document order.
// Arrays are leaves and are not descended into; empty objects contribute
// no entries.
//
// When two paths produce the same key the later value replaces the earlier
// one and the entry keeps its first position. Options.Strictness.OnCollision
// can report the collision as a warning or fail the operation instead.
func Flatten(root Value, opt Options) (*Object, error) {
	if root.Kind() != KindObject {
		return nil, invalidArgument("root must be an object, got " + root.Kind().String())
	}
	f := &flattener{opt: opt, out: NewObject()}
	if err := f.visit(root.Object(), "", ""); err != nil {
		return nil, err
	}
	return f.out, nil
}

type flattener struct {
	opt Options
	out *Object
	// origin records the input pointer that produced each key, for
	// collision reports. Allocated lazily.
	origin map[string]string
}

func (f *flattener) visit(node *Object, prefix, pointer string) error {
	for _, m := range node.Members() {
		key := buildKey(prefix, m.Key)
		ptr := eng.JoinJSONPointer(pointer, m.Key)
		switch m.Value.Kind() {
		case KindObject:
			if err := f.visit(m.Value.Object(), key, ptr); err != nil {
				return err
			}
		case KindArray, KindString, KindNumber, KindBool, KindNull:
			if err := f.emit(key, ptr, m.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

func (f *flattener) emit(key, ptr string, v Value) error {
	policy := f.opt.Strictness.OnCollision
	if policy == Ignore {
		f.out.Set(key, v)
		return nil
	}
	if f.origin == nil {
		f.origin = map[string]string{}
	}
	if first, dup := f.origin[key]; dup {
		it := Issue{
			Path:    ptr,
			Code:    CodeKeyCollision,
			Key:     key,
			Message: "key '" + key + "' already produced by " + first,
			Offset:  -1,
		}
		if policy == Error {
			return Issues{it}
		}
		f.opt.warn(it)
	} else {
		f.origin[key] = ptr
	}
	f.out.Set(key, v)
	return nil
}

// buildKey joins a child key onto the path of its parent. Keys are used
// verbatim, so a key containing Separator may collide with a nested path.
func buildKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + Separator + key
}
