package mustache

import (
	"fmt"

	"github.com/itsatony/go-mustache/internal"
)

// Kind identifies which payload a Data value carries (§3).
type Kind int

const (
	// KindInvalid is the zero value: the moved-from/empty state. Lookups
	// treat it as absent.
	KindInvalid Kind = iota
	KindObject
	KindString
	KindList
	KindTrue
	KindFalse
	KindPartial
	KindLambda
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "Object"
	case KindString:
		return "String"
	case KindList:
		return "List"
	case KindTrue:
		return "True"
	case KindFalse:
		return "False"
	case KindPartial:
		return "Partial"
	case KindLambda:
		return "Lambda"
	default:
		return "Invalid"
	}
}

// PartialFunc lazily produces a partial's template source.
type PartialFunc func() string

// LambdaFunc transforms the verbatim text a lambda tag receives (empty
// for a variable tag, the section's raw source for a section tag) into
// replacement template source, which is itself re-parsed and rendered.
type LambdaFunc func(text string) string

// Data is the tagged-union data variant the renderer walks (§3, §4.2).
// The zero value is KindInvalid and behaves as absent everywhere.
type Data struct {
	kind    Kind
	str     string
	obj     map[string]Data
	list    []Data
	partial PartialFunc
	lambda  LambdaFunc
}

// NewObject returns an empty Object. This is the "default construction"
// entry point described by §4.2; the Go zero value Data{} is instead
// KindInvalid, matching Go's zero-value-is-useful idiom for "absent".
func NewObject() Data {
	return Data{kind: KindObject, obj: make(map[string]Data)}
}

// NewString returns a String wrapping s.
func NewString(s string) Data {
	return Data{kind: KindString, str: s}
}

// NewList returns a List containing items in order.
func NewList(items ...Data) Data {
	l := make([]Data, len(items))
	copy(l, items)
	return Data{kind: KindList, list: l}
}

// NewBool returns True when b is true, False otherwise.
func NewBool(b bool) Data {
	if b {
		return True()
	}
	return False()
}

// True returns the True variant.
func True() Data { return Data{kind: KindTrue} }

// False returns the False variant.
func False() Data { return Data{kind: KindFalse} }

// NewPartial returns a Partial wrapping producer, invoked lazily at
// render time each time the partial tag is resolved.
func NewPartial(producer PartialFunc) Data {
	return Data{kind: KindPartial, partial: producer}
}

// NewLambda returns a Lambda wrapping fn.
func NewLambda(fn LambdaFunc) Data {
	return Data{kind: KindLambda, lambda: fn}
}

// Kind reports this value's kind.
func (d Data) Kind() Kind { return d.kind }

func (d Data) IsObject() bool       { return d.kind == KindObject }
func (d Data) IsString() bool       { return d.kind == KindString }
func (d Data) IsList() bool         { return d.kind == KindList }
func (d Data) IsTrue() bool         { return d.kind == KindTrue }
func (d Data) IsFalse() bool        { return d.kind == KindFalse }
func (d Data) IsEmptyList() bool    { return d.kind == KindList && len(d.list) == 0 }
func (d Data) IsNonEmptyList() bool { return d.kind == KindList && len(d.list) > 0 }
func (d Data) IsPartial() bool      { return d.kind == KindPartial }
func (d Data) IsLambda() bool       { return d.kind == KindLambda }

// Get returns the value associated with name on an Object, or absent for
// every other kind (§4.2).
func (d Data) Get(name string) (internal.DataAccessor, bool) {
	if d.kind != KindObject {
		return Data{}, false
	}
	v, ok := d.obj[name]
	if !ok {
		return Data{}, false
	}
	return v, true
}

// List returns this List's elements, or nil for any other kind.
func (d Data) List() []internal.DataAccessor {
	if d.kind != KindList {
		return nil
	}
	out := make([]internal.DataAccessor, len(d.list))
	for i, v := range d.list {
		out[i] = v
	}
	return out
}

// StringValue returns the underlying string for a String, or "" otherwise.
func (d Data) StringValue() string {
	if d.kind != KindString {
		return ""
	}
	return d.str
}

// Partial invokes the producer and returns the partial's template source.
func (d Data) Partial() (string, error) {
	if d.kind != KindPartial || d.partial == nil {
		return "", newNotPartialError()
	}
	return d.partial(), nil
}

// CallLambda applies the lambda to text, returning a String Data.
func (d Data) CallLambda(text string) (internal.DataAccessor, error) {
	if d.kind != KindLambda || d.lambda == nil {
		return Data{}, newNotLambdaError()
	}
	return NewString(d.lambda(text)), nil
}

// Set assigns value at name, converting d to an Object first if it is
// not already one (the zero value becomes an Object on first Set).
func (d *Data) Set(name string, value Data) *Data {
	if d.kind != KindObject {
		d.kind = KindObject
		d.obj = make(map[string]Data)
	}
	d.obj[name] = value
	return d
}

// Append adds value to the end of d, converting d to a List first if it
// is not already one.
func (d *Data) Append(value Data) *Data {
	if d.kind != KindList {
		d.kind = KindList
		d.list = nil
	}
	d.list = append(d.list, value)
	return d
}

// FromInterface converts a decoded YAML/JSON value (as produced by
// gopkg.in/yaml.v3 or encoding/json unmarshaling into interface{}) into a
// Data tree: maps become Object, slices become List, bools become
// True/False, and every other scalar is stringified via fmt.Sprint. Used
// by cmd/mustache to load data files; exported so other front ends can
// reuse the same conversion.
func FromInterface(v interface{}) Data {
	switch t := v.(type) {
	case nil:
		return Data{}
	case bool:
		return NewBool(t)
	case string:
		return NewString(t)
	case map[string]interface{}:
		obj := NewObject()
		for k, val := range t {
			obj.Set(k, FromInterface(val))
		}
		return obj
	case map[interface{}]interface{}:
		obj := NewObject()
		for k, val := range t {
			obj.Set(fmt.Sprint(k), FromInterface(val))
		}
		return obj
	case []interface{}:
		items := make([]Data, len(t))
		for i, val := range t {
			items[i] = FromInterface(val)
		}
		return NewList(items...)
	default:
		return NewString(fmt.Sprint(t))
	}
}

// Clone performs a deep copy, per the value-semantics invariant in §3.
func (d Data) Clone() Data {
	switch d.kind {
	case KindObject:
		m := make(map[string]Data, len(d.obj))
		for k, v := range d.obj {
			m[k] = v.Clone()
		}
		return Data{kind: KindObject, obj: m}
	case KindList:
		l := make([]Data, len(d.list))
		for i, v := range d.list {
			l[i] = v.Clone()
		}
		return Data{kind: KindList, list: l}
	default:
		return d
	}
}
