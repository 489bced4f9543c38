package jsonvalue

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/reoring/jsonvalue/i18n"
)

// Kind identifies the active variant of a Value. The set is closed: every
// switch over Kind in this package is exhaustive.
type Kind int

// KindObject is deliberately the zero value so that new(Value) is an empty
// object, which is also what Parse yields for "{}".
const (
	KindObject Kind = iota
	KindArray
	KindString
	KindNumber
	KindBool
	KindNull
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// Value is the tagged union representing any JSON datum. A Value exclusively
// owns its children; Clone is deep and trees contain no cycles. Structural
// operations are valid only for the matching kind and fail with an
// invalid_type issue otherwise.
//
// String payloads hold the raw text read between the quotes: escape
// sequences from the input are preserved verbatim and serialization does not
// re-escape, so caller-constructed strings must supply JSON-ready content.
type Value struct {
	kind Kind
	str  string
	num  Number
	b    bool
	arr  []*Value
	obj  map[string]*Value
}

// NewString returns a String value. The text is emitted between quotes as-is
// on serialization; it is not escaped.
func NewString(s string) *Value { return &Value{kind: KindString, str: s} }

// NewInt returns an integer-representation Number value.
func NewInt(i int64) *Value { return &Value{kind: KindNumber, num: IntNumber(i)} }

// NewFloat returns a floating-representation Number value.
func NewFloat(f float64) *Value { return &Value{kind: KindNumber, num: FloatNumber(f)} }

// NewNumber wraps an existing Number.
func NewNumber(n Number) *Value { return &Value{kind: KindNumber, num: n} }

// NewBool returns a Bool value. There is intentionally no path from bool to
// Number or from numbers to Bool; the two JSON kinds stay distinct.
func NewBool(b bool) *Value { return &Value{kind: KindBool, b: b} }

// NewNull returns a Null value. All Null values compare equal.
func NewNull() *Value { return &Value{kind: KindNull} }

// NewArray returns an Array value holding the given items in order. Nil items
// are stored as Null.
func NewArray(items ...*Value) *Value {
	v := &Value{kind: KindArray}
	for _, it := range items {
		v.arr = append(v.arr, orNull(it))
	}
	return v
}

// NewObject returns an empty Object value.
func NewObject() *Value { return &Value{kind: KindObject} }

// Kind reports the active variant.
func (v *Value) Kind() Kind { return v.kind }

// IsNull reports whether the value holds Null.
func (v *Value) IsNull() bool { return v.kind == KindNull }

// Text returns the string payload.
func (v *Value) Text() (string, error) {
	if v.kind != KindString {
		return "", kindMismatch("Text", KindString, v.kind)
	}
	return v.str, nil
}

// Num returns the number payload.
func (v *Value) Num() (Number, error) {
	if v.kind != KindNumber {
		return Number{}, kindMismatch("Num", KindNumber, v.kind)
	}
	return v.num, nil
}

// Int64 returns the integer payload, failing when the value is not a Number
// or its floating representation is active.
func (v *Value) Int64() (int64, error) {
	n, err := v.Num()
	if err != nil {
		return 0, err
	}
	return n.Int64()
}

// Float64 returns the floating payload, failing when the value is not a
// Number or its integer representation is active.
func (v *Value) Float64() (float64, error) {
	n, err := v.Num()
	if err != nil {
		return 0, err
	}
	return n.Float64()
}

// Bool returns the boolean payload.
func (v *Value) Bool() (bool, error) {
	if v.kind != KindBool {
		return false, kindMismatch("Bool", KindBool, v.kind)
	}
	return v.b, nil
}

// ---- array operations ----

// Append adds items to the end of the array. Nil items are stored as Null.
func (v *Value) Append(items ...*Value) error {
	if v.kind != KindArray {
		return kindMismatch("Append", KindArray, v.kind)
	}
	for _, it := range items {
		v.arr = append(v.arr, orNull(it))
	}
	return nil
}

// Pop removes the last element. Popping an empty array is an out_of_range
// error rather than a no-op, consistent with indexed access.
func (v *Value) Pop() error {
	if v.kind != KindArray {
		return kindMismatch("Pop", KindArray, v.kind)
	}
	if len(v.arr) == 0 {
		return singleIssue(CodeOutOfRange, "cannot pop from an empty array")
	}
	v.arr = v.arr[:len(v.arr)-1]
	return nil
}

// Index returns the element at position i.
func (v *Value) Index(i int) (*Value, error) {
	if v.kind != KindArray {
		return nil, kindMismatch("Index", KindArray, v.kind)
	}
	if i < 0 || i >= len(v.arr) {
		return nil, indexRange(i, len(v.arr))
	}
	return v.arr[i], nil
}

// SetIndex replaces the element at position i.
func (v *Value) SetIndex(i int, item *Value) error {
	if v.kind != KindArray {
		return kindMismatch("SetIndex", KindArray, v.kind)
	}
	if i < 0 || i >= len(v.arr) {
		return indexRange(i, len(v.arr))
	}
	v.arr[i] = orNull(item)
	return nil
}

// ---- object operations ----

// Get returns the member value for key, failing with key_not_found when the
// key is absent. Use Ref for the auto-vivifying mutable access.
func (v *Value) Get(key string) (*Value, error) {
	if v.kind != KindObject {
		return nil, kindMismatch("Get", KindObject, v.kind)
	}
	m, ok := v.obj[key]
	if !ok {
		return nil, singleIssue(CodeKeyNotFound, fmt.Sprintf("key %q not found", key))
	}
	return m, nil
}

// Ref returns the member value for key, inserting an empty Object first when
// the key is absent.
func (v *Value) Ref(key string) (*Value, error) {
	if v.kind != KindObject {
		return nil, kindMismatch("Ref", KindObject, v.kind)
	}
	if m, ok := v.obj[key]; ok {
		return m, nil
	}
	nv := NewObject()
	v.setMember(key, nv)
	return nv, nil
}

// Set stores item under key, replacing any previous member (last write wins).
// Nil items are stored as Null.
func (v *Value) Set(key string, item *Value) error {
	if v.kind != KindObject {
		return kindMismatch("Set", KindObject, v.kind)
	}
	v.setMember(key, orNull(item))
	return nil
}

// Remove deletes the member for key; removing an absent key is a no-op.
func (v *Value) Remove(key string) error {
	if v.kind != KindObject {
		return kindMismatch("Remove", KindObject, v.kind)
	}
	delete(v.obj, key)
	return nil
}

// Keys returns the member keys in ascending byte-wise order, which is also
// the iteration and serialization order of an Object.
func (v *Value) Keys() ([]string, error) {
	if v.kind != KindObject {
		return nil, kindMismatch("Keys", KindObject, v.kind)
	}
	keys := make([]string, 0, len(v.obj))
	for k := range v.obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (v *Value) setMember(key string, item *Value) {
	if v.obj == nil {
		v.obj = make(map[string]*Value)
	}
	v.obj[key] = item
}

// ---- container operations ----

// Len returns the element count of an array or the unique-key count of an
// object.
func (v *Value) Len() (int, error) {
	switch v.kind {
	case KindArray:
		return len(v.arr), nil
	case KindObject:
		return len(v.obj), nil
	default:
		return 0, singleIssue(CodeInvalidType,
			i18n.T(CodeInvalidType, nil)+": Len requires array or object, value holds "+v.kind.String())
	}
}

// Clear removes all elements from an array or all members from an object.
func (v *Value) Clear() error {
	switch v.kind {
	case KindArray:
		v.arr = nil
		return nil
	case KindObject:
		v.obj = nil
		return nil
	default:
		return singleIssue(CodeInvalidType,
			i18n.T(CodeInvalidType, nil)+": Clear requires array or object, value holds "+v.kind.String())
	}
}

// ---- comparison ----

// Equal reports structural equality: the kinds must match (numbers compare
// under the widening rule), arrays elementwise in order, objects as key/value
// sets.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.num.Equal(o.num)
	case KindBool:
		return v.b == o.b
	case KindNull:
		return true
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
	default: // KindObject
		if len(v.obj) != len(o.obj) {
			return false
		}
		for k, m := range v.obj {
			om, ok := o.obj[k]
			if !ok || !m.Equal(om) {
				return false
			}
		}
		return true
	}
}

// Compare orders v against o, returning -1, 0 or +1. It is valid only when
// both sides hold String or both hold Number; any other pairing is an
// invalid_type error.
func (v *Value) Compare(o *Value) (int, error) {
	if v.kind == KindString && o.kind == KindString {
		return strings.Compare(v.str, o.str), nil
	}
	if v.kind == KindNumber && o.kind == KindNumber {
		return v.num.Compare(o.num), nil
	}
	return 0, singleIssue(CodeInvalidType,
		i18n.T(CodeInvalidType, nil)+": ordering requires two strings or two numbers, got "+v.kind.String()+" and "+o.kind.String())
}

// Less reports v < o under the Compare rules.
func (v *Value) Less(o *Value) (bool, error) {
	c, err := v.Compare(o)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

// Clone returns a deep copy sharing no children with v.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	nv := &Value{kind: v.kind, str: v.str, num: v.num, b: v.b}
	if v.arr != nil {
		nv.arr = make([]*Value, len(v.arr))
		for i, it := range v.arr {
			nv.arr[i] = it.Clone()
		}
	}
	if v.obj != nil {
		nv.obj = make(map[string]*Value, len(v.obj))
		for k, it := range v.obj {
			nv.obj[k] = it.Clone()
		}
	}
	return nv
}

// ---- Go interop ----

// FromGo converts nested Go values (as produced by encoding/json, goccy or
// yaml decoders) into a Value tree. Booleans become Bool, never Number.
func FromGo(x any) (*Value, error) {
	switch t := x.(type) {
	case nil:
		return NewNull(), nil
	case *Value:
		return t, nil
	case bool:
		return NewBool(t), nil
	case string:
		return NewString(t), nil
	case int:
		return NewInt(int64(t)), nil
	case int8:
		return NewInt(int64(t)), nil
	case int16:
		return NewInt(int64(t)), nil
	case int32:
		return NewInt(int64(t)), nil
	case int64:
		return NewInt(t), nil
	case uint:
		return FromGo(uint64(t))
	case uint8:
		return NewInt(int64(t)), nil
	case uint16:
		return NewInt(int64(t)), nil
	case uint32:
		return NewInt(int64(t)), nil
	case uint64:
		if t > 1<<63-1 {
			return nil, singleIssue(CodeOutOfRange, fmt.Sprintf("uint64 value %d overflows int64", t))
		}
		return NewInt(int64(t)), nil
	case float32:
		return NewFloat(float64(t)), nil
	case float64:
		return NewFloat(t), nil
	case json.Number:
		n, err := numberFromLexeme(string(t))
		if err != nil {
			return nil, err
		}
		return NewNumber(n), nil
	case []any:
		v := NewArray()
		for _, it := range t {
			cv, err := FromGo(it)
			if err != nil {
				return nil, err
			}
			v.arr = append(v.arr, cv)
		}
		return v, nil
	case map[string]any:
		v := NewObject()
		for k, it := range t {
			cv, err := FromGo(it)
			if err != nil {
				return nil, err
			}
			v.setMember(k, cv)
		}
		return v, nil
	default:
		return nil, singleIssue(CodeInvalidType, fmt.Sprintf("cannot convert Go value of type %T", x))
	}
}

func orNull(v *Value) *Value {
	if v == nil {
		return NewNull()
	}
	return v
}

func kindMismatch(op string, want, got Kind) Issues {
	return singleIssue(CodeInvalidType,
		i18n.T(CodeInvalidType, nil)+": "+op+" requires "+want.String()+", value holds "+got.String())
}

func typeMismatch(op, want, got string) Issues {
	return singleIssue(CodeInvalidType,
		i18n.T(CodeInvalidType, nil)+": "+op+" requires "+want+", value holds "+got)
}

func indexRange(i, n int) Issues {
	return singleIssue(CodeOutOfRange, fmt.Sprintf("index %d out of range for array of length %d", i, n))
}
