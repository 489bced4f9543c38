package jsonvalue

import (
	"os"
	"strings"
)

// DefaultIndent is the indent unit used when none is supplied.
const DefaultIndent = "\t"

// Dump renders the compact form: no whitespace between tokens, object
// members in ascending key order, strings emitted as read (no re-escaping).
func Dump(v *Value) string {
	b := &strings.Builder{}
	writeCompact(b, v)
	return b.String()
}

// DumpIndent renders the indented form with one copy of indent per nesting
// level. Scalars and empty containers render exactly as in the compact form.
func DumpIndent(v *Value, indent string) string {
	b := &strings.Builder{}
	writeIndented(b, v, "", indent)
	return b.String()
}

// DumpFile writes the compact form to path.
func DumpFile(path string, v *Value) error {
	if err := os.WriteFile(path, []byte(Dump(v)), 0o644); err != nil {
		return AppendIssues(nil, Issue{Path: "/", Code: CodeParseError, Message: "could not be written: " + err.Error(), Cause: err, Offset: -1})
	}
	return nil
}

// DumpFileIndent writes the indented form to path.
func DumpFileIndent(path string, v *Value, indent string) error {
	if err := os.WriteFile(path, []byte(DumpIndent(v, indent)), 0o644); err != nil {
		return AppendIssues(nil, Issue{Path: "/", Code: CodeParseError, Message: "could not be written: " + err.Error(), Cause: err, Offset: -1})
	}
	return nil
}

// String implements fmt.Stringer as the compact form.
func (v *Value) String() string { return Dump(v) }

// MarshalJSON implements json.Marshaler as the compact form.
func (v *Value) MarshalJSON() ([]byte, error) { return []byte(Dump(v)), nil }

// UnmarshalJSON implements json.Unmarshaler via the strict parser.
func (v *Value) UnmarshalJSON(data []byte) error {
	nv, err := ParseBytes(data)
	if err != nil {
		return err
	}
	*v = *nv
	return nil
}

func writeCompact(b *strings.Builder, v *Value) {
	switch v.kind {
	case KindString:
		b.WriteByte('"')
		b.WriteString(v.str)
		b.WriteByte('"')
	case KindNumber:
		b.WriteString(v.num.String())
	case KindBool:
		if v.b {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindNull:
		b.WriteString("null")
	case KindArray:
		if len(v.arr) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteByte('[')
		for i, it := range v.arr {
			if i > 0 {
				b.WriteByte(',')
			}
			writeCompact(b, it)
		}
		b.WriteByte(']')
	default: // KindObject
		if len(v.obj) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteByte('{')
		keys, _ := v.Keys()
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(k)
			b.WriteString(`":`)
			writeCompact(b, v.obj[k])
		}
		b.WriteByte('}')
	}
}

func writeIndented(b *strings.Builder, v *Value, current, indent string) {
	switch v.kind {
	case KindArray:
		if len(v.arr) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[\n")
		next := current + indent
		for i, it := range v.arr {
			b.WriteString(next)
			writeIndented(b, it, next, indent)
			if i < len(v.arr)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		b.WriteString(current)
		b.WriteByte(']')
	case KindObject:
		if len(v.obj) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{\n")
		next := current + indent
		keys, _ := v.Keys()
		for i, k := range keys {
			b.WriteString(next)
			b.WriteByte('"')
			b.WriteString(k)
			b.WriteString(`" : `)
			writeIndented(b, v.obj[k], next, indent)
			if i < len(keys)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		b.WriteString(current)
		b.WriteByte('}')
	default:
		writeCompact(b, v)
	}
}
