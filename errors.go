package jsonvalue

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// Malformed-input codes raised while tokenizing/parsing.
	CodeParseError      = "parse_error"
	CodeEmptyInput      = "empty_input"
	CodeUnexpectedEOF   = "unexpected_eof"
	CodeUnexpectedChar  = "unexpected_char"
	CodeInvalidEscape   = "invalid_escape"
	CodeControlChar     = "control_char"
	CodeInvalidNumber   = "invalid_number"
	CodeInvalidLiteral  = "invalid_literal"
	CodeUnexpectedComma = "unexpected_comma"
	CodeExpectedComma   = "expected_comma"
	CodeTrailingComma   = "trailing_comma"
	CodeExpectedEOF     = "expected_eof"
	// Enforcement codes (duplicate keys, depth, bytes).
	CodeDuplicateKey = "duplicate_key"
	CodeMaxDepth     = "max_depth"
	CodeTruncated    = "truncated"
	// Value model codes (kind guards and bounds).
	CodeInvalidType = "invalid_type"
	CodeOutOfRange  = "out_of_range"
	CodeKeyNotFound = "key_not_found"
)

// Issue represents a single parse or value-model error entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /items/2/price).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	Cause   error  // Optional: underlying error.
	Offset  int64  // Byte offset in the input source (-1 when unknown).
}

// Issues is a collection of errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type: append requires array
		fmt.Fprintf(b, "%s: %s", it.Code, it.Message)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
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

func singleIssue(code, msg string) Issues {
	return AppendIssues(nil, Issue{Path: "/", Code: code, Message: msg, Offset: -1})
}
