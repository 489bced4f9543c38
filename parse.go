package jsonvalue

import (
	"errors"
	"io"
	"os"

	"github.com/reoring/jsonvalue/internal/scan"
)

// Parse is the primary entry point. It consumes tokens from the Source,
// builds exactly one Value tree, and requires end-of-stream afterwards.
// Parsing either fully succeeds or fully fails; there is no partial result.
func Parse(src Source, opts ...ParseOpt) (*Value, error) {
	return parseFrom(src, lastOpt(opts), nil)
}

// ParseWithIssues behaves like Parse but additionally collects non-fatal
// enforcement findings (for example duplicate keys under Warn strictness).
func ParseWithIssues(src Source, opts ...ParseOpt) (*Value, Issues, error) {
	var collected Issues
	v, err := parseFrom(src, lastOpt(opts), func(it Issue) {
		collected = AppendIssues(collected, it)
	})
	return v, collected, err
}

// ParseString parses an in-memory JSON document.
func ParseString(s string, opts ...ParseOpt) (*Value, error) {
	return Parse(JSONBytes([]byte(s)), opts...)
}

// ParseBytes parses an in-memory JSON document.
func ParseBytes(b []byte, opts ...ParseOpt) (*Value, error) {
	return Parse(JSONBytes(b), opts...)
}

// ParseReader reads the input once up front and parses it. When MaxBytes is
// set the size cap is enforced before tokenizing.
func ParseReader(r io.Reader, opts ...ParseOpt) (*Value, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 {
		lr := io.LimitReader(r, opt.MaxBytes+1)
		data, err := io.ReadAll(lr)
		if err != nil {
			return nil, singleIssue(CodeParseError, "could not be read: "+err.Error())
		}
		if int64(len(data)) > opt.MaxBytes {
			return nil, singleIssue(CodeTruncated, "max bytes exceeded")
		}
		return Parse(JSONBytes(data), opts...)
	}
	return Parse(JSONReader(r), opts...)
}

// ParseFile reads and parses the file at path. An inaccessible file surfaces
// as a generic parse failure carrying the underlying error.
func ParseFile(path string, opts ...ParseOpt) (*Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, AppendIssues(nil, Issue{Path: "/", Code: CodeParseError, Message: "could not be read/opened: " + err.Error(), Cause: err, Offset: -1})
	}
	return Parse(JSONBytes(data), opts...)
}

func parseFrom(src Source, opt ParseOpt, sink func(Issue)) (*Value, error) {
	es := enforceSourceIfNeeded(src, opt, sink)
	tok, err := es.NextToken()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, singleIssue(CodeEmptyInput, "cannot parse empty input or input containing only whitespace")
		}
		return nil, toIssues(err)
	}
	v, err := decodeValue(es, tok)
	if err != nil {
		return nil, toIssues(err)
	}
	// Exactly one top-level value: anything but end-of-stream is an error.
	if _, err := es.NextToken(); err == nil {
		return nil, singleIssue(CodeExpectedEOF, "error after reading a valid json value, expected EOF")
	} else if !errors.Is(err, io.EOF) {
		return nil, toIssues(err)
	}
	return v, nil
}

// decodeValue builds a Value from the token stream, recursing per nesting
// level for containers.
func decodeValue(src Source, tok Token) (*Value, error) {
	switch tok.Kind {
	case _tokenBeginObject:
		return decodeObject(src)
	case _tokenBeginArray:
		return decodeArray(src)
	case _tokenString:
		return NewString(tok.String), nil
	case _tokenNumber:
		n, err := numberFromLexeme(tok.Number)
		if err != nil {
			return nil, withOffset(err, tok.Offset)
		}
		return NewNumber(n), nil
	case _tokenBool:
		return NewBool(tok.Bool), nil
	case _tokenNull:
		return NewNull(), nil
	default:
		return nil, singleIssue(CodeParseError, "unexpected token in value position")
	}
}

func decodeObject(src Source) (*Value, error) {
	v := NewObject()
	for {
		tok, err := src.NextToken()
		if err != nil {
			return nil, eofAsUnexpected(err, "object")
		}
		if tok.Kind == _tokenEndObject {
			return v, nil
		}
		if tok.Kind != _tokenKey {
			return nil, singleIssue(CodeParseError, "error while parsing object, expected a key")
		}
		vt, err := src.NextToken()
		if err != nil {
			return nil, eofAsUnexpected(err, "object")
		}
		m, err := decodeValue(src, vt)
		if err != nil {
			return nil, err
		}
		// Last write wins on duplicate keys; Strictness.OnDuplicateKey refines
		// this at the enforcement layer.
		v.setMember(tok.String, m)
	}
}

func decodeArray(src Source) (*Value, error) {
	v := NewArray()
	for {
		tok, err := src.NextToken()
		if err != nil {
			return nil, eofAsUnexpected(err, "array")
		}
		if tok.Kind == _tokenEndArray {
			return v, nil
		}
		it, err := decodeValue(src, tok)
		if err != nil {
			return nil, err
		}
		v.arr = append(v.arr, it)
	}
}

// eofAsUnexpected maps a bare io.EOF from a driver into the mid-container
// error; the built-in scanner reports this itself.
func eofAsUnexpected(err error, what string) error {
	if errors.Is(err, io.EOF) {
		return singleIssue(CodeUnexpectedEOF, "error while parsing "+what+", unexpected end of input")
	}
	return err
}

func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie scan.IssueError
	if errors.As(err, &ie) {
		return AppendIssues(nil, Issue{Code: ie.Code, Path: ie.Path, Message: ie.Message, Offset: ie.Offset})
	}
	return AppendIssues(nil, Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err, Offset: -1})
}

func withOffset(err error, off int64) error {
	if iss, ok := AsIssues(err); ok {
		for i := range iss {
			if iss[i].Offset < 0 {
				iss[i].Offset = off
			}
		}
		return iss
	}
	return err
}
