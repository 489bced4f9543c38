package jsonvalue

import (
	"strconv"
	"strings"
)

// Number holds exactly one of a signed 64-bit integer or a float64. The
// active representation is fixed at construction; cross-representation
// comparisons widen the integer operand to float64 without altering the
// stored value.
type Number struct {
	floating bool
	i        int64
	f        float64
}

// IntNumber returns an integer-representation Number.
func IntNumber(i int64) Number { return Number{i: i} }

// FloatNumber returns a floating-representation Number.
func FloatNumber(f float64) Number { return Number{floating: true, f: f} }

// IsFloat reports whether the floating representation is active.
func (n Number) IsFloat() bool { return n.floating }

// Int64 returns the integer value, failing when the floating representation
// is active.
func (n Number) Int64() (int64, error) {
	if n.floating {
		return 0, typeMismatch("Int64", "integer number", "floating number")
	}
	return n.i, nil
}

// Float64 returns the floating value, failing when the integer representation
// is active.
func (n Number) Float64() (float64, error) {
	if !n.floating {
		return 0, typeMismatch("Float64", "floating number", "integer number")
	}
	return n.f, nil
}

// Equal compares same-representation values directly and widens the integer
// operand for mixed comparisons.
func (n Number) Equal(o Number) bool { return n.compare(o) == 0 }

// Compare returns -1, 0 or +1 ordering n against o under the widening rule.
func (n Number) Compare(o Number) int { return n.compare(o) }

func (n Number) compare(o Number) int {
	if !n.floating && !o.floating {
		switch {
		case n.i < o.i:
			return -1
		case n.i > o.i:
			return 1
		default:
			return 0
		}
	}
	lf, rf := n.widen(), o.widen()
	switch {
	case lf < rf:
		return -1
	case lf > rf:
		return 1
	default:
		return 0
	}
}

func (n Number) widen() float64 {
	if n.floating {
		return n.f
	}
	return float64(n.i)
}

// String renders the canonical decimal text of the active representation.
func (n Number) String() string {
	if n.floating {
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
	return strconv.FormatInt(n.i, 10)
}

// numberFromLexeme validates and converts a raw number lexeme. A lexeme
// containing '.', 'e' or 'E' becomes the floating representation, everything
// else the integer one. The checks follow the JSON number grammar; the final
// strconv conversion is whole-string strict and rejects any leftover.
func numberFromLexeme(lex string) (Number, error) {
	if lex == "" {
		return Number{}, singleIssue(CodeInvalidNumber, "error while parsing number, empty lexeme")
	}
	if strings.ContainsAny(lex, ".eE") {
		return floatingFromLexeme(lex)
	}
	return integerFromLexeme(lex)
}

func floatingFromLexeme(lex string) (Number, error) {
	if lex[len(lex)-1] == '.' {
		return Number{}, singleIssue(CodeInvalidNumber, "error while parsing number, decimal point cannot be the last character")
	}
	if dot := strings.IndexByte(lex, '.'); dot >= 0 && dot+1 < len(lex) {
		if c := lex[dot+1]; c == 'e' || c == 'E' {
			return Number{}, singleIssue(CodeInvalidNumber, "error while parsing number, 'e' or 'E' cannot be the first character after decimal point")
		}
	}
	if lex[0] == '.' || strings.HasPrefix(lex, "-.") {
		return Number{}, singleIssue(CodeInvalidNumber, "error while parsing number, missing digit before decimal point")
	}
	f, err := strconv.ParseFloat(lex, 64)
	if err != nil {
		return Number{}, singleIssue(CodeInvalidNumber, "error while parsing number, invalid floating point number "+strconv.Quote(lex))
	}
	return FloatNumber(f), nil
}

func integerFromLexeme(lex string) (Number, error) {
	if (len(lex) > 1 && lex[0] == '0') || (len(lex) > 2 && lex[0] == '-' && lex[1] == '0') {
		return Number{}, singleIssue(CodeInvalidNumber, "error while parsing number, integer cannot start with 0")
	}
	i, err := strconv.ParseInt(lex, 10, 64)
	if err != nil {
		return Number{}, singleIssue(CodeInvalidNumber, "error while parsing number, invalid integer "+strconv.Quote(lex))
	}
	return IntNumber(i), nil
}
