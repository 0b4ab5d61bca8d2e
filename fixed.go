package fixed

import (
	"errors"
	"fmt"
	"strings"
)

const (
	WadScale = 18 // number of digits after the decimal point in a Wad
	RayScale = 27 // number of digits after the decimal point in a Ray
	RadScale = 45 // number of digits after the decimal point in a Rad
)

var (
	// ErrPrecision is returned when a number has more significant digits
	// after the decimal point than the target type can hold.
	ErrPrecision = errors.New("precision loss")
	// ErrDivisionByZero is returned when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrOverflow is returned when a result or an intermediate product
	// does not fit in a signed 256-bit word.
	ErrOverflow = errors.New("arithmetic overflow")
	// ErrInvalidNumber is returned when a string is not a decimal number.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrTypeMismatch is returned when a value of an unsupported type
	// is converted to a fixed-point number.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrNegative is returned when an operation requires a non-negative operand.
	ErrNegative = errors.New("negative value")
)

// scanWord converts a database value to a word.
func scanWord(value any, scale int) (word, error) {
	switch value := value.(type) {
	case string:
		return parseWord(value, scale)
	case []byte:
		return parseWord(string(value), scale)
	case int64:
		return wordFromInt64(value).lsh(scale)
	case float64:
		return wordFromFloat64(value, scale)
	default:
		return word{}, fmt.Errorf("%w: cannot scan %T", ErrTypeMismatch, value)
	}
}

// formatWord implements fmt.Formatter for all fixed-point types.
// The following verbs are available:
//
//	%f, %s, %v: -123.456
//	%q:        "-123.456"
//
// Precision is only supported for %f verb. Digits beyond the precision
// are truncated, missing digits are padded with zeros.
func formatWord(state fmt.State, verb rune, x word, scale int, typ string) {

	// Digits
	neg, intg, frac := x.digits(scale)
	if verb == 'f' || verb == 'F' {
		if p, ok := state.Precision(); ok {
			switch {
			case p < len(frac):
				frac = frac[:p]
			case p > len(frac):
				frac = frac + strings.Repeat("0", p-len(frac))
			}
		}
	}
	if neg && strings.Trim(intg+frac, "0") == "" {
		neg = false // -0.00
	}
	body := intg
	if frac != "" {
		body = body + "." + frac
	}

	// Arithmetic sign
	rsign := ""
	switch {
	case neg:
		rsign = "-"
	case state.Flag('+'):
		rsign = "+"
	case state.Flag(' '):
		rsign = " "
	}

	// Quotes
	quote := ""
	if verb == 'q' || verb == 'Q' {
		quote = `"`
	}

	// Padding
	width := len(quote) + len(rsign) + len(body) + len(quote)
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", lspaces))
	b.WriteString(quote)
	b.WriteString(rsign)
	b.WriteString(strings.Repeat("0", lzeroes))
	b.WriteString(body)
	b.WriteString(quote)
	b.WriteString(strings.Repeat(" ", tspaces))

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F':
		fmt.Fprint(state, b.String())
	default:
		fmt.Fprintf(state, "%%!%c(fixed.%v=%v)", verb, typ, b.String())
	}
}
