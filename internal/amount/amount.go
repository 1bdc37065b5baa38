// Package amount parses money amounts typed by the user. Input may be a
// plain number or an arithmetic expression such as "100*3" or "250 / 4".
package amount

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
)

var (
	ErrEmpty    = errors.New("amount is required")
	ErrNegative = errors.New("amount must not be negative")
)

// Parse evaluates s and returns a finite, non-negative amount.
func Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmpty
	}
	program, err := expr.Compile(s, expr.AsFloat64())
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	out, err := expr.Run(program, nil)
	if err != nil {
		return 0, fmt.Errorf("evaluate amount %q: %w", s, err)
	}
	v, ok := out.(float64)
	if !ok {
		return 0, fmt.Errorf("amount %q is not a number", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("amount %q is not finite", s)
	}
	if v < 0 {
		return 0, ErrNegative
	}
	return v, nil
}
