package config

import (
	"encoding/json"
	"fmt"

	"github.com/Knetic/govaluate"
)

// Value is a numeric config field that accepts either a literal number or an
// arithmetic expression over the reference spot price, e.g. "spot * 1.2" or
// "spot + 5".
type Value struct {
	expr string
	num  float64
	lit  bool
}

// Number wraps a literal float as a Value.
func Number(f float64) Value { return Value{num: f, lit: true} }

// Expr wraps an expression string as a Value.
func Expr(s string) Value { return Value{expr: s} }

// IsZero reports whether the field was absent from the config.
func (v Value) IsZero() bool { return !v.lit && v.expr == "" }

// UnmarshalJSON accepts a JSON number or an expression string.
func (v *Value) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*v = Value{num: f, lit: true}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("numeric field wants a number or an expression string: %w", err)
	}
	*v = Value{expr: s}
	return nil
}

// UnmarshalYAML accepts a YAML number or an expression string.
func (v *Value) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var f float64
	if err := unmarshal(&f); err == nil {
		*v = Value{num: f, lit: true}
		return nil
	}
	var s string
	if err := unmarshal(&s); err != nil {
		return fmt.Errorf("numeric field wants a number or an expression string: %w", err)
	}
	*v = Value{expr: s}
	return nil
}

// Resolve evaluates the value against the reference spot price.
func (v Value) Resolve(spot float64) (float64, error) {
	if v.lit {
		return v.num, nil
	}
	if v.expr == "" {
		return 0, fmt.Errorf("missing value")
	}
	expr, err := govaluate.NewEvaluableExpression(v.expr)
	if err != nil {
		return 0, fmt.Errorf("invalid expression %q: %w", v.expr, err)
	}
	result, err := expr.Evaluate(map[string]interface{}{"spot": spot})
	if err != nil {
		return 0, fmt.Errorf("evaluating %q: %w", v.expr, err)
	}
	f, ok := result.(float64)
	if !ok {
		return 0, fmt.Errorf("expression %q is not numeric", v.expr)
	}
	return f, nil
}
