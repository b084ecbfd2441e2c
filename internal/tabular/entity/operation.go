package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kulnaak/Data-Manipulator-Web-App/internal/pkg/pkgtable"
)

var (
	// ErrInvalidOperand is returned when an operation value is not a number.
	ErrInvalidOperand = errors.New("operation value is not a number")

	// ErrMalformedTransformations is returned when a transformation object
	// does not have the {"column": {"type": ..., "value": ...}} shape.
	ErrMalformedTransformations = errors.New("malformed transformations")
)

// Operation is one entry of a transformation specification.
type Operation struct {
	Type  OperationType
	Value any
}

// Factor returns Value as a multiplier. Integer literals stay integers so an
// integer column multiplied by 2 keeps its type while 2.0 turns it into
// floats. Booleans count as 1 and 0. Strings and every other shape are
// rejected.
func (o Operation) Factor() (pkgtable.Factor, error) {
	switch v := o.Value.(type) {
	case json.Number:
		return numberFactor(v)
	case float64:
		return pkgtable.FloatFactor(v), nil
	case int:
		return pkgtable.IntFactor(int64(v)), nil
	case int64:
		return pkgtable.IntFactor(v), nil
	case bool:
		if v {
			return pkgtable.IntFactor(1), nil
		}
		return pkgtable.IntFactor(0), nil
	default:
		return pkgtable.Factor{}, fmt.Errorf("%w: %v (%T)", ErrInvalidOperand, o.Value, o.Value)
	}
}

func numberFactor(n json.Number) (pkgtable.Factor, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return pkgtable.IntFactor(i), nil
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return pkgtable.Factor{}, fmt.Errorf("%w: %s", ErrInvalidOperand, s)
	}
	return pkgtable.FloatFactor(f), nil
}

// ParseTransformations decodes a transformation object keyed by column name.
// An absent object yields no operations. Every entry must be an object with a
// "type" key; a type that is not a string is kept as an unknown operation.
// Numbers are decoded as json.Number.
func ParseTransformations(raw json.RawMessage) (map[string]Operation, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil || entries == nil {
		return nil, fmt.Errorf("%w: not an object", ErrMalformedTransformations)
	}

	ops := make(map[string]Operation, len(entries))
	for column, entry := range entries {
		var fields map[string]any
		dec := json.NewDecoder(bytes.NewReader(entry))
		dec.UseNumber()
		if err := dec.Decode(&fields); err != nil || fields == nil {
			return nil, fmt.Errorf("%w: %q is not an object", ErrMalformedTransformations, column)
		}

		typ, ok := fields["type"]
		if !ok {
			return nil, fmt.Errorf("%w: %q has no type", ErrMalformedTransformations, column)
		}

		name, _ := typ.(string)
		ops[column] = Operation{Type: OperationType(name), Value: fields["value"]}
	}

	return ops, nil
}
