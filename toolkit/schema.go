package toolkit

import (
	"encoding/json"
	"fmt"
	"math"
)

// Field is one slot of a generated request schema.
type Field struct {
	Name     string
	Type     ParamType
	Required bool
	Default  any
}

// RequestSchema is the validated network representation of a tool's
// parameter list, one field per parameter in declaration order.
type RequestSchema struct {
	Tool   string
	Fields []Field
}

// NewRequestSchema derives a schema from a descriptor. Derivation is total:
// it never fails for a well-formed spec, and parameters with no concrete
// type come through as permissive any-typed fields.
func NewRequestSchema(spec ToolSpec) RequestSchema {
	fields := make([]Field, 0, len(spec.Params))
	for _, p := range spec.Params {
		t := p.Type
		if len(t) == 0 {
			t = TypeAny
		}
		fields = append(fields, Field{
			Name:     p.Name,
			Type:     t,
			Required: p.Required,
			Default:  p.Default,
		})
	}

	return RequestSchema{Tool: spec.Name, Fields: fields}
}

// Decode validates raw against the schema and returns the argument map for
// execution. Missing required fields and type mismatches are rejected here,
// before any tool code runs; omitted optional fields fall back to their
// declared default. Undeclared keys are dropped.
func (s RequestSchema) Decode(raw []byte) (map[string]any, error) {
	payload := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, fmt.Errorf("invalid json body: %w", err)
		}
	}

	args := make(map[string]any, len(s.Fields))

	for _, f := range s.Fields {
		v, ok := payload[f.Name]
		if !ok || v == nil {
			if f.Required {
				return nil, fmt.Errorf("missing required field %q", f.Name)
			}
			if f.Default != nil {
				args[f.Name] = f.Default
			}
			continue
		}

		coerced, err := coerce(f.Type, v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}

		args[f.Name] = coerced
	}

	return args, nil
}

// coerce checks a decoded JSON value against the declared type. JSON numbers
// arrive as float64; integer fields accept them only when integral.
func coerce(t ParamType, v any) (any, error) {
	switch t {
	case TypeString:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", v)
		}
		return s, nil
	case TypeInt:
		switch n := v.(type) {
		case float64:
			if n != math.Trunc(n) {
				return nil, fmt.Errorf("expected integer, got %v", n)
			}
			return int(n), nil
		case int:
			return n, nil
		}
		return nil, fmt.Errorf("expected integer, got %T", v)
	case TypeFloat:
		switch n := v.(type) {
		case float64:
			return n, nil
		case int:
			return float64(n), nil
		}
		return nil, fmt.Errorf("expected number, got %T", v)
	case TypeBool:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("expected boolean, got %T", v)
		}
		return b, nil
	case TypeObject:
		m, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("expected object, got %T", v)
		}
		return m, nil
	case TypeArray:
		a, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("expected array, got %T", v)
		}
		return a, nil
	default:
		// any: pass through untouched
		return v, nil
	}
}
