package toolkit

import "context"

type ParamType string

const (
	TypeString ParamType = "string"
	TypeInt    ParamType = "int"
	TypeFloat  ParamType = "float"
	TypeBool   ParamType = "bool"
	TypeObject ParamType = "object"
	TypeArray  ParamType = "array"
	TypeAny    ParamType = "any"
)

// Func is the shape every registered tool reduces to. Arguments arrive as a
// plain map after the request schema has validated them and filled defaults.
type Func func(ctx context.Context, args map[string]any) (any, error)

type ParamSpec struct {
	Name        string
	Type        ParamType
	Required    bool
	Default     any
	Description string
}

type ToolSpec struct {
	Name        string
	Description string
	Params      []ParamSpec
	Returns     ParamType
}

// Param declares a required parameter. A parameter is required exactly when
// no default was supplied.
func Param(name string, t ParamType, description string) ParamSpec {
	return ParamSpec{
		Name:        name,
		Type:        t,
		Required:    true,
		Description: description,
	}
}

// OptionalParam declares a parameter with a default value.
func OptionalParam(name string, t ParamType, def any, description string) ParamSpec {
	return ParamSpec{
		Name:        name,
		Type:        t,
		Default:     def,
		Description: description,
	}
}
