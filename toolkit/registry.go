package toolkit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

var ErrToolNotFound = fmt.Errorf("tool not found")

// ParamInfo is the render-friendly projection of one ParamSpec.
type ParamInfo struct {
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Default     any    `json:"default,omitempty"`
	Description string `json:"description,omitempty"`
}

// ToolInfo is the render-friendly projection of one registered tool.
type ToolInfo struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Parameters  map[string]ParamInfo `json:"parameters"`
	ReturnType  string               `json:"return_type"`
}

type entry struct {
	spec ToolSpec
	fn   Func
}

// Registry owns the catalog of callable tools. All registration happens at
// startup; at request time the registry is read-only.
type Registry struct {
	tools map[string]*entry
	order []string
	mtx   sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		tools: map[string]*entry{},
	}
}

// Register inserts the tool under spec.Name. Registration is total: it never
// fails, and a second registration under the same name replaces the prior
// entry while keeping its position in the catalog.
func (r *Registry) Register(spec ToolSpec, fn Func) ToolSpec {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	name := strings.TrimSpace(spec.Name)
	spec.Name = name

	if _, ok := r.tools[name]; ok {
		slog.Warn("replacing registered tool", "tool", name)
	} else {
		r.order = append(r.order, name)
		slog.Info("registered tool", "tool", name, "params", len(spec.Params))
	}

	r.tools[name] = &entry{spec: spec, fn: fn}

	return spec
}

// Execute invokes the named tool. A miss is reported as an error wrapping
// ErrToolNotFound; any error from the tool itself propagates unchanged so
// the transport layer can reshape it.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (any, error) {
	r.mtx.RLock()
	e, ok := r.tools[name]
	r.mtx.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	return e.fn(ctx, args)
}

// List returns the registered names in insertion order.
func (r *Registry) List() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)

	return names
}

// Spec returns the raw descriptor for name.
func (r *Registry) Spec(name string) (ToolSpec, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	e, ok := r.tools[name]
	if !ok {
		return ToolSpec{}, false
	}

	return e.spec, true
}

// Describe returns the projection of name, or false when unknown. Callers
// check the bool rather than an error.
func (r *Registry) Describe(name string) (ToolInfo, bool) {
	spec, ok := r.Spec(name)
	if !ok {
		return ToolInfo{}, false
	}

	params := make(map[string]ParamInfo, len(spec.Params))
	for _, p := range spec.Params {
		params[p.Name] = ParamInfo{
			Type:        string(p.Type),
			Required:    p.Required,
			Default:     p.Default,
			Description: p.Description,
		}
	}

	return ToolInfo{
		Name:        spec.Name,
		Description: spec.Description,
		Parameters:  params,
		ReturnType:  string(spec.Returns),
	}, true
}

// SchemaDocument renders the catalog as an OpenAPI-like document with one
// POST path per tool under prefix.
func (r *Registry) SchemaDocument(prefix string) map[string]any {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	paths := map[string]any{}

	for _, name := range r.order {
		spec := r.tools[name].spec

		properties := map[string]any{}
		required := []string{}

		for _, p := range spec.Params {
			prop := map[string]any{"type": jsonType(p.Type)}
			if len(p.Description) > 0 {
				prop["description"] = p.Description
			}
			if !p.Required && p.Default != nil {
				prop["default"] = p.Default
			}
			properties[p.Name] = prop

			if p.Required {
				required = append(required, p.Name)
			}
		}

		body := map[string]any{
			"type":       "object",
			"properties": properties,
		}
		if len(required) > 0 {
			body["required"] = required
		}

		paths[prefix+"/"+name] = map[string]any{
			"post": map[string]any{
				"summary":     summary(spec.Description),
				"operationId": name,
				"requestBody": map[string]any{
					"required": true,
					"content": map[string]any{
						"application/json": map[string]any{"schema": body},
					},
				},
				"responses": map[string]any{
					"200": map[string]any{
						"description": "tool result",
						"content": map[string]any{
							"application/json": map[string]any{
								"schema": map[string]any{
									"type": "object",
									"properties": map[string]any{
										"result": map[string]any{"type": jsonType(spec.Returns)},
									},
								},
							},
						},
					},
				},
			},
		}
	}

	return map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   "Agentic Tasks",
			"version": "1.0",
		},
		"paths": paths,
	}
}

// jsonType maps a semantic parameter type to its JSON schema type, falling
// back to "string" for anything unmapped.
func jsonType(t ParamType) string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "integer"
	case TypeFloat:
		return "number"
	case TypeBool:
		return "boolean"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	default:
		return "string"
	}
}

func summary(description string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(description), "\n")
	return strings.TrimSpace(line)
}
