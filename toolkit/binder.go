package toolkit

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

const DefaultPrefix = "/tools"

type BinderOption func(*Binder)

func WithPrefix(prefix string) BinderOption {
	return func(b *Binder) {
		b.prefix = strings.TrimRight(prefix, "/")
	}
}

// Binder exposes every registered tool as a POST route plus a catalog route
// and a per-tool info route. Handlers are built once into an explicit
// name-to-handler table so each one is bound to its own tool name.
type Binder struct {
	registry *Registry
	prefix   string
	handlers map[string]http.HandlerFunc
}

func NewBinder(registry *Registry, opts ...BinderOption) *Binder {
	b := &Binder{
		registry: registry,
		prefix:   DefaultPrefix,
		handlers: map[string]http.HandlerFunc{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Binder) Prefix() string {
	return b.prefix
}

// Routes builds the handler table and mounts it on router.
func (b *Binder) Routes(router *mux.Router) {
	for _, name := range b.registry.List() {
		spec, ok := b.registry.Spec(name)
		if !ok {
			continue
		}
		b.handlers[name] = b.executeHandler(name, NewRequestSchema(spec))
	}

	router.HandleFunc(b.prefix, b.handleList).Methods(http.MethodGet)
	router.HandleFunc(b.prefix+"/", b.handleList).Methods(http.MethodGet)
	router.HandleFunc(b.prefix+"/{tool}", b.handleDescribe).Methods(http.MethodGet)
	router.HandleFunc(b.prefix+"/{tool}", b.handleExecute).Methods(http.MethodPost)
}

func (b *Binder) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"tools": b.registry.List()})
}

func (b *Binder) handleDescribe(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["tool"]

	info, ok := b.registry.Describe(name)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Tool not found: "+name)
		return
	}

	writeJSON(w, http.StatusOK, info)
}

func (b *Binder) handleExecute(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["tool"]

	handler, ok := b.handlers[name]
	if !ok {
		writeDetail(w, http.StatusNotFound, "Tool not found: "+name)
		return
	}

	handler(w, r)
}

// executeHandler returns the POST handler for one tool, closed over its own
// name and schema.
func (b *Binder) executeHandler(name string, schema RequestSchema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			writeDetail(w, http.StatusBadRequest, "failed to read body")
			return
		}
		defer r.Body.Close()

		args, err := schema.Decode(raw)
		if err != nil {
			writeDetail(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		result, err := b.registry.Execute(r.Context(), name, args)
		if err != nil {
			slog.Error("tool execution failed", "tool", name, "error", err)
			writeDetail(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"result": result})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
