// Package inspect exposes a read-only JSON view of a registry over HTTP.
//
//	GET /types                     every type key
//	GET /type?key=...              whether a type key is bound
//	GET /names                     every name
//	GET /names/{name}              entries under a name
//	GET /names/{name}/value        resolve a name, optionally ?type=<key>
package inspect

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	gohttp "github.com/km-arc/go-registry/framework/http"
	"github.com/km-arc/go-registry/framework/logging"
	"github.com/km-arc/go-registry/framework/registry"
	"github.com/km-arc/go-registry/framework/routing"
)

// Handler serves the inspection routes for one registry.
type Handler struct {
	reg *registry.Registry
	log *slog.Logger
}

// New creates a Handler over reg.
func New(reg *registry.Registry) *Handler {
	return &Handler{reg: reg, log: logging.With("component", "inspect")}
}

// Routes registers the inspection endpoints on r.
func (h *Handler) Routes(r *routing.Router) {
	r.Get("/types", h.Types)
	r.Get("/type", h.Type)
	r.Get("/names", h.Names)
	r.Get("/names/{name}", h.Name)
	r.Get("/names/{name}/value", h.Value)
}

// Entry is the JSON form of a registry.NamedEntry.
type Entry struct {
	Name     string `json:"name"`
	Type     string `json:"type,omitempty"`
	Wildcard bool   `json:"wildcard"`
}

// Types lists every registered type key.
func (h *Handler) Types(w http.ResponseWriter, r *http.Request) {
	types := h.reg.Types()
	keys := make([]string, 0, len(types))
	for _, t := range types {
		keys = append(keys, registry.TypeKey(t))
	}
	gohttp.NewResponse(w).Success(keys)
}

// Type reports whether ?key= names a bound type.
func (h *Handler) Type(w http.ResponseWriter, r *http.Request) {
	res := gohttp.NewResponse(w)
	key := gohttp.NewRequest(r).Query("key")
	if key == "" {
		res.Error(http.StatusBadRequest, "missing key parameter")
		return
	}
	t, ok := h.reg.LookupType(key)
	res.Success(map[string]any{"key": key, "bound": ok && h.reg.Has(t)})
}

// Names lists every registered name.
func (h *Handler) Names(w http.ResponseWriter, r *http.Request) {
	gohttp.NewResponse(w).Success(h.reg.Names())
}

// Name lists the entries registered under {name}.
func (h *Handler) Name(w http.ResponseWriter, r *http.Request) {
	res := gohttp.NewResponse(w)
	name := routing.Param(r, "name")
	if !h.reg.HasName(name) {
		res.NotFound(fmt.Sprintf("no binding registered for name [%s]", name))
		return
	}
	entries := h.reg.Entries(name)
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, Entry{Name: e.Name, Wildcard: e.Wildcard(), Type: typeKey(e)})
	}
	res.Success(out)
}

// Value resolves {name}. With ?type= the name is resolved against that type
// key; without it the first entry under the name is used.
func (h *Handler) Value(w http.ResponseWriter, r *http.Request) {
	res := gohttp.NewResponse(w)
	req := gohttp.NewRequest(r)
	name := req.RouteParam("name")
	if !h.reg.HasName(name) {
		res.NotFound(fmt.Sprintf("no binding registered for name [%s]", name))
		return
	}

	key := req.Query("type")
	if key == "" {
		res.Success(renderable(h.reg.GetByName(name)))
		return
	}

	t, ok := h.reg.LookupType(key)
	if !ok {
		res.Error(http.StatusBadRequest, fmt.Sprintf("unknown type [%s]", key))
		return
	}
	v, err := h.reg.GetNamed(t, name)
	if err != nil {
		h.log.Error("resolve failed", "name", name, "type", key, "error", err)
		res.ServerError(err.Error())
		return
	}
	res.Success(renderable(v))
}

func typeKey(e registry.NamedEntry) string {
	if e.Wildcard() {
		return ""
	}
	return registry.TypeKey(e.Type)
}

// renderable returns v if it encodes as JSON, otherwise its fmt form.
func renderable(v any) any {
	if _, err := json.Marshal(v); err != nil {
		return fmt.Sprint(v)
	}
	return v
}
