package inspect_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-registry/framework/inspect"
	"github.com/km-arc/go-registry/framework/logging"
	"github.com/km-arc/go-registry/framework/registry"
	"github.com/km-arc/go-registry/framework/routing"
)

type body struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func server(t *testing.T) *routing.Router {
	t.Helper()
	reg := registry.New([]registry.Binding{
		registry.Named("greeting").WithValue("hello"),
		registry.Named("port").WithValue(8080),
		registry.Named("any").WithSupplier(func() any { return "wild" }),
		registry.Named("callback").WithValue(func() {}),
	}, registry.WithLogger(logging.Discard()))

	r := routing.Bare()
	inspect.New(reg).Routes(r)
	return r
}

func get(t *testing.T, h http.Handler, path string) (int, body) {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))

	var b body
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &b), rr.Body.String())
	return rr.Code, b
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestTypes(t *testing.T) {
	code, b := get(t, server(t), "/types")
	require.Equal(t, http.StatusOK, code)

	keys := decode[[]string](t, b.Data)
	assert.Contains(t, keys, "string")
	assert.Contains(t, keys, "int")
}

func TestType(t *testing.T) {
	h := server(t)

	code, b := get(t, h, "/type?key=int")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"key": "int", "bound": true}, decode[map[string]any](t, b.Data))

	_, b = get(t, h, "/type?key=float64")
	assert.Equal(t, false, decode[map[string]any](t, b.Data)["bound"])

	code, _ = get(t, h, "/type")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestNames(t *testing.T) {
	code, b := get(t, server(t), "/names")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"any", "callback", "greeting", "port"}, decode[[]string](t, b.Data))
}

func TestName(t *testing.T) {
	h := server(t)

	code, b := get(t, h, "/names/greeting")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []inspect.Entry{{Name: "greeting", Type: "string"}}, decode[[]inspect.Entry](t, b.Data))

	_, b = get(t, h, "/names/any")
	assert.Equal(t, []inspect.Entry{{Name: "any", Wildcard: true}}, decode[[]inspect.Entry](t, b.Data))

	code, b = get(t, h, "/names/missing")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, b.Message, "missing")
}

func TestValue(t *testing.T) {
	h := server(t)

	t.Run("by name", func(t *testing.T) {
		code, b := get(t, h, "/names/greeting/value")
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "hello", decode[string](t, b.Data))
	})

	t.Run("by name and type", func(t *testing.T) {
		_, b := get(t, h, "/names/port/value?type=int")
		assert.Equal(t, 8080, decode[int](t, b.Data))
	})

	t.Run("type mismatch resolves to null", func(t *testing.T) {
		code, b := get(t, h, "/names/port/value?type=string")
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "null", string(b.Data))
	})

	t.Run("wildcard fallback", func(t *testing.T) {
		_, b := get(t, h, "/names/any/value?type=int")
		assert.Equal(t, "wild", decode[string](t, b.Data))
	})

	t.Run("unencodable value is rendered as text", func(t *testing.T) {
		code, b := get(t, h, "/names/callback/value")
		require.Equal(t, http.StatusOK, code)
		assert.NotEmpty(t, decode[string](t, b.Data))
	})

	t.Run("unknown type", func(t *testing.T) {
		code, _ := get(t, h, "/names/port/value?type=nope")
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("unknown name", func(t *testing.T) {
		code, _ := get(t, h, "/names/missing/value")
		assert.Equal(t, http.StatusNotFound, code)
	})
}
