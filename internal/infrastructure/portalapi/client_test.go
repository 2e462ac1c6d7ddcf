package portalapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"portal_electro/internal/session"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func authed() context.Context {
	return session.WithCredentials(context.Background(), session.Credentials{Token: "abc", UserID: 3})
}

func TestClient_Do(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer abc" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/items":
			assert.Equal(t, "7", r.URL.Query().Get("process_id"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":1,"name":"a"},{"id":2,"name":"b"}]`))
		case r.Method == http.MethodDelete && r.URL.Path == "/api/items/9":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Item not found"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/api/", 2*time.Second, zap.NewNop())

	t.Run("decodes result with bearer token", func(t *testing.T) {
		var out []item
		err := c.Get(authed(), "/items", map[string]string{"process_id": "7"}, &out)
		require.NoError(t, err)
		assert.Equal(t, []item{{1, "a"}, {2, "b"}}, out)
	})

	t.Run("non-2xx becomes APIError", func(t *testing.T) {
		err := c.Delete(authed(), "/items/9")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.NotFound())
		assert.Equal(t, "DELETE", apiErr.Method)
		assert.Contains(t, apiErr.Error(), "Item not found")
	})

	t.Run("missing credentials never reach the backend", func(t *testing.T) {
		err := c.Get(context.Background(), "/items", nil, nil)
		assert.True(t, errors.Is(err, session.ErrMissingToken))
	})
}
