package postgrest_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aryadee/smart-bank/pkg/httpclient"
	"github.com/aryadee/smart-bank/pkg/postgrest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	AccountNo string `json:"account_no"`
	Balance   int64  `json:"balance"`
}

func newClient(t *testing.T, serverURL string) postgrest.Client {
	t.Helper()
	c, err := postgrest.NewClient(postgrest.Config{
		URL:     serverURL,
		APIKey:  "service-key",
		Timeout: 5 * time.Second,
	}, httpclient.NewHTTPClient(5*time.Second))
	require.NoError(t, err)
	return c
}

func TestClient_RequiresConfiguration(t *testing.T) {
	_, err := postgrest.NewClient(postgrest.Config{}, httpclient.NewHTTPClient(time.Second))
	assert.ErrorIs(t, err, postgrest.ErrNotConfigured)
}

func TestClient_Select(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/accounts", r.URL.Path)
		assert.Equal(t, "eq.Abc123!", r.URL.Query().Get("account_no"))
		assert.Equal(t, "service-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		w.Write([]byte(`[{"account_no":"Abc123!","balance":500}]`))
	}))
	defer server.Close()

	var rows []row
	err := newClient(t, server.URL).Select(context.Background(), "accounts",
		postgrest.Filters{"account_no": postgrest.Eq("Abc123!")}, "", &rows)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(500), rows[0].Balance)
}

func TestClient_Insert(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[{"account_no":"Abc123!","balance":0}]`))
	}))
	defer server.Close()

	var created row
	err := newClient(t, server.URL).Insert(context.Background(), "accounts",
		row{AccountNo: "Abc123!"}, &created)

	require.NoError(t, err)
	assert.Equal(t, "Abc123!", created.AccountNo)
}

func TestClient_Update_RowCount(t *testing.T) {
	t.Run("matching rows are counted", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "eq.500", r.URL.Query().Get("balance"))
			w.Write([]byte(`[{"account_no":"Abc123!","balance":700}]`))
		}))
		defer server.Close()

		n, err := newClient(t, server.URL).Update(context.Background(), "accounts",
			postgrest.Filters{"account_no": postgrest.Eq("Abc123!"), "balance": postgrest.Eq(500)},
			map[string]any{"balance": 700})

		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("stale filter matches nothing", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		n, err := newClient(t, server.URL).Update(context.Background(), "accounts",
			postgrest.Filters{"balance": postgrest.Eq(9999)}, map[string]any{"balance": 1})

		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})
}

func TestClient_Delete_RowCount(t *testing.T) {
	t.Run("removed rows are counted", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
			w.Write([]byte(`[{"account_no":"Abc123!","balance":300}]`))
		}))
		defer server.Close()

		n, err := newClient(t, server.URL).Delete(context.Background(), "transactions",
			postgrest.Filters{"account_no": postgrest.Eq("Abc123!")})

		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("no matching rows reads as zero", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		n, err := newClient(t, server.URL).Delete(context.Background(), "transactions",
			postgrest.Filters{"account_no": postgrest.Eq("ZZZ999!")})

		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})
}

func TestClient_ErrorMapping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid api key"}`))
	}))
	defer server.Close()

	var rows []row
	err := newClient(t, server.URL).Select(context.Background(), "accounts", nil, "", &rows)

	assert.ErrorIs(t, err, postgrest.ErrUnauthorized)
}
