package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/sales", r.URL.Path)
		json.NewEncoder(w).Encode([]Record{{"order_no": "ORD-001"}})
	}))
	defer server.Close()

	remote := NewRemote(server.URL, EntitySales)
	records, err := remote.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ORD-001", records[0]["order_no"])
}

func TestRemoteAdd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/clients", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body Record
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Akasha Traders", body["firm_name"])

		body["dealer_id"] = 42
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(body)
	}))
	defer server.Close()

	remote := NewRemote(server.URL, EntityClients)
	record, err := remote.Add(context.Background(), Record{"firm_name": "Akasha Traders"})
	require.NoError(t, err)
	assert.Equal(t, float64(42), record["dealer_id"])
}

func TestRemoteEdit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/users/7", r.URL.Path)
		json.NewEncoder(w).Encode(Record{"user_id": 7, "role": "Manager"})
	}))
	defer server.Close()

	remote := NewRemote(server.URL, EntityUsers)
	record, err := remote.Edit(context.Background(), "7", Record{"role": "Manager"})
	require.NoError(t, err)
	assert.Equal(t, "Manager", record["role"])
}

func TestRemoteDeleteUnwrapsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/sales/ORD-001", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Sale deleted successfully",
			"sale":    Record{"order_no": "ORD-001", "quantity": 10},
		})
	}))
	defer server.Close()

	remote := NewRemote(server.URL, EntitySales)
	record, err := remote.Delete(context.Background(), "ORD-001")
	require.NoError(t, err)
	assert.Equal(t, "ORD-001", record["order_no"])
}

func TestRemoteNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Sale not found"})
	}))
	defer server.Close()

	remote := NewRemote(server.URL, EntitySales)
	_, err := remote.Edit(context.Background(), "ORD-404", Record{"quantity": 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoteSurfacesAPIErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Email already exists"})
	}))
	defer server.Close()

	remote := NewRemote(server.URL, EntityUsers)
	_, err := remote.Add(context.Background(), Record{"email": "dup@safeli.in"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Email already exists")
}
