package vision

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/impacta-labs/fieldpoint/internal/common"
)

func TestExtractFieldsValidEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "secret", r.Header.Get("X-API-Key"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "aW1n", req["image"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "fields": [
			{"label": "Nome do Cliente", "type": "text", "required": true, "category": "entrada"}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{Endpoint: srv.URL, APIKey: "secret"}, nil)
	out, err := client.ExtractFields(context.Background(), "aW1n")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Nome do Cliente", out[0].Label)
	assert.True(t, out[0].Required)
	assert.Equal(t, "entrada", out[0].Category)
}

func TestExtractFieldsMissingFieldsArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "data": []}`))
	}))
	defer srv.Close()

	client := NewClient(Config{Endpoint: srv.URL}, nil)
	_, err := client.ExtractFields(context.Background(), "aW1n")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrServiceShape)
}

func TestExtractFieldsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(Config{Endpoint: srv.URL}, nil)
	_, err := client.ExtractFields(context.Background(), "aW1n")
	require.Error(t, err)
}

func TestValidateResponseShape(t *testing.T) {
	assert.NoError(t, ValidateResponseShape([]byte(`{"fields": []}`)))
	assert.Error(t, ValidateResponseShape([]byte(`{"fields": "nope"}`)))
	assert.Error(t, ValidateResponseShape([]byte(`{}`)))
	assert.Error(t, ValidateResponseShape([]byte(`not json`)))
}
