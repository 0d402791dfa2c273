package dentalink

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"dentalink-client/dentalink/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testToken = "secret-token"

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, testToken, zap.NewNop())
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// listEnvelope wraps records the way list endpoints do, with a cursor whose
// next link may be null.
func listEnvelope(data any, next *string) map[string]any {
	return map[string]any{
		"links": map[string]any{
			"current": "https://api.example.com/citas?page=1",
			"next":    next,
			"prev":    nil,
		},
		"data": data,
	}
}

func appointmentFixture(id int, date string, statusID, branchID int) map[string]any {
	return map[string]any{
		"id":                      id,
		"id_paciente":             100 + id,
		"nombre_paciente":         "Juana Pérez",
		"nombre_social_paciente":  "",
		"id_estado":               statusID,
		"estado_cita":             "Confirmado",
		"estado_anulacion":        0,
		"estado_confirmacion":     1,
		"id_tratamiento":          5,
		"nombre_tratamiento":      "Limpieza",
		"tratamiento_sin_asignar": 0,
		"fecha":                   date,
		"hora_inicio":             "10:00:00",
		"hora_fin":                "10:30:00",
		"duracion":                30,
		"id_dentista":             3,
		"nombre_dentista":         "Dra. Rojas",
		"id_sucursal":             branchID,
		"nombre_sucursal":         "Providencia",
		"motivo_atencion":         nil,
		"id_sillon":               2,
		"nombre_sillon":           "Sillón 2",
		"id_lugar_atencion":       nil,
		"nombre_lugar_atencion":   nil,
		"comentarios":             "",
		"fecha_actualizacion":     "2023-11-10 09:15:00",
		"links": []map[string]any{
			{"rel": "self", "href": fmt.Sprintf("/citas/%d", id), "method": "GET"},
		},
	}
}

func TestRequestHeaders(t *testing.T) {
	var gotAuthorization, gotAccept string
	var gotRawQuery string

	router := chi.NewRouter()
	router.Get("/sucursales", func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotRawQuery = r.URL.RawQuery
		writeJSON(w, http.StatusOK, listEnvelope([]map[string]any{}, nil))
	})

	client := newTestClient(t, router)
	_, err := client.FindBranches(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "Token "+testToken, gotAuthorization)
	assert.Equal(t, "application/json", gotAccept)
	assert.Empty(t, gotRawQuery, "no filters must mean no query string at all")
}

func TestErrorTaxonomy(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/citas/{id}", func(w http.ResponseWriter, r *http.Request) {
		switch chi.URLParam(r, "id") {
		case "404":
			writeJSON(w, http.StatusNotFound, map[string]any{
				"error": map[string]any{"code": 404, "message": "Cita no encontrada"},
			})
		case "500":
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"error": map[string]any{"code": 500, "message": "Error interno"},
			})
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("upstream down"))
		}
	})
	client := newTestClient(t, router)

	t.Run("404 surfaces as a not-found error", func(t *testing.T) {
		_, err := client.FindAppointmentByID(context.Background(), 404)
		require.Error(t, err)

		var notFoundErr *exceptions.NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, "Cita no encontrada", notFoundErr.Message)

		var apiErr *exceptions.APIError
		assert.False(t, errors.As(err, &apiErr), "a 404 must not be a generic API error")
	})

	t.Run("other non-2xx statuses surface as API errors", func(t *testing.T) {
		_, err := client.FindAppointmentByID(context.Background(), 500)
		require.Error(t, err)

		var apiErr *exceptions.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Equal(t, "Error interno", apiErr.Message)
	})

	t.Run("non-JSON error bodies fall back to the raw text", func(t *testing.T) {
		_, err := client.FindAppointmentByID(context.Background(), 1)
		require.Error(t, err)

		var apiErr *exceptions.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
		assert.Equal(t, "upstream down", apiErr.Message)
	})
}

func TestConnectionFailureSurfacesAsTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client := NewClient(baseURL, testToken, zap.NewNop())
	_, err := client.FindBranches(context.Background(), nil)
	require.Error(t, err)

	var transportErr *exceptions.TransportError
	require.ErrorAs(t, err, &transportErr)

	var apiErr *exceptions.APIError
	assert.False(t, errors.As(err, &apiErr))
}
