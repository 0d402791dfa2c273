package dentalink

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	"dentalink-client/dentalink/exceptions"
	"dentalink-client/dentalink/schemas"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeFilterDoc(t *testing.T, rawQuery string) map[string]any {
	t.Helper()
	values, err := url.ParseQuery(rawQuery)
	require.NoError(t, err)
	require.Len(t, values, 1, "the filter document must travel as the single `q` parameter")

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(values.Get("q")), &doc))
	return doc
}

func TestFindAppointmentsFilters(t *testing.T) {
	var gotRawQuery string

	router := chi.NewRouter()
	router.Get("/citas", func(w http.ResponseWriter, r *http.Request) {
		gotRawQuery = r.URL.RawQuery
		writeJSON(w, http.StatusOK, listEnvelope([]map[string]any{
			appointmentFixture(1, "2023-11-13", 7, 1),
			appointmentFixture(2, "2023-11-15", 7, 1),
		}, nil))
	})
	client := newTestClient(t, router)

	t.Run("all four filters reach the wire", func(t *testing.T) {
		startDate := time.Date(2023, 11, 13, 0, 0, 0, 0, time.UTC)
		endDate := time.Date(2023, 11, 15, 23, 59, 0, 0, time.UTC)
		statusID := 7
		branchID := 1

		envelope, err := client.FindAppointments(context.Background(), &AppointmentFilters{
			StartDate: &startDate,
			EndDate:   &endDate,
			StatusID:  &statusID,
			BranchID:  &branchID,
		})
		require.NoError(t, err)

		doc := decodeFilterDoc(t, gotRawQuery)
		assert.Equal(t, map[string]any{
			"fecha": []any{
				map[string]any{"gte": "2023-11-13"},
				map[string]any{"lte": "2023-11-15"},
			},
			"id_sucursal": map[string]any{"eq": "1"},
			"id_estado":   map[string]any{"eq": "7"},
		}, doc)

		require.Len(t, envelope.Data, 2)
		for _, appointment := range envelope.Data {
			assert.Equal(t, 7, appointment.StatusID)
			assert.Equal(t, 1, appointment.BranchID)
			assert.False(t, appointment.Date.Before(startDate))
			assert.False(t, appointment.Date.After(endDate))
		}
	})

	t.Run("omitted filters do not appear in the query string", func(t *testing.T) {
		_, err := client.FindAppointments(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, gotRawQuery)
	})

	t.Run("a lone lower bound sends only that filter", func(t *testing.T) {
		startDate := time.Date(2023, 11, 13, 0, 0, 0, 0, time.UTC)
		_, err := client.FindAppointments(context.Background(), &AppointmentFilters{
			StartDate: &startDate,
		})
		require.NoError(t, err)

		doc := decodeFilterDoc(t, gotRawQuery)
		assert.Equal(t, map[string]any{
			"fecha": map[string]any{"gte": "2023-11-13"},
		}, doc)
	})
}

func TestFindAppointmentsPagination(t *testing.T) {
	next := "https://api.example.com/citas?page=2"
	responses := []map[string]any{
		listEnvelope([]map[string]any{appointmentFixture(1, "2023-11-13", 7, 1)}, &next),
		listEnvelope([]map[string]any{appointmentFixture(2, "2023-11-14", 7, 1)}, nil),
	}
	call := 0

	router := chi.NewRouter()
	router.Get("/citas", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, responses[call])
		call++
	})
	client := newTestClient(t, router)

	envelope, err := client.FindAppointments(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, envelope.Links)
	require.NotNil(t, envelope.Links.Next)
	assert.Equal(t, next, *envelope.Links.Next)
	assert.Nil(t, envelope.Links.Prev)

	envelope, err = client.FindAppointments(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, envelope.Links)
	assert.Nil(t, envelope.Links.Next, "a null next link must decode without error")
}

func TestFindAppointmentsValidation(t *testing.T) {
	t.Run("a record missing a required field fails naming it", func(t *testing.T) {
		broken := appointmentFixture(1, "2023-11-13", 7, 1)
		delete(broken, "hora_inicio")

		router := chi.NewRouter()
		router.Get("/citas", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, listEnvelope([]map[string]any{broken}, nil))
		})
		client := newTestClient(t, router)

		_, err := client.FindAppointments(context.Background(), nil)
		require.Error(t, err)

		var validationErr *exceptions.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "hora_inicio", validationErr.Field)
	})

	t.Run("a malformed date fails as a validation error", func(t *testing.T) {
		broken := appointmentFixture(1, "2023-11-13", 7, 1)
		broken["fecha"] = "13/11/2023"

		router := chi.NewRouter()
		router.Get("/citas", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, listEnvelope([]map[string]any{broken}, nil))
		})
		client := newTestClient(t, router)

		_, err := client.FindAppointments(context.Background(), nil)
		require.Error(t, err)

		var validationErr *exceptions.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}

func TestUpdateAppointmentFlow(t *testing.T) {
	stored := appointmentFixture(42, "2023-11-13", 3, 1)
	var gotUpdateBodies []map[string]any

	router := chi.NewRouter()
	router.Get("/citas/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"data": stored})
	})
	router.Put("/citas/{id}", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var update map[string]any
		json.Unmarshal(body, &update)
		gotUpdateBodies = append(gotUpdateBodies, update)

		if statusID, ok := update["id_estado"]; ok {
			stored["id_estado"] = int(statusID.(float64))
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": stored})
	})
	client := newTestClient(t, router)
	ctx := context.Background()

	before, err := client.FindAppointmentByID(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 3, before.Data.StatusID)
	assert.Nil(t, before.Links, "single-record envelopes carry no cursor")

	statusID := 7
	updated, err := client.UpdateAppointment(ctx, 42, &UpdateAppointmentRequest{StatusID: &statusID})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Data.StatusID)

	// Same update again is idempotent.
	updated, err = client.UpdateAppointment(ctx, 42, &UpdateAppointmentRequest{StatusID: &statusID})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Data.StatusID)

	after, err := client.FindAppointmentByID(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 7, after.Data.StatusID)

	require.Len(t, gotUpdateBodies, 2)
	for _, body := range gotUpdateBodies {
		assert.Equal(t, map[string]any{"id_estado": float64(7)}, body,
			"only supplied fields may be sent on a partial update")
	}
}

func TestUpdateAppointmentSerializesDates(t *testing.T) {
	var gotBody map[string]any
	stored := appointmentFixture(42, "2023-11-20", 3, 1)

	router := chi.NewRouter()
	router.Put("/citas/{id}", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotBody)
		writeJSON(w, http.StatusOK, map[string]any{"data": stored})
	})
	client := newTestClient(t, router)

	date := schemas.NewDate(time.Date(2023, 11, 20, 0, 0, 0, 0, time.UTC))
	comments := "reagendada"
	_, err := client.UpdateAppointment(context.Background(), 42, &UpdateAppointmentRequest{
		Date:     &date,
		Comments: &comments,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"fecha":       "2023-11-20",
		"comentarios": "reagendada",
	}, gotBody)
}
