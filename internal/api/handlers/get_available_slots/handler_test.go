package get_available_slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

type stubUseCase struct {
	resp *getAvailableSlots.Response
	err  error

	gotReq *getAvailableSlots.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.gotReq = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, useCase *stubUseCase, url string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(useCase, nopLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/providers/{providerId}/available-slots", handler.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle(t *testing.T) {
	day := time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC)

	t.Run("ok", func(t *testing.T) {
		useCase := &stubUseCase{resp: &getAvailableSlots.Response{
			ProviderID: 7,
			Date:       day,
			Slots:      []time.Time{day.Add(9 * time.Hour), day.Add(10 * time.Hour)},
		}}

		rec := doRequest(t, useCase, "/api/v1/providers/7/available-slots?date=2025-12-20")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"date":"2025-12-20"`)
		assert.Contains(t, rec.Body.String(), `"2025-12-20T09:00:00Z"`)

		require.NotNil(t, useCase.gotReq)
		assert.Equal(t, int64(7), useCase.gotReq.ProviderID)
		assert.Equal(t, day, useCase.gotReq.Date)
	})

	t.Run("empty slot list serialized as array", func(t *testing.T) {
		useCase := &stubUseCase{resp: &getAvailableSlots.Response{
			ProviderID: 7,
			Date:       day,
			Slots:      []time.Time{},
		}}

		rec := doRequest(t, useCase, "/api/v1/providers/7/available-slots?date=2025-12-20")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"slots":[]`)
	})

	t.Run("missing date", func(t *testing.T) {
		rec := doRequest(t, &stubUseCase{}, "/api/v1/providers/7/available-slots")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed date", func(t *testing.T) {
		rec := doRequest(t, &stubUseCase{}, "/api/v1/providers/7/available-slots?date=20.12.2025")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-numeric provider id", func(t *testing.T) {
		rec := doRequest(t, &stubUseCase{}, "/api/v1/providers/abc/available-slots?date=2025-12-20")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		useCase := &stubUseCase{err: getAvailableSlots.ErrInternal}
		rec := doRequest(t, useCase, "/api/v1/providers/7/available-slots?date=2025-12-20")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
