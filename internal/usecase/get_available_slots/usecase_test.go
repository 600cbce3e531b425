package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/directory"
)

type stubRepo struct {
	appointments []*domain.Appointment
	err          error

	gotProviderID int64
	gotFrom       time.Time
	gotTo         time.Time
}

func (s *stubRepo) GetByProviderBetween(_ context.Context, providerID int64, from, to time.Time) ([]*domain.Appointment, error) {
	s.gotProviderID = providerID
	s.gotFrom = from
	s.gotTo = to
	return s.appointments, s.err
}

type stubDirectory struct {
	provider *directory.Provider
	err      error
}

func (s *stubDirectory) GetProvider(context.Context, int64) (*directory.Provider, error) {
	return s.provider, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func knownProvider() *stubDirectory {
	return &stubDirectory{provider: &directory.Provider{ID: 1, FullName: "Dr. Smith"}}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func appointmentAt(t time.Time, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{ProviderID: 1, AppointmentTime: t, Status: status}
}

func TestExecute_AllSlotsFree(t *testing.T) {
	repo := &stubRepo{}
	uc := NewUseCase(repo, knownProvider(), nopLogger{})

	day := date(2025, 12, 20)
	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 1, Date: day})
	require.NoError(t, err)

	// 9 слотов, 09:00-17:00 включительно, по возрастанию
	require.Len(t, resp.Slots, domain.SlotsPerDay)
	assert.Equal(t, day.Add(9*time.Hour), resp.Slots[0])
	assert.Equal(t, day.Add(17*time.Hour), resp.Slots[len(resp.Slots)-1])
	for i := 1; i < len(resp.Slots); i++ {
		assert.True(t, resp.Slots[i].After(resp.Slots[i-1]))
	}

	// Запрошен интервал ровно в один день
	assert.Equal(t, day, repo.gotFrom)
	assert.Equal(t, day.AddDate(0, 0, 1), repo.gotTo)
}

func TestExecute_OccupiedSlotExcluded(t *testing.T) {
	day := date(2025, 12, 20)
	repo := &stubRepo{appointments: []*domain.Appointment{
		appointmentAt(day.Add(14*time.Hour), domain.StatusConfirmed),
	}}
	uc := NewUseCase(repo, knownProvider(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 1, Date: day})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, domain.SlotsPerDay-1)
	assert.NotContains(t, resp.Slots, day.Add(14*time.Hour))
	assert.Contains(t, resp.Slots, day.Add(13*time.Hour))
	assert.Contains(t, resp.Slots, day.Add(15*time.Hour))
}

func TestExecute_CancelledAppointmentFreesSlot(t *testing.T) {
	day := date(2025, 12, 20)
	repo := &stubRepo{appointments: []*domain.Appointment{
		appointmentAt(day.Add(14*time.Hour), domain.StatusCancelled),
	}}
	uc := NewUseCase(repo, knownProvider(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 1, Date: day})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, domain.SlotsPerDay)
	assert.Contains(t, resp.Slots, day.Add(14*time.Hour))
}

func TestExecute_PendingOccupiesSlot(t *testing.T) {
	day := date(2025, 12, 20)
	repo := &stubRepo{appointments: []*domain.Appointment{
		appointmentAt(day.Add(9*time.Hour), domain.StatusPending),
	}}
	uc := NewUseCase(repo, knownProvider(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 1, Date: day})
	require.NoError(t, err)

	assert.NotContains(t, resp.Slots, day.Add(9*time.Hour))
}

func TestExecute_OtherDayAppointmentIgnored(t *testing.T) {
	day := date(2025, 12, 20)
	repo := &stubRepo{appointments: []*domain.Appointment{
		appointmentAt(date(2025, 12, 21).Add(14*time.Hour), domain.StatusConfirmed),
	}}
	uc := NewUseCase(repo, knownProvider(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 1, Date: day})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, domain.SlotsPerDay)
}

func TestExecute_DirectoryFailureFailsOpen(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"provider not found", directory.ErrProviderNotFound},
		{"directory unavailable", directory.ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepo{appointments: []*domain.Appointment{
				appointmentAt(date(2025, 12, 20).Add(14*time.Hour), domain.StatusConfirmed),
			}}
			uc := NewUseCase(repo, &stubDirectory{err: tt.err}, nopLogger{})

			resp, err := uc.Execute(context.Background(), &Request{ProviderID: 1, Date: date(2025, 12, 20)})
			require.NoError(t, err)

			// Пустой список без ошибки, записи не читаются
			assert.NotNil(t, resp.Slots)
			assert.Empty(t, resp.Slots)
			assert.Zero(t, repo.gotProviderID)
		})
	}
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &stubRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, knownProvider(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ProviderID: 1, Date: date(2025, 12, 20)})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&stubRepo{}, knownProvider(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ProviderID: 0, Date: date(2025, 12, 20)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ProviderID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGenerateDailySlots(t *testing.T) {
	slots := generateDailySlots(date(2025, 6, 1))

	require.Len(t, slots, 9)
	assert.Equal(t, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), slots[0])
	assert.Equal(t, time.Date(2025, 6, 1, 17, 0, 0, 0, time.UTC), slots[8])
	for _, slot := range slots {
		assert.Equal(t, time.UTC, slot.Location())
		assert.Zero(t, slot.Minute())
	}
}
