package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/directory"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

type stubRepo struct {
	count     int
	countErr  error
	createErr error

	gotStatuses []domain.AppointmentStatus
	created     *domain.Appointment
}

func (s *stubRepo) CountOccupyingAt(_ context.Context, _ int64, _ time.Time, statuses []domain.AppointmentStatus) (int, error) {
	s.gotStatuses = statuses
	return s.count, s.countErr
}

func (s *stubRepo) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = appointment
	now := time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)
	out := *appointment
	out.CreatedAt = now
	out.UpdatedAt = now
	return &out, nil
}

type stubDirectory struct {
	provider *directory.Provider
	err      error

	calls int
}

func (s *stubDirectory) GetProvider(context.Context, int64) (*directory.Provider, error) {
	s.calls++
	return s.provider, s.err
}

// inlineTxManager выполняет функцию без реальной транзакции
type inlineTxManager struct {
	calls int
}

func (m *inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)

func newTestUseCase(repo *stubRepo, dir *stubDirectory, pendingBlocksSlot bool) (*UseCase, *inlineTxManager) {
	txMgr := &inlineTxManager{}
	uc := NewUseCase(repo, dir, txMgr, pendingBlocksSlot, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc, txMgr
}

func knownProvider() *stubDirectory {
	return &stubDirectory{provider: &directory.Provider{ID: 1, FullName: "Dr. Smith"}}
}

func validRequest() *Request {
	return &Request{
		UserID:          42,
		ProviderID:      1,
		AppointmentTime: time.Date(2025, 12, 20, 14, 0, 0, 0, time.UTC),
		Notes:           ptr.Ptr("первичный приём"),
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &stubRepo{}
	uc, txMgr := newTestUseCase(repo, knownProvider(), true)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Новая запись всегда создаётся в статусе PENDING
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, int64(42), resp.UserID)
	assert.Equal(t, int64(1), resp.ProviderID)
	assert.Equal(t, time.Date(2025, 12, 20, 14, 0, 0, 0, time.UTC), resp.AppointmentTime)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "первичный приём", *resp.Notes)

	// Проверка и вставка выполняются внутри транзакции
	assert.Equal(t, 1, txMgr.calls)
	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusPending, repo.created.Status)
}

func TestExecute_AppointmentTimeNotInFuture(t *testing.T) {
	uc, _ := newTestUseCase(&stubRepo{}, knownProvider(), true)

	req := validRequest()
	req.AppointmentTime = testNow.Add(-time.Hour)
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateNotInFuture)

	// Ровно "сейчас" тоже отклоняется, нужно строго будущее
	req.AppointmentTime = testNow
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateNotInFuture)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc, _ := newTestUseCase(&stubRepo{}, knownProvider(), true)

	req := validRequest()
	req.ProviderID = 0
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	long := make([]byte, domain.MaxNotesLength+1)
	for i := range long {
		long[i] = 'a'
	}
	req.Notes = ptr.Ptr(string(long))
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ProviderCheckFailsClosed(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"provider not found", directory.ErrProviderNotFound},
		// Недоступность справочника на пути бронирования не поглощается
		{"directory unavailable", directory.ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepo{}
			uc, txMgr := newTestUseCase(repo, &stubDirectory{err: tt.err}, true)

			_, err := uc.Execute(context.Background(), validRequest())
			assert.ErrorIs(t, err, ErrProviderNotFound)
			assert.Zero(t, txMgr.calls)
			assert.Nil(t, repo.created)
		})
	}
}

func TestExecute_SlotTakenPreCheck(t *testing.T) {
	repo := &stubRepo{count: 1}
	uc, _ := newTestUseCase(repo, knownProvider(), true)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, repo.created)
}

func TestExecute_SlotTakenUniqueConstraint(t *testing.T) {
	// Предварительная проверка прошла, но конкурентная вставка успела раньше
	repo := &stubRepo{createErr: appointmentRepo.ErrSlotTaken}
	uc, _ := newTestUseCase(repo, knownProvider(), true)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_PendingBlocksSlotFlag(t *testing.T) {
	t.Run("enabled: PENDING counts as occupying", func(t *testing.T) {
		repo := &stubRepo{}
		uc, _ := newTestUseCase(repo, knownProvider(), true)

		_, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.ElementsMatch(t,
			[]domain.AppointmentStatus{domain.StatusConfirmed, domain.StatusPending},
			repo.gotStatuses)
	})

	t.Run("disabled: only CONFIRMED occupies", func(t *testing.T) {
		repo := &stubRepo{}
		uc, _ := newTestUseCase(repo, knownProvider(), false)

		_, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, []domain.AppointmentStatus{domain.StatusConfirmed}, repo.gotStatuses)
	})
}

func TestExecute_RepositoryErrors(t *testing.T) {
	t.Run("availability check fails", func(t *testing.T) {
		repo := &stubRepo{countErr: errors.New("connection refused")}
		uc, _ := newTestUseCase(repo, knownProvider(), true)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("insert fails", func(t *testing.T) {
		repo := &stubRepo{createErr: errors.New("connection refused")}
		uc, _ := newTestUseCase(repo, knownProvider(), true)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})
}
