package db

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helioscast/helios/internal/model"
)

func mockStore(t *testing.T) (Store, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return NewStoreWithDB(sqlx.NewDb(mockDB, "sqlmock")), mock
}

var candidateColumns = []string{
	"id", "customer_id", "name", "layout_id", "priority",
	"start_date", "end_date", "start_time", "end_time",
	"days_of_week", "is_active", "created_at", "updated_at",
	"scope_tier",
}

func TestCandidateSchedulesForPlayer(t *testing.T) {
	store, mock := mockStore(t)
	now := time.Now()

	rows := sqlmock.NewRows(candidateColumns).
		AddRow(7, 1, "lobby takeover", 101, 50,
			nil, nil, "09:00:00", "17:00:00",
			[]byte("{1,2,3,4,5}"), true, now, now,
			0).
		AddRow(3, 1, "default loop", 100, 100,
			nil, nil, nil, nil,
			nil, true, now, now,
			2)

	mock.ExpectQuery("FROM players p").WithArgs(42).WillReturnRows(rows)

	out, err := store.CandidateSchedulesForPlayer(42)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, 7, out[0].ID)
	assert.Equal(t, model.ScopePlayer, out[0].ScopeTier)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, []int64(out[0].DaysOfWeek))
	require.NotNil(t, out[0].StartTime)
	assert.Equal(t, "09:00:00", *out[0].StartTime)

	assert.Equal(t, 3, out[1].ID)
	assert.Equal(t, model.ScopeCustomer, out[1].ScopeTier)
	assert.Nil(t, out[1].DaysOfWeek)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCandidateSchedulesForPlayerEmpty(t *testing.T) {
	store, mock := mockStore(t)

	mock.ExpectQuery("FROM players p").WithArgs(99).
		WillReturnRows(sqlmock.NewRows(candidateColumns))

	out, err := store.CandidateSchedulesForPlayer(99)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetScheduleByIDNotFound(t *testing.T) {
	store, mock := mockStore(t)

	mock.ExpectQuery("FROM schedules").WithArgs(5, 1).
		WillReturnRows(sqlmock.NewRows(candidateColumns[:13]))

	_, err := store.GetScheduleByID(5, 1)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
