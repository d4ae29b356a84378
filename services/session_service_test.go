package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bhupesh2sharma/PRoject-Rapidine/entity"
)

func TestSessionCreate(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(t, db)
	ctx := context.Background()

	session, err := svc.Create(ctx, "5", "Alice", 2)
	require.NoError(t, err)
	assert.True(t, session.Active)
	assert.Equal(t, "5", session.TableNumber)
	assert.Equal(t, "Alice", session.CustomerName)
	assert.Equal(t, 2, session.NumberOfPeople)
	assert.NotZero(t, session.ID)
}

func TestSessionCreateTrimsInput(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(t, db)

	session, err := svc.Create(context.Background(), "  7 ", "  Bob ", 3)
	require.NoError(t, err)
	assert.Equal(t, "7", session.TableNumber)
	assert.Equal(t, "Bob", session.CustomerName)
}

func TestSessionCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(t, db)
	ctx := context.Background()

	var ve *ValidationError

	_, err := svc.Create(ctx, "", "Alice", 2)
	require.ErrorAs(t, err, &ve)

	_, err = svc.Create(ctx, "5", "   ", 2)
	require.ErrorAs(t, err, &ve)

	_, err = svc.Create(ctx, "5", "Alice", 0)
	require.ErrorAs(t, err, &ve)

	_, err = svc.Create(ctx, "5", "Alice", -1)
	require.ErrorAs(t, err, &ve)
}

func TestSessionTableOccupied(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(t, db)
	ctx := context.Background()

	_, err := svc.Create(ctx, "5", "Alice", 2)
	require.NoError(t, err)

	_, err = svc.Create(ctx, "5", "Bob", 4)
	var occupied *TableOccupiedError
	require.ErrorAs(t, err, &occupied)
	assert.Equal(t, "Alice", occupied.Session.CustomerName)
	assert.Equal(t, 2, occupied.Session.NumberOfPeople)

	// a different table is unaffected
	_, err = svc.Create(ctx, "6", "Bob", 4)
	require.NoError(t, err)
}

// At most one concurrent create may win a table; everyone else gets the
// occupied conflict, and exactly one active row exists afterwards.
func TestSessionCreateConcurrent(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(t, db)

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(context.Background(), "9", "Guest", 2)
		}(i)
	}
	wg.Wait()

	var wins, conflicts int
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		var occupied *TableOccupiedError
		require.ErrorAs(t, err, &occupied)
		conflicts++
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, workers-1, conflicts)

	var active int64
	require.NoError(t, db.Model(&entity.CustomerSession{}).
		Where("table_number = ? AND active = ?", "9", true).
		Count(&active).Error)
	assert.EqualValues(t, 1, active)
}

func TestSessionCheckTable(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(t, db)
	ctx := context.Background()

	occupied, details, err := svc.CheckTable(ctx, "5")
	require.NoError(t, err)
	assert.False(t, occupied)
	assert.Nil(t, details)

	session, err := svc.Create(ctx, "5", "Alice", 2)
	require.NoError(t, err)

	occupied, details, err = svc.CheckTable(ctx, "5")
	require.NoError(t, err)
	assert.True(t, occupied)
	require.NotNil(t, details)
	assert.Equal(t, "Alice", details.CustomerName)
	assert.False(t, details.StartTime.IsZero())
	assert.WithinDuration(t, session.StartTime, details.StartTime, time.Second)
}

func TestSessionClose(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(t, db)
	ctx := context.Background()

	require.ErrorIs(t, svc.Close(ctx, "5"), ErrNotFound)

	_, err := svc.Create(ctx, "5", "Alice", 2)
	require.NoError(t, err)

	require.NoError(t, svc.Close(ctx, "5"))

	// the table can be reseated after closing
	session, err := svc.Create(ctx, "5", "Bob", 4)
	require.NoError(t, err)
	assert.Equal(t, "Bob", session.CustomerName)

	// double close of the new session, then nothing left to close
	require.NoError(t, svc.Close(ctx, "5"))
	require.ErrorIs(t, svc.Close(ctx, "5"), ErrNotFound)
}
