package event

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timeclock-app/timeclock-backend-go/internal/domain/event"
)

func TestAutoCloseOpenDays(t *testing.T) {
	// it is just past midnight on the 25th; the 24th is being swept
	now := time.Date(2026, 8, 25, 0, 5, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("closes a forgotten day at shift end", func(t *testing.T) {
		svc, repo := newTestService(now)
		repo.events = append(repo.events, event.PunchEvent{
			ID:         "e1",
			EmployeeID: "emp-1",
			Type:       event.TypePunchIn,
			Timestamp:  time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC),
		})

		closed, err := svc.AutoCloseOpenDays(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, closed)
		require.Len(t, repo.events, 2)
		appended := repo.events[1]
		assert.Equal(t, event.TypePunchOut, appended.Type)
		assert.Equal(t, time.Date(2026, 8, 24, 17, 0, 0, 0, time.UTC), appended.Timestamp)
		require.NotNil(t, appended.Notes)
	})

	t.Run("closes past the last event when it ran late", func(t *testing.T) {
		svc, repo := newTestService(now)
		repo.events = append(repo.events,
			event.PunchEvent{
				ID:         "e1",
				EmployeeID: "emp-1",
				Type:       event.TypePunchIn,
				Timestamp:  time.Date(2026, 8, 24, 18, 0, 0, 0, time.UTC),
			},
		)

		closed, err := svc.AutoCloseOpenDays(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, closed)
		assert.Equal(t, time.Date(2026, 8, 24, 18, 0, 0, 0, time.UTC), repo.events[1].Timestamp)
	})

	t.Run("leaves completed days alone", func(t *testing.T) {
		svc, repo := newTestService(now)
		repo.events = append(repo.events,
			event.PunchEvent{
				ID:         "e1",
				EmployeeID: "emp-1",
				Type:       event.TypePunchIn,
				Timestamp:  time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC),
			},
			event.PunchEvent{
				ID:         "e2",
				EmployeeID: "emp-1",
				Type:       event.TypePunchOut,
				Timestamp:  time.Date(2026, 8, 24, 17, 0, 0, 0, time.UTC),
			},
		)

		closed, err := svc.AutoCloseOpenDays(ctx)

		require.NoError(t, err)
		assert.Equal(t, 0, closed)
		assert.Len(t, repo.events, 2)
	})

	t.Run("closes a day stuck on break", func(t *testing.T) {
		svc, repo := newTestService(now)
		repo.events = append(repo.events,
			event.PunchEvent{
				ID:         "e1",
				EmployeeID: "emp-1",
				Type:       event.TypePunchIn,
				Timestamp:  time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC),
			},
			event.PunchEvent{
				ID:         "e2",
				EmployeeID: "emp-1",
				Type:       event.TypeBreakStart,
				Timestamp:  time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
			},
		)

		closed, err := svc.AutoCloseOpenDays(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, closed)
		assert.Equal(t, event.TypePunchOut, repo.events[2].Type)
	})

	t.Run("no events at all", func(t *testing.T) {
		svc, _ := newTestService(now)

		closed, err := svc.AutoCloseOpenDays(ctx)

		require.NoError(t, err)
		assert.Equal(t, 0, closed)
	})
}
