package expense

import (
	"testing"
	"time"

	"github.com/dealerops/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecurringExpense(t *testing.T) {
	rent := valueobject.NewKESFromInt(120_000)

	t.Run("valid", func(t *testing.T) {
		e, err := NewRecurringExpense("Showroom rent", rent, 5)
		require.NoError(t, err)
		assert.True(t, e.Active)
		assert.Equal(t, 5, e.DayOfMonthDue)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := NewRecurringExpense("   ", rent, 5)
		assert.Error(t, err)
	})

	t.Run("rejects day out of range", func(t *testing.T) {
		_, err := NewRecurringExpense("Showroom rent", rent, 0)
		assert.Error(t, err)
		_, err = NewRecurringExpense("Showroom rent", rent, 32)
		assert.Error(t, err)
	})
}

func TestRecurringExpense_NextDueDate(t *testing.T) {
	e, err := NewRecurringExpense("Showroom rent", valueobject.NewKESFromInt(120_000), 5)
	require.NoError(t, err)

	t.Run("same month when not yet passed", func(t *testing.T) {
		ref := time.Date(2026, time.March, 2, 14, 30, 0, 0, time.UTC)
		due := e.NextDueDate(ref)
		assert.Equal(t, time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC), due)
	})

	t.Run("due today counts as this month", func(t *testing.T) {
		ref := time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC)
		due := e.NextDueDate(ref)
		assert.Equal(t, time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC), due)
	})

	t.Run("rolls to next month after passing", func(t *testing.T) {
		ref := time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)
		due := e.NextDueDate(ref)
		assert.Equal(t, time.Date(2026, time.April, 5, 0, 0, 0, 0, time.UTC), due)
	})

	t.Run("clamps day 31 to short months", func(t *testing.T) {
		eom, err := NewRecurringExpense("Security contract", valueobject.NewKESFromInt(45_000), 31)
		require.NoError(t, err)
		ref := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)
		due := eom.NextDueDate(ref)
		assert.Equal(t, time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC), due)
	})
}
