package ledger

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	t.Run("creates root account", func(t *testing.T) {
		a, err := NewAccount("2010", "Accounts Payable", CategoryLiabilities)
		require.NoError(t, err)
		assert.Equal(t, "2010", a.Code)
		assert.Nil(t, a.ParentID)
		assert.False(t, a.IsSubAccount())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewAccount("2010", "   ", CategoryLiabilities)
		assert.Error(t, err)
	})

	t.Run("rejects non-numeric code", func(t *testing.T) {
		_, err := NewAccount("20A0", "Accounts Payable", CategoryLiabilities)
		assert.Error(t, err)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := NewAccount("2010", "Accounts Payable", AccountCategory("Payables"))
		assert.Error(t, err)
	})
}

func TestNewSubAccount(t *testing.T) {
	parent, err := NewAccount("2012", "Clearing Agent Payables", CategoryLiabilities)
	require.NoError(t, err)
	parent.ID = 14

	t.Run("creates child under parent", func(t *testing.T) {
		child, err := NewSubAccount("2012-01", "A/P - FastLane Clearing", CategoryLiabilities, parent)
		require.NoError(t, err)
		require.NotNil(t, child.ParentID)
		assert.Equal(t, 14, *child.ParentID)
		assert.True(t, child.IsSubAccount())
	})

	t.Run("rejects code that does not extend the parent", func(t *testing.T) {
		_, err := NewSubAccount("2013-01", "A/P - FastLane Clearing", CategoryLiabilities, parent)
		assert.Error(t, err)
	})

	t.Run("rejects nil parent", func(t *testing.T) {
		_, err := NewSubAccount("2012-01", "A/P - FastLane Clearing", CategoryLiabilities, nil)
		assert.Error(t, err)
	})
}

func TestSubAccountCode(t *testing.T) {
	assert.Equal(t, "2012-01", SubAccountCode("2012", 1))
	assert.Equal(t, "2012-09", SubAccountCode("2012", 9))
	assert.Equal(t, "2012-42", SubAccountCode("2012", 42))
}

// Lexicographic ordering by code is the display order everywhere. It
// stays correct for zero-padded two-digit suffixes up to 99 children;
// the 100th child breaks the padding width and with it the ordering.
// This pins down the documented boundary.
func TestAccountCodeOrdering(t *testing.T) {
	codes := make([]string, 0, 99)
	for i := 1; i <= 99; i++ {
		codes = append(codes, SubAccountCode("2012", i))
	}
	shuffled := append([]string{}, codes...)
	sort.Sort(sort.Reverse(sort.StringSlice(shuffled)))
	sort.Strings(shuffled)
	assert.Equal(t, codes, shuffled)

	t.Run("boundary at the 100th child", func(t *testing.T) {
		withHundred := append(append([]string{}, codes...), SubAccountCode("2012", 100))
		sorted := append([]string{}, withHundred...)
		sort.Strings(sorted)
		// "2012-100" sorts between "2012-10" and "2012-11", so the
		// natural ordering is lost once the suffix outgrows its width.
		assert.NotEqual(t, withHundred, sorted)
		assert.Equal(t, "2012-100", sorted[2])
	})

	t.Run("four digit families sort numerically", func(t *testing.T) {
		family := []string{"2010", "2011", "2011-01", "2012", "2012-01", "2012-02", "2100"}
		shuffled := []string{"2012-02", "2100", "2011", "2012", "2010", "2012-01", "2011-01"}
		sort.Strings(shuffled)
		assert.Equal(t, family, shuffled)
	})
}

func TestSubAccountCode_SequentialAllocations(t *testing.T) {
	// Two sequential allocations for the same parent must never yield
	// the same code: each observes one more existing child.
	seen := map[string]bool{}
	for n := range 10 {
		code := SubAccountCode("2011", n+1)
		assert.False(t, seen[code], fmt.Sprintf("duplicate code %s", code))
		seen[code] = true
	}
}
