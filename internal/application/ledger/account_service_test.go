package ledger

import (
	"context"
	"testing"

	"github.com/dealerops/backend/internal/domain/ledger"
	"github.com/dealerops/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAccountRepository is a mock implementation of AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id int) (*ledger.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByCode(ctx context.Context, code string) (*ledger.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAll(ctx context.Context) ([]ledger.Account, error) {
	args := m.Called(ctx)
	return args.Get(0).([]ledger.Account), args.Error(1)
}

func (m *MockAccountRepository) CountByParent(ctx context.Context, parentID int) (int64, error) {
	args := m.Called(ctx, parentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) Save(ctx context.Context, account *ledger.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func payableRoot(t *testing.T) *ledger.Account {
	t.Helper()
	root, err := ledger.NewAccount("2011", "A/P - Suppliers", ledger.CategoryLiabilities)
	require.NoError(t, err)
	root.ID = 11
	return root
}

func TestAccountService_AllocateSubAccountCode(t *testing.T) {
	ctx := context.Background()

	t.Run("first child gets ordinal 1", func(t *testing.T) {
		repo := new(MockAccountRepository)
		repo.On("FindByID", ctx, 11).Return(payableRoot(t), nil)
		repo.On("CountByParent", ctx, 11).Return(int64(0), nil)

		code, err := NewAccountService(repo).AllocateSubAccountCode(ctx, 11)
		require.NoError(t, err)
		assert.Equal(t, "2011-01", code)
	})

	t.Run("count plus one with zero padding", func(t *testing.T) {
		repo := new(MockAccountRepository)
		repo.On("FindByID", ctx, 11).Return(payableRoot(t), nil)
		repo.On("CountByParent", ctx, 11).Return(int64(8), nil)

		code, err := NewAccountService(repo).AllocateSubAccountCode(ctx, 11)
		require.NoError(t, err)
		assert.Equal(t, "2011-09", code)
	})

	t.Run("sequential calls never repeat a code", func(t *testing.T) {
		repo := new(MockAccountRepository)
		repo.On("FindByID", ctx, 11).Return(payableRoot(t), nil)
		repo.On("CountByParent", ctx, 11).Return(int64(3), nil).Once()
		repo.On("CountByParent", ctx, 11).Return(int64(4), nil).Once()

		svc := NewAccountService(repo)
		first, err := svc.AllocateSubAccountCode(ctx, 11)
		require.NoError(t, err)
		second, err := svc.AllocateSubAccountCode(ctx, 11)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("unknown parent", func(t *testing.T) {
		repo := new(MockAccountRepository)
		repo.On("FindByID", ctx, 99).Return(nil, shared.ErrNotFound)

		_, err := NewAccountService(repo).AllocateSubAccountCode(ctx, 99)
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestAccountService_CreateSubAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("creates child under parent with inherited category", func(t *testing.T) {
		repo := new(MockAccountRepository)
		repo.On("FindByID", ctx, 11).Return(payableRoot(t), nil)
		repo.On("CountByParent", ctx, 11).Return(int64(2), nil)
		repo.On("FindByCode", ctx, "2011-03").Return(nil, shared.ErrNotFound)
		repo.On("Save", ctx, mock.AnythingOfType("*ledger.Account")).Return(nil)

		resp, err := NewAccountService(repo).CreateSubAccount(ctx, CreateSubAccountRequest{
			ParentID: 11,
			Name:     "A/P - Be Forward",
		})
		require.NoError(t, err)
		assert.Equal(t, "2011-03", resp.Code)
		assert.Equal(t, string(ledger.CategoryLiabilities), resp.Category)
		repo.AssertExpectations(t)
	})

	t.Run("refuses to overwrite an occupied code", func(t *testing.T) {
		taken, err := ledger.NewAccount("2011-03", "A/P - Someone", ledger.CategoryLiabilities)
		require.NoError(t, err)

		repo := new(MockAccountRepository)
		repo.On("FindByID", ctx, 11).Return(payableRoot(t), nil)
		repo.On("CountByParent", ctx, 11).Return(int64(2), nil)
		repo.On("FindByCode", ctx, "2011-03").Return(taken, nil)

		_, err = NewAccountService(repo).CreateSubAccount(ctx, CreateSubAccountRequest{
			ParentID: 11,
			Name:     "A/P - Be Forward",
		})
		require.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestAccountService_List(t *testing.T) {
	ctx := context.Background()

	root := payableRoot(t)
	child, err := ledger.NewSubAccount("2011-01", "A/P - Be Forward", ledger.CategoryLiabilities, root)
	require.NoError(t, err)

	repo := new(MockAccountRepository)
	repo.On("ListAll", ctx).Return([]ledger.Account{*root, *child}, nil)

	accounts, err := NewAccountService(repo).List(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "2011", accounts[0].Code)
	assert.Equal(t, "2011-01", accounts[1].Code)
}
