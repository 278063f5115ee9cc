package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/gym-service/internal/domain"
)

type fakeExpenseRepo struct {
	expenses map[int64]*domain.Expense
	nextID   int64
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[int64]*domain.Expense)}
}

func (f *fakeExpenseRepo) Create(_ context.Context, expense *domain.Expense) error {
	f.nextID++
	expense.ID = f.nextID
	stored := *expense
	f.expenses[expense.ID] = &stored
	return nil
}

func (f *fakeExpenseRepo) Delete(_ context.Context, filter domain.TenantFilter, id int64) error {
	existing, ok := f.expenses[id]
	if !ok || !filter.Admits(existing.GymID) {
		return pgx.ErrNoRows
	}
	delete(f.expenses, id)
	return nil
}

func (f *fakeExpenseRepo) GetByID(_ context.Context, filter domain.TenantFilter, id int64) (*domain.Expense, error) {
	existing, ok := f.expenses[id]
	if !ok || !filter.Admits(existing.GymID) {
		return nil, pgx.ErrNoRows
	}
	copied := *existing
	return &copied, nil
}

func (f *fakeExpenseRepo) List(_ context.Context, filter domain.TenantFilter) ([]domain.Expense, error) {
	var out []domain.Expense
	for _, expense := range f.expenses {
		if filter.Admits(expense.GymID) {
			out = append(out, *expense)
		}
	}
	return out, nil
}

func (f *fakeExpenseRepo) SumAmount(_ context.Context, filter domain.TenantFilter) (int64, error) {
	var total int64
	for _, expense := range f.expenses {
		if filter.Admits(expense.GymID) {
			total += expense.AmountCents
		}
	}
	return total, nil
}

func TestFinanceSummaryScoped(t *testing.T) {
	payments := newFakePaymentRepo()
	expenses := newFakeExpenseRepo()
	ctx := context.Background()

	require.NoError(t, payments.Create(ctx, &domain.Payment{GymID: 5, AmountCents: 10000}))
	require.NoError(t, payments.Create(ctx, &domain.Payment{GymID: 5, AmountCents: 2500}))
	require.NoError(t, payments.Create(ctx, &domain.Payment{GymID: 6, AmountCents: 99999}))
	require.NoError(t, expenses.Create(ctx, &domain.Expense{GymID: 5, AmountCents: 4000}))
	require.NoError(t, expenses.Create(ctx, &domain.Expense{GymID: 6, AmountCents: 123}))

	svc := NewFinanceService(payments, expenses)

	summary, err := svc.Summary(ctx, domain.ScopedTo(5))
	require.NoError(t, err)
	assert.Equal(t, int64(12500), summary.IncomeCents)
	assert.Equal(t, int64(4000), summary.ExpenseCents)
	assert.Equal(t, int64(8500), summary.NetCents)
}

func TestFinanceSummaryUnrestricted(t *testing.T) {
	payments := newFakePaymentRepo()
	expenses := newFakeExpenseRepo()
	ctx := context.Background()

	require.NoError(t, payments.Create(ctx, &domain.Payment{GymID: 5, AmountCents: 100}))
	require.NoError(t, payments.Create(ctx, &domain.Payment{GymID: 6, AmountCents: 200}))
	require.NoError(t, expenses.Create(ctx, &domain.Expense{GymID: 7, AmountCents: 50}))

	svc := NewFinanceService(payments, expenses)

	summary, err := svc.Summary(ctx, domain.Unrestricted())
	require.NoError(t, err)
	assert.Equal(t, int64(300), summary.IncomeCents)
	assert.Equal(t, int64(50), summary.ExpenseCents)
	assert.Equal(t, int64(250), summary.NetCents)
}
