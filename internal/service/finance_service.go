package service

import (
	"context"

	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/repository"
)

// FinanceSummary aggregates money in and out for the visible tenants.
type FinanceSummary struct {
	IncomeCents  int64 `json:"income_cents"`
	ExpenseCents int64 `json:"expense_cents"`
	NetCents     int64 `json:"net_cents"`
}

// FinanceService computes balance aggregates over a tenant filter.
type FinanceService struct {
	payments repository.PaymentRepository
	expenses repository.ExpenseRepository
}

// NewFinanceService builds the service.
func NewFinanceService(payments repository.PaymentRepository, expenses repository.ExpenseRepository) *FinanceService {
	return &FinanceService{payments: payments, expenses: expenses}
}

// Summary returns income, expenses and net for the filter's scope.
func (s *FinanceService) Summary(ctx context.Context, filter domain.TenantFilter) (*FinanceSummary, error) {
	income, err := s.payments.SumAmount(ctx, filter)
	if err != nil {
		return nil, err
	}
	spent, err := s.expenses.SumAmount(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &FinanceSummary{
		IncomeCents:  income,
		ExpenseCents: spent,
		NetCents:     income - spent,
	}, nil
}
