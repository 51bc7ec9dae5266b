package interfaces

import (
	"context"
	"microcredit_scoring/internal/domain/entities"
)

// IInstallmentRepository abstracts DynamoDB persistence for Installment.
//
// SaveAll must write the schedule transactionally (all installments of a
// batch become visible together or not at all), so a saved credit header is
// never paired with a half-written schedule inside a batch.

type IInstallmentRepository interface {
	SaveAll(ctx context.Context, installments []entities.Installment) error
	ListByCreditID(ctx context.Context, creditID string) ([]entities.Installment, error)
}
