package interfaces

import (
	"context"
	"microcredit_scoring/internal/domain/entities"
)

// ICreditRepository abstracts DynamoDB persistence for Credit.
//
// The workflow must be able to:
//   - create a credit record with its decision when an application is processed
//   - resolve a credit by id (manual resolution, consultation)
//   - list credits per client (existing-client classification, portfolio view)
//   - list credits per decision (manual-review queue)
//   - list everything (portfolio statistics)
//   - update amount/rate/decision on manual resolution

type ICreditRepository interface {
	Create(ctx context.Context, c entities.Credit) (entities.Credit, error)
	GetByID(ctx context.Context, id string) (entities.Credit, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Credit, error)
	ListByDecision(ctx context.Context, decision entities.Decision) ([]entities.Credit, error)
	ListAll(ctx context.Context) ([]entities.Credit, error)
	Update(ctx context.Context, c entities.Credit) (entities.Credit, error)
}
