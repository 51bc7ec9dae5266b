package interfaces

import (
	"context"
	"time"

	"microcredit_scoring/internal/domain/entities"
)

// IIncidentRepository abstracts the incident-history lookup consumed by the
// payment-history and client-relationship sub-scores.

type IIncidentRepository interface {
	ListRecent(ctx context.Context, applicantID string, window time.Duration) ([]entities.Incident, error)
}
