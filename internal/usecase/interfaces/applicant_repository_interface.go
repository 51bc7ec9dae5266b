package interfaces

import (
	"context"
	"microcredit_scoring/internal/domain/entities"
)

// IApplicantRepository abstracts DynamoDB persistence for Applicant.
//
// Applicant onboarding is external to the scoring engine; the workflow only
// ever resolves an existing profile by id. A zero-value Applicant (empty ID)
// means not found.

type IApplicantRepository interface {
	GetByID(ctx context.Context, id string) (entities.Applicant, error)
}
