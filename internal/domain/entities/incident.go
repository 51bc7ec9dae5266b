package entities

import "time"

// Incident is a repayment incident attached to an installment. It is a
// lookup record: the payment-history sub-score only asks whether recent
// incidents exist for an applicant.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (applicant_id-index): applicant_id

type Incident struct {
	ID            string    `json:"id"`
	InstallmentID string    `json:"installment_id"`
	ApplicantID   string    `json:"applicant_id"`
	Date          time.Time `json:"date"`
	ScoreImpact   int       `json:"score_impact"`
	Type          string    `json:"type"`
}
