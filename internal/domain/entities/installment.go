package entities

import "time"

// InstallmentStatus tracks the repayment state of a single installment.
// The scoring engine only ever creates pending installments; the other
// states are set by external repayment processing.

type InstallmentStatus string

const (
	InstallmentStatusPending         InstallmentStatus = "pending"
	InstallmentStatusPaid            InstallmentStatus = "paid"
	InstallmentStatusLate            InstallmentStatus = "late"
	InstallmentStatusUnpaidUnsettled InstallmentStatus = "unpaid_unsettled"
)

// Installment is one scheduled repayment of a Credit.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (credit_id-index): credit_id
//
// Installments are created only by the schedule generator (or its re-run on
// manual approval), never standalone.

type Installment struct {
	ID          string            `json:"id"`
	CreditID    string            `json:"credit_id"`
	DueDate     time.Time         `json:"due_date"`
	Amount      float64           `json:"amount"`
	PaymentDate *time.Time        `json:"payment_date,omitempty"`
	Status      InstallmentStatus `json:"status"`

	Incidents []Incident `json:"incidents,omitempty"`
}
