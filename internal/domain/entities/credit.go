package entities

import "time"

// CreditType selects the base interest rate and the special criteria gate.

type CreditType string

const (
	CreditTypeRealEstate  CreditType = "real_estate"
	CreditTypeAuto        CreditType = "auto"
	CreditTypeConsumer    CreditType = "consumer"
	CreditTypeMicroCredit CreditType = "micro_credit"
	CreditTypeOther       CreditType = "other"
)

// Decision is the terminal outcome of an application.
//
// An application transitions into exactly one decision when it is first
// processed. The only further transition allowed is manual resolution of
// manual_review into approved_immediate or auto_rejected.

type Decision string

const (
	DecisionAutoRejected      Decision = "auto_rejected"
	DecisionManualReview      Decision = "manual_review"
	DecisionApprovedImmediate Decision = "approved_immediate"
)

// Credit is a loan application record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//   - GSI2 (decision-index): decision
//
// Invariants:
//   - ApprovedAmount is in [0, RequestedAmount] unless overridden by manual
//     approval.
//   - DurationMonths > 0.
//   - Once generated, len(Installments) == DurationMonths; insertion order is
//     chronological.

type Credit struct {
	ID              string     `json:"id"`
	ClientID        string     `json:"client_id"`
	CreatedAt       time.Time  `json:"created_at"`
	RequestedAmount float64    `json:"requested_amount"`
	ApprovedAmount  float64    `json:"approved_amount"`
	InterestRate    float64    `json:"interest_rate"`
	DurationMonths  int        `json:"duration_months"`
	Type            CreditType `json:"type"`
	Decision        Decision   `json:"decision"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Installments []Installment `json:"installments,omitempty"`
}
