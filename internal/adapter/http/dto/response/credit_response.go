package response

import (
	"time"

	"microcredit_scoring/internal/domain/entities"
)

type InstallmentResponse struct {
	ID          string     `json:"id"`
	CreditID    string     `json:"credit_id"`
	DueDate     time.Time  `json:"due_date"`
	Amount      float64    `json:"amount"`
	PaymentDate *time.Time `json:"payment_date,omitempty"`
	Status      string     `json:"status"`
}

type CreditResponse struct {
	CreditID        string                `json:"credit_id"`
	ID              string                `json:"id"`
	ClientID        string                `json:"client_id"`
	RequestedAmount float64               `json:"requested_amount"`
	ApprovedAmount  float64               `json:"approved_amount"`
	InterestRate    float64               `json:"interest_rate"`
	DurationMonths  int                   `json:"duration_months"`
	Type            string                `json:"type"`
	Decision        string                `json:"decision"`
	RejectionReason string                `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
	Installments    []InstallmentResponse `json:"installments,omitempty"`
}

func FromInstallment(i entities.Installment) InstallmentResponse {
	return InstallmentResponse{
		ID:          i.ID,
		CreditID:    i.CreditID,
		DueDate:     i.DueDate,
		Amount:      i.Amount,
		PaymentDate: i.PaymentDate,
		Status:      string(i.Status),
	}
}

func FromCredit(c entities.Credit) CreditResponse {
	resp := CreditResponse{
		CreditID:        c.ID,
		ID:              c.ID,
		ClientID:        c.ClientID,
		RequestedAmount: c.RequestedAmount,
		ApprovedAmount:  c.ApprovedAmount,
		InterestRate:    c.InterestRate,
		DurationMonths:  c.DurationMonths,
		Type:            string(c.Type),
		Decision:        string(c.Decision),
		RejectionReason: c.RejectionReason,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
	for _, inst := range c.Installments {
		resp.Installments = append(resp.Installments, FromInstallment(inst))
	}
	return resp
}
