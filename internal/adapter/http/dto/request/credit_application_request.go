package request

import (
	"errors"
	"strings"

	"microcredit_scoring/internal/domain/entities"
)

var (
	ErrUnknownCreditType = errors.New("unknown credit type")
)

// CreditApplicationRequest is the payload accepted by the application intake
// endpoint.
type CreditApplicationRequest struct {
	ClientID        string  `json:"client_id" binding:"required"`
	RequestedAmount float64 `json:"requested_amount" binding:"required"`
	DurationMonths  int     `json:"duration_months" binding:"required"`
	CreditType      string  `json:"credit_type" binding:"required"`
}

func (r CreditApplicationRequest) ResolveClientID() string {
	return strings.TrimSpace(r.ClientID)
}

func (r CreditApplicationRequest) ResolveCreditType() (entities.CreditType, error) {
	switch strings.ToLower(strings.TrimSpace(r.CreditType)) {
	case "real_estate", "immobilier":
		return entities.CreditTypeRealEstate, nil
	case "auto", "automobile":
		return entities.CreditTypeAuto, nil
	case "consumer", "consommation":
		return entities.CreditTypeConsumer, nil
	case "micro_credit", "microcredit":
		return entities.CreditTypeMicroCredit, nil
	case "other", "autre":
		return entities.CreditTypeOther, nil
	}
	return "", ErrUnknownCreditType
}

// ManualApprovalRequest carries the final terms an analyst settled on.
type ManualApprovalRequest struct {
	ApprovedAmount float64 `json:"approved_amount" binding:"required"`
	InterestRate   float64 `json:"interest_rate" binding:"required"`
}

type ManualRejectionRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (r ManualRejectionRequest) ResolveReason() string {
	return strings.TrimSpace(r.Reason)
}
