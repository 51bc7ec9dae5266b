package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"microcredit_scoring/internal/domain/entities"
)

// microCreditCeiling is the absolute cap on micro-credit requests.
const microCreditCeiling = 50000

// CriteriaViolationError reports a failed special-criteria gate. The gate is
// evaluated before any scoring and vetoes the application regardless of
// score.
type CriteriaViolationError struct {
	CreditType entities.CreditType
	Reason     string
}

func (e *CriteriaViolationError) Error() string {
	return fmt.Sprintf("special criteria not met for %s credit: %s", e.CreditType, e.Reason)
}

// Evaluation is the full outcome of scoring + deciding one application.
type Evaluation struct {
	Score          ScoreBreakdown
	Capacity       float64
	Decision       entities.Decision
	ApprovedAmount float64
	InterestRate   float64
	Report         string
}

// DecisionEngine turns a scored application into a decision, an approved
// amount and an interest rate. The rule methods are pure; EvaluateApplication
// composes them with the scoring service.

type DecisionEngine struct {
	scoring *ScoringService
}

func NewDecisionEngine(scoring *ScoringService) *DecisionEngine {
	return &DecisionEngine{scoring: scoring}
}

// Decide assigns the terminal decision state. Ineligible scores and requests
// above capacity are rejected outright; the remainder splits on the 80/60
// score thresholds. The outcome is monotonic in the score.
func (e *DecisionEngine) Decide(score int, isExistingClient bool, requestedAmount, capacity float64) entities.Decision {
	if !e.scoring.IsEligible(score, isExistingClient) {
		return entities.DecisionAutoRejected
	}
	if requestedAmount > capacity {
		return entities.DecisionAutoRejected
	}

	switch {
	case score >= 80:
		return entities.DecisionApprovedImmediate
	case score >= 60:
		return entities.DecisionManualReview
	default:
		return entities.DecisionAutoRejected
	}
}

// ApprovedAmount derives the amount to grant. Manual-review scores are all
// inside [60,80) by construction, so the reduction brackets below cover the
// range exhaustively.
func (e *DecisionEngine) ApprovedAmount(decision entities.Decision, score int, requestedAmount, capacity float64) float64 {
	switch decision {
	case entities.DecisionAutoRejected:
		return 0
	case entities.DecisionApprovedImmediate:
		return minFloat(requestedAmount, capacity)
	default:
		var reductionFactor float64
		switch {
		case score >= 75:
			reductionFactor = 0.90
		case score >= 70:
			reductionFactor = 0.85
		default: // [60,70)
			reductionFactor = 0.75
		}
		return minFloat(requestedAmount*reductionFactor, capacity)
	}
}

// InterestRate: base rate by credit type, plus a risk premium by score
// bracket, minus a loyalty discount for existing clients with a solid score.
// Never below 3.0.
func (e *DecisionEngine) InterestRate(creditType entities.CreditType, score int, isExistingClient bool) float64 {
	base := baseRate(creditType)

	var premium float64
	switch {
	case score >= 80:
		premium = -0.5
	case score >= 70:
		premium = 0
	case score >= 60:
		premium = 1.0
	default:
		premium = 2.0
	}

	if isExistingClient && score >= 70 {
		premium -= 0.25
	}

	rate := base + premium
	if rate < 3.0 {
		return 3.0
	}
	return rate
}

func baseRate(creditType entities.CreditType) float64 {
	switch creditType {
	case entities.CreditTypeRealEstate:
		return 4.5
	case entities.CreditTypeAuto:
		return 6.0
	case entities.CreditTypeConsumer:
		return 8.0
	case entities.CreditTypeMicroCredit:
		return 12.0
	default:
		return 8.0
	}
}

// ValidateSpecialCriteria applies the credit-type gate. A missing birth date
// fails the real-estate age requirement (age resolves to 0).
func (e *DecisionEngine) ValidateSpecialCriteria(a entities.Applicant, creditType entities.CreditType, requestedAmount float64, now time.Time) error {
	income := a.PrimaryIncome()

	switch creditType {
	case entities.CreditTypeRealEstate:
		age, _ := a.AgeAt(now)
		switch {
		case age < 25 || age > 50:
			return &CriteriaViolationError{CreditType: creditType, Reason: "applicant age must be between 25 and 50"}
		case income < 4000:
			return &CriteriaViolationError{CreditType: creditType, Reason: "income below 4000"}
		case a.MaritalStatus != entities.MaritalStatusMarried:
			return &CriteriaViolationError{CreditType: creditType, Reason: "applicant must be married"}
		case requestedAmount > income*120:
			return &CriteriaViolationError{CreditType: creditType, Reason: "amount exceeds 120x income"}
		}
	case entities.CreditTypeAuto:
		switch {
		case income < 3000:
			return &CriteriaViolationError{CreditType: creditType, Reason: "income below 3000"}
		case requestedAmount > income*36:
			return &CriteriaViolationError{CreditType: creditType, Reason: "amount exceeds 36x income"}
		}
	case entities.CreditTypeConsumer:
		switch {
		case income < 2000:
			return &CriteriaViolationError{CreditType: creditType, Reason: "income below 2000"}
		case requestedAmount > income*12:
			return &CriteriaViolationError{CreditType: creditType, Reason: "amount exceeds 12x income"}
		}
	case entities.CreditTypeMicroCredit:
		if requestedAmount > microCreditCeiling {
			return &CriteriaViolationError{CreditType: creditType, Reason: "amount exceeds the 50000 micro-credit ceiling"}
		}
	}
	return nil
}

// BuildDecisionReport renders the deterministic audit-trail text kept with
// every processed application. It is a compliance record, never control flow.
func (e *DecisionEngine) BuildDecisionReport(a entities.Applicant, isExistingClient bool, score int, capacity, requestedAmount float64, decision entities.Decision, approvedAmount, interestRate float64) string {
	profile := "New client"
	if isExistingClient {
		profile = "Existing client"
	}

	var b strings.Builder
	b.WriteString("=== CREDIT DECISION REPORT ===\n")
	fmt.Fprintf(&b, "Client: %s %s\n", a.FirstName, a.LastName)
	fmt.Fprintf(&b, "Profile: %s\n", profile)
	fmt.Fprintf(&b, "Computed score: %d/100\n", score)
	fmt.Fprintf(&b, "Max borrowing capacity: %.2f\n", capacity)
	fmt.Fprintf(&b, "Requested amount: %.2f\n", requestedAmount)
	fmt.Fprintf(&b, "DECISION: %s\n", strings.ToUpper(string(decision)))
	if decision != entities.DecisionAutoRejected {
		fmt.Fprintf(&b, "Proposed amount: %.2f\n", approvedAmount)
		fmt.Fprintf(&b, "Interest rate: %.2f%%\n", interestRate)
	}
	b.WriteString("==============================\n")
	return b.String()
}

// EvaluateApplication computes the score once and derives decision, amount,
// rate and the audit report from it.
func (e *DecisionEngine) EvaluateApplication(ctx context.Context, a entities.Applicant, requestedAmount float64, creditType entities.CreditType, isExistingClient bool) (Evaluation, error) {
	breakdown, err := e.scoring.ComputeScore(ctx, a, isExistingClient)
	if err != nil {
		return Evaluation{}, err
	}

	capacity := e.scoring.BorrowingCapacity(a, isExistingClient, breakdown.Global)
	decision := e.Decide(breakdown.Global, isExistingClient, requestedAmount, capacity)
	approved := e.ApprovedAmount(decision, breakdown.Global, requestedAmount, capacity)
	rate := e.InterestRate(creditType, breakdown.Global, isExistingClient)

	return Evaluation{
		Score:          breakdown,
		Capacity:       capacity,
		Decision:       decision,
		ApprovedAmount: approved,
		InterestRate:   rate,
		Report:         e.BuildDecisionReport(a, isExistingClient, breakdown.Global, capacity, requestedAmount, decision, approved, rate),
	}, nil
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
