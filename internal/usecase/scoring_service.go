package usecase

import (
	"context"
	"errors"
	"time"

	"microcredit_scoring/internal/domain/entities"
	"microcredit_scoring/internal/usecase/interfaces"
)

// incidentLookbackWindow is the payment-history lookback: an applicant is
// incident-free when no incident was recorded in the last 12 months.
const incidentLookbackWindow = 365 * 24 * time.Hour

var ErrInvalidScoreWeights = errors.New("invalid score weights")

// ScoreWeights fixes the aggregation of the four sub-scores into the global
// score, in percent. The aggregation drives every downstream decision, so
// the weighting is an explicit wired value rather than something buried in
// the computation.
type ScoreWeights struct {
	FinancialCapacity  int
	PaymentHistory     int
	ClientRelationship int
	Complementary      int
}

// DefaultScoreWeights is the product-approved weighting: financial capacity
// and payment history dominate, relationship and complementary criteria
// modulate.
var DefaultScoreWeights = ScoreWeights{
	FinancialCapacity:  35,
	PaymentHistory:     30,
	ClientRelationship: 15,
	Complementary:      20,
}

func (w ScoreWeights) total() int {
	return w.FinancialCapacity + w.PaymentHistory + w.ClientRelationship + w.Complementary
}

// ScoreBreakdown carries the four sub-scores and the weighted global score,
// all in [0,100].
type ScoreBreakdown struct {
	FinancialCapacity  int `json:"financial_capacity"`
	PaymentHistory     int `json:"payment_history"`
	ClientRelationship int `json:"client_relationship"`
	Complementary      int `json:"complementary"`
	Global             int `json:"global"`
}

// ScoringService computes risk sub-scores, the weighted global score,
// eligibility and borrowing capacity. The only collaborator is the incident
// history lookup; everything else is pure computation over the applicant.

type ScoringService struct {
	incidents interfaces.IIncidentRepository
	weights   ScoreWeights
}

func NewScoringService(incidents interfaces.IIncidentRepository, weights ScoreWeights) (*ScoringService, error) {
	if weights.total() <= 0 ||
		weights.FinancialCapacity < 0 || weights.PaymentHistory < 0 ||
		weights.ClientRelationship < 0 || weights.Complementary < 0 {
		return nil, ErrInvalidScoreWeights
	}
	return &ScoringService{incidents: incidents, weights: weights}, nil
}

// HasRecentIncidents reports whether any incident exists for the applicant
// inside the lookback window.
func (s *ScoringService) HasRecentIncidents(ctx context.Context, applicantID string) (bool, error) {
	recent, err := s.incidents.ListRecent(ctx, applicantID, incidentLookbackWindow)
	if err != nil {
		return false, err
	}
	return len(recent) > 0, nil
}

// FinancialCapacityScore: income-tier base plus bonuses for holding an
// investment product and a savings placement.
func (s *ScoringService) FinancialCapacityScore(a entities.Applicant) int {
	income := a.PrimaryIncome()

	var score int
	switch {
	case income >= 10000:
		score = 70
	case income >= 7000:
		score = 60
	case income >= 5000:
		score = 50
	case income >= 4000:
		score = 40
	case income >= 3000:
		score = 30
	case income >= 2000:
		score = 20
	default:
		score = 10
	}

	if a.HasInvestment {
		score += 15
	}
	if a.HasSavings {
		score += 15
	}
	return clampScore(score)
}

// PaymentHistoryScore: incident-free applicants score 80, the rest 30.
func (s *ScoringService) PaymentHistoryScore(hasRecentIncidents bool) int {
	if hasRecentIncidents {
		return 30
	}
	return 80
}

// ClientRelationshipScore: new applicants are fixed at 50; existing ones earn
// a tenure bonus plus 40 when incident-free.
func (s *ScoringService) ClientRelationshipScore(a entities.Applicant, isExistingClient, hasRecentIncidents bool, now time.Time) int {
	if !isExistingClient {
		return 50
	}

	var score int
	if !a.CreatedAt.IsZero() {
		switch years := a.RelationshipYearsAt(now); {
		case years >= 3:
			score += 60
		case years >= 1:
			score += 40
		default:
			score += 20
		}
	}
	if !hasRecentIncidents {
		score += 40
	}
	return clampScore(score)
}

// ComplementaryCriteriaScore: age bracket + marital-status bonus + dependents
// bonus. A missing birth date degrades to the lowest age bonus instead of
// failing the computation.
func (s *ScoringService) ComplementaryCriteriaScore(a entities.Applicant, now time.Time) int {
	var score int

	age, known := a.AgeAt(now)
	switch {
	case known && age >= 25 && age <= 50:
		score += 40
	case known && age >= 18 && age < 25:
		score += 30
	case known && age > 50 && age <= 60:
		score += 25
	default:
		score += 10
	}

	switch a.MaritalStatus {
	case entities.MaritalStatusMarried:
		score += 30
	case entities.MaritalStatusSingle:
		score += 20
	case entities.MaritalStatusDivorced, entities.MaritalStatusWidowed:
		score += 15
	}

	switch {
	case a.Dependents == 0:
		score += 30
	case a.Dependents <= 2:
		score += 25
	case a.Dependents <= 4:
		score += 15
	default:
		score += 5
	}

	return clampScore(score)
}

// GlobalScore aggregates the four sub-scores with the configured weights
// (rounded weighted mean). Each sub-score is in [0,100], so the global score
// is as well.
func (s *ScoringService) GlobalScore(b ScoreBreakdown) int {
	total := s.weights.total()
	weighted := b.FinancialCapacity*s.weights.FinancialCapacity +
		b.PaymentHistory*s.weights.PaymentHistory +
		b.ClientRelationship*s.weights.ClientRelationship +
		b.Complementary*s.weights.Complementary
	return clampScore((weighted + total/2) / total)
}

// ComputeScore performs the incident lookup once and derives the full
// breakdown for an applicant.
func (s *ScoringService) ComputeScore(ctx context.Context, a entities.Applicant, isExistingClient bool) (ScoreBreakdown, error) {
	hasIncidents, err := s.HasRecentIncidents(ctx, a.ID)
	if err != nil {
		return ScoreBreakdown{}, err
	}

	now := time.Now().UTC()
	b := ScoreBreakdown{
		FinancialCapacity:  s.FinancialCapacityScore(a),
		PaymentHistory:     s.PaymentHistoryScore(hasIncidents),
		ClientRelationship: s.ClientRelationshipScore(a, isExistingClient, hasIncidents, now),
		Complementary:      s.ComplementaryCriteriaScore(a, now),
	}
	b.Global = s.GlobalScore(b)
	return b, nil
}

// IsEligible: existing clients need 60, new clients 70.
func (s *ScoringService) IsEligible(score int, isExistingClient bool) bool {
	if isExistingClient {
		return score >= 60
	}
	return score >= 70
}

// BorrowingCapacity is the maximum borrowable amount. New clients are capped
// at four months of income regardless of score; existing clients earn a
// higher multiple with a strong score and nothing below 60.
func (s *ScoringService) BorrowingCapacity(a entities.Applicant, isExistingClient bool, score int) float64 {
	income := a.PrimaryIncome()

	if !isExistingClient {
		return income * 4
	}
	switch {
	case score > 80:
		return income * 10
	case score >= 60:
		return income * 7
	default:
		return 0
	}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
