package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"microcredit_scoring/internal/domain/entities"
	mock_interfaces "microcredit_scoring/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newTestScoringService(t *testing.T) *ScoringService {
	t.Helper()
	svc, err := NewScoringService(nil, DefaultScoreWeights)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return svc
}

func employeeApplicant(salary float64) entities.Applicant {
	birth := time.Now().UTC().AddDate(-30, 0, 0)
	return entities.Applicant{
		ID:            "app-1",
		FirstName:     "Amina",
		LastName:      "Benali",
		BirthDate:     &birth,
		MaritalStatus: entities.MaritalStatusMarried,
		CreatedAt:     time.Now().UTC().AddDate(-5, 0, 0),
		Kind:          entities.ApplicantKindEmployee,
		Employment:    &entities.Employment{Salary: salary},
	}
}

func TestScoringService_FinancialCapacityScore(t *testing.T) {
	svc := newTestScoringService(t)

	tests := []struct {
		name          string
		income        float64
		hasInvestment bool
		hasSavings    bool
		want          int
	}{
		{name: "top tier", income: 10000, want: 70},
		{name: "7000 tier", income: 7500, want: 60},
		{name: "5000 tier", income: 5000, want: 50},
		{name: "4000 tier", income: 4999, want: 40},
		{name: "3000 tier", income: 3000, want: 30},
		{name: "2000 tier", income: 2000, want: 20},
		{name: "floor tier", income: 1999, want: 10},
		{name: "zero income", income: 0, want: 10},
		{name: "investment bonus", income: 4000, hasInvestment: true, want: 55},
		{name: "savings bonus", income: 4000, hasSavings: true, want: 55},
		{name: "both bonuses capped", income: 10000, hasInvestment: true, hasSavings: true, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := employeeApplicant(tt.income)
			a.HasInvestment = tt.hasInvestment
			a.HasSavings = tt.hasSavings
			if got := svc.FinancialCapacityScore(a); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}

	t.Run("professional variant income", func(t *testing.T) {
		a := entities.Applicant{
			Kind:       entities.ApplicantKindProfessional,
			Profession: &entities.Profession{Income: 7000},
		}
		if got := svc.FinancialCapacityScore(a); got != 60 {
			t.Fatalf("expected 60, got %d", got)
		}
	})
}

func TestScoringService_PaymentHistoryScore(t *testing.T) {
	svc := newTestScoringService(t)

	if got := svc.PaymentHistoryScore(false); got != 80 {
		t.Fatalf("expected 80 for a clean history, got %d", got)
	}
	if got := svc.PaymentHistoryScore(true); got != 30 {
		t.Fatalf("expected 30 with recent incidents, got %d", got)
	}
}

func TestScoringService_ClientRelationshipScore(t *testing.T) {
	svc := newTestScoringService(t)
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		createdYears int
		isExisting   bool
		hasIncidents bool
		want         int
	}{
		{name: "new applicant fixed at 50", createdYears: 10, isExisting: false, want: 50},
		{name: "long tenure incident-free", createdYears: 4, isExisting: true, want: 100},
		{name: "mid tenure incident-free", createdYears: 2, isExisting: true, want: 80},
		{name: "short tenure incident-free", createdYears: 0, isExisting: true, want: 60},
		{name: "long tenure with incidents", createdYears: 4, isExisting: true, hasIncidents: true, want: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := employeeApplicant(4000)
			a.CreatedAt = now.AddDate(-tt.createdYears, 0, 0)
			got := svc.ClientRelationshipScore(a, tt.isExisting, tt.hasIncidents, now)
			if got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}

	t.Run("existing with zero creation date skips tenure bonus", func(t *testing.T) {
		a := employeeApplicant(4000)
		a.CreatedAt = time.Time{}
		if got := svc.ClientRelationshipScore(a, true, false, now); got != 40 {
			t.Fatalf("expected 40, got %d", got)
		}
	})
}

func TestScoringService_ComplementaryCriteriaScore(t *testing.T) {
	svc := newTestScoringService(t)
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		age        int
		noBirth    bool
		marital    entities.MaritalStatus
		dependents int
		want       int
	}{
		{name: "prime age married no dependents", age: 30, marital: entities.MaritalStatusMarried, want: 100},
		{name: "young single one dependent", age: 22, marital: entities.MaritalStatusSingle, dependents: 1, want: 75},
		{name: "older divorced three dependents", age: 55, marital: entities.MaritalStatusDivorced, dependents: 3, want: 55},
		{name: "widowed many dependents out of range age", age: 70, marital: entities.MaritalStatusWidowed, dependents: 5, want: 30},
		{name: "missing birth date degrades to lowest age bonus", noBirth: true, marital: entities.MaritalStatusMarried, want: 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := entities.Applicant{MaritalStatus: tt.marital, Dependents: tt.dependents}
			if !tt.noBirth {
				birth := now.AddDate(-tt.age, 0, 0)
				a.BirthDate = &birth
			}
			if got := svc.ComplementaryCriteriaScore(a, now); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestScoringService_GlobalScoreBounds(t *testing.T) {
	svc := newTestScoringService(t)

	for fc := 0; fc <= 100; fc += 25 {
		for ph := 0; ph <= 100; ph += 25 {
			b := ScoreBreakdown{FinancialCapacity: fc, PaymentHistory: ph, ClientRelationship: 50, Complementary: 100}
			got := svc.GlobalScore(b)
			if got < 0 || got > 100 {
				t.Fatalf("global score out of bounds for %+v: %d", b, got)
			}
		}
	}

	full := ScoreBreakdown{FinancialCapacity: 100, PaymentHistory: 100, ClientRelationship: 100, Complementary: 100}
	if got := svc.GlobalScore(full); got != 100 {
		t.Fatalf("expected 100 for all-perfect sub-scores, got %d", got)
	}
}

func TestNewScoringService_InvalidWeights(t *testing.T) {
	if _, err := NewScoringService(nil, ScoreWeights{}); !errors.Is(err, ErrInvalidScoreWeights) {
		t.Fatalf("expected ErrInvalidScoreWeights, got %v", err)
	}
	if _, err := NewScoringService(nil, ScoreWeights{FinancialCapacity: -10, PaymentHistory: 50, ClientRelationship: 30, Complementary: 30}); !errors.Is(err, ErrInvalidScoreWeights) {
		t.Fatalf("expected ErrInvalidScoreWeights for a negative weight, got %v", err)
	}
}

func TestScoringService_IsEligible(t *testing.T) {
	svc := newTestScoringService(t)

	if !svc.IsEligible(60, true) || svc.IsEligible(59, true) {
		t.Fatalf("existing-client threshold must be 60")
	}
	if !svc.IsEligible(70, false) || svc.IsEligible(69, false) {
		t.Fatalf("new-client threshold must be 70")
	}
}

func TestScoringService_BorrowingCapacity(t *testing.T) {
	svc := newTestScoringService(t)

	t.Run("new client is income x4 for any score", func(t *testing.T) {
		for _, income := range []float64{1500, 4000, 12345.67} {
			a := employeeApplicant(income)
			if got := svc.BorrowingCapacity(a, false, 95); got != income*4 {
				t.Fatalf("expected %.2f, got %.2f", income*4, got)
			}
		}
	})

	t.Run("existing client brackets", func(t *testing.T) {
		a := employeeApplicant(4000)
		if got := svc.BorrowingCapacity(a, true, 81); got != 40000 {
			t.Fatalf("expected 40000 above 80, got %.2f", got)
		}
		if got := svc.BorrowingCapacity(a, true, 80); got != 28000 {
			t.Fatalf("expected 28000 at 80, got %.2f", got)
		}
		if got := svc.BorrowingCapacity(a, true, 60); got != 28000 {
			t.Fatalf("expected 28000 at 60, got %.2f", got)
		}
		if got := svc.BorrowingCapacity(a, true, 59); got != 0 {
			t.Fatalf("expected 0 below 60, got %.2f", got)
		}
	})
}

func TestScoringService_ComputeScore(t *testing.T) {
	t.Run("sub-scores and global combine", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		incidents := mock_interfaces.NewMockIIncidentRepository(ctrl)
		svc, err := NewScoringService(incidents, DefaultScoreWeights)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		incidents.EXPECT().ListRecent(gomock.Any(), "app-1", incidentLookbackWindow).Return(nil, nil)

		a := employeeApplicant(4000)
		b, err := svc.ComputeScore(context.Background(), a, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if b.FinancialCapacity != 40 || b.PaymentHistory != 80 || b.ClientRelationship != 50 || b.Complementary != 100 {
			t.Fatalf("unexpected breakdown: %+v", b)
		}
		// 40*35 + 80*30 + 50*15 + 100*20 = 6550 over 100 weight points.
		if b.Global != 66 {
			t.Fatalf("expected global 66, got %d", b.Global)
		}
	})

	t.Run("recent incidents lower payment history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		incidents := mock_interfaces.NewMockIIncidentRepository(ctrl)
		svc, _ := NewScoringService(incidents, DefaultScoreWeights)

		incidents.EXPECT().ListRecent(gomock.Any(), "app-1", incidentLookbackWindow).
			Return([]entities.Incident{{ID: "inc-1"}}, nil)

		b, err := svc.ComputeScore(context.Background(), employeeApplicant(4000), false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.PaymentHistory != 30 {
			t.Fatalf("expected payment history 30, got %d", b.PaymentHistory)
		}
	})

	t.Run("incident lookup error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		incidents := mock_interfaces.NewMockIIncidentRepository(ctrl)
		svc, _ := NewScoringService(incidents, DefaultScoreWeights)

		incidents.EXPECT().ListRecent(gomock.Any(), "app-1", incidentLookbackWindow).
			Return(nil, errors.New("db"))

		if _, err := svc.ComputeScore(context.Background(), employeeApplicant(4000), false); err == nil {
			t.Fatalf("expected error")
		}
	})
}
