package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"microcredit_scoring/internal/domain/entities"
	mock_interfaces "microcredit_scoring/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newTestDecisionEngine(t *testing.T) *DecisionEngine {
	t.Helper()
	return NewDecisionEngine(newTestScoringService(t))
}

func decisionRank(d entities.Decision) int {
	switch d {
	case entities.DecisionAutoRejected:
		return 0
	case entities.DecisionManualReview:
		return 1
	default:
		return 2
	}
}

func TestDecisionEngine_Decide(t *testing.T) {
	engine := newTestDecisionEngine(t)

	tests := []struct {
		name       string
		score      int
		isExisting bool
		requested  float64
		capacity   float64
		want       entities.Decision
	}{
		{name: "high score approved", score: 85, isExisting: true, requested: 10000, capacity: 40000, want: entities.DecisionApprovedImmediate},
		{name: "mid score manual review", score: 70, isExisting: true, requested: 10000, capacity: 28000, want: entities.DecisionManualReview},
		{name: "new client below threshold rejected", score: 65, isExisting: false, requested: 10000, capacity: 16000, want: entities.DecisionAutoRejected},
		{name: "existing client at threshold reviewed", score: 60, isExisting: true, requested: 10000, capacity: 28000, want: entities.DecisionManualReview},
		{name: "capacity exceeded rejected regardless of score", score: 95, isExisting: true, requested: 50000, capacity: 40000, want: entities.DecisionAutoRejected},
		{name: "low score rejected", score: 40, isExisting: true, requested: 1000, capacity: 28000, want: entities.DecisionAutoRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Decide(tt.score, tt.isExisting, tt.requested, tt.capacity)
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}

	t.Run("monotonic in score", func(t *testing.T) {
		prev := -1
		for score := 0; score <= 100; score++ {
			d := engine.Decide(score, true, 10000, 100000)
			if r := decisionRank(d); r < prev {
				t.Fatalf("decision worsened at score %d: %s", score, d)
			} else {
				prev = r
			}
		}
	})
}

func TestDecisionEngine_ApprovedAmount(t *testing.T) {
	engine := newTestDecisionEngine(t)

	t.Run("rejected is zero", func(t *testing.T) {
		if got := engine.ApprovedAmount(entities.DecisionAutoRejected, 50, 10000, 40000); got != 0 {
			t.Fatalf("expected 0, got %.2f", got)
		}
	})

	t.Run("immediate approval is min of requested and capacity", func(t *testing.T) {
		if got := engine.ApprovedAmount(entities.DecisionApprovedImmediate, 85, 10000, 40000); got != 10000 {
			t.Fatalf("expected 10000, got %.2f", got)
		}
		if got := engine.ApprovedAmount(entities.DecisionApprovedImmediate, 85, 50000, 40000); got != 40000 {
			t.Fatalf("expected capacity cap 40000, got %.2f", got)
		}
	})

	t.Run("manual review reduction brackets", func(t *testing.T) {
		tests := []struct {
			score int
			want  float64
		}{
			{score: 79, want: 9000}, // 0.90
			{score: 75, want: 9000},
			{score: 74, want: 8500}, // 0.85
			{score: 70, want: 8500},
			{score: 69, want: 7500}, // 0.75
			{score: 60, want: 7500},
		}
		for _, tt := range tests {
			if got := engine.ApprovedAmount(entities.DecisionManualReview, tt.score, 10000, 40000); got != tt.want {
				t.Fatalf("score %d: expected %.2f, got %.2f", tt.score, tt.want, got)
			}
		}
	})

	t.Run("never exceeds requested nor capacity", func(t *testing.T) {
		decisions := []entities.Decision{entities.DecisionAutoRejected, entities.DecisionManualReview, entities.DecisionApprovedImmediate}
		for _, d := range decisions {
			for score := 0; score <= 100; score += 5 {
				got := engine.ApprovedAmount(d, score, 10000, 8000)
				if got > 10000 || got > 8000 {
					t.Fatalf("decision %s score %d: amount %.2f exceeds bounds", d, score, got)
				}
			}
		}
	})
}

func TestDecisionEngine_InterestRate(t *testing.T) {
	engine := newTestDecisionEngine(t)

	tests := []struct {
		name       string
		creditType entities.CreditType
		score      int
		isExisting bool
		want       float64
	}{
		{name: "real estate excellent existing", creditType: entities.CreditTypeRealEstate, score: 85, isExisting: true, want: 3.75},
		{name: "real estate excellent new", creditType: entities.CreditTypeRealEstate, score: 85, isExisting: false, want: 4.0},
		{name: "auto base bracket", creditType: entities.CreditTypeAuto, score: 75, isExisting: false, want: 6.0},
		{name: "consumer mid bracket", creditType: entities.CreditTypeConsumer, score: 65, isExisting: false, want: 9.0},
		{name: "micro credit low score", creditType: entities.CreditTypeMicroCredit, score: 40, isExisting: false, want: 14.0},
		{name: "other falls back to consumer base", creditType: entities.CreditTypeOther, score: 75, isExisting: false, want: 8.0},
		{name: "loyalty discount", creditType: entities.CreditTypeConsumer, score: 72, isExisting: true, want: 7.75},
		{name: "no loyalty below 70", creditType: entities.CreditTypeConsumer, score: 65, isExisting: true, want: 9.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := engine.InterestRate(tt.creditType, tt.score, tt.isExisting); got != tt.want {
				t.Fatalf("expected %.2f, got %.2f", tt.want, got)
			}
		})
	}

	t.Run("never below the 3.0 floor", func(t *testing.T) {
		types := []entities.CreditType{
			entities.CreditTypeRealEstate, entities.CreditTypeAuto, entities.CreditTypeConsumer,
			entities.CreditTypeMicroCredit, entities.CreditTypeOther,
		}
		for _, ct := range types {
			for score := 0; score <= 100; score += 10 {
				for _, existing := range []bool{true, false} {
					if got := engine.InterestRate(ct, score, existing); got < 3.0 {
						t.Fatalf("type %s score %d existing %v: rate %.2f below floor", ct, score, existing, got)
					}
				}
			}
		}
	})
}

func TestDecisionEngine_ValidateSpecialCriteria(t *testing.T) {
	engine := newTestDecisionEngine(t)
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	marriedAt := func(age int, income float64) entities.Applicant {
		birth := now.AddDate(-age, 0, 0)
		return entities.Applicant{
			BirthDate:     &birth,
			MaritalStatus: entities.MaritalStatusMarried,
			Kind:          entities.ApplicantKindEmployee,
			Employment:    &entities.Employment{Salary: income},
		}
	}

	t.Run("consumer passes within one year of income", func(t *testing.T) {
		if err := engine.ValidateSpecialCriteria(marriedAt(30, 4000), entities.CreditTypeConsumer, 20000, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("real estate passes within ten years of income", func(t *testing.T) {
		if err := engine.ValidateSpecialCriteria(marriedAt(30, 5000), entities.CreditTypeRealEstate, 500000, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	tests := []struct {
		name       string
		applicant  entities.Applicant
		creditType entities.CreditType
		amount     float64
		wantReason string
	}{
		{name: "real estate age gate", applicant: marriedAt(55, 5000), creditType: entities.CreditTypeRealEstate, amount: 100000, wantReason: "age"},
		{name: "real estate income gate", applicant: marriedAt(30, 3500), creditType: entities.CreditTypeRealEstate, amount: 100000, wantReason: "income"},
		{name: "real estate amount gate", applicant: marriedAt(30, 5000), creditType: entities.CreditTypeRealEstate, amount: 600001, wantReason: "120x"},
		{name: "auto income gate", applicant: marriedAt(30, 2500), creditType: entities.CreditTypeAuto, amount: 10000, wantReason: "income"},
		{name: "auto amount gate", applicant: marriedAt(30, 3000), creditType: entities.CreditTypeAuto, amount: 108001, wantReason: "36x"},
		{name: "consumer income gate", applicant: marriedAt(30, 1500), creditType: entities.CreditTypeConsumer, amount: 5000, wantReason: "income"},
		{name: "consumer amount gate", applicant: marriedAt(30, 2000), creditType: entities.CreditTypeConsumer, amount: 24001, wantReason: "12x"},
		{name: "micro credit ceiling", applicant: marriedAt(30, 1000), creditType: entities.CreditTypeMicroCredit, amount: 50001, wantReason: "ceiling"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := engine.ValidateSpecialCriteria(tt.applicant, tt.creditType, tt.amount, now)
			var violation *CriteriaViolationError
			if !errors.As(err, &violation) {
				t.Fatalf("expected CriteriaViolationError, got %v", err)
			}
			if violation.CreditType != tt.creditType || !strings.Contains(violation.Reason, tt.wantReason) {
				t.Fatalf("unexpected violation: %+v", violation)
			}
		})
	}

	t.Run("single applicant fails real estate", func(t *testing.T) {
		a := marriedAt(30, 5000)
		a.MaritalStatus = entities.MaritalStatusSingle
		if err := engine.ValidateSpecialCriteria(a, entities.CreditTypeRealEstate, 100000, now); err == nil {
			t.Fatalf("expected violation for unmarried applicant")
		}
	})

	t.Run("missing birth date fails real estate age gate", func(t *testing.T) {
		a := marriedAt(30, 5000)
		a.BirthDate = nil
		err := engine.ValidateSpecialCriteria(a, entities.CreditTypeRealEstate, 100000, now)
		var violation *CriteriaViolationError
		if !errors.As(err, &violation) || !strings.Contains(violation.Reason, "age") {
			t.Fatalf("expected age violation, got %v", err)
		}
	})

	t.Run("micro credit ignores income", func(t *testing.T) {
		if err := engine.ValidateSpecialCriteria(entities.Applicant{}, entities.CreditTypeMicroCredit, 50000, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("other always passes", func(t *testing.T) {
		if err := engine.ValidateSpecialCriteria(entities.Applicant{}, entities.CreditTypeOther, 1e9, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDecisionEngine_BuildDecisionReport(t *testing.T) {
	engine := newTestDecisionEngine(t)
	a := entities.Applicant{FirstName: "Amina", LastName: "Benali"}

	t.Run("approved report carries terms", func(t *testing.T) {
		report := engine.BuildDecisionReport(a, true, 85, 40000, 10000, entities.DecisionApprovedImmediate, 10000, 7.25)
		for _, want := range []string{
			"Client: Amina Benali",
			"Profile: Existing client",
			"Computed score: 85/100",
			"Max borrowing capacity: 40000.00",
			"Requested amount: 10000.00",
			"DECISION: APPROVED_IMMEDIATE",
			"Proposed amount: 10000.00",
			"Interest rate: 7.25%",
		} {
			if !strings.Contains(report, want) {
				t.Fatalf("report missing %q:\n%s", want, report)
			}
		}
	})

	t.Run("rejected report omits terms", func(t *testing.T) {
		report := engine.BuildDecisionReport(a, false, 40, 16000, 10000, entities.DecisionAutoRejected, 0, 9.0)
		if !strings.Contains(report, "Profile: New client") || !strings.Contains(report, "DECISION: AUTO_REJECTED") {
			t.Fatalf("unexpected report:\n%s", report)
		}
		if strings.Contains(report, "Proposed amount") || strings.Contains(report, "Interest rate") {
			t.Fatalf("rejected report must not carry terms:\n%s", report)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		r1 := engine.BuildDecisionReport(a, true, 72, 28000, 20000, entities.DecisionManualReview, 17000, 7.75)
		r2 := engine.BuildDecisionReport(a, true, 72, 28000, 20000, entities.DecisionManualReview, 17000, 7.75)
		if r1 != r2 {
			t.Fatalf("report not deterministic")
		}
	})
}

func TestDecisionEngine_EvaluateApplication(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	incidents := mock_interfaces.NewMockIIncidentRepository(ctrl)
	scoring, err := NewScoringService(incidents, DefaultScoreWeights)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	engine := NewDecisionEngine(scoring)

	// Existing, long-tenured, incident-free, high-income applicant: every
	// sub-score saturates except payment history (80), global 94.
	incidents.EXPECT().ListRecent(gomock.Any(), "app-1", incidentLookbackWindow).Return(nil, nil)

	a := employeeApplicant(10000)
	a.HasInvestment = true
	a.HasSavings = true

	eval, err := engine.EvaluateApplication(context.Background(), a, 50000, entities.CreditTypeOther, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if eval.Score.Global != 94 {
		t.Fatalf("expected global score 94, got %d", eval.Score.Global)
	}
	if eval.Decision != entities.DecisionApprovedImmediate {
		t.Fatalf("expected immediate approval, got %s", eval.Decision)
	}
	if eval.Capacity != 100000 {
		t.Fatalf("expected capacity 100000, got %.2f", eval.Capacity)
	}
	if eval.ApprovedAmount != 50000 {
		t.Fatalf("expected approved 50000, got %.2f", eval.ApprovedAmount)
	}
	if eval.InterestRate != 7.25 {
		t.Fatalf("expected rate 7.25, got %.2f", eval.InterestRate)
	}
	if !strings.Contains(eval.Report, "DECISION: APPROVED_IMMEDIATE") {
		t.Fatalf("unexpected report:\n%s", eval.Report)
	}
}
