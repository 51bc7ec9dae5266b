package usecase

import (
	"math"
	"testing"
	"time"

	"microcredit_scoring/internal/domain/entities"
)

func TestScheduleGenerator_MonthlyPayment(t *testing.T) {
	gen := NewScheduleGenerator()

	t.Run("annuity formula", func(t *testing.T) {
		// 10000 at 12% over 12 months: monthly rate 1%.
		got := gen.MonthlyPayment(10000, 12, 12)
		want := 10000 * 0.01 / (1 - math.Pow(1.01, -12))
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("expected %.6f, got %.6f", want, got)
		}
		if got <= 10000.0/12 {
			t.Fatalf("interest-bearing payment must exceed the principal split, got %.6f", got)
		}
	})

	t.Run("zero rate is principal over term", func(t *testing.T) {
		if got := gen.MonthlyPayment(12000, 0, 24); got != 500.00 {
			t.Fatalf("expected 500.00, got %.2f", got)
		}
	})
}

func TestScheduleGenerator_Generate(t *testing.T) {
	gen := NewScheduleGenerator()
	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	credit := entities.Credit{
		ID:             "credit-1",
		CreatedAt:      start,
		ApprovedAmount: 12000,
		InterestRate:   0,
		DurationMonths: 24,
		Decision:       entities.DecisionApprovedImmediate,
	}

	installments := gen.Generate(credit)

	if len(installments) != credit.DurationMonths {
		t.Fatalf("expected %d installments, got %d", credit.DurationMonths, len(installments))
	}

	for k, inst := range installments {
		if inst.ID == "" {
			t.Fatalf("installment %d missing id", k)
		}
		if inst.CreditID != credit.ID {
			t.Fatalf("installment %d bound to %q", k, inst.CreditID)
		}
		if inst.Amount != 500.00 {
			t.Fatalf("installment %d: expected level payment 500.00, got %.2f", k, inst.Amount)
		}
		if inst.Status != entities.InstallmentStatusPending {
			t.Fatalf("installment %d: expected pending, got %s", k, inst.Status)
		}
		if inst.PaymentDate != nil {
			t.Fatalf("installment %d: fresh installments carry no payment date", k)
		}
		if len(inst.Incidents) != 0 {
			t.Fatalf("installment %d: fresh installments carry no incidents", k)
		}
		wantDue := start.AddDate(0, k+1, 0)
		if !inst.DueDate.Equal(wantDue) {
			t.Fatalf("installment %d: expected due %s, got %s", k, wantDue, inst.DueDate)
		}
	}
}

func TestScheduleGenerator_GenerateLevelPayments(t *testing.T) {
	gen := NewScheduleGenerator()

	credit := entities.Credit{
		ID:             "credit-2",
		CreatedAt:      time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		ApprovedAmount: 30000,
		InterestRate:   7.5,
		DurationMonths: 36,
	}

	installments := gen.Generate(credit)
	if len(installments) != 36 {
		t.Fatalf("expected 36 installments, got %d", len(installments))
	}

	first := installments[0].Amount
	for k, inst := range installments {
		if inst.Amount != first {
			t.Fatalf("installment %d deviates from the level payment: %.6f vs %.6f", k, inst.Amount, first)
		}
	}

	// Re-deriving the schedule from the same credit yields the same payments
	// and due dates.
	again := gen.Generate(credit)
	for k := range installments {
		if installments[k].Amount != again[k].Amount || !installments[k].DueDate.Equal(again[k].DueDate) {
			t.Fatalf("schedule not re-derivable at installment %d", k)
		}
	}
}
