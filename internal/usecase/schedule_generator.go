package usecase

import (
	"math"

	"microcredit_scoring/internal/domain/entities"

	"github.com/google/uuid"
)

// ScheduleGenerator produces the amortized repayment schedule of an approved
// credit. The schedule is re-derivable from the credit alone, which is what
// lets manual approval regenerate it.

type ScheduleGenerator struct{}

func NewScheduleGenerator() *ScheduleGenerator {
	return &ScheduleGenerator{}
}

// MonthlyPayment applies the level-payment annuity formula. The formula is
// singular at a zero rate, where the payment is simply amount/n.
func (g *ScheduleGenerator) MonthlyPayment(amount, annualRate float64, durationMonths int) float64 {
	monthlyRate := annualRate / 12 / 100
	if monthlyRate == 0 {
		return amount / float64(durationMonths)
	}
	return amount * monthlyRate / (1 - math.Pow(1+monthlyRate, float64(-durationMonths)))
}

// Generate builds the ordered installment sequence for a credit: one pending
// installment per month, due dates one month apart starting one month after
// the credit date.
func (g *ScheduleGenerator) Generate(credit entities.Credit) []entities.Installment {
	payment := g.MonthlyPayment(credit.ApprovedAmount, credit.InterestRate, credit.DurationMonths)

	installments := make([]entities.Installment, 0, credit.DurationMonths)
	for k := 1; k <= credit.DurationMonths; k++ {
		installments = append(installments, entities.Installment{
			ID:       uuid.NewString(),
			CreditID: credit.ID,
			DueDate:  credit.CreatedAt.AddDate(0, k, 0),
			Amount:   payment,
			Status:   entities.InstallmentStatusPending,
		})
	}
	return installments
}
