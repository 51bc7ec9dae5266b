package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"microcredit_scoring/internal/domain/entities"
	"microcredit_scoring/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound       = errors.New("client not found")
	ErrCreditNotFound       = errors.New("credit not found")
	ErrCreditNotUnderReview = errors.New("credit is not under manual review")
	ErrInvalidInput         = errors.New("invalid input")
	ErrAborted              = errors.New("application aborted before persistence")
)

// PersistenceError wraps a store failure with the workflow stage it occurred
// in, so callers can tell a failed credit write from a failed schedule write.
type PersistenceError struct {
	Stage string
	Err   error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure at stage %q: %v", e.Stage, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ApplicationResult is the structured outcome of processing one application.
// Workflow failures come back inside the result rather than as a returned
// error, so batch callers can continue past individual failures.
//
// ScheduleIncomplete distinguishes "decision recorded" from "schedule
// incomplete": the credit header is saved but some installments are not, and
// the caller reconciles the missing installments only.
type ApplicationResult struct {
	Success            bool
	Message            string
	Report             string
	Credit             *entities.Credit
	ScheduleIncomplete bool
	Cause              error
}

// PortfolioStatistics aggregates the whole credit portfolio per decision
// bucket. ApprovalRate is approved-immediate over total, in percent, 0 when
// the portfolio is empty.
type PortfolioStatistics struct {
	TotalCredits      int     `json:"total_credits"`
	ApprovedImmediate int     `json:"approved_immediate"`
	ManualReview      int     `json:"manual_review"`
	Rejected          int     `json:"rejected"`
	TotalRequested    float64 `json:"total_requested"`
	TotalApproved     float64 `json:"total_approved"`
	ApprovalRate      float64 `json:"approval_rate"`
}

// ICreditApplicationUseCase exposes the end-to-end application workflow:
// process, resolve manual review, consult, and aggregate.

type ICreditApplicationUseCase interface {
	ProcessApplication(ctx context.Context, clientID string, requestedAmount float64, durationMonths int, creditType entities.CreditType) ApplicationResult
	ApproveManually(ctx context.Context, creditID string, approvedAmount, approvedRate float64) (entities.Credit, error)
	RejectManually(ctx context.Context, creditID, reason string) (entities.Credit, error)
	GetCredit(ctx context.Context, creditID string) (entities.Credit, error)
	ListCreditsForClient(ctx context.Context, clientID string) ([]entities.Credit, error)
	ListPendingManualReview(ctx context.Context) ([]entities.Credit, error)
	ComputePortfolioStatistics(ctx context.Context) (PortfolioStatistics, error)
}

type CreditApplicationUseCase struct {
	applicants   interfaces.IApplicantRepository
	credits      interfaces.ICreditRepository
	installments interfaces.IInstallmentRepository
	engine       *DecisionEngine
	schedule     *ScheduleGenerator
}

var _ ICreditApplicationUseCase = (*CreditApplicationUseCase)(nil)

func NewCreditApplicationUseCase(
	applicants interfaces.IApplicantRepository,
	credits interfaces.ICreditRepository,
	installments interfaces.IInstallmentRepository,
	engine *DecisionEngine,
	schedule *ScheduleGenerator,
) *CreditApplicationUseCase {
	return &CreditApplicationUseCase{
		applicants:   applicants,
		credits:      credits,
		installments: installments,
		engine:       engine,
		schedule:     schedule,
	}
}

func failure(message string, cause error) ApplicationResult {
	return ApplicationResult{Success: false, Message: message, Cause: cause}
}

func (u *CreditApplicationUseCase) ProcessApplication(ctx context.Context, clientID string, requestedAmount float64, durationMonths int, creditType entities.CreditType) ApplicationResult {
	clientID = strings.TrimSpace(clientID)
	log.Printf("[credit][usecase] process start client_id=%s amount=%.2f months=%d type=%s", clientID, requestedAmount, durationMonths, creditType)

	if clientID == "" || requestedAmount <= 0 || durationMonths <= 0 {
		return failure("invalid application input", ErrInvalidInput)
	}

	applicant, err := u.applicants.GetByID(ctx, clientID)
	if err != nil {
		return failure("failed to resolve applicant", &PersistenceError{Stage: "applicant-lookup", Err: err})
	}
	if applicant.ID == "" {
		return failure("client not found", ErrClientNotFound)
	}

	prior, err := u.credits.ListByClientID(ctx, clientID)
	if err != nil {
		return failure("failed to load credit history", &PersistenceError{Stage: "credit-history", Err: err})
	}
	isExistingClient := len(prior) > 0

	if err := u.engine.ValidateSpecialCriteria(applicant, creditType, requestedAmount, time.Now().UTC()); err != nil {
		log.Printf("[credit][usecase] criteria violation client_id=%s type=%s err=%v", clientID, creditType, err)
		return failure("special criteria not met for this credit type", err)
	}

	eval, err := u.engine.EvaluateApplication(ctx, applicant, requestedAmount, creditType, isExistingClient)
	if err != nil {
		return failure("failed to score application", &PersistenceError{Stage: "incident-lookup", Err: err})
	}
	log.Printf("[credit][usecase] evaluated client_id=%s score=%d decision=%s approved=%.2f rate=%.2f",
		clientID, eval.Score.Global, eval.Decision, eval.ApprovedAmount, eval.InterestRate)

	// Last abort point. Once the credit header write starts, the unit of
	// work runs to completion.
	if ctx.Err() != nil {
		return failure("application aborted", ErrAborted)
	}

	now := time.Now().UTC()
	credit := entities.Credit{
		ID:              uuid.NewString(),
		ClientID:        clientID,
		CreatedAt:       now,
		RequestedAmount: requestedAmount,
		ApprovedAmount:  eval.ApprovedAmount,
		InterestRate:    eval.InterestRate,
		DurationMonths:  durationMonths,
		Type:            creditType,
		Decision:        eval.Decision,
		UpdatedAt:       now,
	}

	saved, err := u.credits.Create(ctx, credit)
	if err != nil {
		return failure("failed to save credit", &PersistenceError{Stage: "credit-save", Err: err})
	}

	if eval.Decision == entities.DecisionAutoRejected {
		log.Printf("[credit][usecase] rejected client_id=%s credit_id=%s score=%d", clientID, saved.ID, eval.Score.Global)
		return ApplicationResult{
			Success: false,
			Message: "application rejected automatically",
			Report:  eval.Report,
			Credit:  &saved,
		}
	}

	if eval.Decision == entities.DecisionApprovedImmediate {
		installments := u.schedule.Generate(saved)
		if err := u.installments.SaveAll(ctx, installments); err != nil {
			// The saved credit header stays untouched; only the missing
			// installments need reconciliation.
			log.Printf("[credit][usecase] schedule incomplete credit_id=%s err=%v", saved.ID, err)
			return ApplicationResult{
				Success:            false,
				Message:            "credit recorded but schedule incomplete",
				Report:             eval.Report,
				Credit:             &saved,
				ScheduleIncomplete: true,
				Cause:              &PersistenceError{Stage: "schedule-save", Err: err},
			}
		}
		saved.Installments = installments
	}

	message := "application queued for manual review"
	if eval.Decision == entities.DecisionApprovedImmediate {
		message = "application approved immediately"
	}
	log.Printf("[credit][usecase] process success client_id=%s credit_id=%s decision=%s", clientID, saved.ID, saved.Decision)

	return ApplicationResult{
		Success: true,
		Message: message,
		Report:  eval.Report,
		Credit:  &saved,
	}
}

// ApproveManually resolves a pending manual review into an immediate
// approval with officer-set terms and regenerates the schedule. The approved
// amount may exceed the automatic capacity; that override is the point of
// manual review.
//
// When the schedule write fails after the decision was recorded, the updated
// credit is returned together with the stage-tagged error so the caller can
// reconcile the installments only.
func (u *CreditApplicationUseCase) ApproveManually(ctx context.Context, creditID string, approvedAmount, approvedRate float64) (entities.Credit, error) {
	creditID = strings.TrimSpace(creditID)
	if creditID == "" || approvedAmount <= 0 || approvedRate < 0 {
		return entities.Credit{}, ErrInvalidInput
	}

	credit, err := u.credits.GetByID(ctx, creditID)
	if err != nil {
		return entities.Credit{}, &PersistenceError{Stage: "credit-lookup", Err: err}
	}
	if credit.ID == "" {
		return entities.Credit{}, ErrCreditNotFound
	}
	if credit.Decision != entities.DecisionManualReview {
		return entities.Credit{}, ErrCreditNotUnderReview
	}

	credit.ApprovedAmount = approvedAmount
	credit.InterestRate = approvedRate
	credit.Decision = entities.DecisionApprovedImmediate
	credit.UpdatedAt = time.Now().UTC()

	updated, err := u.credits.Update(ctx, credit)
	if err != nil {
		return entities.Credit{}, &PersistenceError{Stage: "credit-update", Err: err}
	}

	installments := u.schedule.Generate(updated)
	if err := u.installments.SaveAll(ctx, installments); err != nil {
		log.Printf("[credit][usecase] manual approval schedule incomplete credit_id=%s err=%v", updated.ID, err)
		return updated, &PersistenceError{Stage: "schedule-save", Err: err}
	}
	updated.Installments = installments

	log.Printf("[credit][usecase] manual approval credit_id=%s amount=%.2f rate=%.2f", updated.ID, approvedAmount, approvedRate)
	return updated, nil
}

// RejectManually resolves a pending manual review into a rejection and
// records the officer's reason.
func (u *CreditApplicationUseCase) RejectManually(ctx context.Context, creditID, reason string) (entities.Credit, error) {
	creditID = strings.TrimSpace(creditID)
	if creditID == "" {
		return entities.Credit{}, ErrInvalidInput
	}

	credit, err := u.credits.GetByID(ctx, creditID)
	if err != nil {
		return entities.Credit{}, &PersistenceError{Stage: "credit-lookup", Err: err}
	}
	if credit.ID == "" {
		return entities.Credit{}, ErrCreditNotFound
	}
	if credit.Decision != entities.DecisionManualReview {
		return entities.Credit{}, ErrCreditNotUnderReview
	}

	credit.Decision = entities.DecisionAutoRejected
	credit.ApprovedAmount = 0
	credit.RejectionReason = strings.TrimSpace(reason)
	credit.UpdatedAt = time.Now().UTC()

	updated, err := u.credits.Update(ctx, credit)
	if err != nil {
		return entities.Credit{}, &PersistenceError{Stage: "credit-update", Err: err}
	}

	log.Printf("[credit][usecase] manual rejection credit_id=%s", updated.ID)
	return updated, nil
}

// GetCredit loads a credit together with its installments.
func (u *CreditApplicationUseCase) GetCredit(ctx context.Context, creditID string) (entities.Credit, error) {
	creditID = strings.TrimSpace(creditID)
	if creditID == "" {
		return entities.Credit{}, ErrInvalidInput
	}

	credit, err := u.credits.GetByID(ctx, creditID)
	if err != nil {
		return entities.Credit{}, err
	}
	if credit.ID == "" {
		return entities.Credit{}, ErrCreditNotFound
	}

	installments, err := u.installments.ListByCreditID(ctx, creditID)
	if err != nil {
		return entities.Credit{}, err
	}
	credit.Installments = installments
	return credit, nil
}

func (u *CreditApplicationUseCase) ListCreditsForClient(ctx context.Context, clientID string) ([]entities.Credit, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidInput
	}
	return u.credits.ListByClientID(ctx, clientID)
}

func (u *CreditApplicationUseCase) ListPendingManualReview(ctx context.Context) ([]entities.Credit, error) {
	return u.credits.ListByDecision(ctx, entities.DecisionManualReview)
}

func (u *CreditApplicationUseCase) ComputePortfolioStatistics(ctx context.Context) (PortfolioStatistics, error) {
	all, err := u.credits.ListAll(ctx)
	if err != nil {
		return PortfolioStatistics{}, err
	}

	stats := PortfolioStatistics{TotalCredits: len(all)}
	for _, c := range all {
		stats.TotalRequested += c.RequestedAmount
		stats.TotalApproved += c.ApprovedAmount

		switch c.Decision {
		case entities.DecisionApprovedImmediate:
			stats.ApprovedImmediate++
		case entities.DecisionManualReview:
			stats.ManualReview++
		case entities.DecisionAutoRejected:
			stats.Rejected++
		}
	}
	if stats.TotalCredits > 0 {
		stats.ApprovalRate = float64(stats.ApprovedImmediate) / float64(stats.TotalCredits) * 100
	}
	return stats, nil
}
