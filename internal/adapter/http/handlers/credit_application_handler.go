package handlers

import (
	"errors"
	"log"
	request "microcredit_scoring/internal/adapter/http/dto/request"
	response "microcredit_scoring/internal/adapter/http/dto/response"
	"microcredit_scoring/internal/usecase"
	"microcredit_scoring/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidApplicationPayload = pkg.NewDomainErrorSimple("INVALID_APPLICATION_INPUT", "Invalid application payload", http.StatusBadRequest)
)

// CreditApplicationHandler handles HTTP requests for credit applications,
// manual review resolutions and portfolio queries.

type CreditApplicationHandler struct {
	usecase usecase.ICreditApplicationUseCase
}

func NewCreditApplicationHandler(uc usecase.ICreditApplicationUseCase) *CreditApplicationHandler {
	return &CreditApplicationHandler{usecase: uc}
}

// SubmitApplication runs the full application workflow: eligibility gates,
// scoring, decision and, for approvals, the repayment schedule.
func (h *CreditApplicationHandler) SubmitApplication(c *gin.Context) {
	var payload request.CreditApplicationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidApplicationPayload.HTTPStatus, errInvalidApplicationPayload.ToHTTPError())
		return
	}

	clientID := payload.ResolveClientID()
	if clientID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	creditType, err := payload.ResolveCreditType()
	if err != nil {
		c.JSON(errInvalidApplicationPayload.HTTPStatus, errInvalidApplicationPayload.ToHTTPError())
		return
	}

	log.Printf("[application][handler] submit start client_id=%s amount=%.2f type=%s", clientID, payload.RequestedAmount, creditType)
	result := h.usecase.ProcessApplication(c.Request.Context(), clientID, payload.RequestedAmount, payload.DurationMonths, creditType)
	if result.Cause != nil && !result.ScheduleIncomplete {
		log.Printf("[application][handler] submit failed client_id=%s err=%v", clientID, result.Cause)
		appErr := mapCreditError(result.Cause)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	// Automatic rejections and partially persisted approvals both carry a
	// recorded credit, so the caller still gets the decision back.
	if result.Credit != nil {
		log.Printf("[application][handler] submit decided client_id=%s credit_id=%s decision=%s", clientID, result.Credit.ID, result.Credit.Decision)
	}

	c.JSON(http.StatusCreated, response.FromApplicationResult(result))
}

// ApproveCredit resolves a pending manual review with analyst-set terms.
func (h *CreditApplicationHandler) ApproveCredit(c *gin.Context) {
	creditID := c.Param("credit_id")

	var payload request.ManualApprovalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	log.Printf("[credit][handler] approve start credit_id=%s amount=%.2f rate=%.2f", creditID, payload.ApprovedAmount, payload.InterestRate)
	credit, err := h.usecase.ApproveManually(c.Request.Context(), creditID, payload.ApprovedAmount, payload.InterestRate)
	if err != nil {
		log.Printf("[credit][handler] approve failed credit_id=%s err=%v", creditID, err)
		appErr := mapCreditError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[credit][handler] approve success credit_id=%s decision=%s", credit.ID, credit.Decision)

	c.JSON(http.StatusOK, response.FromCredit(credit))
}

// RejectCredit resolves a pending manual review with a recorded reason.
func (h *CreditApplicationHandler) RejectCredit(c *gin.Context) {
	creditID := c.Param("credit_id")

	var payload request.ManualRejectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	log.Printf("[credit][handler] reject start credit_id=%s", creditID)
	credit, err := h.usecase.RejectManually(c.Request.Context(), creditID, payload.ResolveReason())
	if err != nil {
		log.Printf("[credit][handler] reject failed credit_id=%s err=%v", creditID, err)
		appErr := mapCreditError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[credit][handler] reject success credit_id=%s", credit.ID)

	c.JSON(http.StatusOK, response.FromCredit(credit))
}

// GetCredit returns one credit with its repayment schedule attached.
func (h *CreditApplicationHandler) GetCredit(c *gin.Context) {
	creditID := c.Param("credit_id")

	credit, err := h.usecase.GetCredit(c.Request.Context(), creditID)
	if err != nil {
		log.Printf("[credit][handler] get failed credit_id=%s err=%v", creditID, err)
		appErr := mapCreditError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCredit(credit))
}

// ListClientCredits returns every credit recorded for a client.
func (h *CreditApplicationHandler) ListClientCredits(c *gin.Context) {
	clientID := c.Param("client_id")

	credits, err := h.usecase.ListCreditsForClient(c.Request.Context(), clientID)
	if err != nil {
		log.Printf("[credit][handler] list-by-client failed client_id=%s err=%v", clientID, err)
		appErr := mapCreditError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.CreditResponse, 0, len(credits))
	for _, credit := range credits {
		out = append(out, response.FromCredit(credit))
	}
	c.JSON(http.StatusOK, out)
}

// ListPendingReview returns the credits waiting on an analyst decision.
func (h *CreditApplicationHandler) ListPendingReview(c *gin.Context) {
	credits, err := h.usecase.ListPendingManualReview(c.Request.Context())
	if err != nil {
		log.Printf("[credit][handler] pending-review failed err=%v", err)
		appErr := mapCreditError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.CreditResponse, 0, len(credits))
	for _, credit := range credits {
		out = append(out, response.FromCredit(credit))
	}
	c.JSON(http.StatusOK, out)
}

// GetPortfolioStatistics aggregates decision counts and amounts over the
// whole portfolio.
func (h *CreditApplicationHandler) GetPortfolioStatistics(c *gin.Context) {
	stats, err := h.usecase.ComputePortfolioStatistics(c.Request.Context())
	if err != nil {
		log.Printf("[portfolio][handler] statistics failed err=%v", err)
		appErr := mapCreditError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, stats)
}

func mapCreditError(err error) *pkg.AppError {
	var violation *usecase.CriteriaViolationError
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.As(err, &violation):
		return pkg.NewDomainErrorSimple("CRITERIA_NOT_MET", violation.Reason, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCreditNotFound):
		return pkg.NewDomainErrorSimple("CREDIT_NOT_FOUND", "Credit not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCreditNotUnderReview):
		return pkg.NewDomainErrorSimple("CREDIT_NOT_UNDER_REVIEW", "Credit is not pending manual review", http.StatusConflict)
	case errors.Is(err, usecase.ErrAborted):
		return pkg.NewDomainErrorSimple("REQUEST_ABORTED", "Request aborted before the decision was recorded", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
