package response

import (
	"microcredit_scoring/internal/usecase"
)

type ApplicationResponse struct {
	Success            bool            `json:"success"`
	Message            string          `json:"message"`
	Report             string          `json:"report,omitempty"`
	ScheduleIncomplete bool            `json:"schedule_incomplete,omitempty"`
	Credit             *CreditResponse `json:"credit,omitempty"`
}

func FromApplicationResult(r usecase.ApplicationResult) ApplicationResponse {
	resp := ApplicationResponse{
		Success:            r.Success,
		Message:            r.Message,
		Report:             r.Report,
		ScheduleIncomplete: r.ScheduleIncomplete,
	}
	if r.Credit != nil {
		credit := FromCredit(*r.Credit)
		resp.Credit = &credit
	}
	return resp
}
