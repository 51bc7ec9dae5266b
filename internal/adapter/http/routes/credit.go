package routes

import (
	"microcredit_scoring/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathApplications = "/applications"
	PathCredits      = "/credits"
	PathClients      = "/clients"
	PathPortfolio    = "/portfolio"
)

func addCreditRoutes(rg *gin.RouterGroup, applicationHandler *handlers.CreditApplicationHandler) {
	applications := rg.Group(PathApplications)
	{
		applications.POST("", applicationHandler.SubmitApplication)
	}

	credits := rg.Group(PathCredits)
	{
		credits.GET("/pending-review", applicationHandler.ListPendingReview)
		credits.GET("/:credit_id", applicationHandler.GetCredit)
		credits.PATCH("/:credit_id/approve", applicationHandler.ApproveCredit)
		credits.PATCH("/:credit_id/reject", applicationHandler.RejectCredit)
	}

	clients := rg.Group(PathClients)
	{
		clients.GET("/:client_id/credits", applicationHandler.ListClientCredits)
	}

	portfolio := rg.Group(PathPortfolio)
	{
		portfolio.GET("/statistics", applicationHandler.GetPortfolioStatistics)
	}
}
