package routes

import (
	"log"
	_ "microcredit_scoring/docs" // This will be auto-generated
	"microcredit_scoring/internal/adapter/http/handlers"
	repository2 "microcredit_scoring/internal/adapter/persistence/repository"
	"microcredit_scoring/internal/infrastructure/database"
	"microcredit_scoring/internal/usecase"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	applicantRepo := repository2.NewApplicantDynamoRepository(ddb)
	creditRepo := repository2.NewCreditDynamoRepository(ddb)
	installmentRepo := repository2.NewInstallmentDynamoRepository(ddb)
	incidentRepo := repository2.NewIncidentDynamoRepository(ddb)

	scoring, err := usecase.NewScoringService(incidentRepo, usecase.DefaultScoreWeights)
	if err != nil {
		log.Fatalf("Failed to build scoring service: %v", err.Error())
	}
	engine := usecase.NewDecisionEngine(scoring)
	schedule := usecase.NewScheduleGenerator()

	applicationUseCase := usecase.NewCreditApplicationUseCase(applicantRepo, creditRepo, installmentRepo, engine, schedule)

	applicationHandler := handlers.NewCreditApplicationHandler(applicationUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCreditRoutes(v1, applicationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
