package routes

import (
	"log"
	"strconv"

	_ "servicos_xpto/docs" // This will be auto-generated
	"servicos_xpto/internal/adapter/http/handlers"
	repository2 "servicos_xpto/internal/adapter/persistence/repository"
	"servicos_xpto/internal/infrastructure/database"
	"servicos_xpto/internal/usecase"

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
	// One process-wide DynamoDB client, created once and shared by every
	// repository. A nil client means no backend was configured; the
	// repository degrades instead of crashing.
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewServiceOrderDynamoRepository(ddb)

	orderUseCase := usecase.NewServiceOrderUseCase(orderRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(orderRepo)

	orderHandler := handlers.NewServiceOrderHandler(orderUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addServiceOrderRoutes(v1, orderHandler, dashboardHandler)
}

func setMiddlewares() {
	router.Use(requestID())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
