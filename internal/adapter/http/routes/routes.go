package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "github.com/agro-trimobe/rural-credit-app-sub000/docs" // This will be auto-generated
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/adapter/http/handlers"
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/adapter/persistence/repository"
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/infrastructure/database"
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/infrastructure/payments"
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/infrastructure/storage"
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/usecase"
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/usecase/interfaces"

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
	tableName := os.Getenv("CRM_TABLE_NAME")
	if tableName == "" {
		log.Fatalf("CRM_TABLE_NAME is required")
	}
	cfg := repository.Config{TableName: tableName}

	ddb := database.ConnectDynamoDB()
	uploads := buildUploadService()

	clienteRepo := repository.NewClienteRepository(ddb, cfg)
	propriedadeRepo := repository.NewPropriedadeRepository(ddb, cfg)
	projetoRepo := repository.NewProjetoRepository(ddb, cfg)
	documentoRepo := repository.NewDocumentoRepository(ddb, cfg, uploads)
	interacaoRepo := repository.NewInteracaoRepository(ddb, cfg)
	oportunidadeRepo := repository.NewOportunidadeRepository(ddb, cfg)
	visitaRepo := repository.NewVisitaRepository(ddb, cfg)
	simulacaoRepo := repository.NewSimulacaoRepository(ddb, cfg)

	var billingGateway interfaces.IBillingGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		billingGateway = mpGateway
	}
	assinaturaUseCase := usecase.NewAssinaturaUseCase(billingGateway)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillingRoutes(v1, handlers.NewAssinaturaHandler(assinaturaUseCase))

	// Data routes require the tenant header.
	crm := v1.Group("")
	crm.Use(tenantMiddleware())
	addCrmRoutes(crm, crmHandlers{
		clientes:      handlers.NewClienteHandler(clienteRepo),
		propriedades:  handlers.NewPropriedadeHandler(propriedadeRepo),
		projetos:      handlers.NewProjetoHandler(projetoRepo),
		documentos:    handlers.NewDocumentoHandler(documentoRepo),
		interacoes:    handlers.NewInteracaoHandler(interacaoRepo),
		oportunidades: handlers.NewOportunidadeHandler(oportunidadeRepo),
		visitas:       handlers.NewVisitaHandler(visitaRepo),
		simulacoes:    handlers.NewSimulacaoHandler(simulacaoRepo),
	})
}

// buildUploadService returns nil when no bucket is configured; document
// writes then keep transient references untouched.
func buildUploadService() interfaces.IUploadService {
	bucket := os.Getenv("UPLOAD_BUCKET")
	if bucket == "" {
		log.Printf("[crm][routes] UPLOAD_BUCKET not set, document uploads disabled")
		return nil
	}

	region := os.Getenv("AWS_REGION")
	endpoint := os.Getenv("S3_ENDPOINT")
	client, err := storage.NewS3Client(context.Background(), region, endpoint)
	if err != nil {
		log.Fatalf("Failed to create S3 client: %v", err)
	}
	svc, err := storage.NewS3UploadService(client, storage.Config{
		Bucket:        bucket,
		Region:        region,
		Endpoint:      endpoint,
		StagingDir:    os.Getenv("UPLOAD_STAGING_DIR"),
		PublicBaseURL: os.Getenv("UPLOAD_PUBLIC_BASE_URL"),
	})
	if err != nil {
		log.Fatalf("Failed to create upload service: %v", err)
	}
	return svc
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
