// Package http wires the gin surface over the service layer.
package http

import (
	"github.com/Vld439/vinovault/internal/service"
	"github.com/Vld439/vinovault/internal/transport/http/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps carries everything the router needs. The handlers are built here so
// main only assembles services.
type Deps struct {
	Auth      *service.AuthService
	Catalog   service.CatalogService
	Clients   service.ClientService
	Inventory service.InventoryService
	Sales     service.SaleService
	Reports   service.ReportService
	Rates     service.RatesPort
	Tokens    service.TokenProvider
	Log       *zap.Logger
}

func Router(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(d.Log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	authHandler := handlers.NewAuthHandler(d.Auth, d.Log)
	catalogHandler := handlers.NewCatalogHandler(d.Catalog, d.Log)
	clientHandler := handlers.NewClientHandler(d.Clients, d.Log)
	inventoryHandler := handlers.NewInventoryHandler(d.Inventory, d.Log)
	saleHandler := handlers.NewSaleHandler(d.Sales, d.Log)
	reportHandler := handlers.NewReportHandler(d.Reports, d.Rates, d.Log)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/auth/login", authHandler.Login)

	authed := r.Group("/", AuthRequired(d.Tokens, d.Log))
	{
		authed.POST("/auth/register", authHandler.Register)
		authed.GET("/auth/me", authHandler.Me)

		authed.GET("/productos", catalogHandler.ListProducts)
		authed.POST("/productos", catalogHandler.CreateProduct)
		authed.PUT("/productos/:id", catalogHandler.UpdateProduct)
		authed.DELETE("/productos/:id", catalogHandler.DeleteProduct)

		authed.GET("/depositos", catalogHandler.ListWarehouses)
		authed.POST("/depositos", catalogHandler.CreateWarehouse)

		authed.GET("/clientes", clientHandler.List)
		authed.POST("/clientes", clientHandler.Create)
		authed.PUT("/clientes/:id", clientHandler.Update)
		authed.DELETE("/clientes/:id", clientHandler.Delete)

		authed.POST("/inventario/movimiento", inventoryHandler.RecordMovement)
		authed.GET("/inventario/historial", inventoryHandler.History)
		authed.GET("/inventario/stock", inventoryHandler.Stock)
		authed.GET("/inventario/reconciliacion", inventoryHandler.Reconcile)

		authed.POST("/ventas", saleHandler.Create)
		authed.GET("/ventas/historial", saleHandler.History)
		authed.GET("/ventas/:id", saleHandler.Get)
		authed.POST("/ventas/:id/anular", saleHandler.Void)

		authed.GET("/cotizaciones", reportHandler.Rates)
		authed.GET("/reportes/ventas", reportHandler.Sales)
	}

	return r
}
