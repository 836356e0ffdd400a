package router

import (
	"github.com/WallaceMuylaert/optics-api/internal/config"
	"github.com/WallaceMuylaert/optics-api/internal/handler"
	"github.com/WallaceMuylaert/optics-api/internal/middleware"
	"github.com/WallaceMuylaert/optics-api/internal/repository"
	"github.com/WallaceMuylaert/optics-api/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	roleRepo := repository.NewRoleRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	userSvc := service.NewUserService(userRepo, roleRepo)
	supplierSvc := service.NewSupplierService(supplierRepo)
	orderSvc := service.NewOrderService(orderRepo)
	addressSvc := service.NewAddressService(addressRepo)
	authSvc := service.NewAuthService(userRepo, supplierRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	usersH := handler.NewUsersHandler(userSvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	addressesH := handler.NewAddressesHandler(addressSvc)
	authH := handler.NewAuthHandler(authSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db))

	r.POST("/login", middleware.LoginRateLimiter(), authH.Login)

	users := r.Group("/users")
	{
		users.POST("", usersH.Create)
		users.GET("", usersH.List)
		users.GET("/:id", usersH.GetByID)
		users.PUT("/:id", usersH.Update)
		users.DELETE("/:id", usersH.Delete)
	}

	suppliers := r.Group("/suppliers")
	{
		suppliers.POST("", suppliersH.Create)
		suppliers.GET("", suppliersH.List)
		suppliers.GET("/:id", suppliersH.GetByID)
		suppliers.PUT("/:id", suppliersH.Update)
		suppliers.DELETE("/:id", suppliersH.Delete)
	}

	orders := r.Group("/orders")
	{
		orders.POST("", ordersH.Create)
		orders.GET("", ordersH.List)
		orders.GET("/:id", ordersH.GetByID)
		orders.PUT("/:id", ordersH.Update)
		orders.DELETE("/:id", ordersH.Delete)
	}

	addresses := r.Group("/addresses")
	{
		addresses.POST("", addressesH.Create)
		addresses.GET("", addressesH.List)
		addresses.GET("/:id", addressesH.GetByID)
		addresses.PUT("/:id", addressesH.Update)
		addresses.DELETE("/:id", addressesH.Delete)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
