package main

import (
	"os"
	"os/signal"
	"syscall"

	"cafe-inventory/internal/handler"
	"cafe-inventory/internal/middleware"
	"cafe-inventory/internal/model"
	"cafe-inventory/internal/repository"
	"cafe-inventory/internal/service"
	"cafe-inventory/pkg/database"
	"cafe-inventory/pkg/logger"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env (missing .env falls back to system env)
	_ = godotenv.Load()

	log := logger.New(os.Getenv("APP_ENV"))

	// 2. Setup Database
	db := database.ConnectDB()
	if err := db.AutoMigrate(&model.User{}, &model.Category{}, &model.Supplier{}, &model.Item{}, &model.StockMovement{}); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	// 3. Seed default users and lookup dimensions
	seedDefaults(db, log)

	// 4. Session store: the opaque session cookie is the only state a
	// browser carries between requests.
	store := session.New(session.Config{
		KeyLookup:      "cookie:cafe_session",
		CookieHTTPOnly: true,
	})

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	itemRepo := repository.NewItemRepo(db)
	movementRepo := repository.NewMovementRepo(db)
	lookupRepo := repository.NewLookupRepo(db)

	authService := service.NewAuthService(userRepo)
	catalogService := service.NewCatalogService(itemRepo, movementRepo, lookupRepo, db)
	ledgerService := service.NewLedgerService(itemRepo, movementRepo, db)

	authHandler := handler.NewAuthHandler(authService, store, log)
	itemHandler := handler.NewItemHandler(catalogService, store, log)
	ledgerHandler := handler.NewLedgerHandler(ledgerService, store, log)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Cafe Inventory v1.0",
	})

	// Middleware
	app.Use(fiberlogger.New()) // Logging request
	app.Use(recover.New())     // Panic recovery
	app.Use(middleware.ResolveUser(store, userRepo))

	// 7. Routes
	requireLogin := middleware.RequireLogin(store)
	requireAdmin := middleware.RequireRole(store, model.RoleAdmin)

	app.Get("/login", authHandler.ShowLogin)
	app.Post("/login", authHandler.Login)
	app.Get("/logout", authHandler.Logout)

	app.Get("/", requireLogin, itemHandler.ListItems)
	app.Get("/movements", requireLogin, requireAdmin, ledgerHandler.ListMovements)
	app.Post("/items/new", requireLogin, requireAdmin, itemHandler.CreateItem)
	app.Post("/items/update_stock", requireLogin, ledgerHandler.UpdateStock)
	app.Post("/items/:id/delete", requireLogin, requireAdmin, itemHandler.DeleteItem)

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}

// seedDefaults creates the default accounts and lookup rows on first
// run. Users are created out-of-band in this design; there is no signup
// flow.
func seedDefaults(db *gorm.DB, log zerolog.Logger) {
	userRepo := repository.NewUserRepo(db)

	seedUser := func(username, password, role string) {
		if _, err := userRepo.FindByUsername(username); err == nil {
			return
		}
		user := &model.User{Username: username, Role: role}
		if err := user.SetPassword(password); err != nil {
			log.Warn().Err(err).Str("username", username).Msg("seeding user failed")
			return
		}
		if err := userRepo.Create(user); err != nil {
			log.Warn().Err(err).Str("username", username).Msg("seeding user failed")
			return
		}
		log.Info().Str("username", username).Str("role", role).Msg("seeded user")
	}

	seedUser("admin", "admin123", model.RoleAdmin)
	seedUser("alice", "pw123", model.RoleStaff)

	var categoryCount int64
	db.Model(&model.Category{}).Count(&categoryCount)
	if categoryCount == 0 {
		for _, name := range []string{"Beans", "Dairy", "Pastry", "Packaging"} {
			if err := db.Create(&model.Category{Name: name}).Error; err != nil {
				log.Warn().Err(err).Msg("seeding categories failed")
				break
			}
		}
	}

	var supplierCount int64
	db.Model(&model.Supplier{}).Count(&supplierCount)
	if supplierCount == 0 {
		for _, name := range []string{"Bean Brothers", "Fresh Farm Co."} {
			if err := db.Create(&model.Supplier{Name: name}).Error; err != nil {
				log.Warn().Err(err).Msg("seeding suppliers failed")
				break
			}
		}
	}
}
