package api

import (
	"os"

	"aisleplan/docs"
	"aisleplan/internal/api/handlers"
	"aisleplan/pkg/auth"
	"aisleplan/pkg/config"
	"aisleplan/pkg/metrics"
	"aisleplan/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// Handlers bundles the handler set wired into the router.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Wedding    *handlers.WeddingHandler
	Guest      *handlers.GuestHandler
	Budget     *handlers.BudgetHandler
	Vendor     *handlers.VendorHandler
	Table      *handlers.TableHandler
	Task       *handlers.TaskHandler
	Timeline   *handlers.TimelineHandler
	Invitation *handlers.InvitationHandler
	Photo      *handlers.PhotoHandler
}

func SetupRouter(h Handlers, jwtManager *auth.JWTManager, cfg *config.Config, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    cfg.Uploads.MaxSizeMB * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())
	app.Use(metrics.Middleware())

	// Swagger - importing the docs package registers the spec via init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Uploaded photos
	if _, err := os.Stat(cfg.Uploads.Dir); err == nil {
		app.Static("/uploads", cfg.Uploads.Dir)
	} else {
		appLogger.Warn("Upload directory missing, uploads will not be served", zap.String("dir", cfg.Uploads.Dir))
	}

	// Auth routes (public)
	authGroup := app.Group("/user/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)

	// Public RSVP by invitation token
	app.Post("/rsvp/:token", h.Invitation.Respond)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	weddings := protected.Group("/weddings")
	weddings.Post("", h.Wedding.Create)
	weddings.Get("", h.Wedding.List)
	weddings.Get("/:id", h.Wedding.Get)
	weddings.Put("/:id", h.Wedding.Update)
	weddings.Delete("/:id", h.Wedding.Delete)

	weddings.Post("/:id/guests", h.Guest.Create)
	weddings.Get("/:id/guests", h.Guest.List)
	weddings.Post("/:id/tables", h.Table.Create)
	weddings.Get("/:id/tables", h.Table.List)
	weddings.Post("/:id/budget", h.Budget.Create)
	weddings.Get("/:id/budget", h.Budget.Get)
	weddings.Post("/:id/vendors", h.Vendor.Create)
	weddings.Get("/:id/vendors", h.Vendor.List)
	weddings.Post("/:id/tasks", h.Task.Create)
	weddings.Get("/:id/tasks", h.Task.List)
	weddings.Post("/:id/timeline", h.Timeline.Create)
	weddings.Get("/:id/timeline", h.Timeline.List)
	weddings.Post("/:id/invitations", h.Invitation.Create)
	weddings.Get("/:id/invitations", h.Invitation.List)
	weddings.Post("/:id/photos", h.Photo.Upload)
	weddings.Get("/:id/photos", h.Photo.List)

	guests := protected.Group("/guests")
	guests.Put("/:id", h.Guest.Update)
	guests.Put("/:id/rsvp", h.Guest.UpdateRSVP)
	guests.Delete("/:id", h.Guest.Delete)

	tables := protected.Group("/tables")
	tables.Put("/:id", h.Table.Update)
	tables.Put("/:id/assignments", h.Table.AssignGuests)
	tables.Delete("/:id", h.Table.Delete)

	budgets := protected.Group("/budgets")
	budgets.Put("/:id", h.Budget.Update)
	budgets.Get("/:id/summary", h.Budget.Summary)
	budgets.Post("/:id/expenses", h.Budget.CreateExpense)
	budgets.Get("/:id/expenses", h.Budget.ListExpenses)

	expenses := protected.Group("/expenses")
	expenses.Put("/:id", h.Budget.UpdateExpense)
	expenses.Delete("/:id", h.Budget.DeleteExpense)

	vendors := protected.Group("/vendors")
	vendors.Get("/:id", h.Vendor.Get)
	vendors.Put("/:id", h.Vendor.Update)
	vendors.Delete("/:id", h.Vendor.Delete)

	tasks := protected.Group("/tasks")
	tasks.Put("/:id", h.Task.Update)
	tasks.Delete("/:id", h.Task.Delete)

	timeline := protected.Group("/timeline")
	timeline.Put("/:id", h.Timeline.Update)
	timeline.Delete("/:id", h.Timeline.Delete)

	invitations := protected.Group("/invitations")
	invitations.Post("/:id/send", h.Invitation.Send)
	invitations.Delete("/:id", h.Invitation.Delete)

	photos := protected.Group("/photos")
	photos.Delete("/:id", h.Photo.Delete)

	return app
}
