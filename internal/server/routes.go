package server

import (
	"time"

	"github.com/buckery/backend/internal/auth"
	"github.com/buckery/backend/internal/catalog"
	"github.com/buckery/backend/internal/content"
	"github.com/buckery/backend/internal/payment"
	"github.com/buckery/backend/internal/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS, PATCH",
	}))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Buckery API is running",
		})
	})

	// ==========================================
	// AUTH
	// ==========================================
	authGroup := app.Group("/auth")
	authGroup.Post("/user-register", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
	}), auth.RegisterHandler)
	authGroup.Post("/user-login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 15 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}), auth.UserLoginHandler)
	authGroup.Post("/admin-login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 15 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}), auth.AdminLoginHandler)
	authGroup.Get("/google/login", auth.GoogleLogin)
	authGroup.Get("/google/callback", auth.GoogleCallback)
	authGroup.Post("/logout", auth.LogoutHandler)

	// Staff management (admin only)
	staffGroup := authGroup.Group("/staff")
	staffGroup.Use(auth.TokenProtected())
	staffGroup.Use(auth.AdminProtected())
	staffGroup.Post("/create", user.CreateStaffHandler)
	staffGroup.Get("/list", user.ListStaffHandler)
	staffGroup.Put("/update/:id", user.UpdateStaffHandler)

	// ==========================================
	// PROFILE
	// ==========================================
	profileGroup := app.Group("/user/profile")
	profileGroup.Use(auth.TokenProtected())
	profileGroup.Get("/", user.GetProfileHandler)
	profileGroup.Put("/", user.UpdateProfileHandler)

	// ==========================================
	// CATALOG
	// ==========================================
	categoryGroup := app.Group("/categories")
	categoryGroup.Get("/", auth.TokenOptional(), catalog.ListCategoriesHandler)
	categoryGroup.Get("/:id", auth.TokenOptional(), catalog.GetCategoryHandler)
	categoryGroup.Post("/", auth.TokenProtected(), auth.AdminProtected(), catalog.CreateCategoryHandler)
	categoryGroup.Put("/:id", auth.TokenProtected(), auth.AdminProtected(), catalog.UpdateCategoryHandler)
	categoryGroup.Delete("/:id", auth.TokenProtected(), auth.AdminProtected(), catalog.DeleteCategoryHandler)

	productGroup := app.Group("/products")
	productGroup.Get("/", auth.TokenOptional(), catalog.ListProductsHandler)
	productGroup.Get("/:id", auth.TokenOptional(), catalog.GetProductHandler)
	productGroup.Post("/", auth.TokenProtected(), auth.AdminProtected(), catalog.CreateProductHandler)
	productGroup.Put("/:id", auth.TokenProtected(), auth.AdminProtected(), catalog.UpdateProductHandler)
	productGroup.Delete("/:id", auth.TokenProtected(), auth.AdminProtected(), catalog.DeleteProductHandler)

	// ==========================================
	// SITE CONTENT
	// ==========================================
	heroGroup := app.Group("/hero-images")
	heroGroup.Get("/", auth.TokenOptional(), content.ListHeroImagesHandler)
	heroGroup.Post("/", auth.TokenProtected(), auth.AdminProtected(), content.CreateHeroImageHandler)
	heroGroup.Put("/:id", auth.TokenProtected(), auth.AdminProtected(), content.UpdateHeroImageHandler)
	heroGroup.Delete("/:id", auth.TokenProtected(), auth.AdminProtected(), content.DeleteHeroImageHandler)

	timelineGroup := app.Group("/timeline-events")
	timelineGroup.Get("/", content.ListTimelineEventsHandler)
	timelineGroup.Post("/", auth.TokenProtected(), auth.AdminProtected(), content.CreateTimelineEventHandler)
	timelineGroup.Put("/:id", auth.TokenProtected(), auth.AdminProtected(), content.UpdateTimelineEventHandler)
	timelineGroup.Delete("/:id", auth.TokenProtected(), auth.AdminProtected(), content.DeleteTimelineEventHandler)

	teamGroup := app.Group("/team-members")
	teamGroup.Get("/", content.ListTeamMembersHandler)
	teamGroup.Post("/", auth.TokenProtected(), auth.AdminProtected(), content.CreateTeamMemberHandler)
	teamGroup.Put("/:id", auth.TokenProtected(), auth.AdminProtected(), content.UpdateTeamMemberHandler)
	teamGroup.Delete("/:id", auth.TokenProtected(), auth.AdminProtected(), content.DeleteTeamMemberHandler)

	testimonialGroup := app.Group("/testimonials")
	testimonialGroup.Get("/", auth.TokenOptional(), content.ListTestimonialsHandler)
	testimonialGroup.Post("/", auth.TokenProtected(), auth.AdminProtected(), content.CreateTestimonialHandler)
	testimonialGroup.Put("/:id", auth.TokenProtected(), auth.AdminProtected(), content.UpdateTestimonialHandler)
	testimonialGroup.Delete("/:id", auth.TokenProtected(), auth.AdminProtected(), content.DeleteTestimonialHandler)

	contactGroup := app.Group("/contact-info")
	contactGroup.Get("/", content.ListContactInfoHandler)
	contactGroup.Post("/", auth.TokenProtected(), auth.AdminProtected(), content.UpsertContactInfoHandler)
	contactGroup.Put("/", auth.TokenProtected(), auth.AdminProtected(), content.UpsertContactInfoHandler)

	// ==========================================
	// PAYMENTS
	// ==========================================
	paymentGroup := app.Group("/payments")
	paymentGroup.Use(auth.TokenProtected())
	paymentGroup.Post("/", payment.CreatePaymentHandler)
	paymentGroup.Get("/", payment.ListPaymentsHandler)
	paymentGroup.Get("/stats", auth.StaffProtected(), payment.PaymentStatsHandler)
	paymentGroup.Get("/:id", payment.GetPaymentHandler)
	paymentGroup.Put("/:id", payment.UpdatePaymentHandler)
	paymentGroup.Delete("/:id", auth.AdminProtected(), payment.DeletePaymentHandler)
	paymentGroup.Post("/:id/confirm", auth.StaffProtected(), payment.ConfirmPaymentHandler)
	paymentGroup.Post("/:id/reject", auth.StaffProtected(), payment.RejectPaymentHandler)
}
