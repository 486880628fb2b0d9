// Package routes defines the API routing configuration.
// It wires repositories, services and handlers together and applies the
// authentication middleware and role requirements to each route group.
package routes

import (
	"nexo/internal/config"
	"nexo/internal/handlers"
	"nexo/internal/middleware"
	"nexo/internal/models"
	"nexo/internal/repositories"
	"nexo/internal/services/ai"
	"nexo/internal/services/auth"
	"nexo/internal/services/dealvalidation"
	"nexo/internal/services/member"
	"nexo/internal/services/message"
	"nexo/internal/services/valuerequest"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App) {
	// Repositories
	memberRepo := repositories.NewMemberRepository(repositories.DB, repositories.CacheService)
	valueRequestRepo := repositories.NewValueRequestRepository(repositories.DB)
	dealRequestRepo := repositories.NewDealRequestRepository(repositories.DB)
	messageRepo := repositories.NewMessageRepository(repositories.DB)

	// Services
	authService := auth.NewService(memberRepo)
	memberService := member.NewService(memberRepo)
	valueRequestService := valuerequest.NewService(valueRequestRepo, memberRepo)
	dealService := dealvalidation.NewService(dealRequestRepo, memberRepo)
	messageService := message.NewService(messageRepo, memberRepo)

	aiClient := ai.NewClient(
		config.GetEnv("OPENAI_API_KEY", ""),
		config.GetEnv("OPENAI_BASE_URL", ""),
	)
	aiService := ai.NewService(aiClient, memberRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	memberHandler := handlers.NewMemberHandler(memberService)
	adminHandler := handlers.NewAdminHandler(memberService)
	valueRequestHandler := handlers.NewValueRequestHandler(valueRequestService)
	dealHandler := handlers.NewDealHandler(dealService)
	messageHandler := handlers.NewMessageHandler(messageService)
	aiHandler := handlers.NewAIHandler(aiService)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")

	// Public endpoints (no auth required)
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/guest-login", authHandler.GuestLogin)

	authMiddleware := middleware.NewAuthMiddleware(authService)
	protected := api.Use(authMiddleware.Handler)

	// Session management
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Post("/auth/change-password", authHandler.ChangePassword)

	// Guest-accessible showcase routes. Guests see only these; members
	// and admins see them too.
	protected.Get("/members/showcase", middleware.RequireRole(models.RoleGuest), memberHandler.Showcases)
	protected.Get("/members/showcase/:segment", middleware.RequireRole(models.RoleGuest), memberHandler.ShowcasesBySegment)
	protected.Get("/members/segments", middleware.RequireRole(models.RoleGuest), memberHandler.Segments)

	// Member directory
	members := protected.Group("/members", middleware.RequireRole(models.RoleMember))
	members.Get("/", memberHandler.List)
	members.Get("/search", memberHandler.Search)
	members.Get("/:id", memberHandler.Get)
	members.Put("/:id", memberHandler.UpdateProfile)

	// Messaging
	messages := protected.Group("/messages", middleware.RequireRole(models.RoleMember))
	messages.Post("/", messageHandler.Send)
	messages.Get("/unread", messageHandler.UnreadCount)
	messages.Get("/conversation/:member_id", messageHandler.Conversation)
	messages.Put("/:id/read", messageHandler.MarkRead)

	// Value requests. Listing everything is an admin view; members submit
	// and see their own. Details are gated owner-or-admin in the service.
	valueRequests := protected.Group("/value-requests")
	valueRequests.Post("/", middleware.RequireRole(models.RoleMember), valueRequestHandler.Create)
	valueRequests.Get("/", middleware.RequireRole(models.RoleAdmin), valueRequestHandler.ListAll)
	valueRequests.Get("/pending", middleware.RequireRole(models.RoleAdmin), valueRequestHandler.ListPending)
	valueRequests.Get("/my-requests", middleware.RequireRole(models.RoleMember), valueRequestHandler.ListMine)
	valueRequests.Get("/:id", middleware.RequireRole(models.RoleMember), valueRequestHandler.GetDetails)
	valueRequests.Put("/:id/verify", middleware.RequireRole(models.RoleAdmin), valueRequestHandler.Verify)

	// Deal submissions
	deals := protected.Group("/deals", middleware.RequireRole(models.RoleMember))
	deals.Post("/new", dealHandler.SubmitNew)
	deals.Put("/:deal_id/update", dealHandler.SubmitUpdate)

	// AI bio generation
	protected.Post("/ai/description", middleware.RequireRole(models.RoleMember), aiHandler.GenerateDescription)

	// Admin routes
	admin := protected.Group("/admin", middleware.RequireRole(models.RoleAdmin))
	admin.Get("/members", memberHandler.List)
	admin.Post("/members", adminHandler.CreateMember)
	admin.Put("/members/:id", adminHandler.UpdateMember)
	admin.Put("/members/:id/tier", adminHandler.UpdateTier)
	admin.Delete("/members/:id", adminHandler.DeleteMember)

	admin.Get("/deal-requests/pending", dealHandler.ListPending)
	admin.Put("/deal-requests/:id/approve", dealHandler.Approve)
	admin.Put("/deal-requests/:id/reject", dealHandler.Reject)
}
