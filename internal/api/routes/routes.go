package routes

import (
	"fmt"

	"bookclub-backend/internal/api/handlers"
	"bookclub-backend/internal/api/middleware"
	"bookclub-backend/internal/config"
	"bookclub-backend/internal/logger"
	"bookclub-backend/internal/repository"
	"bookclub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. The default club
// is resolved (and created if absent) here, once, so request handling never
// re-derives it.
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	clubRepo := repository.NewClubRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	bookRepo := repository.NewBookRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)

	// Bootstrap the single-tenant club before wiring services
	clubService := service.NewClubService(clubRepo)
	club, err := clubService.EnsureDefault(cfg.ClubName, cfg.ClubDescription)
	if err != nil {
		return nil, fmt.Errorf("club bootstrap: %w", err)
	}
	logger.New().WithField("club", club.Name).Info("club resolved")

	// Initialize services
	memberService := service.NewMemberService(memberRepo, meetingRepo, club.ID, validator)
	bookService := service.NewBookService(bookRepo, club.ID, validator)
	meetingService := service.NewMeetingService(meetingRepo, club.ID, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	memberHandler := handlers.NewMemberHandler(memberService)
	bookHandler := handlers.NewBookHandler(bookService)
	meetingHandler := handlers.NewMeetingHandler(meetingService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Member routes
	members := router.Group("/members")
	{
		members.GET("", memberHandler.ListMembers)
		members.POST("", memberHandler.CreateMember)
		members.GET("/:id", memberHandler.GetMember)
		members.PUT("/:id", memberHandler.UpdateMember)
		members.DELETE("/:id", memberHandler.DeleteMember)
	}

	// Book routes
	books := router.Group("/books")
	{
		books.GET("", bookHandler.ListBooks)
		books.POST("", bookHandler.CreateBook)
		books.GET("/:id", bookHandler.GetBook)
		books.PUT("/:id", bookHandler.UpdateBook)
		books.DELETE("/:id", bookHandler.DeleteBook)
	}

	// Meeting routes
	meetings := router.Group("/meetings")
	{
		meetings.GET("", meetingHandler.ListMeetings)
		meetings.POST("", meetingHandler.CreateMeeting)
		meetings.GET("/:id", meetingHandler.GetMeeting)
		meetings.PUT("/:id", meetingHandler.UpdateMeeting)
		meetings.DELETE("/:id", meetingHandler.DeleteMeeting)
	}

	return router, nil
}
