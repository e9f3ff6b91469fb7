package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/communiverse/community-api/internal/config"
	"github.com/communiverse/community-api/internal/database"
	"github.com/communiverse/community-api/internal/handlers"
	"github.com/communiverse/community-api/internal/middleware"
	"github.com/communiverse/community-api/internal/repository"
	"github.com/communiverse/community-api/internal/services"
	"github.com/communiverse/community-api/internal/token"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	communityRepo := repository.NewCommunityRepository(db)
	memberRepo := repository.NewMemberRepository(db)

	// Services
	tokens := token.NewManager(cfg.TokenSecret, cfg.TokenTTL)
	authService := services.NewAuthService(userRepo)
	roleService := services.NewRoleService(roleRepo)
	communityService := services.NewCommunityService(communityRepo, memberRepo, userRepo)
	authorizer := services.NewAuthorizer(memberRepo, cfg.ModifyRoles)
	memberService := services.NewMemberService(memberRepo, userRepo, communityRepo, roleRepo, authorizer)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, tokens)
	roleHandler := handlers.NewRoleHandler(roleService)
	communityHandler := handlers.NewCommunityHandler(communityService, memberService)
	memberHandler := handlers.NewMemberHandler(memberService)

	requireAuth := middleware.RequireAuth(tokens, userRepo)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Community Platform API is running",
		})
	})

	// API routes
	v1 := r.Group("/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/signin", authHandler.Signin)
			auth.GET("/me", requireAuth, authHandler.GetCurrentUser)
		}

		role := v1.Group("/role")
		role.Use(requireAuth)
		{
			role.POST("", roleHandler.CreateRole)
			role.GET("", roleHandler.ListRoles)
		}

		community := v1.Group("/community")
		{
			community.GET("", communityHandler.ListCommunities)
			community.POST("", requireAuth, communityHandler.CreateCommunity)
			community.GET("/:id/members", communityHandler.ListMembers)
			community.GET("/me/owner", requireAuth, communityHandler.ListOwnedCommunities)
			community.GET("/me/member", requireAuth, communityHandler.ListJoinedCommunities)
		}

		member := v1.Group("/member")
		member.Use(requireAuth)
		{
			member.POST("", memberHandler.AddMember)
			member.DELETE("/:id", memberHandler.RemoveMember)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
