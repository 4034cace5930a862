package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"courtside/controllers"
	"courtside/middleware"
	"courtside/services/feed"
	"courtside/services/games"
	"courtside/services/geo"
	"courtside/services/redis"
	"courtside/services/roster"
	socketio_types "courtside/services/socket_io/types"
	"courtside/services/state"
	"courtside/services/sync"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisClient *redis.RedisClient,
	appState *state.AppState, geoService *geo.Service, sio *socketio_types.SocketServer) {

	// Engines over the shared application state
	rosterEngine := roster.NewEngine(appState)
	feedEngine := feed.NewEngine(appState, nil)
	gamesEngine := games.NewEngine(appState)
	syncManager := sync.NewSyncManager(appState, db)

	// Stats run on raw SQL against the profiles table
	var statsController *controllers.StatsController
	if db != nil {
		sqlDB, err := db.DB()
		if err != nil {
			log.Printf("Error reading SQL instance for stats: %v", err)
		} else {
			statsController = &controllers.StatsController{DB: sqlDB, RedisClient: redisClient}
		}
	}

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes group
	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	api.POST("/login", controllers.Login(db))

	api.POST("/signup", controllers.SignUp(db))

	api.POST("/sendVerificationCode", controllers.SendVerificationCode(redisClient))

	api.POST("/verifyCode", controllers.VerifyCode(db, redisClient))

	api.GET("/oauth/google", controllers.GoogleLogin())

	api.GET("/oauth/google/callback", controllers.GoogleCallback(db))

	if statsController != nil {
		api.GET("/players/:username/stats", statsController.GetPlayerStats)
	}

	authentication := api.Group("/auth")
	authentication.Use(middleware.AuthRequired)
	{
		authentication.DELETE("/logout", controllers.Logout)

		authentication.GET("/me", controllers.GetProfile(appState))

		authentication.PATCH("/update", controllers.UpdateProfile(appState, syncManager))

		authentication.GET("/games", controllers.ListGames(appState, feedEngine))

		authentication.POST("/games", controllers.CreateGame(gamesEngine))

		authentication.GET("/games/:game_id", controllers.GetGameInfo(appState))

		authentication.POST("/games/:game_id/join", controllers.JoinGame(appState, rosterEngine, sio))

		authentication.POST("/games/:game_id/leave", controllers.LeaveGame(appState, rosterEngine, sio))

		authentication.GET("/nearby", controllers.GetNearby(geoService))
	}
}
