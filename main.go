package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"courtside/config"
	pgconfig "courtside/config/postgres"
	_ "courtside/config/swagger"
	"courtside/middleware"
	"courtside/models"
	"courtside/routes"
	"courtside/services/games"
	"courtside/services/geo"
	"courtside/services/redis"
	"courtside/services/socket_io"
	socketio_types "courtside/services/socket_io/types"
	"courtside/services/state"
)

// @title Courtside API
// @version 1.0
// @description Gin-Gonic server for the Courtside pickup games API
// @BasePath /
func main() {
	godotenv.Load()
	log.Println("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	gormDB, err := pgconfig.ConnectGORM()
	if err != nil {
		log.Fatalf("Error connecting to PostgreSQL: %v", err)
	}
	log.Println("GORM Connected")

	// Only migrate in development or during deployment
	if os.Getenv("MIGRATE_POSTGRES") == "true" {
		log.Println("Migrating PostgreSQL database...")
		if err := pgconfig.MigrateDatabase(gormDB); err != nil {
			log.Printf("Warning: Database migration failed: %v", err)
			// Continue execution even if migration fails
		} else {
			log.Println("Database migrated successfully")
		}
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("Error reading GORM PostgreSQL instance: %v", err)
	}
	defer sqlDB.Close()

	redisClient, err := config.Connect_redis()
	if err != nil {
		log.Fatalf("Error connecting to Redis: %v", err)
	}
	log.Println("Connection to Redis successful")
	defer redis.CloseRedis(redisClient)

	// Volatile session state: one current user, the game collection
	appState := state.NewAppState(seedUser())
	defer redisClient.DeletePlayerPresence(appState.CurrentUser().ID)
	if os.Getenv("SEED_DEMO_DATA") == "true" {
		seedDemoGames(appState)
	}

	geoService := geo.NewService(geo.NewGenerator(time.Now().UnixNano()))

	r := gin.Default()

	middleware.SetUpMiddleware(r)

	sio := socketio_types.NewSocketServer()
	(*socket_io.MySocketServer)(sio).Start(r, gormDB, redisClient, appState)

	routes.SetupRoutes(r, gormDB, redisClient, appState, geoService, sio)

	// Configure port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}

func seedUser() *models.User {
	return &models.User{
		ID:           "jordan",
		FirstName:    "Jordan",
		LastInitial:  "M",
		Skill:        models.SkillIntermediate,
		Availability: models.AvailabilityWeeknights,
		Sports:       []models.Sport{models.SportBasketball, models.SportPickleball},
		Bio:          "Always up for a run after work.",
	}
}

// seedDemoGames fills the feed with a handful of games so the app has
// something to show before anyone hosts
func seedDemoGames(appState *state.AppState) {
	engine := games.NewEngine(appState)
	tonight := time.Now().Truncate(time.Hour).Add(3 * time.Hour)

	seeds := []games.Request{
		{Title: "Sunset 3v3", Sport: models.SportBasketball, StartsAt: tonight,
			Location: "Riverside Courts", Skill: models.SkillCasual, PlayerCap: 6, OnCampus: true},
		{Title: "Weeknight Soccer", Sport: models.SportSoccer, StartsAt: tonight.AddDate(0, 0, 1),
			Location: "Harbor Fields", Skill: models.SkillIntermediate, PlayerCap: 10, Recurrence: 2},
		{Title: "Pickleball Open Play", Sport: models.SportPickleball, StartsAt: tonight.AddDate(0, 0, 2),
			Location: "Cedar Lane Courts", Skill: models.SkillAll, PlayerCap: 4},
	}
	for _, req := range seeds {
		if _, err := engine.CreateGame(req); err != nil {
			log.Printf("Warning: demo seed failed: %v", err)
		}
	}
}
