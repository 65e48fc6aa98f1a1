package main

import (
	"flag"
	"log"
	"strings"

	"seedgen/internal/database"
	"seedgen/internal/models"
	"seedgen/internal/repositories"
	"seedgen/internal/services"
	"seedgen/pkg/utils"
)

func main() {
	concepts := flag.String("concepts", "cafesserie,tapas", "comma-separated concepts to seed")
	dataDir := flag.String("data", "", "data directory (defaults to DATA_DIR env or ./data)")
	flag.Parse()

	utils.LoadDotenv()
	utils.InitLogger()

	dir := *dataDir
	if dir == "" {
		dir = utils.Getenv("DATA_DIR", "data")
	}

	dbHost := utils.Getenv("DB_HOST", "localhost")
	dbPort := utils.Getenv("DB_PORT", "5432")
	dbUser := utils.Getenv("DB_USER", "seedgen_user")
	dbPassword := utils.Getenv("DB_PASSWORD", "seedgen_password")
	dbName := utils.Getenv("DB_NAME", "seedgen_db")
	dbSSLMode := utils.Getenv("DB_SSLMODE", "disable")
	dbSchemaPath := utils.Getenv("DB_SCHEMA_PATH", "db/schema.sql")

	db, err := database.InitDB(dbHost, dbPort, dbUser, dbPassword, dbName, dbSSLMode)
	if err != nil {
		log.Fatalf("Database init failed: %v", err)
	}
	defer db.Close()

	if err := database.ApplySchema(db, dbSchemaPath); err != nil {
		log.Fatalf("Schema apply failed: %v", err)
	}

	catalogRepo := repositories.NewCatalogRepository(dir)
	seeder := services.NewSeedService(catalogRepo, repositories.NewSeedRepository(), db)

	for _, name := range strings.Split(*concepts, ",") {
		concept, err := models.ParseConcept(strings.TrimSpace(name))
		if err != nil {
			log.Fatalf("Invalid concept: %v", err)
		}

		summary, err := seeder.SeedConcept(concept)
		if err != nil {
			utils.LogError(err, "Seeding failed")
			log.Fatalf("Seeding failed for %s: %v", concept, err)
		}

		utils.LogInfo("Seeding complete", map[string]interface{}{
			"concept": string(concept),
			"batchId": summary.BatchID,
		})
	}
}
