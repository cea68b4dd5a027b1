package main

import (
	"log"
	"os"

	"github.com/MGaul6/SkillExchange/internal/database"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dbUrl := os.Getenv("DB_URL")
	if dbUrl == "" {
		log.Fatal("DB_URL environment variable is required")
	}

	direction := database.MigrateUp
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	if err := database.Migrate(dbUrl, direction); err != nil {
		log.Fatal(err)
	}
}
