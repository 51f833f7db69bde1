package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JwtSecret  string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string
	Issuer     string

	// Roles allowed to run bulk allocation updates.
	AllocationEditRoles = []string{"admin", "project_lead"}
	// Roles left out of the daily compliance scan population.
	ComplianceExcludedRoles = []string{"admin"}

	// Upper bound on rows accepted by one bulk allocation call so a
	// single request cannot hold project locks indefinitely.
	BulkUpdateMaxRows int
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "pmhours")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Issuer = getEnv("ISSUER", "pmhours")

	BulkUpdateMaxRows, _ = strconv.Atoi(getEnv("BULK_UPDATE_MAX_ROWS", "200"))
	if BulkUpdateMaxRows <= 0 {
		BulkUpdateMaxRows = 200
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
