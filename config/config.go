package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/pollamundial/backend/tournament"
)

// Config holds every runtime parameter of the application.
type Config struct {
	DatabaseURL  string
	JWTSecretKey string
	ServerPort   int

	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string

	// Points are the scoring weights the engine reads. Overridable per
	// tournament edition without code changes.
	Points tournament.Points

	// PredictionsCloseAt is the deadline after which group-phase predictions
	// are locked and the community view opens.
	PredictionsCloseAt time.Time

	// RecalcInterval drives the background rescoring scheduler.
	RecalcInterval time.Duration
}

// Load reads configuration from the environment, optionally picking up a
// .env file for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	jwtKey := os.Getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	port, err := intEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	pts := tournament.DefaultPoints()
	if pts.ExactMatch, err = intEnv("POINTS_EXACT_MATCH", pts.ExactMatch); err != nil {
		return nil, err
	}
	if pts.CorrectWinner, err = intEnv("POINTS_CORRECT_WINNER", pts.CorrectWinner); err != nil {
		return nil, err
	}
	if pts.TeamAdvanced, err = intEnv("POINTS_TEAM_ADVANCED", pts.TeamAdvanced); err != nil {
		return nil, err
	}

	closeAt := time.Time{}
	if raw := os.Getenv("PREDICTIONS_CLOSE_AT"); raw != "" {
		closeAt, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid PREDICTIONS_CLOSE_AT (want RFC3339): %w", err)
		}
	}

	recalcInterval := 5 * time.Minute
	if raw := os.Getenv("RECALC_INTERVAL"); raw != "" {
		recalcInterval, err = time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid RECALC_INTERVAL: %w", err)
		}
	}

	cfg := &Config{
		DatabaseURL:        dbURL,
		JWTSecretKey:       jwtKey,
		ServerPort:         port,
		R2AccountID:        os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:      os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey:  os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:       os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:    os.Getenv("R2_PUBLIC_BASE_URL"),
		Points:             pts,
		PredictionsCloseAt: closeAt,
		RecalcInterval:     recalcInterval,
	}

	return cfg, nil
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return v, nil
}
