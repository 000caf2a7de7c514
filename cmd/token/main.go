// Command token issues a development access token for the save API.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"monthbook/internal/config"
	"monthbook/internal/logger"
	"monthbook/internal/middleware"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Token error: %v", err)
	}
}

func run() error {
	userID := flag.String("user", "", "user id carried in the token (required)")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to JWT_EXPIRES_IN)")
	flag.Parse()

	if *userID == "" {
		flag.Usage()
		return fmt.Errorf("-user is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	lifetime := cfg.JWTExpirationDur
	if *ttl > 0 {
		lifetime = *ttl
	}

	token, err := middleware.GenerateAccessToken(cfg.JWTSecret, *userID, lifetime)
	if err != nil {
		return err
	}
	fmt.Println(token)
	logger.Get().Infof("Issued token for %s, expires %s", *userID, time.Now().Add(lifetime).Format(time.RFC3339))
	return nil
}
