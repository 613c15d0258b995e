package main

import (
	"context"
	"fmt"
	"log"

	"github.com/johnquangdev/notulensi/internal/adapter/repository"
	"github.com/johnquangdev/notulensi/internal/domain/entities"
	"github.com/johnquangdev/notulensi/internal/infrastructure/cache"
	"github.com/johnquangdev/notulensi/internal/seed"
	"github.com/johnquangdev/notulensi/internal/usecase/auth"
	"github.com/johnquangdev/notulensi/pkg/config"
	pkgjwt "github.com/johnquangdev/notulensi/pkg/jwt"
)

// Logs in one seeded user per role and stores the sessions in Redis, so the
// printed tokens work against an API started with SESSION_BACKEND=redis.
func main() {
	log.Println("🚀 Creating test tokens...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Session.Backend != "redis" {
		log.Fatalf("SESSION_BACKEND must be redis so the API can see these sessions, got %q", cfg.Session.Backend)
	}

	log.Println("📦 Connecting to Redis...")
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	store := cache.NewRedisStore(redisClient)
	defer store.Close()

	data, err := seed.Load(seed.Options{BcryptCost: cfg.Auth.BcryptCost})
	if err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	authService := auth.NewService(
		repository.NewUserRepository(data.Users),
		repository.NewSessionRepository(store),
		pkgjwt.NewManager(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiry),
		cfg.Session.TTL,
		nil,
	)

	testUsers := []struct {
		Email    string
		Password string
	}{
		{Email: "anisa.admin@example.com", Password: "password123"},
		{Email: "budi.notulis@example.com", Password: "password123"},
		{Email: "cahyo@example.com", Password: "password123"},
	}

	ctx := context.Background()
	for i, tu := range testUsers {
		res, err := authService.Login(ctx, tu.Email, tu.Password)
		if err != nil {
			log.Printf("❌ Failed to log in %s: %v", tu.Email, err)
			continue
		}
		printToken(i+1, res.User, res.AccessToken, res.SessionID)
	}

	log.Println("✅ Test tokens created")
	log.Println("💡 Usage: set header Authorization: Bearer <access_token>")
	log.Println("   Token expiry:", cfg.JWT.AccessExpiry)
}

func printToken(n int, user *entities.User, token, sessionID string) {
	fmt.Printf("═══════════════════════════════════════════════════════════════\n")
	fmt.Printf("🟢 User %d: %s\n", n, user.Name)
	fmt.Printf("═══════════════════════════════════════════════════════════════\n")
	fmt.Printf("Email:        %s\n", user.Email)
	fmt.Printf("User ID:      %s\n", user.ID)
	fmt.Printf("Role:         %s\n", user.Role)
	fmt.Printf("Session:      %s\n", sessionID)
	fmt.Printf("\n📋 Access Token:\n%s\n", token)
	fmt.Printf("───────────────────────────────────────────────────────────────\n\n")
}
