package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/gamal-store/server/internal/chat"
	"github.com/gamal-store/server/internal/core"
	"github.com/gamal-store/server/internal/gateway"
	"github.com/gamal-store/server/internal/store"
	logx "github.com/gamal-store/server/pkg/logger"
	pkgredis "github.com/gamal-store/server/pkg/redis"
)

// AppConfig defines all configurable parameters for the storefront demo,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"development"`

	// Infrastructure
	Redis pkgredis.Config

	// AI provider
	Gateway gateway.Config

	// Chat session
	Chat struct {
		HistoryTTL string `envconfig:"CHAT_HISTORY_TTL" default:"15m"`
	}
}

func main() {
	fmt.Println("GAMAL storefront demo session...")
	ctx := context.Background()

	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// Load structured config from env
	var envCfg AppConfig
	if err := envconfig.Process("", &envCfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(envCfg.Environment)})

	rdb, err := envCfg.Redis.New()
	if err != nil {
		log.Fatalf("Failed to initialise Redis client: %v", err)
	}
	defer rdb.Close()

	fmt.Println("Connected to Redis successfully")

	ttl, err := time.ParseDuration(envCfg.Chat.HistoryTTL)
	if err != nil {
		log.Fatalf("Invalid CHAT_HISTORY_TTL '%s': %v", envCfg.Chat.HistoryTTL, err)
	}

	gw, err := gateway.New(ctx, envCfg.Gateway)
	if err != nil {
		log.Fatalf("Failed to create AI gateway: %v", err)
	}

	shop, err := store.Open(ctx, rdb)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	// ====================================================
	// Catalog and cart walk-through
	fmt.Printf("\n🛍️  Catalog (%d products, categories: %v)\n", len(shop.Catalog.Products()), shop.Catalog.Categories())
	for _, p := range shop.Catalog.Products() {
		fmt.Printf("  [%s] %s — %.0f EGP (%s)\n", p.SKU, p.Name, p.Price, p.Category)
	}

	products := shop.Catalog.Products()
	shop.Cart.Add(products[0])
	shop.Cart.Add(products[1])
	shop.Cart.Add(products[1])
	fmt.Printf("\n🛒 Cart: %d items, total %.0f EGP\n", shop.Cart.Count(), shop.Cart.Total())

	// ====================================================
	// Admin flow: AI-generated description for a new product
	name, category := "جاكيت جلد أسود", "جواكت"
	shop.AddCategory(ctx, category)
	description := gw.GenerateDescription(ctx, name, category)
	fmt.Printf("\n✨ AI description for %q: %s\n", name, description)

	added, err := shop.AddProduct(ctx, store.Product{
		Name:        name,
		Price:       1450,
		Category:    category,
		Image:       "https://images.unsplash.com/photo-1551028719-00167b16eac5?q=80&w=800&auto=format&fit=crop",
		Description: description,
	})
	if err != nil {
		log.Fatalf("Failed to add product: %v", err)
	}
	fmt.Printf("Added product %s (%s)\n", added.Name, added.SKU)

	// ====================================================
	// Assistant chat session with grounded answers
	session := chat.NewSession(uuid.NewString(), gw, chat.NewRedisHistoryRepository(rdb, ttl), shop.Config().ContactNumber)

	testQueries := []struct {
		description string
		query       string
	}{
		{
			description: "Styling advice",
			query:       "ماذا أرتدي لحفل زفاف صيفي؟",
		},
		{
			description: "Store locations via maps grounding",
			query:       "أين أقرب فرع لمتجر جمال؟",
		},
		{
			description: "Follow-up with thanks",
			query:       "شكراً جزيلاً",
		},
	}

	for i, test := range testQueries {
		fmt.Printf("\n🚀 Turn %d: %s\n", i+1, test.description)
		fmt.Printf("Query: %q\n", test.query)

		msg, err := session.Send(ctx, test.query)
		if err != nil {
			log.Fatalf("Failed to send chat turn %d: %v", i+1, err)
		}

		fmt.Printf("✅ Assistant: %s\n", msg.Text)
		for _, src := range msg.Sources {
			fmt.Printf("   🔗 %s — %s\n", src.Title, src.URI)
		}
		fmt.Println("─────────────────────────────────────────────")

		// slight delay between turns for readability
		time.Sleep(500 * time.Millisecond)
	}

	if audio := session.Narrate(ctx, "أهلاً بك في متجر جمال"); audio != nil {
		fmt.Printf("\n🔊 Narration audio: %d bytes (playback is up to the caller)\n", len(audio))
	}

	fmt.Println("🎉 Demo session completed!")
}
