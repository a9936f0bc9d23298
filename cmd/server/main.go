// cmd/server/main.go
package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Parthjain001/dashboard-ai/internal/config"
	"github.com/Parthjain001/dashboard-ai/internal/graph"
	"github.com/Parthjain001/dashboard-ai/internal/service"
	"github.com/Parthjain001/dashboard-ai/internal/shopify"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on OS environment variables")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	client := shopify.NewClient(cfg.ShopifyURL, cfg.ShopifyToken, cfg.UpstreamTimeout, logger)

	resolver := &graph.Resolver{
		Customers: &service.CustomerService{Shopify: client, Logger: logger},
		Orders:    &service.OrderService{Shopify: client, Logger: logger},
		Logger:    logger,
	}

	schema := graphql.MustParseSchema(graph.Schema, resolver, graphql.UseFieldResolvers())

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Handle("/graphql", &relay.Handler{Schema: schema})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})

	logger.Info("🚀 server running", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
