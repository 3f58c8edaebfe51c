// Package server assembles the HTTP service: store client, domain services,
// middleware and routes.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	fb "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/mmogib/classwork-v2/internal/access"
	"github.com/mmogib/classwork-v2/internal/classwork"
	"github.com/mmogib/classwork-v2/internal/config"
	"github.com/mmogib/classwork-v2/internal/content"
	"github.com/mmogib/classwork-v2/internal/gradebook"
	"github.com/mmogib/classwork-v2/internal/server/handlers"
	"github.com/mmogib/classwork-v2/internal/server/middleware"
	"github.com/mmogib/classwork-v2/internal/server/ratelimit"
	"github.com/mmogib/classwork-v2/internal/server/router"
	"github.com/mmogib/classwork-v2/internal/store"
	"github.com/mmogib/classwork-v2/internal/updates"
)

const rateLimitCleanupInterval = 5 * time.Minute

// NewServer builds the HTTP server from configuration.
func NewServer(cfg *config.Config) *http.Server {
	sa := option.WithCredentialsFile(cfg.FirebaseConfig)
	app, err := fb.NewApp(context.Background(), nil, sa)
	if err != nil {
		log.Fatalf("error initializing firebase app: %v\n", err)
	}

	st, err := store.NewFirestore(context.Background(), app)
	if err != nil {
		log.Fatalf("error initializing store client: %v\n", err)
	}

	limiter := ratelimit.NewLimiter(cfg.RateLimit, time.Duration(cfg.RateWindowSeconds)*time.Second)
	limiter.StartCleanup(rateLimitCleanupInterval)

	handler := handlers.New(
		gradebook.NewService(st, cfg.QueryTimeout),
		classwork.NewService(st, cfg.QueryTimeout),
		content.NewService(st, cfg.ContentBase, cfg.ContentCacheTTL, cfg.QueryTimeout),
		updates.NewService(st, cfg.ReleasesBase, cfg.QueryTimeout),
		access.NewService(st, cfg.AccessBase, cfg.QueryTimeout),
	)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router.New(handler, middleware.NewManager(limiter)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
