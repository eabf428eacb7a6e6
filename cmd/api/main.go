package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/i-am-Shekinah/eventify/internal/handlers"
	"github.com/i-am-Shekinah/eventify/internal/repository"
	"github.com/i-am-Shekinah/eventify/internal/service"
	"github.com/i-am-Shekinah/eventify/pkg/auth"
	"github.com/i-am-Shekinah/eventify/pkg/config"
	"github.com/i-am-Shekinah/eventify/pkg/db"
	"github.com/i-am-Shekinah/eventify/pkg/obs"
)

func main() {
	_ = godotenv.Load()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.OTLPEndpoint != "" {
		shutdown := obs.InitTracer("eventify", cfg.OTLPEndpoint, cfg.Env)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(ctx)
		}()
	}

	gdb, err := db.Open(cfg.PGDSN)
	if err != nil {
		log.Fatal(err)
	}

	users := repository.NewUserRepo(gdb)
	events := repository.NewEventRepo(gdb)
	parts := repository.NewParticipantRepo(gdb)
	for _, m := range []interface{ Migrate() error }{users, events, parts} {
		if err := m.Migrate(); err != nil {
			log.Fatal(err)
		}
	}

	tokens := auth.NewManager(cfg.JWTSecret, time.Duration(cfg.JWTExpireMin)*time.Minute)

	ah := handlers.NewAuthHandler(service.NewAuthSvc(users, tokens))
	eh := handlers.NewEventHandler(service.NewEventSvc(events))
	ph := handlers.NewParticipantHandler(service.NewParticipantSvc(parts, events))

	r := handlers.NewRouter(tokens, users, ah, eh, ph)
	log.Println("eventify api on", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
