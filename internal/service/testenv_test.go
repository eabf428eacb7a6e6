package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/i-am-Shekinah/eventify/internal/domain"
	"github.com/i-am-Shekinah/eventify/internal/repository"
	"github.com/i-am-Shekinah/eventify/pkg/auth"
)

type testEnv struct {
	users  *repository.UserRepo
	events *repository.EventRepo
	parts  *repository.ParticipantRepo

	auth        *AuthSvc
	event       *EventSvc
	participant *ParticipantSvc
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "eventify.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	env := &testEnv{
		users:  repository.NewUserRepo(gdb),
		events: repository.NewEventRepo(gdb),
		parts:  repository.NewParticipantRepo(gdb),
	}
	for _, m := range []interface{ Migrate() error }{env.users, env.events, env.parts} {
		if err := m.Migrate(); err != nil {
			t.Fatalf("migrate: %v", err)
		}
	}

	env.auth = NewAuthSvc(env.users, auth.NewManager("test-secret", time.Hour))
	env.event = NewEventSvc(env.events)
	env.participant = NewParticipantSvc(env.parts, env.events)
	return env
}

func (e *testEnv) user(t *testing.T, email string) *domain.User {
	t.Helper()
	u, err := e.auth.Signup(context.Background(), "Test", "User", email, "hunter2")
	if err != nil {
		t.Fatalf("signup %s: %v", email, err)
	}
	return u
}

func (e *testEnv) eventFor(t *testing.T, ownerID, title string, date time.Time) *domain.Event {
	t.Helper()
	ev, err := e.event.Create(context.Background(), ownerID, EventInput{
		Title:    title,
		Location: "HQ",
		Date:     date,
	})
	if err != nil {
		t.Fatalf("create event %q: %v", title, err)
	}
	return ev
}
