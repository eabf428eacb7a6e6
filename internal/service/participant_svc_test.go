package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/i-am-Shekinah/eventify/internal/domain"
)

func TestIngestCSVDedupeWithinFile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice@example.com")
	ev := env.eventFor(t, alice.ID, "Launch Party", time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC))

	csv := strings.NewReader(
		"firstname,lastname,email,phone,status\n" +
			"Ada,Lovelace,ada@example.com,555-0100,ACCEPTED\n" +
			"Ada,Again,ADA@Example.com,,\n")

	res, err := env.participant.IngestCSV(ctx, alice.ID, ev.ID, csv)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if res.AddedCount != 1 || res.SkippedCount != 1 {
		t.Fatalf("added=%d skipped=%d, want 1/1", res.AddedCount, res.SkippedCount)
	}
	if len(res.SkippedEmails) != 1 || res.SkippedEmails[0] != "ada@example.com" {
		t.Fatalf("skipped emails = %v, want lower-cased ada@example.com", res.SkippedEmails)
	}
	if got := res.Added[0]; got.Email != "ada@example.com" || got.InvitationStatus != domain.InvitationAccepted {
		t.Fatalf("added participant = %+v", got)
	}
}

func TestIngestCSVSkipsExistingRoster(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice@example.com")
	ev := env.eventFor(t, alice.ID, "Launch Party", time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC))

	first := strings.NewReader(
		"firstname,lastname,email\n" +
			"Grace,Hopper,grace@example.com\n")
	if _, err := env.participant.IngestCSV(ctx, alice.ID, ev.ID, first); err != nil {
		t.Fatalf("seed ingest: %v", err)
	}

	second := strings.NewReader(
		"firstname,lastname,email,phone,status\n" +
			"Grace,Renamed,GRACE@example.com,555-9999,DECLINED\n" +
			"Alan,Turing,alan@example.com,,\n")
	res, err := env.participant.IngestCSV(ctx, alice.ID, ev.ID, second)
	if err != nil {
		t.Fatalf("second ingest: %v", err)
	}
	if res.AddedCount != 1 || res.SkippedCount != 1 {
		t.Fatalf("added=%d skipped=%d, want 1/1", res.AddedCount, res.SkippedCount)
	}

	// the pre-existing row is untouched
	roster, total, err := env.participant.List(ctx, alice.ID, ev.ID, 0, 20)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 {
		t.Fatalf("roster size = %d, want 2", total)
	}
	for _, p := range roster {
		if p.Email == "grace@example.com" {
			if p.Lastname != "Hopper" || p.InvitationStatus != domain.InvitationPending {
				t.Fatalf("existing participant was altered: %+v", p)
			}
		}
	}
}

func TestIngestCSVStatusFallback(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice@example.com")
	ev := env.eventFor(t, alice.ID, "Launch Party", time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC))

	csv := strings.NewReader(
		"firstname,lastname,email,phone,status\n" +
			"A,One,one@example.com,,accepted\n" +
			"B,Two,two@example.com,,MAYBE\n" +
			"C,Three,three@example.com\n")
	res, err := env.participant.IngestCSV(ctx, alice.ID, ev.ID, csv)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	want := map[string]domain.InvitationStatus{
		"one@example.com":   domain.InvitationAccepted,
		"two@example.com":   domain.InvitationPending, // unknown token falls back
		"three@example.com": domain.InvitationPending, // column absent
	}
	if res.AddedCount != len(want) {
		t.Fatalf("added = %d, want %d", res.AddedCount, len(want))
	}
	for _, p := range res.Added {
		if p.InvitationStatus != want[p.Email] {
			t.Fatalf("%s status = %s, want %s", p.Email, p.InvitationStatus, want[p.Email])
		}
	}
}

func TestIngestCSVMalformedRowAbortsButKeepsPriorRows(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice@example.com")
	ev := env.eventFor(t, alice.ID, "Launch Party", time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC))

	csv := strings.NewReader(
		"firstname,lastname,email\n" +
			"Ada,Lovelace,ada@example.com\n" +
			"broken-row\n" +
			"Alan,Turing,alan@example.com\n")
	_, err := env.participant.IngestCSV(ctx, alice.ID, ev.ID, csv)
	var cfe *CSVFormatError
	if !errors.As(err, &cfe) {
		t.Fatalf("got %v, want CSVFormatError", err)
	}
	if cfe.Line != 3 {
		t.Fatalf("error line = %d, want 3", cfe.Line)
	}

	// the row before the malformed one stays persisted
	roster, total, err := env.participant.List(ctx, alice.ID, ev.ID, 0, 20)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || roster[0].Email != "ada@example.com" {
		t.Fatalf("roster after abort = %v (total %d)", roster, total)
	}
}

func TestIngestCSVAuthorization(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice@example.com")
	bob := env.user(t, "bob@example.com")
	ev := env.eventFor(t, alice.ID, "Launch Party", time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC))

	csv := "firstname,lastname,email\nAda,Lovelace,ada@example.com\n"

	if _, err := env.participant.IngestCSV(ctx, bob.ID, ev.ID, strings.NewReader(csv)); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("foreign owner: got %v, want ErrAccessDenied", err)
	}
	if _, err := env.participant.IngestCSV(ctx, alice.ID, "missing-id", strings.NewReader(csv)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing event: got %v, want ErrNotFound", err)
	}
}

func TestParticipantListAuthorization(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice@example.com")
	bob := env.user(t, "bob@example.com")
	ev := env.eventFor(t, alice.ID, "Launch Party", time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC))

	if _, _, err := env.participant.List(ctx, bob.ID, ev.ID, 0, 20); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("foreign list: got %v, want ErrAccessDenied", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice@example.com")
	ev := env.eventFor(t, alice.ID, "Launch Party", time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC))
	other := env.eventFor(t, alice.ID, "Team Sync", time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC))

	res, err := env.participant.IngestCSV(ctx, alice.ID, ev.ID, strings.NewReader(
		"firstname,lastname,email\nAda,Lovelace,ada@example.com\n"))
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	pid := res.Added[0].ID

	p, err := env.participant.UpdateStatus(ctx, alice.ID, ev.ID, pid, domain.InvitationDeclined)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if p.InvitationStatus != domain.InvitationDeclined {
		t.Fatalf("status = %s, want DECLINED", p.InvitationStatus)
	}

	// participant does not belong to that event
	if _, err := env.participant.UpdateStatus(ctx, alice.ID, other.ID, pid, domain.InvitationAccepted); !errors.Is(err, ErrNotFound) {
		t.Fatalf("wrong event: got %v, want ErrNotFound", err)
	}
}
