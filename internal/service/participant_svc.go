package service

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/i-am-Shekinah/eventify/internal/domain"
	"github.com/i-am-Shekinah/eventify/internal/repository"
)

var tracer = otel.Tracer("github.com/i-am-Shekinah/eventify/internal/service")

// IngestResult summarizes one roster upload. Skipped rows are the ones
// whose email (lower-cased) was already on the roster or appeared earlier
// in the same file.
type IngestResult struct {
	AddedCount    int                  `json:"addedCount"`
	SkippedCount  int                  `json:"skippedCount"`
	SkippedEmails []string             `json:"skippedEmails"`
	Added         []domain.Participant `json:"addedParticipants"`
}

type ParticipantSvc struct {
	parts  *repository.ParticipantRepo
	events *repository.EventRepo
}

func NewParticipantSvc(parts *repository.ParticipantRepo, events *repository.EventRepo) *ParticipantSvc {
	return &ParticipantSvc{parts: parts, events: events}
}

// ownedEvent distinguishes a missing event from one owned by someone
// else; the participant endpoints keep the two error kinds separate even
// though the HTTP layer maps both to 404.
func (s *ParticipantSvc) ownedEvent(ctx context.Context, callerID, eventID string) (*domain.Event, error) {
	ev, err := s.events.ByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if ev.OwnerID != callerID {
		return nil, ErrAccessDenied
	}
	return ev, nil
}

// IngestCSV parses an uploaded roster and inserts the rows whose email is
// not already registered for the event. The header row is skipped; the
// column contract is firstname, lastname, email, phone, status, with the
// last two optional per row. Inserts are row-at-a-time with no enclosing
// transaction: a malformed row aborts the remaining ones, and rows
// persisted before it stay persisted.
func (s *ParticipantSvc) IngestCSV(ctx context.Context, callerID, eventID string, r io.Reader) (*IngestResult, error) {
	ctx, span := tracer.Start(ctx, "participant.ingest_csv")
	defer span.End()

	ev, err := s.ownedEvent(ctx, callerID, eventID)
	if err != nil {
		return nil, err
	}

	emails, err := s.parts.EmailsByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		seen[strings.ToLower(e)] = struct{}{}
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	res := &IngestResult{SkippedEmails: []string{}, Added: []domain.Participant{}}
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, &CSVFormatError{Line: line, Err: err}
		}
		if line == 1 {
			// header row, contract is positional
			continue
		}
		if len(rec) < 3 {
			return nil, &CSVFormatError{Line: line, Err: errors.New("expected firstname, lastname and email columns")}
		}

		email := strings.ToLower(strings.TrimSpace(rec[2]))
		if _, dup := seen[email]; dup {
			res.SkippedEmails = append(res.SkippedEmails, email)
			continue
		}

		p := &domain.Participant{
			Firstname:        strings.TrimSpace(rec[0]),
			Lastname:         strings.TrimSpace(rec[1]),
			Email:            email,
			PhoneNumber:      field(rec, 3),
			InvitationStatus: domain.NormalizeInvitationStatus(field(rec, 4)),
			EventID:          ev.ID,
		}
		if err := s.parts.Create(ctx, p); err != nil {
			return nil, err
		}
		res.Added = append(res.Added, *p)
		seen[email] = struct{}{}
	}

	res.AddedCount = len(res.Added)
	res.SkippedCount = len(res.SkippedEmails)
	span.SetAttributes(
		attribute.Int("roster.added", res.AddedCount),
		attribute.Int("roster.skipped", res.SkippedCount),
	)
	return res, nil
}

func (s *ParticipantSvc) List(ctx context.Context, callerID, eventID string, page, size int32) ([]domain.Participant, int64, error) {
	if _, err := s.ownedEvent(ctx, callerID, eventID); err != nil {
		return nil, 0, err
	}
	return s.parts.ListByEvent(ctx, eventID, page, size)
}

func (s *ParticipantSvc) UpdateStatus(ctx context.Context, callerID, eventID, participantID string, status domain.InvitationStatus) (*domain.Participant, error) {
	if _, err := s.ownedEvent(ctx, callerID, eventID); err != nil {
		return nil, err
	}
	p, err := s.parts.ByIDAndEvent(ctx, participantID, eventID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	p.InvitationStatus = status
	if err := s.parts.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func field(rec []string, i int) string {
	if i < len(rec) {
		return strings.TrimSpace(rec[i])
	}
	return ""
}
