package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/i-am-Shekinah/eventify/internal/domain"
	"github.com/i-am-Shekinah/eventify/internal/repository"
)

// EventInput carries the four mutable event fields. Replace writes all of
// them unconditionally, so a field the client omitted clears its
// destination; Patch is the non-destructive path.
type EventInput struct {
	Title       string
	Description string
	Location    string
	Date        time.Time
}

// EventPatch fields overwrite only when non-nil.
type EventPatch struct {
	Title       *string
	Description *string
	Location    *string
	Date        *time.Time
}

type EventSvc struct{ repo *repository.EventRepo }

func NewEventSvc(repo *repository.EventRepo) *EventSvc {
	return &EventSvc{repo: repo}
}

func (s *EventSvc) Create(ctx context.Context, ownerID string, in EventInput) (*domain.Event, error) {
	e := &domain.Event{
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Date:        in.Date,
		OwnerID:     ownerID,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EventSvc) Get(ctx context.Context, ownerID, id string) (*domain.Event, error) {
	e, err := s.repo.ByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return e, nil
}

func (s *EventSvc) List(ctx context.Context, ownerID string, page, size int32) ([]domain.Event, int64, error) {
	return s.repo.ListByOwner(ctx, ownerID, page, size)
}

func (s *EventSvc) Replace(ctx context.Context, ownerID, id string, in EventInput) (*domain.Event, error) {
	e, err := s.repo.ByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	e.Title = in.Title
	e.Description = in.Description
	e.Location = in.Location
	e.Date = in.Date
	if err := s.repo.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EventSvc) Patch(ctx context.Context, ownerID, id string, in EventPatch) (*domain.Event, error) {
	e, err := s.repo.ByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if in.Title != nil {
		e.Title = *in.Title
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.Location != nil {
		e.Location = *in.Location
	}
	if in.Date != nil {
		e.Date = *in.Date
	}
	if err := s.repo.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EventSvc) Delete(ctx context.Context, ownerID, id string) error {
	return mapNotFound(s.repo.Delete(ctx, id, ownerID))
}

func (s *EventSvc) Search(ctx context.Context, ownerID string, f repository.EventFilter, page, size int32, dateDesc bool) ([]domain.Event, int64, error) {
	return s.repo.Search(ctx, ownerID, f, page, size, dateDesc)
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
