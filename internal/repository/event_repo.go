package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/i-am-Shekinah/eventify/internal/domain"
)

// EventFilter predicates compose conjunctively; zero-valued fields impose
// no constraint. Text matches are case-insensitive substring containment,
// date bounds are inclusive.
type EventFilter struct {
	Title       string
	Description string
	Location    string
	From        *time.Time
	To          *time.Time
}

type EventRepo struct{ db *gorm.DB }

func NewEventRepo(db *gorm.DB) *EventRepo {
	return &EventRepo{db: db}
}

func (r *EventRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Event{})
}

func (r *EventRepo) Create(ctx context.Context, e *domain.Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(e).Error
}

// ByID looks an event up without owner scoping. Callers that need the
// not-found-vs-foreign-owner distinction (participant ingestion) use this
// and compare OwnerID themselves.
func (r *EventRepo) ByID(ctx context.Context, id string) (*domain.Event, error) {
	var e domain.Event
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepo) ByIDAndOwner(ctx context.Context, id, ownerID string) (*domain.Event, error) {
	var e domain.Event
	if err := r.db.WithContext(ctx).First(&e, "id = ? AND owner_id = ?", id, ownerID).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepo) Save(ctx context.Context, e *domain.Event) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *EventRepo) Delete(ctx context.Context, id, ownerID string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Event{}, "id = ? AND owner_id = ?", id, ownerID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *EventRepo) ListByOwner(ctx context.Context, ownerID string, page, size int32) ([]domain.Event, int64, error) {
	return r.Search(ctx, ownerID, EventFilter{}, page, size, false)
}

func (r *EventRepo) Search(ctx context.Context, ownerID string, f EventFilter, page, size int32, dateDesc bool) ([]domain.Event, int64, error) {
	if size <= 0 {
		size = 20
	}
	if page < 0 {
		page = 0
	}
	qb := r.db.WithContext(ctx).Model(&domain.Event{}).Where("owner_id = ?", ownerID)
	if f.Title != "" {
		qb = qb.Where("LOWER(title) LIKE ?", contains(f.Title))
	}
	if f.Description != "" {
		qb = qb.Where("LOWER(description) LIKE ?", contains(f.Description))
	}
	if f.Location != "" {
		qb = qb.Where("LOWER(location) LIKE ?", contains(f.Location))
	}
	if f.From != nil {
		qb = qb.Where("date >= ?", *f.From)
	}
	if f.To != nil {
		qb = qb.Where("date <= ?", *f.To)
	}
	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	order := "date ASC"
	if dateDesc {
		order = "date DESC"
	}
	var out []domain.Event
	if err := qb.Order(order).Limit(int(size)).Offset(int(page * size)).Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func contains(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
