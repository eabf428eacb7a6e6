package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/i-am-Shekinah/eventify/internal/domain"
)

type ParticipantRepo struct{ db *gorm.DB }

func NewParticipantRepo(db *gorm.DB) *ParticipantRepo {
	return &ParticipantRepo{db: db}
}

func (r *ParticipantRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Participant{})
}

func (r *ParticipantRepo) Create(ctx context.Context, p *domain.Participant) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ParticipantRepo) Save(ctx context.Context, p *domain.Participant) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ParticipantRepo) ByIDAndEvent(ctx context.Context, id, eventID string) (*domain.Participant, error) {
	var p domain.Participant
	if err := r.db.WithContext(ctx).First(&p, "id = ? AND event_id = ?", id, eventID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ParticipantRepo) ListByEvent(ctx context.Context, eventID string, page, size int32) ([]domain.Participant, int64, error) {
	if size <= 0 {
		size = 20
	}
	if page < 0 {
		page = 0
	}
	qb := r.db.WithContext(ctx).Model(&domain.Participant{}).Where("event_id = ?", eventID)
	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []domain.Participant
	if err := qb.Order("created_at ASC").Limit(int(size)).Offset(int(page * size)).Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// EmailsByEvent returns the roster's email column as stored, used to seed
// the ingestion dedupe set.
func (r *ParticipantRepo) EmailsByEvent(ctx context.Context, eventID string) ([]string, error) {
	var emails []string
	err := r.db.WithContext(ctx).Model(&domain.Participant{}).
		Where("event_id = ?", eventID).
		Pluck("email", &emails).Error
	if err != nil {
		return nil, err
	}
	return emails, nil
}
