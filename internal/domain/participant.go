package domain

import (
	"strings"
	"time"
)

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "PENDING"
	InvitationAccepted InvitationStatus = "ACCEPTED"
	InvitationDeclined InvitationStatus = "DECLINED"
)

// ParseInvitationStatus matches s against the status vocabulary,
// case-insensitively. ok is false when the token is not part of it.
func ParseInvitationStatus(s string) (InvitationStatus, bool) {
	switch InvitationStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case InvitationPending:
		return InvitationPending, true
	case InvitationAccepted:
		return InvitationAccepted, true
	case InvitationDeclined:
		return InvitationDeclined, true
	}
	return "", false
}

// NormalizeInvitationStatus is the lenient form used by CSV ingestion:
// any token outside the vocabulary (including the empty string) becomes
// PENDING. This fallback is deliberate policy, not an accident.
func NormalizeInvitationStatus(s string) InvitationStatus {
	if st, ok := ParseInvitationStatus(s); ok {
		return st
	}
	return InvitationPending
}

// Participant email uniqueness holds only within one event's roster and
// is case-insensitive; the ingestion path enforces it with lower-cased
// comparisons. The same address may appear across different events.
type Participant struct {
	ID               string           `gorm:"primaryKey" json:"id"`
	Firstname        string           `json:"firstname"`
	Lastname         string           `json:"lastname"`
	Email            string           `json:"email"`
	PhoneNumber      string           `json:"phone_number"`
	InvitationStatus InvitationStatus `gorm:"default:PENDING" json:"invitation_status"`
	EventID          string           `gorm:"index;not null" json:"event_id"`
	CreatedAt        time.Time        `json:"created_at"`
}
