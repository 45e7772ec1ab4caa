package models

import (
	"time"

	"github.com/google/uuid"
)

// Result is the persisted verdict for exactly one (lead, offer) pair. The
// composite unique index is the storage-level guarantee that at most one
// result exists per pair, even when concurrent scoring runs race.
type Result struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	LeadID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_results_lead_offer" json:"lead_id"`
	OfferID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_results_lead_offer" json:"offer_id"`
	RulesScore int       `gorm:"not null;default:0" json:"rules_score"`
	AIIntent   string    `gorm:"type:varchar(10);not null;default:'Low'" json:"ai_intent"`
	FinalScore int       `gorm:"not null;default:0" json:"final_score"`
	Reasoning  string    `gorm:"type:text;not null;default:''" json:"reasoning"`
	CreatedAt  time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`

	// Relations. Results cascade when either parent is deleted.
	Lead  Lead  `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE" json:"lead"`
	Offer Offer `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE" json:"offer"`
}

func (Result) TableName() string {
	return "results"
}
