package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Offer is a seller's value proposition plus targeting criteria. It is
// immutable after creation; target roles and industries are stored as
// comma-separated text and parsed on access.
type Offer struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name             string     `gorm:"type:varchar(200);not null" json:"name"`
	AddedByID        *uuid.UUID `gorm:"type:uuid" json:"added_by"`
	ValueProps       string     `gorm:"type:text;not null" json:"value_props"`
	IdealUseCases    string     `gorm:"type:text;not null" json:"ideal_use_cases"`
	TargetRoles      string     `gorm:"type:text" json:"target_roles"`
	TargetIndustries string     `gorm:"type:text" json:"target_industries"`
	CreatedAt        time.Time  `gorm:"type:timestamp;default:now()" json:"created_at"`

	// Relations. Deleting the owning account must not delete the offer.
	AddedBy *Account `gorm:"foreignKey:AddedByID;constraint:OnDelete:SET NULL" json:"-"`
}

func (Offer) TableName() string {
	return "offers"
}

// RolesList returns the target roles as trimmed tokens, empty tokens dropped.
func (o *Offer) RolesList() []string {
	return splitTargetList(o.TargetRoles, false)
}

// IndustriesList returns the target industries lower-cased for
// case-insensitive matching.
func (o *Offer) IndustriesList() []string {
	return splitTargetList(o.TargetIndustries, true)
}

func splitTargetList(raw string, lower bool) []string {
	tokens := []string{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lower {
			part = strings.ToLower(part)
		}
		tokens = append(tokens, part)
	}
	return tokens
}
