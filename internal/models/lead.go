package models

import (
	"time"

	"github.com/google/uuid"
)

// Lead is a prospect record created in bulk from an upload and immutable
// afterwards.
type Lead struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string     `gorm:"type:varchar(200);not null" json:"name"`
	Role        string     `gorm:"type:varchar(200)" json:"role"`
	Company     string     `gorm:"type:varchar(200)" json:"company"`
	Industry    string     `gorm:"type:varchar(200)" json:"industry"`
	Location    string     `gorm:"type:varchar(200)" json:"location"`
	LinkedinBio string     `gorm:"type:text" json:"linkedin_bio"`
	AddedByID   *uuid.UUID `gorm:"type:uuid" json:"added_by"`
	CreatedAt   time.Time  `gorm:"type:timestamp;default:now()" json:"created_at"`

	AddedBy *Account `gorm:"foreignKey:AddedByID;constraint:OnDelete:SET NULL" json:"-"`
}

func (Lead) TableName() string {
	return "leads"
}
