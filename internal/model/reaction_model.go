package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReactionModel rows are append-only: repeated reactions by the same user
// with the same type produce new rows, there is no uniqueness constraint.
type ReactionModel struct {
	ID        string `gorm:"type:uuid;primary_key" json:"id"`
	PostID    string `gorm:"type:uuid;not null;index" json:"post_id"`
	Type      string `gorm:"type:varchar(50);not null;default:'like'" json:"type"`
	User      string `gorm:"type:varchar(255);not null;default:'anonymous'" json:"user"`
	CreatedAt int64  `gorm:"autoCreateTime:milli" json:"created_at"`
}

func (ReactionModel) TableName() string {
	return "reactions"
}

func (r *ReactionModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
