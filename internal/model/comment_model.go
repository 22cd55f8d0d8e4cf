package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentModel struct {
	ID        string `gorm:"type:uuid;primary_key" json:"id"`
	PostID    string `gorm:"type:uuid;not null;index" json:"post_id"`
	User      string `gorm:"type:varchar(255);not null;default:'anonymous'" json:"user"`
	Text      string `gorm:"type:text;not null" json:"text"`
	CreatedAt int64  `gorm:"autoCreateTime:milli" json:"created_at"`
}

func (CommentModel) TableName() string {
	return "comments"
}

func (c *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
