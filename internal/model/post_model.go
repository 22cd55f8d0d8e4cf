package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID        string       `gorm:"type:uuid;primary_key" json:"id"`
	Author    string       `gorm:"type:varchar(255);not null;default:'Anônimo'" json:"author"`
	Text      string       `gorm:"type:text" json:"text"`
	Community string       `gorm:"type:varchar(100);index" json:"community"`
	CreatedAt int64        `gorm:"autoCreateTime:milli;index" json:"created_at"`
	Media     []MediaModel `gorm:"foreignKey:PostID" json:"media,omitempty"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type MediaModel struct {
	ID        string `gorm:"type:uuid;primary_key" json:"id"`
	PostID    string `gorm:"type:uuid;not null;index" json:"post_id"`
	Filename  string `gorm:"type:varchar(255);not null;uniqueIndex" json:"filename"`
	Mime      string `gorm:"type:varchar(100)" json:"mime"`
	CreatedAt int64  `gorm:"autoCreateTime:milli" json:"created_at"`
}

func (MediaModel) TableName() string {
	return "media"
}

func (m *MediaModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
