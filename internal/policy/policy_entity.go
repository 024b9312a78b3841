package policy

import (
	"time"

	"github.com/google/uuid"
)

type Policy struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Title         string    `gorm:"column:title;type:varchar(255);not null"`
	Category      string    `gorm:"column:category;type:varchar(30);not null;index"`
	Content       string    `gorm:"column:content;type:text;not null"`
	EffectiveDate time.Time `gorm:"column:effective_date;type:date;not null"`
	LastUpdated   time.Time `gorm:"column:last_updated;type:date;not null"`
	Tags          []string  `gorm:"column:tags;type:text;serializer:json"`
}

func (Policy) TableName() string {
	return "leave_policies"
}

type FAQItem struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Question   string    `gorm:"column:question;type:varchar(500);not null"`
	Answer     string    `gorm:"column:answer;type:text;not null"`
	Category   string    `gorm:"column:category;type:varchar(30);not null;index"`
	Tags       []string  `gorm:"column:tags;type:text;serializer:json"`
	Helpful    int       `gorm:"column:helpful;not null;default:0"`
	NotHelpful int       `gorm:"column:not_helpful;not null;default:0"`
}

func (FAQItem) TableName() string {
	return "faq_items"
}
