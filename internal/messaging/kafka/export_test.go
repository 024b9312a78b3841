package kafka

import (
	"time"

	"gorm.io/gorm"
)

func NewOutboxRepositoryWithClock(db *gorm.DB, now func() time.Time) OutboxRepository {
	return &outboxRepository{db: db, now: now}
}

var RetryDelay = retryDelay
