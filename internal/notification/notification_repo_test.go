package notification_test

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/notification"
	"go-hrms/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNotificationRepository(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t, &notification.Notification{})
	repo := notification.NewRepository(db)

	owner := uuid.New()
	other := uuid.New()
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	var ids []uuid.UUID
	for i, msg := range []string{"first", "second", "third"} {
		n := &notification.Notification{
			ID:        uuid.New(),
			UserID:    owner,
			Message:   msg,
			Type:      notification.TypeInfo,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		assert.NoError(t, repo.Create(ctx, n))
		ids = append(ids, n.ID)
	}
	assert.NoError(t, repo.Create(ctx, &notification.Notification{
		ID: uuid.New(), UserID: other, Message: "not yours", Type: notification.TypeInfo, CreatedAt: base,
	}))

	items, err := repo.ListByUser(ctx, owner, false)
	assert.NoError(t, err)
	if assert.Len(t, items, 3) {
		assert.Equal(t, "third", items[0].Message)
		assert.Equal(t, "first", items[2].Message)
	}

	ok, err := repo.MarkRead(ctx, ids[0], other)
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.MarkRead(ctx, ids[0], owner)
	assert.NoError(t, err)
	assert.True(t, ok)

	unread, err := repo.CountUnread(ctx, owner)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	items, err = repo.ListByUser(ctx, owner, true)
	assert.NoError(t, err)
	assert.Len(t, items, 2)

	n, err := repo.MarkAllRead(ctx, owner)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)

	unread, err = repo.CountUnread(ctx, other)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}
