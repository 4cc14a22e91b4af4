package repository

import (
	"context"
	"testing"

	"preorder/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRequiresExistingOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotificationRepository(db)

	err := repo.Create(context.Background(), &entity.Notification{
		OrderID: "ghost", StudentEmail: "a@x.com", Message: "hi",
	})
	require.Error(t, err)
}

func TestNotificationReadFlags(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()
	o := seedOrder(t, db, "Alice", entity.StatusPending, 10)

	for _, msg := range []string{"first", "second"} {
		require.NoError(t, repo.Create(ctx, &entity.Notification{OrderID: o.ID, StudentEmail: "a@x.com", Message: msg}))
	}
	require.NoError(t, repo.Create(ctx, &entity.Notification{OrderID: o.ID, StudentEmail: "b@x.com", Message: "other"}))

	list, err := repo.ListByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Message)

	require.NoError(t, repo.MarkRead(ctx, list[1].ID, "a@x.com"))
	cnt, err := repo.CountUnread(ctx, "a@x.com")
	require.NoError(t, err)
	assert.EqualValues(t, 1, cnt)

	n, err := repo.MarkAllRead(ctx, "a@x.com")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	cnt, err = repo.CountUnread(ctx, "b@x.com")
	require.NoError(t, err)
	assert.EqualValues(t, 1, cnt)
}
