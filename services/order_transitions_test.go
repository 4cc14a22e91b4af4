package services

import (
	"context"
	"sync"
	"testing"

	"preorder/entity"
	"preorder/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func submitOne(t *testing.T, svc *OrderService) *entity.Order {
	t.Helper()
	o, err := svc.Submit(context.Background(), alice(), []LineInput{{MealID: "m1", Quantity: 1}})
	require.NoError(t, err)
	return o
}

func TestSetStatus_HappyPath(t *testing.T) {
	svc, _ := newTestOrderService(t)
	ctx := context.Background()
	o := submitOne(t, svc)

	got, err := svc.SetStatus(ctx, o.ID, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmed, got.Status)

	got, err = svc.SetStatus(ctx, o.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, got.Status)
	assert.Len(t, got.Items, 1)
}

func TestSetStatus_TerminalStaysPut(t *testing.T) {
	svc, _ := newTestOrderService(t)
	ctx := context.Background()
	o := submitOne(t, svc)

	_, err := svc.SetStatus(ctx, o.ID, "confirmed")
	require.NoError(t, err)
	_, err = svc.SetStatus(ctx, o.ID, "completed")
	require.NoError(t, err)

	for _, target := range []string{"pending", "cancelled", "confirmed"} {
		_, err = svc.SetStatus(ctx, o.ID, target)
		require.ErrorIs(t, err, apperr.ErrInvalidTransition, target)
	}

	cur, err := svc.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, cur.Status)
}

func TestSetStatus_CancelFromPendingAndConfirmed(t *testing.T) {
	svc, _ := newTestOrderService(t)
	ctx := context.Background()

	a := submitOne(t, svc)
	got, err := svc.SetStatus(ctx, a.ID, "cancelled")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, got.Status)

	b := submitOne(t, svc)
	_, err = svc.SetStatus(ctx, b.ID, "confirmed")
	require.NoError(t, err)
	got, err = svc.SetStatus(ctx, b.ID, "cancelled")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, got.Status)
}

func TestSetStatus_Errors(t *testing.T) {
	svc, _ := newTestOrderService(t)
	ctx := context.Background()
	o := submitOne(t, svc)

	_, err := svc.SetStatus(ctx, o.ID, "shipped")
	require.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.SetStatus(ctx, "missing", "confirmed")
	require.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.SetStatus(ctx, o.ID, "completed")
	require.ErrorIs(t, err, apperr.ErrInvalidTransition)

	// pending -> pending is not an edge either
	_, err = svc.SetStatus(ctx, o.ID, "pending")
	require.ErrorIs(t, err, apperr.ErrInvalidTransition)
}

func TestSetStatus_ConcurrentConflictingRequests(t *testing.T) {
	svc, _ := newTestOrderService(t)
	ctx := context.Background()
	o := submitOne(t, svc)
	_, err := svc.SetStatus(ctx, o.ID, "confirmed")
	require.NoError(t, err)

	targets := []string{"completed", "cancelled"}
	errs := make([]error, len(targets))
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i, target := range targets {
		wg.Add(1)
		go func(i int, target string) {
			defer wg.Done()
			<-start
			_, errs[i] = svc.SetStatus(ctx, o.ID, target)
		}(i, target)
	}
	close(start)
	wg.Wait()

	winner := -1
	for i, err := range errs {
		if err == nil {
			require.Equal(t, -1, winner, "both transitions applied")
			winner = i
			continue
		}
		assert.ErrorIs(t, err, apperr.ErrInvalidTransition)
	}
	require.NotEqual(t, -1, winner, "no transition applied")

	cur, err := svc.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatus(targets[winner]), cur.Status)
}

func TestSetStatus_LostRaceWithLegalTargetIsConflict(t *testing.T) {
	svc, db := newTestOrderService(t)
	ctx := context.Background()
	o := submitOne(t, svc)

	// another writer confirms the order between our read and our guarded update
	fired := false
	err := db.Callback().Update().Before("gorm:update").Register("test:interleave", func(tx *gorm.DB) {
		if fired || tx.Statement.Table != "orders" {
			return
		}
		fired = true
		_ = tx.Session(&gorm.Session{NewDB: true}).
			Exec("UPDATE orders SET status = ? WHERE id = ?", entity.StatusConfirmed, o.ID).Error
	})
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, o.ID, "cancelled")
	require.ErrorIs(t, err, apperr.ErrConflict)

	cur, err := svc.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmed, cur.Status)
}
