package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/preskool/school/internal/app/models"
)

type fakeNotificationStore struct {
	notifications []*models.Notification
}

func (f *fakeNotificationStore) Create(_ context.Context, n *models.Notification) error {
	copied := *n
	f.notifications = append(f.notifications, &copied)
	return nil
}

func (f *fakeNotificationStore) GetByUserID(_ context.Context, userID int64) ([]*models.Notification, error) {
	var out []*models.Notification
	for _, n := range f.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationStore) MarkAllRead(_ context.Context, userID int64) (int64, error) {
	var affected int64
	for _, n := range f.notifications {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			affected++
		}
	}
	return affected, nil
}

func (f *fakeNotificationStore) DeleteAllForUser(_ context.Context, userID int64) (int64, error) {
	var kept []*models.Notification
	var affected int64
	for _, n := range f.notifications {
		if n.UserID == userID {
			affected++
			continue
		}
		kept = append(kept, n)
	}
	f.notifications = kept
	return affected, nil
}

func TestNotificationServiceMarkAllReadIdempotent(t *testing.T) {
	store := &fakeNotificationStore{}
	svc := NewNotificationService(store)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.Notify(ctx, 7, "exam schedule posted"); err != nil {
			t.Fatalf("Notify() error = %v", err)
		}
	}

	// First call flips all three
	if err := svc.MarkAllRead(ctx, 7); err != nil {
		t.Fatalf("MarkAllRead() error = %v", err)
	}
	notifications, _ := svc.List(ctx, 7)
	for _, n := range notifications {
		if !n.IsRead {
			t.Fatal("expected every notification read after MarkAllRead")
		}
	}

	// Second call has nothing to do and still succeeds
	if err := svc.MarkAllRead(ctx, 7); err != nil {
		t.Fatalf("repeated MarkAllRead() error = %v", err)
	}
}

func TestNotificationServiceClearAllOnEmptyFeed(t *testing.T) {
	svc := NewNotificationService(&fakeNotificationStore{})
	ctx := context.Background()

	// Clearing a feed that was never populated is not an error
	if err := svc.ClearAll(ctx, 99); err != nil {
		t.Fatalf("ClearAll() on empty feed error = %v", err)
	}

	if _, err := svc.Notify(ctx, 99, "fees due"); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}
	if err := svc.ClearAll(ctx, 99); err != nil {
		t.Fatalf("ClearAll() error = %v", err)
	}

	notifications, err := svc.List(ctx, 99)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(notifications) != 0 {
		t.Errorf("feed should be empty after ClearAll, got %d", len(notifications))
	}
}

func TestNotificationServiceScopedToUser(t *testing.T) {
	store := &fakeNotificationStore{}
	svc := NewNotificationService(store)
	ctx := context.Background()

	if _, err := svc.Notify(ctx, 1, "for user one"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Notify(ctx, 2, "for user two"); err != nil {
		t.Fatal(err)
	}

	if err := svc.ClearAll(ctx, 1); err != nil {
		t.Fatal(err)
	}

	remaining, _ := svc.List(ctx, 2)
	if len(remaining) != 1 {
		t.Fatalf("user two's feed should be untouched, got %d entries", len(remaining))
	}
}

func TestNotificationServiceNotifyAssignsID(t *testing.T) {
	svc := NewNotificationService(&fakeNotificationStore{})

	n, err := svc.Notify(context.Background(), 5, "welcome")
	if err != nil {
		t.Fatalf("Notify() error = %v", err)
	}
	if n.ID == uuid.Nil {
		t.Error("Notify() should assign a non-nil UUID")
	}
	if n.IsRead {
		t.Error("new notifications start unread")
	}
}
