package service

import (
	"context"
	"testing"

	"github.com/avelis/spendtrack-backend/internal/domain"
	"github.com/avelis/spendtrack-backend/internal/testutil"
	"github.com/google/uuid"
)

func TestResolveOwner_CreatesThenReuses(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	svc := NewAuthService(repo)

	first, err := svc.ResolveOwner(context.Background(), "auth0|abc123", "a@example.com", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if first.ID == uuid.Nil {
		t.Fatal("Expected a user id to be assigned")
	}

	second, err := svc.ResolveOwner(context.Background(), "auth0|abc123", "a@example.com", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("Expected same user on repeat resolve, got %s and %s", first.ID, second.ID)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	svc := NewAuthService(repo)

	_, err := svc.GetUser(context.Background(), uuid.New())
	if err != domain.ErrUserNotFound {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}
