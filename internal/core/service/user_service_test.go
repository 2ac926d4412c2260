package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/audiomart/catalog-api/internal/core/domain"
	"github.com/audiomart/catalog-api/internal/core/ports"
)

func seedUser(t *testing.T, repo *fakeUserRepo) *domain.User {
	t.Helper()
	user, err := repo.Create(context.Background(), &domain.User{
		Username:     "alice",
		Firstname:    "Alice",
		Lastname:     "Tan",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$irrelevant",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestUserService_Get_ExcludesPasswordHash(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seeded := seedUser(t, repo)

	got, err := svc.Get(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.PasswordHash != "" {
		t.Fatalf("password hash must never be exposed on reads")
	}
	if got.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUserService_Update_MergesOnlySuppliedFields(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seeded := seedUser(t, repo)

	username := "alice2"
	empty := ""
	updated, err := svc.Update(context.Background(), seeded.ID, ports.UserChange{
		Username: &username,
		Lastname: &empty,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Username != "alice2" {
		t.Fatalf("username not applied: %s", updated.Username)
	}
	if updated.Lastname != "" {
		t.Fatalf("an explicit empty value must be applied, not treated as omitted")
	}
	if updated.Firstname != "Alice" {
		t.Fatalf("omitted fields must be preserved: %+v", updated)
	}
	if updated.Email != "alice@example.com" {
		t.Fatalf("email must be immutable through profile updates")
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), zerolog.Nop())

	username := "ghost"
	if _, err := svc.Update(context.Background(), "missing", ports.UserChange{Username: &username}); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete_RepeatedDeleteIsConsistent(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seeded := seedUser(t, repo)

	if err := svc.Delete(context.Background(), seeded.ID); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), seeded.ID); err != domain.ErrUserNotFound {
		t.Fatalf("repeated delete must report the same no-effect outcome, got %v", err)
	}
}

func TestUserService_Reviews_UnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), zerolog.Nop())

	if _, err := svc.Reviews(context.Background(), "missing", "alice@example.com", 1, 20); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Reviews_PagingAndEmptyPage(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seeded := seedUser(t, repo)

	for i := 0; i < 7; i++ {
		repo.reviews[seeded.ID] = append(repo.reviews[seeded.ID], ports.UserReview{
			ProductID:  "prod1",
			BrandModel: "Echo Buds 2",
			Review: domain.Review{
				ID:       "rev" + string(rune('a'+i)),
				Email:    "alice@example.com",
				Comments: "nice",
				Rating:   4,
				Date:     time.Now().UTC(),
			},
		})
	}

	page2, err := svc.Reviews(context.Background(), seeded.ID, "alice@example.com", 2, 5)
	if err != nil {
		t.Fatalf("reviews failed: %v", err)
	}
	if page2.Page != 2 || page2.Limit != 5 {
		t.Fatalf("paging values must be echoed, got %d/%d", page2.Page, page2.Limit)
	}
	if len(page2.Items) != 2 {
		t.Fatalf("expected 2 items on the second page of 7, got %d", len(page2.Items))
	}

	defaults, err := svc.Reviews(context.Background(), seeded.ID, "alice@example.com", 0, 0)
	if err != nil {
		t.Fatalf("reviews failed: %v", err)
	}
	if defaults.Page != 1 || defaults.Limit != 20 {
		t.Fatalf("expected default page=1 limit=20, got %d/%d", defaults.Page, defaults.Limit)
	}

	empty, err := svc.Reviews(context.Background(), seeded.ID, "nobody@example.com", 1, 20)
	if err != nil {
		t.Fatalf("an existing user with no reviews must yield an empty page, got %v", err)
	}
	if len(empty.Items) != 0 {
		t.Fatalf("expected empty result, got %d items", len(empty.Items))
	}
}
