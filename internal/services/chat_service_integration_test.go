package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/repository"
)

func newIntegrationChatService(pool *pgxpool.Pool) *ChatService {
	return NewChatService(
		repository.NewChatRepository(pool),
		repository.NewChatMessageRepository(pool),
		repository.NewCoachRepository(pool),
		repository.NewClinicRepository(pool),
		repository.NewTherapistRepository(pool),
	)
}

func createIntegrationCoach(t *testing.T, ctx context.Context, pool *pgxpool.Pool, label string) int64 {
	t.Helper()

	coach := &models.Coach{
		Name:         "Coach " + label,
		Email:        fmt.Sprintf("coach-%s-%d@example.com", label, time.Now().UnixNano()),
		PasswordHash: "test-hash",
		IsActive:     true,
	}
	if err := repository.NewCoachRepository(pool).Create(ctx, coach); err != nil {
		t.Fatalf("create coach %s: %v", label, err)
	}
	return coach.ID
}

func cleanupChatFixtures(t *testing.T, ctx context.Context, pool *pgxpool.Pool, userIDs, coachIDs []int64) {
	t.Helper()

	if len(userIDs) > 0 {
		if _, err := pool.Exec(ctx, "DELETE FROM users WHERE id = ANY($1)", userIDs); err != nil {
			t.Fatalf("cleanup users: %v", err)
		}
	}
	if len(coachIDs) > 0 {
		if _, err := pool.Exec(ctx, "DELETE FROM coaches WHERE id = ANY($1)", coachIDs); err != nil {
			t.Fatalf("cleanup coaches: %v", err)
		}
	}
}

func TestChatVisibleOnlyToItsTwoSides(t *testing.T) {
	ctx := context.Background()
	pool := integrationPool(t)
	service := newIntegrationChatService(pool)

	ownerID := createIntegrationUser(t, ctx, pool, "chat-owner")
	otherUserID := createIntegrationUser(t, ctx, pool, "chat-other")
	coachID := createIntegrationCoach(t, ctx, pool, "member")
	otherCoachID := createIntegrationCoach(t, ctx, pool, "outsider")
	t.Cleanup(func() {
		cleanupChatFixtures(t, ctx, pool, []int64{ownerID, otherUserID}, []int64{coachID, otherCoachID})
	})

	chat, created, err := service.StartChat(ctx, ownerID, models.ProfessionalTypeCoach, coachID, nil)
	if err != nil {
		t.Fatalf("StartChat: %v", err)
	}
	if !created {
		t.Fatal("expected a new chat")
	}

	if _, err := service.GetChat(ctx, PrincipalUser, ownerID, chat.ID); err != nil {
		t.Fatalf("owner GetChat: %v", err)
	}
	if _, err := service.GetChat(ctx, PrincipalCoach, coachID, chat.ID); err != nil {
		t.Fatalf("coach GetChat: %v", err)
	}

	if _, err := service.GetChat(ctx, PrincipalUser, otherUserID, chat.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for other user, got %v", err)
	}
	if _, err := service.GetChat(ctx, PrincipalCoach, otherCoachID, chat.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for other coach, got %v", err)
	}
	// Same id under a different professional kind must not match.
	if _, err := service.GetChat(ctx, PrincipalTherapist, coachID, chat.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for kind mismatch, got %v", err)
	}
}

func TestStartChatReusesExistingPair(t *testing.T) {
	ctx := context.Background()
	pool := integrationPool(t)
	service := newIntegrationChatService(pool)

	userID := createIntegrationUser(t, ctx, pool, "chat-reuse")
	coachID := createIntegrationCoach(t, ctx, pool, "reuse")
	t.Cleanup(func() {
		cleanupChatFixtures(t, ctx, pool, []int64{userID}, []int64{coachID})
	})

	first, created, err := service.StartChat(ctx, userID, models.ProfessionalTypeCoach, coachID, nil)
	if err != nil {
		t.Fatalf("first StartChat: %v", err)
	}
	if !created {
		t.Fatal("expected first StartChat to create")
	}

	second, created, err := service.StartChat(ctx, userID, models.ProfessionalTypeCoach, coachID, nil)
	if err != nil {
		t.Fatalf("second StartChat: %v", err)
	}
	if created || second.ID != first.ID {
		t.Fatalf("expected reuse of chat %d, got created=%v id=%d", first.ID, created, second.ID)
	}
}

func TestSendMessageForbiddenForOutsiders(t *testing.T) {
	ctx := context.Background()
	pool := integrationPool(t)
	service := newIntegrationChatService(pool)

	ownerID := createIntegrationUser(t, ctx, pool, "msg-owner")
	outsiderID := createIntegrationUser(t, ctx, pool, "msg-outsider")
	coachID := createIntegrationCoach(t, ctx, pool, "msg")
	t.Cleanup(func() {
		cleanupChatFixtures(t, ctx, pool, []int64{ownerID, outsiderID}, []int64{coachID})
	})

	chat, _, err := service.StartChat(ctx, ownerID, models.ProfessionalTypeCoach, coachID, nil)
	if err != nil {
		t.Fatalf("StartChat: %v", err)
	}

	if _, err := service.SendMessage(ctx, PrincipalUser, ownerID, chat.ID, SendMessageInput{Message: "hello"}); err != nil {
		t.Fatalf("owner SendMessage: %v", err)
	}

	_, err = service.SendMessage(ctx, PrincipalUser, outsiderID, chat.ID, SendMessageInput{Message: "intrusion"})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
