package vocab

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	types "github.com/yungbote/vocab-builder/internal/domain/vocab"
	"github.com/yungbote/vocab-builder/internal/platform/logger"
	"github.com/yungbote/vocab-builder/internal/platform/mongodb"
)

func TestParseIDRejectsMalformed(t *testing.T) {
	for _, id := range []string{"", "abc", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		if _, err := parseID(id); !errors.Is(err, types.ErrInvalidWordID) {
			t.Fatalf("parseID(%q): want ErrInvalidWordID got=%v", id, err)
		}
	}
	oid := primitive.NewObjectID()
	got, err := parseID(oid.Hex())
	if err != nil || got != oid {
		t.Fatalf("parseID(%q): got=%v err=%v", oid.Hex(), got, err)
	}
}

func TestWordRepoIntegration(t *testing.T) {
	uri := strings.TrimSpace(os.Getenv("MONGODB_TEST_URI"))
	if uri == "" {
		t.Skip("MONGODB_TEST_URI not set")
	}
	ctx := context.Background()
	client, err := mongodb.Connect(ctx, mongodb.Config{
		URI:            uri,
		Database:       "vocab_builder_test_" + primitive.NewObjectID().Hex(),
		ConnectTimeout: 5 * time.Second,
	}, logger.Nop())
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer func() {
		_ = client.Database.Drop(ctx)
		_ = client.Close(ctx)
	}()

	repo := NewWordRepo(client.Database, logger.Nop())

	created, err := repo.Create(ctx, &types.Word{English: "dog", German: "Hund"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("Create: expected id")
	}

	list, err := repo.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("List: len=%d err=%v", len(list), err)
	}

	english := "hound"
	updated, err := repo.Update(ctx, created.ID, &types.WordPatch{English: &english})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.English != "hound" || updated.German != "Hund" {
		t.Fatalf("Update: got=%+v", *updated)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, created.ID); !errors.Is(err, types.ErrWordNotFound) {
		t.Fatalf("GetByID after delete: want ErrWordNotFound got=%v", err)
	}
	if err := repo.Delete(ctx, created.ID); !errors.Is(err, types.ErrWordNotFound) {
		t.Fatalf("Delete twice: want ErrWordNotFound got=%v", err)
	}
}
