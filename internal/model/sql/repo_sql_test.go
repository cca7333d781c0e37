package sql

import (
	"context"
	"path/filepath"
	"scribe/internal/entity"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepository(t *testing.T) *GormRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "repo.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(entity.Tables()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewGormRepository(db)
}

func TestUpsertUser(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	user := &entity.DbUser{OpenID: "open-1", Name: "Ada", Email: "ada@example.com", LoginMethod: "github"}
	if err := repo.UpsertUser(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected id to be assigned")
	}
	if user.Role != entity.UserRoleUser {
		t.Fatalf("expected default role user, got %q", user.Role)
	}

	again := &entity.DbUser{OpenID: "open-1", Name: "Ada Lovelace", Email: "ada@example.com"}
	if err := repo.UpsertUser(ctx, again); err != nil {
		t.Fatalf("unexpected error on second upsert: %v", err)
	}
	if again.ID != user.ID {
		t.Fatalf("expected same row, got ids %d and %d", user.ID, again.ID)
	}

	loaded, err := repo.GetUserByOpenID(ctx, "open-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded == nil || loaded.Name != "Ada Lovelace" {
		t.Fatalf("expected refreshed name, got %#v", loaded)
	}
}

func TestUpsertUserKeepsAdminRole(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if err := repo.UpsertUser(ctx, &entity.DbUser{OpenID: "owner", Role: entity.UserRoleAdmin}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// a later plain upsert must not demote the stored role
	user := &entity.DbUser{OpenID: "owner", Name: "Owner"}
	if err := repo.UpsertUser(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != entity.UserRoleAdmin {
		t.Fatalf("expected admin role to persist, got %q", user.Role)
	}
}

func TestUpsertUserRequiresOpenID(t *testing.T) {
	repo := newTestRepository(t)
	if err := repo.UpsertUser(context.Background(), &entity.DbUser{OpenID: "  "}); err == nil {
		t.Fatal("expected error for blank open id")
	}
}

func TestReadsReturnNilWhenAbsent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	user, err := repo.GetUserByID(ctx, 99)
	if err != nil || user != nil {
		t.Fatalf("expected (nil, nil) for missing user, got %#v, %v", user, err)
	}
	project, err := repo.GetProject(ctx, 99)
	if err != nil || project != nil {
		t.Fatalf("expected (nil, nil) for missing project, got %#v, %v", project, err)
	}
	content, err := repo.GetContent(ctx, 99)
	if err != nil || content != nil {
		t.Fatalf("expected (nil, nil) for missing content, got %#v, %v", content, err)
	}
	template, err := repo.GetTemplate(ctx, 99)
	if err != nil || template != nil {
		t.Fatalf("expected (nil, nil) for missing template, got %#v, %v", template, err)
	}
}

func TestProjectsAndContents(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	mine := &entity.DbProject{UserID: 1, Name: "Blog", ContentType: "blog"}
	theirs := &entity.DbProject{UserID: 2, Name: "Emails", ContentType: "email"}
	for _, p := range []*entity.DbProject{mine, theirs} {
		if err := repo.CreateProject(ctx, p); err != nil {
			t.Fatalf("unexpected error creating project: %v", err)
		}
	}

	projects, err := repo.ListProjectsByUser(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 1 || projects[0].ID != mine.ID {
		t.Fatalf("expected only the caller's project, got %#v", projects)
	}

	content := &entity.DbContent{ProjectID: mine.ID, Title: "T", Content: "Hello", Prompt: "write"}
	if err := repo.CreateContent(ctx, content); err != nil {
		t.Fatalf("unexpected error creating content: %v", err)
	}
	if content.Status != entity.ContentStatusDraft || content.Version != 1 {
		t.Fatalf("expected draft v1, got %s v%d", content.Status, content.Version)
	}

	title := "Renamed"
	if err := repo.UpdateContent(ctx, content.ID, entity.ContentUpdates{Title: &title}); err != nil {
		t.Fatalf("unexpected error updating: %v", err)
	}
	loaded, err := repo.GetContent(ctx, content.ID)
	if err != nil || loaded == nil {
		t.Fatalf("expected content, got %#v, %v", loaded, err)
	}
	if loaded.Title != "Renamed" || loaded.Content != "Hello" || loaded.Version != 1 {
		t.Fatalf("unexpected row after partial update: %#v", loaded)
	}

	list, err := repo.ListContentsByProject(ctx, mine.ID)
	if err != nil || len(list) != 1 {
		t.Fatalf("expected one content row, got %d, %v", len(list), err)
	}
}

func TestCreateProjectRequiresOwner(t *testing.T) {
	repo := newTestRepository(t)
	if err := repo.CreateProject(context.Background(), &entity.DbProject{Name: "x", ContentType: "blog"}); err == nil {
		t.Fatal("expected error for missing owner")
	}
}

func TestListPublicTemplates(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	seed := []entity.DbTemplate{
		{Name: "Blog post", ContentType: "blog", SystemPrompt: "p", IsPublic: true, Placeholders: entity.StringArray{"{{topic}}"}},
		{Name: "Private blog", ContentType: "blog", SystemPrompt: "p", IsPublic: false},
		{Name: "Newsletter", ContentType: "email", SystemPrompt: "p", IsPublic: true},
	}
	for i := range seed {
		if err := repo.CreateTemplate(ctx, &seed[i]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	all, err := repo.ListPublicTemplates(ctx, "")
	if err != nil || len(all) != 2 {
		t.Fatalf("expected 2 public templates, got %d, %v", len(all), err)
	}
	blogs, err := repo.ListPublicTemplates(ctx, "blog")
	if err != nil || len(blogs) != 1 || blogs[0].Name != "Blog post" {
		t.Fatalf("expected the public blog template, got %#v, %v", blogs, err)
	}
	if !blogs[0].Placeholders.Contains("{{topic}}") {
		t.Fatalf("expected placeholders to round trip, got %#v", blogs[0].Placeholders)
	}

	found, err := repo.FindTemplate(ctx, "Newsletter", "email")
	if err != nil || found == nil {
		t.Fatalf("expected to find template, got %#v, %v", found, err)
	}
}

func TestUninitialisedRepository(t *testing.T) {
	var repo *GormRepository
	if _, err := repo.GetProject(context.Background(), 1); err == nil {
		t.Fatal("expected error from nil repository")
	}
}
