package model

import (
	"context"
	"scribe/internal/entity"
)

// SeedDefaultTemplates ensures the built-in public templates exist in the database.
// Existing rows are matched by name and content type and left untouched.
func SeedDefaultTemplates(ctx context.Context, repo Repository) (int, error) {
	if repo == nil {
		return 0, nil
	}

	created := 0
	for _, seed := range buildDefaultTemplateSeeds() {
		existing, err := repo.FindTemplate(ctx, seed.Name, seed.ContentType)
		if err != nil {
			return created, err
		}
		if existing != nil {
			continue
		}
		template := seed
		if err := repo.CreateTemplate(ctx, &template); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func buildDefaultTemplateSeeds() []entity.DbTemplate {
	return []entity.DbTemplate{
		{
			Name:         "Blog post",
			ContentType:  "blog",
			SystemPrompt: "You are an experienced blogger. Write a well-structured article about {{topic}} for {{audience}} with an engaging introduction, clear sections and a short conclusion.",
			Placeholders: entity.StringArray{"{{topic}}", "{{audience}}"},
			IsPublic:     true,
		},
		{
			Name:         "Social media post",
			ContentType:  "social",
			SystemPrompt: "You write concise social media posts. Announce {{subject}} on {{platform}} in under 280 characters and finish with a call to action.",
			Placeholders: entity.StringArray{"{{subject}}", "{{platform}}"},
			IsPublic:     true,
		},
		{
			Name:         "Marketing email",
			ContentType:  "email",
			SystemPrompt: "You are a marketing copywriter. Draft an email promoting {{product}} to {{audience}} with a subject line, a short body and one clear call to action.",
			Placeholders: entity.StringArray{"{{product}}", "{{audience}}"},
			IsPublic:     true,
		},
		{
			Name:         "Product description",
			ContentType:  "product",
			SystemPrompt: "Describe {{product}} for an online store, highlighting {{features}} in a persuasive but factual way.",
			Placeholders: entity.StringArray{"{{product}}", "{{features}}"},
			IsPublic:     true,
		},
	}
}
