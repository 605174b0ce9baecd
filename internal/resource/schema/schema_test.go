package schema_test

import (
	"strings"
	"testing"

	"consulate-console/internal/resource/schema"
)

type newsPayload struct {
	Title   string `json:"title" validate:"required,min=3,max=255"`
	Content string `json:"content" validate:"required"`
	Status  string `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
}

func TestValidator(t *testing.T) {
	v := schema.NewValidator()

	t.Run("valid payload passes", func(t *testing.T) {
		err := v.Validate(newsPayload{Title: "Fermeture exceptionnelle", Content: "Le consulat sera fermé."})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing required fields are reported per field", func(t *testing.T) {
		err := v.Validate(newsPayload{})
		if err == nil {
			t.Fatal("expected validation error")
		}

		fieldErrs, ok := schema.AsFieldErrors(err)
		if !ok {
			t.Fatalf("expected FieldErrors, got %T", err)
		}
		if fieldErrs["title"] == "" || fieldErrs["content"] == "" {
			t.Errorf("expected errors keyed by json tag, got %v", fieldErrs)
		}
	})

	t.Run("joined message lists every field", func(t *testing.T) {
		err := v.Validate(newsPayload{Status: "BROUILLON"})
		if err == nil {
			t.Fatal("expected validation error")
		}
		msg := err.Error()
		for _, field := range []string{"title", "content", "status"} {
			if !strings.Contains(msg, field) {
				t.Errorf("joined message missing %q: %s", field, msg)
			}
		}
	})

	t.Run("enum rejects unknown value", func(t *testing.T) {
		err := v.Validate(newsPayload{Title: "Titre", Content: "Texte", Status: "PENDING"})
		if err == nil {
			t.Fatal("expected validation error")
		}
		fieldErrs, _ := schema.AsFieldErrors(err)
		if fieldErrs["status"] == "" {
			t.Errorf("expected status error, got %v", fieldErrs)
		}
	})
}

func TestUploadRule(t *testing.T) {
	rule := schema.UploadRule{
		MaxBytes:     5 << 20,
		AllowedTypes: []string{"image/jpeg", "image/png"},
		Required:     true,
		MaxCount:     10,
	}

	t.Run("accepts valid images", func(t *testing.T) {
		err := rule.Check("images", []schema.Upload{
			{Filename: "a.jpg", ContentType: "image/jpeg", Size: 1024},
			{Filename: "b.png", ContentType: "image/png", Size: 2048},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects missing required upload", func(t *testing.T) {
		if err := rule.Check("images", nil); err == nil {
			t.Error("expected error for missing required upload")
		}
	})

	t.Run("rejects disallowed MIME type", func(t *testing.T) {
		err := rule.Check("images", []schema.Upload{
			{Filename: "doc.pdf", ContentType: "application/pdf", Size: 1024},
		})
		if err == nil {
			t.Fatal("expected error for pdf")
		}
		fieldErrs, _ := schema.AsFieldErrors(err)
		if fieldErrs["images"] == "" {
			t.Errorf("expected images field error, got %v", err)
		}
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		err := rule.Check("images", []schema.Upload{
			{Filename: "huge.jpg", ContentType: "image/jpeg", Size: 50 << 20},
		})
		if err == nil {
			t.Error("expected error for oversized file")
		}
	})
}
