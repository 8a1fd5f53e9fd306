package services

import (
	"context"
	"errors"
	"testing"

	"github.com/campusworks/placementcell/internal/app/models/dto"
	"github.com/campusworks/placementcell/internal/pkg/apperrors"
)

func TestContactSubmit(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo)

	err := svc.Submit(context.Background(), &dto.ContactRequest{
		Name:    "  Alice  ",
		Email:   "alice@example.com",
		Message: "How do I update my resume?",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if len(repo.messages) != 1 {
		t.Fatalf("messages stored = %d, want 1", len(repo.messages))
	}
	if repo.messages[0].Name != "Alice" {
		t.Errorf("name = %q, want trimmed Alice", repo.messages[0].Name)
	}
}

func TestContactSubmitValidation(t *testing.T) {
	svc := NewContactService(&fakeContactRepo{})

	tests := []struct {
		name string
		req  dto.ContactRequest
	}{
		{"missing name", dto.ContactRequest{Email: "a@example.com", Message: "hi"}},
		{"missing email", dto.ContactRequest{Name: "Alice", Message: "hi"}},
		{"missing message", dto.ContactRequest{Name: "Alice", Email: "a@example.com"}},
		{"whitespace only", dto.ContactRequest{Name: " ", Email: " ", Message: " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			if err := svc.Submit(context.Background(), &req); !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("error = %v, want ErrValidationFailed", err)
			}
		})
	}
}
