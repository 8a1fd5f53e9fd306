package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/campusworks/placementcell/internal/app/models/dto"
	"github.com/campusworks/placementcell/internal/pkg/apperrors"
)

func TestPostJob(t *testing.T) {
	jobs := newFakeJobRepo()
	svc := NewJobService(jobs, zerolog.Nop())

	job, err := svc.PostJob(context.Background(), &dto.PostJobRequest{
		CompanyName: "  Acme  ",
		Role:        "Backend Engineer",
		Salary:      "8 LPA",
		Eligibility: "No active backlogs",
		Location:    "Pune",
	})
	if err != nil {
		t.Fatalf("PostJob: %v", err)
	}

	if job.ID == 0 {
		t.Error("job not assigned an id")
	}
	if job.CompanyName != "Acme" {
		t.Errorf("company = %q, want trimmed Acme", job.CompanyName)
	}

	listed, err := svc.ListJobs(context.Background())
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if len(listed) != 1 {
		t.Errorf("jobs listed = %d, want 1", len(listed))
	}
}

func TestPostJobValidation(t *testing.T) {
	svc := NewJobService(newFakeJobRepo(), zerolog.Nop())

	tests := []struct {
		name string
		req  dto.PostJobRequest
	}{
		{"missing company", dto.PostJobRequest{Role: "Backend Engineer"}},
		{"missing role", dto.PostJobRequest{CompanyName: "Acme"}},
		{"whitespace only", dto.PostJobRequest{CompanyName: "  ", Role: "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			if _, err := svc.PostJob(context.Background(), &req); !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("error = %v, want ErrValidationFailed", err)
			}
		})
	}
}
