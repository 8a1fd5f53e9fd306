package services

import (
	"context"
	"errors"
	"testing"

	"github.com/campusworks/placementcell/internal/pkg/apperrors"
)

func newStudentFixture() (*applicationFixture, *StudentService) {
	fx := newApplicationFixture()
	svc := NewStudentService(fx.students, fx.jobs, fx.applications)
	return fx, svc
}

func TestStudentDashboard(t *testing.T) {
	fx, svc := newStudentFixture()
	accountID, _ := fx.seedStudent(t, "alice", "alice@example.com")
	jobID := fx.seedJob(t, "Acme", "Backend Engineer")
	fx.seedJob(t, "Globex", "Data Analyst")

	if _, err := fx.svc.Apply(context.Background(), accountID, jobID); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	dashboard, err := svc.Dashboard(context.Background(), accountID)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}

	if dashboard.Profile == nil || dashboard.Profile.AccountID != accountID {
		t.Error("dashboard missing own profile")
	}
	if len(dashboard.Jobs) != 2 {
		t.Errorf("jobs = %d, want 2", len(dashboard.Jobs))
	}
	if len(dashboard.Applications) != 1 {
		t.Errorf("applications = %d, want 1", len(dashboard.Applications))
	}
}

func TestStudentDashboardWithoutProfile(t *testing.T) {
	_, svc := newStudentFixture()

	if _, err := svc.Dashboard(context.Background(), 999); !errors.Is(err, apperrors.ErrStudentProfileNotFound) {
		t.Errorf("error = %v, want ErrStudentProfileNotFound", err)
	}
}

func TestAdminDashboardCounts(t *testing.T) {
	fx, svc := newStudentFixture()
	aliceID, _ := fx.seedStudent(t, "alice", "alice@example.com")
	bobID, _ := fx.seedStudent(t, "bob", "bob@example.com")
	jobID := fx.seedJob(t, "Acme", "Backend Engineer")

	for _, accountID := range []int64{aliceID, bobID} {
		if _, err := fx.svc.Apply(context.Background(), accountID, jobID); err != nil {
			t.Fatalf("Apply: %v", err)
		}
	}

	dashboard, err := svc.AdminDashboard(context.Background())
	if err != nil {
		t.Fatalf("AdminDashboard: %v", err)
	}
	if dashboard.JobPostings != 1 {
		t.Errorf("job postings = %d, want 1", dashboard.JobPostings)
	}
	if dashboard.Students != 2 {
		t.Errorf("students = %d, want 2", dashboard.Students)
	}
	if dashboard.Applications != 2 {
		t.Errorf("applications = %d, want 2", dashboard.Applications)
	}
}

func TestListStudents(t *testing.T) {
	fx, svc := newStudentFixture()
	fx.seedStudent(t, "alice", "alice@example.com")
	fx.seedStudent(t, "bob", "bob@example.com")

	students, err := svc.ListStudents(context.Background())
	if err != nil {
		t.Fatalf("ListStudents: %v", err)
	}
	if len(students) != 2 {
		t.Errorf("students = %d, want 2", len(students))
	}
	for _, s := range students {
		if s.RollNo == "" {
			t.Errorf("student %d missing roll number", s.ID)
		}
	}
}
