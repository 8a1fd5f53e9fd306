package services

import (
	"context"
	"mime/multipart"
	"sync"

	"github.com/campusworks/placementcell/internal/app/models"
	"github.com/campusworks/placementcell/internal/pkg/apperrors"
	"github.com/campusworks/placementcell/internal/pkg/filestorage"
	"github.com/campusworks/placementcell/internal/pkg/mailer"
)

// fakeAccountRepo is an in-memory IAccountRepository that enforces the same
// uniqueness rules as the database schema.
type fakeAccountRepo struct {
	mu            sync.Mutex
	accounts      map[int64]*models.Account
	adminProfiles map[int64]*models.AdminProfile
	nextID        int64

	// wired to the other fakes so DeleteStudentAccount can cascade
	students     *fakeStudentRepo
	applications *fakeApplicationRepo
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		accounts:      make(map[int64]*models.Account),
		adminProfiles: make(map[int64]*models.AdminProfile),
	}
}

func (r *fakeAccountRepo) Create(_ context.Context, account *models.Account) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Email == account.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		if a.Username == account.Username {
			return 0, apperrors.ErrUsernameAlreadyExists
		}
	}
	r.nextID++
	stored := *account
	stored.ID = r.nextID
	r.accounts[stored.ID] = &stored
	return stored.ID, nil
}

func (r *fakeAccountRepo) GetByID(_ context.Context, id int64) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[id]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

func (r *fakeAccountRepo) GetByEmailAndRole(_ context.Context, email string, role models.RoleType) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Email == email && a.Role == role {
			copied := *a
			return &copied, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

func (r *fakeAccountRepo) EmailExists(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAccountRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAccountRepo) CreateAdminProfile(_ context.Context, profile *models.AdminProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adminProfiles[profile.AccountID] = profile
	return nil
}

func (r *fakeAccountRepo) DeleteStudentAccount(_ context.Context, accountID int64) (string, error) {
	r.mu.Lock()
	account, ok := r.accounts[accountID]
	if !ok || account.Role != models.RoleStudent {
		r.mu.Unlock()
		return "", apperrors.ErrAccountNotFound
	}
	delete(r.accounts, accountID)
	r.mu.Unlock()

	var resumeFile string
	if r.students != nil {
		if profile, err := r.students.GetByAccountID(context.Background(), accountID); err == nil {
			if profile.ResumeFile != nil {
				resumeFile = *profile.ResumeFile
			}
			r.students.remove(profile.ID)
			if r.applications != nil {
				r.applications.removeByStudent(profile.ID)
			}
		}
	}
	return resumeFile, nil
}

type fakeStudentRepo struct {
	mu       sync.Mutex
	profiles map[int64]*models.StudentProfile
	nextID   int64
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{profiles: make(map[int64]*models.StudentProfile)}
}

func (r *fakeStudentRepo) CreateProfile(_ context.Context, profile *models.StudentProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	profile.ID = r.nextID
	r.profiles[profile.ID] = profile
	return nil
}

func (r *fakeStudentRepo) GetByAccountID(_ context.Context, accountID int64) (*models.StudentProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.AccountID == accountID {
			return p, nil
		}
	}
	return nil, apperrors.ErrStudentProfileNotFound
}

func (r *fakeStudentRepo) ListAll(_ context.Context) ([]*models.StudentProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.StudentProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeStudentRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.profiles)), nil
}

func (r *fakeStudentRepo) remove(profileID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.profiles, profileID)
}

type fakeJobRepo struct {
	mu     sync.Mutex
	jobs   map[int64]*models.JobPosting
	nextID int64
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[int64]*models.JobPosting)}
}

func (r *fakeJobRepo) Create(_ context.Context, job *models.JobPosting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	job.ID = r.nextID
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id int64) (*models.JobPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, apperrors.ErrJobPostingNotFound
	}
	return job, nil
}

func (r *fakeJobRepo) ListAll(_ context.Context) ([]*models.JobPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.JobPosting, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, j)
	}
	return out, nil
}

func (r *fakeJobRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.jobs)), nil
}

type fakeApplicationRepo struct {
	mu           sync.Mutex
	applications map[int64]*models.Application
	nextID       int64

	students *fakeStudentRepo
	accounts *fakeAccountRepo
	jobs     *fakeJobRepo
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[int64]*models.Application)}
}

func (r *fakeApplicationRepo) Create(_ context.Context, application *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ap := range r.applications {
		if ap.StudentProfileID == application.StudentProfileID && ap.JobPostingID == application.JobPostingID {
			return apperrors.ErrAlreadyApplied
		}
	}
	r.nextID++
	application.ID = r.nextID
	r.applications[application.ID] = application
	return nil
}

func (r *fakeApplicationRepo) ExistsForStudentAndJob(_ context.Context, studentProfileID, jobPostingID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ap := range r.applications {
		if ap.StudentProfileID == studentProfileID && ap.JobPostingID == jobPostingID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) GetDetailByID(ctx context.Context, id int64) (*models.Application, error) {
	r.mu.Lock()
	ap, ok := r.applications[id]
	r.mu.Unlock()
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}

	detail := *ap
	if r.students != nil {
		r.students.mu.Lock()
		if profile, ok := r.students.profiles[ap.StudentProfileID]; ok {
			copied := *profile
			detail.Student = &copied
		}
		r.students.mu.Unlock()
		if detail.Student != nil && r.accounts != nil {
			if account, err := r.accounts.GetByID(ctx, detail.Student.AccountID); err == nil {
				detail.Student.Account = account
			}
		}
	}
	if r.jobs != nil {
		if job, err := r.jobs.GetByID(ctx, ap.JobPostingID); err == nil {
			detail.Job = job
		}
	}
	return &detail, nil
}

func (r *fakeApplicationRepo) ListByStudent(_ context.Context, studentProfileID int64) ([]*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Application, 0)
	for _, ap := range r.applications {
		if ap.StudentProfileID == studentProfileID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListAll(_ context.Context) ([]*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Application, 0, len(r.applications))
	for _, ap := range r.applications {
		out = append(out, ap)
	}
	return out, nil
}

func (r *fakeApplicationRepo) UpdateStatus(_ context.Context, id int64, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ap, ok := r.applications[id]
	if !ok {
		return apperrors.ErrApplicationNotFound
	}
	ap.Status = status
	return nil
}

func (r *fakeApplicationRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.applications)), nil
}

func (r *fakeApplicationRepo) removeByStudent(studentProfileID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, ap := range r.applications {
		if ap.StudentProfileID == studentProfileID {
			delete(r.applications, id)
		}
	}
}

type fakeContactRepo struct {
	mu       sync.Mutex
	messages []*models.ContactMessage
}

func (r *fakeContactRepo) Create(_ context.Context, message *models.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
	return nil
}

// fakeResumeStore keeps stored filenames in memory and mirrors the
// extension allow-list of the real store.
type fakeResumeStore struct {
	mu      sync.Mutex
	files   map[string]bool
	saveErr error
}

func newFakeResumeStore() *fakeResumeStore {
	return &fakeResumeStore{files: make(map[string]bool)}
}

func (f *fakeResumeStore) Save(fileHeader *multipart.FileHeader, username string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}
	if f.saveErr != nil {
		return "", f.saveErr
	}
	if !filestorage.AllowedExtension(fileHeader.Filename) {
		return "", apperrors.ErrResumeTypeNotAllowed
	}
	base, err := filestorage.SanitizeFilename(fileHeader.Filename)
	if err != nil {
		return "", err
	}
	stored := username + "_" + base
	f.mu.Lock()
	f.files[stored] = true
	f.mu.Unlock()
	return stored, nil
}

func (f *fakeResumeStore) Delete(storedName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.files, storedName)
	return nil
}

func (f *fakeResumeStore) FullPath(storedName string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.files[storedName] {
		return "", apperrors.ErrResumeNotFound
	}
	return "/fake/" + storedName, nil
}

func (f *fakeResumeStore) has(storedName string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.files[storedName]
}

// fakeMailer records every send attempt and returns a configurable result.
type fakeMailer struct {
	mu      sync.Mutex
	sent    []mailer.StatusUpdate
	result  mailer.Result
	nextErr string
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{result: mailer.Result{Sent: true}}
}

func (f *fakeMailer) SendStatusUpdate(_ context.Context, update mailer.StatusUpdate) mailer.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, update)
	if f.nextErr != "" {
		return mailer.Result{Sent: false, Err: f.nextErr}
	}
	return f.result
}

func (f *fakeMailer) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}
