package filestorage

import (
	"bytes"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/campusworks/placementcell/internal/pkg/apperrors"
)

// buildFileHeader assembles a real multipart.FileHeader the way gin would
// hand it to a handler.
func buildFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("resume", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("writing part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing writer: %v", err)
	}

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("ReadForm: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["resume"]
	if len(files) != 1 {
		t.Fatalf("expected 1 file header, got %d", len(files))
	}
	return files[0]
}

func TestAllowedExtension(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"resume.pdf", true},
		{"Resume.PDF", true},
		{"resume.pdf.exe", false},
		{"resume.docx", false},
		{"resume", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := AllowedExtension(tt.filename); got != tt.want {
			t.Errorf("AllowedExtension(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain", "resume.pdf", "resume.pdf", false},
		{"spaces collapsed", "my resume.pdf", "my_resume.pdf", false},
		{"path stripped", "../../etc/passwd.pdf", "passwd.pdf", false},
		{"windows path stripped", `C:\Users\eve\cv.pdf`, "cv.pdf", false},
		{"only unsafe chars", "???", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeFilename(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("SanitizeFilename(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("SanitizeFilename(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLocalStorageSave(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	header := buildFileHeader(t, "resume.pdf", []byte("%PDF-1.4 fake"))
	storedName, err := store.Save(header, "alice")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if storedName != "alice_resume.pdf" {
		t.Errorf("stored name = %q, want %q", storedName, "alice_resume.pdf")
	}

	path, err := store.FullPath(storedName)
	if err != nil {
		t.Fatalf("FullPath after save: %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(content) != "%PDF-1.4 fake" {
		t.Errorf("saved content = %q", content)
	}
}

func TestLocalStorageSaveRejectsNonPDF(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	header := buildFileHeader(t, "resume.docx", []byte("word"))
	if _, err := store.Save(header, "alice"); !errors.Is(err, apperrors.ErrResumeTypeNotAllowed) {
		t.Errorf("Save(.docx) error = %v, want ErrResumeTypeNotAllowed", err)
	}
}

func TestLocalStorageSaveNilHeader(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	storedName, err := store.Save(nil, "alice")
	if err != nil {
		t.Fatalf("Save(nil): %v", err)
	}
	if storedName != "" {
		t.Errorf("Save(nil) stored name = %q, want empty", storedName)
	}
}

func TestLocalStorageDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	target := filepath.Join(dir, "alice_resume.pdf")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}

	if err := store.Delete("alice_resume.pdf"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Errorf("file still present after delete")
	}

	// deleting again is a no-op
	if err := store.Delete("alice_resume.pdf"); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestLocalStorageFullPathRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	// A secret outside the storage directory must stay unreachable.
	outside := filepath.Join(dir, "..", "secret.pdf")
	if err := os.WriteFile(outside, []byte("secret"), 0o644); err != nil {
		t.Fatalf("seeding outside file: %v", err)
	}
	t.Cleanup(func() { _ = os.Remove(outside) })

	for _, name := range []string{"..", ".", "", "../secret.pdf", "../../secret.pdf"} {
		if _, err := store.FullPath(name); err == nil {
			t.Errorf("FullPath(%q) expected error", name)
		}
	}

	if _, err := store.FullPath("missing.pdf"); !errors.Is(err, apperrors.ErrResumeNotFound) {
		t.Errorf("FullPath(missing) error = %v, want ErrResumeNotFound", err)
	}
}
