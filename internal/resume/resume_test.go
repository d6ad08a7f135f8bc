package resume

import (
	"path/filepath"
	"testing"
)

func TestExtractText_MissingFile(t *testing.T) {
	if _, err := ExtractText(filepath.Join(t.TempDir(), "nope.pdf")); err == nil {
		t.Error("expected an error for a missing PDF")
	}
}

func TestText_CachesError(t *testing.T) {
	r := New(filepath.Join(t.TempDir(), "nope.pdf"))

	_, err1 := r.Text()
	if err1 == nil {
		t.Fatal("expected an error for a missing PDF")
	}
	// Second call must return the cached result, not re-read.
	_, err2 := r.Text()
	if err2 != err1 {
		t.Errorf("Text did not cache: %v vs %v", err1, err2)
	}
}

func TestPath(t *testing.T) {
	r := New("/some/cv.pdf")
	if r.Path() != "/some/cv.pdf" {
		t.Errorf("Path = %q", r.Path())
	}
}
