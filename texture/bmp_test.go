package texture

import (
	"errors"
	"testing"

	"github.com/cosmcif/raytracer/render"
)

func TestLoadBitmapMissingResourceReturnsIOError(t *testing.T) {
	b, err := LoadBitmap("/nonexistent/path/does-not-exist.bmp", 1, 1)
	if b != nil {
		t.Fatalf("expected a nil Bitmap when the resource cannot be opened, got %v", b)
	}

	var renderErr *render.RenderError
	if !errors.As(err, &renderErr) {
		t.Fatalf("expected a *render.RenderError, got %v (%T)", err, err)
	}
	if renderErr.Kind != render.IOError {
		t.Fatalf("expected IOError, got %v", renderErr.Kind)
	}
}
