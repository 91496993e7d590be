package texture

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveExactStem(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Foo.png")
	writeFile(t, dir, "other.png")

	path, err := Resolve(dir, "Foo")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got, want := filepath.Base(path), "Foo.png"; got != want {
		t.Errorf("Resolve = %q, want %q", got, want)
	}
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "nOISE.JPG")

	path, err := Resolve(dir, "Noise")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got, want := filepath.Base(path), "nOISE.JPG"; got != want {
		t.Errorf("Resolve = %q, want %q", got, want)
	}
}

func TestResolveAnyExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "donut.webp")

	if _, err := Resolve(dir, "donut"); err != nil {
		t.Errorf("Resolve: %v", err)
	}
}

func TestResolveNoMatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "unrelated.png")
	writeFile(t, dir, "Foobar.png") // stem must match whole, not prefix
	writeFile(t, dir, "Foo")        // no extension, not a candidate

	_, err := Resolve(dir, "Foo")
	if !errors.Is(err, ErrNoMatch) {
		t.Errorf("Resolve error = %v, want ErrNoMatch", err)
	}
}

func TestResolveMissingDir(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "gone"), "Foo")
	if !errors.Is(err, ErrNoMatch) {
		t.Errorf("Resolve error = %v, want ErrNoMatch", err)
	}
}

func TestVflipReversesRowOrder(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 2; x++ {
			src.SetRGBA(x, y, color.RGBA{R: uint8(10*y + x), A: 255})
		}
	}

	flipped := vflip(src)
	for y := 0; y < 3; y++ {
		for x := 0; x < 2; x++ {
			want := src.RGBAAt(x, 2-y)
			if got := flipped.RGBAAt(x, y); got != want {
				t.Errorf("flipped (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestVflipSingleRowIsIdentity(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 1, A: 255})
	src.SetRGBA(2, 0, color.RGBA{B: 9, A: 255})

	flipped := vflip(src)
	for x := 0; x < 3; x++ {
		if got, want := flipped.RGBAAt(x, 0), src.RGBAAt(x, 0); got != want {
			t.Errorf("flipped (%d,0) = %v, want %v", x, got, want)
		}
	}
}

func TestResolveSkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "Foo.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	_, err := Resolve(dir, "Foo")
	if !errors.Is(err, ErrNoMatch) {
		t.Errorf("Resolve error = %v, want ErrNoMatch", err)
	}
}
