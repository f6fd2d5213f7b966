package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/esimov/pixelfilter"
)

func TestBuildChain(t *testing.T) {
	chain, err := buildChain(" blur, sobel ,,", pixelfilter.DefaultParams())
	if err != nil {
		t.Fatalf("buildChain error = %v", err)
	}
	if len(chain) != 2 {
		t.Fatalf("chain has %d filters, want 2", len(chain))
	}

	if _, err := buildChain("blur,nope", pixelfilter.DefaultParams()); !errors.Is(err, pixelfilter.ErrUnknownFilter) {
		t.Errorf("buildChain error = %v, want ErrUnknownFilter", err)
	}
	if _, err := buildChain(" , ", pixelfilter.DefaultParams()); err == nil {
		t.Error("buildChain with no names should fail")
	}
}

func TestEncoderFor(t *testing.T) {
	for _, name := range []string{"a.png", "a.JPG", "a.jpeg", "a.gif", "a.bmp", "a.tif", "a.tiff"} {
		if _, err := encoderFor(name); err != nil {
			t.Errorf("encoderFor(%q) error = %v", name, err)
		}
	}
	if _, err := encoderFor("a.webp"); err == nil {
		t.Error("webp output should not be supported")
	}
}

func TestCollectInputsDirectory(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	for _, name := range []string{"a.jpg", "b.PNG", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(in, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := collectInputs(in, out)
	if err != nil {
		t.Fatalf("collectInputs error = %v", err)
	}
	want := map[string]string{
		filepath.Join(in, "a.jpg"): filepath.Join(out, "a.png"),
		filepath.Join(in, "b.PNG"): filepath.Join(out, "b.png"),
	}
	if len(got) != len(want) {
		t.Fatalf("collectInputs = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("destination of %s = %q, want %q", k, got[k], v)
		}
	}

	if _, err := collectInputs(in, filepath.Join(in, "a.jpg")); err == nil {
		t.Error("a file destination for a directory source should fail")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	src, err := pixelfilter.NewUniform(4, 3, pixelfilter.RGB{R: 10, G: 200, B: 30})
	if err != nil {
		t.Fatal(err)
	}
	for _, ext := range []string{".png", ".bmp", ".tiff"} {
		path := filepath.Join(t.TempDir(), "out"+ext)
		if err := saveImage(path, src.Image()); err != nil {
			t.Fatalf("saveImage(%s) error = %v", ext, err)
		}
		got, err := loadImage(path)
		if err != nil {
			t.Fatalf("loadImage(%s) error = %v", ext, err)
		}
		if !got.Equal(src) {
			t.Errorf("%s round trip changed the pixels", ext)
		}
	}
}
