package batch

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/lrm2017/color-weakness-detector/internal/imaging"
	"github.com/lrm2017/color-weakness-detector/internal/pipeline"
)

func writeTestImage(t *testing.T, dir, name string, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("failed to create %s: %v", name, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode %s: %v", name, err)
	}
}

func quietLogger() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{Level: hclog.Off})
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeTestImage(t, dir, "a.png", color.RGBA{255, 0, 0, 255})
	writeTestImage(t, dir, "b.png", color.RGBA{0, 0, 255, 255})
	writeTestImage(t, dir, "c.png", color.RGBA{128, 128, 128, 255})
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644)

	summary, err := Run(context.Background(), Options{
		InputDir: dir,
		Workers:  2,
		Config:   pipeline.DefaultConfig(),
		Logger:   quietLogger(),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if summary.Processed != 3 {
		t.Errorf("Processed = %d, want 3", summary.Processed)
	}
	if summary.Failed != 0 {
		t.Errorf("Failed = %d, want 0", summary.Failed)
	}
	if len(summary.Results) != 3 {
		t.Fatalf("result count = %d, want 3", len(summary.Results))
	}
	for i, want := range []string{"a.png", "b.png", "c.png"} {
		if summary.Results[i].File != want {
			t.Errorf("result %d file = %s, want %s", i, summary.Results[i].File, want)
		}
	}

	// A solid red image and a solid blue image dominate their respective
	// channels; the gray image has no chromatic sample at all.
	total := 0
	for _, n := range summary.Diagnoses {
		total += n
	}
	if total != 3 {
		t.Errorf("diagnosis counts sum to %d, want 3", total)
	}
}

func TestRun_FailedFileDoesNotAbort(t *testing.T) {
	dir := t.TempDir()
	writeTestImage(t, dir, "good.png", color.RGBA{255, 0, 0, 255})
	os.WriteFile(filepath.Join(dir, "broken.png"), []byte("not an image"), 0o644)

	summary, err := Run(context.Background(), Options{
		InputDir: dir,
		Config:   pipeline.DefaultConfig(),
		Logger:   quietLogger(),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if summary.Processed != 1 || summary.Failed != 1 {
		t.Errorf("processed/failed = %d/%d, want 1/1", summary.Processed, summary.Failed)
	}
	if summary.Results[0].File != "broken.png" || summary.Results[0].Error == "" {
		t.Errorf("broken file should carry an error: %+v", summary.Results[0])
	}
	if summary.Results[1].Report == nil {
		t.Error("good file should carry a report")
	}
}

func TestRun_WritesAnnotatedCopies(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeTestImage(t, in, "scene.png", color.RGBA{255, 0, 0, 255})

	_, err := Run(context.Background(), Options{
		InputDir:  in,
		OutputDir: out,
		Config:    pipeline.DefaultConfig(),
		Logger:    quietLogger(),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(out, "annotated_scene.png")); err != nil {
		t.Errorf("annotated copy missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "scene_report.json")); err != nil {
		t.Errorf("per-image report missing: %v", err)
	}
}

func TestRun_SharedCacheRetainsImages(t *testing.T) {
	dir := t.TempDir()
	writeTestImage(t, dir, "a.png", color.RGBA{255, 0, 0, 255})
	writeTestImage(t, dir, "b.png", color.RGBA{0, 255, 255, 255})

	cache := imaging.NewImageCache()
	_, err := Run(context.Background(), Options{
		InputDir: dir,
		Cache:    cache,
		Config:   pipeline.DefaultConfig(),
		Logger:   quietLogger(),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// A caller-provided cache is loaded through and left intact for reuse.
	if cache.Len() != 2 {
		t.Errorf("cache holds %d images after run, want 2", cache.Len())
	}
}

func TestRun_CreatesOutputDir(t *testing.T) {
	in := t.TempDir()
	writeTestImage(t, in, "scene.png", color.RGBA{255, 0, 0, 255})
	out := filepath.Join(t.TempDir(), "nested", "annotated")

	summary, err := Run(context.Background(), Options{
		InputDir:  in,
		OutputDir: out,
		Config:    pipeline.DefaultConfig(),
		Logger:    quietLogger(),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Failed != 0 {
		t.Errorf("Failed = %d, want 0", summary.Failed)
	}
	if _, err := os.Stat(filepath.Join(out, "annotated_scene.png")); err != nil {
		t.Errorf("annotated copy missing from created directory: %v", err)
	}
}

func TestRun_UnwritableOutputDir(t *testing.T) {
	in := t.TempDir()
	writeTestImage(t, in, "scene.png", color.RGBA{255, 0, 0, 255})

	// A regular file where the output directory should go makes MkdirAll
	// fail, which must abort the run instead of failing every file.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to create blocker file: %v", err)
	}

	_, err := Run(context.Background(), Options{
		InputDir:  in,
		OutputDir: filepath.Join(blocker, "out"),
		Config:    pipeline.DefaultConfig(),
		Logger:    quietLogger(),
	})
	if err == nil {
		t.Error("Run should fail when the output directory cannot be created")
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	cfg.Mode = "bogus"
	_, err := Run(context.Background(), Options{
		InputDir: t.TempDir(),
		Config:   cfg,
		Logger:   quietLogger(),
	})
	if err == nil {
		t.Error("Run should reject an invalid config")
	}
}

func TestRun_MissingDirectory(t *testing.T) {
	_, err := Run(context.Background(), Options{
		InputDir: "/nonexistent/input",
		Config:   pipeline.DefaultConfig(),
		Logger:   quietLogger(),
	})
	if err == nil {
		t.Error("Run should fail for a missing input directory")
	}
}

func TestRun_Canceled(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a.png", "b.png", "c.png", "d.png"} {
		writeTestImage(t, dir, n, color.RGBA{255, 0, 0, 255})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Options{
		InputDir: dir,
		Workers:  1,
		Config:   pipeline.DefaultConfig(),
		Logger:   quietLogger(),
	})
	if err == nil {
		t.Error("Run should report cancellation")
	}
}

func TestRun_Deterministic(t *testing.T) {
	dir := t.TempDir()
	writeTestImage(t, dir, "x.png", color.RGBA{255, 0, 0, 255})
	writeTestImage(t, dir, "y.png", color.RGBA{0, 255, 255, 255})

	opts := Options{InputDir: dir, Workers: 2, Config: pipeline.DefaultConfig(), Logger: quietLogger()}
	first, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	second, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run rerun failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two runs over the same directory produced different summaries")
	}
}

func TestAnnotatedName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"plate.jpg", "annotated_plate.png"},
		{"scene.png", "annotated_scene.png"},
		{"noext", "annotated_noext.png"},
	}
	for _, tt := range tests {
		if got := annotatedName(tt.in); got != tt.want {
			t.Errorf("annotatedName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
