package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/lrm2017/color-weakness-detector/internal/imaging"
	"github.com/lrm2017/color-weakness-detector/internal/pipeline"
)

// DefaultWorkers is the worker count used when Options.Workers is zero or
// negative.
const DefaultWorkers = 4

// imageExtensions are the file extensions the directory scan accepts,
// lowercase with the leading dot.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
}

// Options configures one batch run.
type Options struct {
	// InputDir is the directory scanned for images. Subdirectories are not
	// descended into.
	InputDir string

	// OutputDir, when non-empty, receives one annotated copy and one JSON
	// report per successfully analyzed image, named
	// "annotated_<original>.png" and "<original>_report.json".
	OutputDir string

	// Workers is the number of concurrent analyses. Zero selects
	// DefaultWorkers.
	Workers int

	// Cache, when non-nil, is the image cache to load through; it is left
	// intact so a caller running several batches over overlapping inputs
	// can reuse the decoded images. Nil selects a private cache that is
	// cleared when the run ends.
	Cache *imaging.ImageCache

	// Config is the per-image analysis configuration.
	Config pipeline.Config

	// Logger receives per-file progress. Nil selects a named default.
	Logger hclog.Logger
}

// Result is the outcome for one file. Exactly one of Report and Error is
// populated.
type Result struct {
	File   string           `json:"file"`
	Report *pipeline.Report `json:"report,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// Summary aggregates a whole batch run. Results are ordered by filename
// regardless of which worker finished first.
type Summary struct {
	Processed int      `json:"processed"`
	Failed    int      `json:"failed"`
	Results   []Result `json:"results"`

	// Diagnoses counts successful results per diagnosis type.
	Diagnoses map[string]int `json:"diagnoses"`
}

// Run analyzes every image in opts.InputDir with a fixed-size worker
// pool.
//
// A failed file is recorded in its Result and does not abort the batch;
// only an unreadable input directory, an invalid configuration, or
// context cancellation returns an error. The returned summary is
// deterministic for a given directory content.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = hclog.New(&hclog.LoggerOptions{Name: "batch"})
	}

	if opts.OutputDir != "" {
		if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}

	files, err := listImages(opts.InputDir)
	if err != nil {
		return nil, err
	}
	logger.Info("starting batch", "dir", opts.InputDir, "files", len(files))

	cache := opts.Cache
	if cache == nil {
		cache = imaging.NewImageCache()
		defer cache.Clear()
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if workers > len(files) && len(files) > 0 {
		workers = len(files)
	}

	jobs := make(chan string)
	results := make(chan Result, len(files))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- processOne(path, opts, cache, logger)
			}
		}()
	}

	var canceled error
feed:
	for _, f := range files {
		select {
		case <-ctx.Done():
			canceled = ctx.Err()
			break feed
		case jobs <- f:
		}
	}
	close(jobs)
	wg.Wait()
	close(results)

	if canceled != nil {
		return nil, canceled
	}

	summary := &Summary{Diagnoses: make(map[string]int)}
	for r := range results {
		summary.Results = append(summary.Results, r)
		if r.Error != "" {
			summary.Failed++
			continue
		}
		summary.Processed++
		summary.Diagnoses[string(r.Report.Diagnosis.Type)]++
	}
	sort.Slice(summary.Results, func(i, j int) bool {
		return summary.Results[i].File < summary.Results[j].File
	})

	logger.Info("batch complete", "processed", summary.Processed, "failed", summary.Failed)
	return summary, nil
}

// processOne analyzes a single file and, when an output directory is set,
// writes its annotated copy.
func processOne(path string, opts Options, cache *imaging.ImageCache, logger hclog.Logger) Result {
	name := filepath.Base(path)

	img, err := cache.Load(path)
	if err != nil {
		logger.Warn("skipping unreadable image", "file", name, "error", err)
		return Result{File: name, Error: err.Error()}
	}

	report, err := pipeline.Analyze(img, opts.Config)
	if err != nil {
		return Result{File: name, Error: err.Error()}
	}

	if opts.OutputDir != "" {
		a, err := pipeline.Annotate(img, opts.Config)
		if err != nil {
			return Result{File: name, Error: err.Error()}
		}
		out := filepath.Join(opts.OutputDir, annotatedName(name))
		if err := imaging.Save(a.Image, out); err != nil {
			return Result{File: name, Error: fmt.Sprintf("save annotated copy: %v", err)}
		}
		if err := writeReport(report, filepath.Join(opts.OutputDir, reportName(name))); err != nil {
			return Result{File: name, Error: err.Error()}
		}
		logger.Debug("wrote annotated copy", "file", name, "output", out)
	}

	logger.Debug("analyzed", "file", name, "diagnosis", report.Diagnosis.Type)
	return Result{File: name, Report: report}
}

// annotatedName maps an input filename to its annotated output name. The
// output is always PNG so the marks survive losslessly.
func annotatedName(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return "annotated_" + base + ".png"
}

// reportName maps an input filename to its per-image report name.
func reportName(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return base + "_report.json"
}

// writeReport writes one per-image report as indented JSON.
func writeReport(report *pipeline.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %v", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report: %v", err)
	}
	return nil
}

// listImages returns the image files of dir, sorted by name.
func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
