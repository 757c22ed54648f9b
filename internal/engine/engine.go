package engine

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/linelint/linelint/internal/cache"
	"github.com/linelint/linelint/internal/git"
	"github.com/linelint/linelint/internal/scanner"
	"github.com/linelint/linelint/internal/types"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Config controls which files are checked and how.
type Config struct {
	// Root anchors the cache and the git worktree lookup. Defaults to ".".
	Root            string
	Scanner         scanner.Config
	Include         string
	Exclude         string
	DefaultExcludes bool
	Threads         int
	NoCache         bool
	// ChangedOnly limits targets to files git reports as changed under Root.
	ChangedOnly bool
	Logger      logrus.FieldLogger
}

// FileResult is the outcome for one target.
type FileResult struct {
	Path        string
	Violations  []types.Violation
	Failed      bool
	Warnings    int
	Missing     bool
	Cached      bool
	Err         error
	fingerprint string
}

// Result aggregates every target of a run.
type Result struct {
	Files        []FileResult
	Violations   []types.Violation
	Missing      []string
	FilesScanned int
	Cached       int
	Failed       bool
	Duration     time.Duration
}

// Run checks every target in args and calls emit once per target, in
// argument order, as soon as that target and all before it are done.
// Files are scanned concurrently; emit is never called concurrently.
func Run(ctx context.Context, cfg Config, args []string, emit func(FileResult)) (Result, error) {
	var result Result
	started := time.Now()
	log := cfg.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	if cfg.Root == "" {
		cfg.Root = "."
	}
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return result, err
	}

	scnr, err := scanner.New(cfg.Scanner, scanner.WithLogger(log))
	if err != nil {
		return result, fmt.Errorf("scanner: %w", err)
	}

	targets, err := expandTargets(ctx, cfg, args)
	if err != nil {
		return result, err
	}
	if cfg.ChangedOnly {
		targets, err = keepChanged(root, targets)
		if err != nil {
			return result, err
		}
	}

	var db cache.DB
	if !cfg.NoCache {
		db, _ = cache.Load(root)
	} else {
		db.Entries = map[string]string{}
	}
	settings := Settings(cfg.Scanner)

	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	slots := make([]chan FileResult, len(targets))
	for i := range slots {
		slots[i] = make(chan FileResult, 1)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	go func() {
		for i, t := range targets {
			g.Go(func() error {
				slots[i] <- checkFile(gctx, scnr, db, settings, cfg.NoCache, t)
				return nil
			})
		}
	}()

	updated := map[string]string{}
	for i := range targets {
		var fr FileResult
		select {
		case fr = <-slots[i]:
		case <-ctx.Done():
			return result, ctx.Err()
		}
		switch {
		case fr.Missing:
			log.WithField("file", fr.Path).Error("cannot find file")
			result.Missing = append(result.Missing, fr.Path)
		case fr.Err != nil:
			log.WithField("file", fr.Path).WithError(fr.Err).Error("cannot read file")
		case fr.Cached:
			result.Cached++
			log.WithField("file", fr.Path).Debug("unchanged since last clean run")
		default:
			result.FilesScanned++
			// files with nesting warnings are rechecked so the warning repeats
			if !fr.Failed && fr.Warnings == 0 && fr.fingerprint != "" {
				updated[fr.Path] = fr.fingerprint
			}
		}
		if fr.Failed {
			result.Failed = true
		}
		result.Violations = append(result.Violations, fr.Violations...)
		result.Files = append(result.Files, fr)
		if emit != nil {
			emit(fr)
		}
	}
	_ = g.Wait()

	result.Duration = time.Since(started)
	if !cfg.NoCache {
		dirty := len(updated) > 0
		for _, fr := range result.Files {
			if _, ok := db.Entries[fr.Path]; ok && (fr.Failed || fr.Warnings > 0) {
				delete(db.Entries, fr.Path)
				dirty = true
			}
		}
		for k, v := range updated {
			db.Entries[k] = v
		}
		if dirty {
			if err := cache.Save(root, db); err != nil {
				log.WithError(err).Debug("cache not saved")
			}
		}
	}
	return result, nil
}

func checkFile(ctx context.Context, scnr *scanner.Scanner, db cache.DB, settings string, noCache bool, t target) FileResult {
	fr := FileResult{Path: t.Path, Missing: t.Missing}
	if t.Missing {
		return fr
	}
	if err := ctx.Err(); err != nil {
		fr.Err = err
		return fr
	}
	data, err := os.ReadFile(t.Path)
	if err != nil {
		fr.Err = err
		return fr
	}
	if !noCache {
		fr.fingerprint = cache.Fingerprint(settings, data)
		if db.Fresh(t.Path, fr.fingerprint) {
			fr.Cached = true
			return fr
		}
	}
	res, err := scnr.Scan(bytes.NewReader(data), t.Path)
	if err != nil {
		fr.Err = err
		return fr
	}
	fr.Violations = res.Violations
	fr.Failed = res.Failed
	fr.Warnings = res.Warnings
	return fr
}

func keepChanged(root string, targets []target) ([]target, error) {
	changed, err := git.ChangedFiles(root)
	if err != nil {
		return nil, fmt.Errorf("changed files: %w", err)
	}
	set := make(map[string]bool, len(changed))
	for _, p := range changed {
		set[p] = true
		if real, err := filepath.EvalSymlinks(p); err == nil {
			set[real] = true
		}
	}
	var out []target
	for _, t := range targets {
		if t.Missing || set[t.Path] {
			out = append(out, t)
			continue
		}
		if real, err := filepath.EvalSymlinks(t.Path); err == nil && set[real] {
			out = append(out, t)
		}
	}
	return out, nil
}

// Settings renders the parts of cfg that influence results, for cache keys.
func Settings(cfg scanner.Config) string {
	regions := append([]string(nil), cfg.Regions...)
	sort.Strings(regions)
	return fmt.Sprintf("max=%d;comments=%t;starred=%t;regions=%s",
		cfg.MaxLength, cfg.CheckComments, cfg.Starred, strings.Join(regions, ","))
}
