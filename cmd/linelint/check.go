package linelint

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/linelint/linelint/internal/config"
	"github.com/linelint/linelint/internal/engine"
	"github.com/linelint/linelint/internal/logging"
	"github.com/linelint/linelint/internal/report"
	"github.com/linelint/linelint/internal/scanner"
	"github.com/linelint/linelint/internal/types"
	"github.com/spf13/cobra"
)

var formats = map[string]bool{"text": true, "json": true, "sarif": true, "table": true}

// settings is the merged result of flags, local and global configuration.
type settings struct {
	engine        engine.Config
	format        string
	noColor       bool
	baseline      string
	failOnMissing bool
	effective     config.FileConfig
}

// loadConfigs returns the local and global file configs. An explicit
// --config replaces the local lookup and must be readable.
func loadConfigs(st *state) (local, global config.FileConfig, err error) {
	if c, err := config.LoadGlobal(); err == nil {
		global = c
	}
	if st.global.config != "" {
		local, err = config.LoadFile(st.global.config)
		if err != nil {
			return local, global, fmt.Errorf("load config: %w", err)
		}
		return local, global, nil
	}
	if c, err := config.LoadLocal("."); err == nil {
		local = c
	}
	return local, global, nil
}

func resolveSettings(cmd *cobra.Command, st *state) (settings, error) {
	var s settings
	local, global, err := loadConfigs(st)
	if err != nil {
		return s, err
	}
	fl := cmd.Flags()
	changed := func(name string) bool {
		f := fl.Lookup(name)
		return f != nil && f.Changed
	}
	cf := st.check

	maxLength := pickInt(changed("max-length"), cf.maxLength, local.MaxLength, global.MaxLength, scanner.DefaultMaxLength)
	ignoreComments := pickBool(changed("ignore-comments"), cf.ignoreComments, local.IgnoreComments, global.IgnoreComments, false)
	var starred bool
	if changed("ignore-starred-envs") {
		starred = config.ParseTruthy(cf.ignoreStarred)
	} else {
		starred = pickBool(false, false, local.IgnoreStarredEnvs, global.IgnoreStarredEnvs, false)
	}

	// environment lists accumulate across global, local and CLI
	var lists, files []string
	lists = append(lists, global.IgnoreEnvs...)
	lists = append(lists, local.IgnoreEnvs...)
	lists = append(lists, cf.ignoreEnvs...)
	files = append(files, global.IgnoreEnvsFiles...)
	files = append(files, local.IgnoreEnvsFiles...)
	files = append(files, cf.ignoreEnvsFiles...)
	regions, err := config.CollectRegions(lists, files)
	if err != nil {
		return s, err
	}

	threads := pickInt(changed("threads"), st.global.threads, local.Threads, global.Threads, 0)
	s.engine = engine.Config{
		Root: ".",
		Scanner: scanner.Config{
			MaxLength:     maxLength,
			CheckComments: !ignoreComments,
			Regions:       regions,
			Starred:       starred,
		},
		Include:         pickString(changed("include"), cf.include, local.Include, global.Include, ""),
		Exclude:         pickString(changed("exclude"), cf.exclude, local.Exclude, global.Exclude, ""),
		DefaultExcludes: pickBool(changed("default-excludes"), cf.defaultExcludes, local.DefaultExcludes, global.DefaultExcludes, true),
		Threads:         threads,
		NoCache:         cf.noCache,
		ChangedOnly:     cf.changed,
	}
	s.format = strings.ToLower(pickString(changed("format"), cf.format, local.Format, global.Format, "text"))
	if !formats[s.format] {
		return s, fmt.Errorf("unknown format %q (want text|json|sarif|table)", s.format)
	}
	s.noColor = pickBool(changed("no-color"), st.global.noColor, local.NoColor, global.NoColor, false) || !isTerminal(cmd.OutOrStdout())
	s.baseline = pickString(changed("baseline"), cf.baseline, local.Baseline, global.Baseline, "linelint.baseline.json")
	s.failOnMissing = pickBool(changed("fail-on-missing"), cf.failOnMissing, local.FailOnMissing, global.FailOnMissing, false)

	s.effective = config.FileConfig{
		MaxLength:         intPtr(maxLength),
		IgnoreComments:    boolPtr(ignoreComments),
		IgnoreEnvs:        regions,
		IgnoreStarredEnvs: boolPtr(starred),
		Include:           strPtr(s.engine.Include),
		Exclude:           strPtr(s.engine.Exclude),
		DefaultExcludes:   boolPtr(s.engine.DefaultExcludes),
		Threads:           intPtr(threads),
		Format:            strPtr(s.format),
		NoColor:           boolPtr(s.noColor),
		Baseline:          strPtr(s.baseline),
		FailOnMissing:     boolPtr(s.failOnMissing),
	}
	return s, nil
}

func runCheck(cmd *cobra.Command, st *state, args []string) error {
	s, err := resolveSettings(cmd, st)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	log := logging.New(errOut, st.global.verbose)
	s.engine.Logger = log

	base, err := report.LoadBaseline(s.baseline)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.WithError(err).Warn("ignoring unreadable baseline")
	}
	if n := len(base.Items); n > 0 {
		log.Debugf("loaded %d baseline entries from %s", n, s.baseline)
	}

	opts := report.PrintOptions{NoColor: s.noColor, ShowSource: st.check.showSource}
	var reported []types.Violation
	emit := func(fr engine.FileResult) {
		fresh := report.FilterNew(fr.Violations, base)
		reported = append(reported, fresh...)
		if s.format == "text" {
			report.PrintText(out, fresh, opts)
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := engine.Run(ctx, s.engine, args, emit)
	if err != nil {
		return err
	}

	opts.Duration = res.Duration
	opts.FilesScanned = res.FilesScanned
	opts.Cached = res.Cached
	opts.Missing = len(res.Missing)
	switch s.format {
	case "json":
		if err := report.WriteJSON(out, reported); err != nil {
			return err
		}
	case "sarif":
		if err := report.WriteSARIF(out, reported, version); err != nil {
			return fmt.Errorf("sarif error: %w", err)
		}
	case "table":
		report.PrintTable(out, reported, opts)
	default:
		if st.check.summary {
			report.PrintSummary(errOut, reported, opts)
		}
	}

	if report.ShouldFail(reported, len(res.Missing), s.failOnMissing) {
		st.exitCode = exitFindings
	}
	return nil
}

// fileExists is used by subcommands that write files next to the sources.
func fileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
