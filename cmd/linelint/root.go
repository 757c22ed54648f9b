package linelint

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// Exit statuses returned by Run.
const (
	exitOK       = 0
	exitFindings = 1
	exitError    = 2
)

type globalFlags struct {
	config  string
	noColor bool
	verbose bool
	threads int
}

type checkFlags struct {
	maxLength       int
	ignoreComments  bool
	ignoreEnvs      []string
	ignoreEnvsFiles []string
	ignoreStarred   string
	format          string
	include         string
	exclude         string
	defaultExcludes bool
	noCache         bool
	changed         bool
	baseline        string
	showSource      bool
	summary         bool
	failOnMissing   bool
}

// state carries the flag values and outcome of one invocation.
type state struct {
	global   globalFlags
	check    checkFlags
	exitCode int
}

// Execute runs the linelint CLI and exits the process with its status.
// It should be called by the main package.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Run executes the CLI with args and returns the process exit status:
// 0 when every file passed, 1 when violations were reported and 2 on
// errors such as bad flags or an unreadable environment list.
func Run(args []string, stdout, stderr io.Writer) int {
	root, st := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitError
	}
	return st.exitCode
}

func newRootCmd() (*cobra.Command, *state) {
	st := &state{}
	root := &cobra.Command{
		Use:   "linelint [files...]",
		Short: "Report overlong lines in TeX sources",
		Long: `linelint checks TeX/LaTeX sources for lines longer than a maximum length.
Environments such as figures or equations and, optionally, comment lines
can be exempted. Directories are searched for *.tex files.`,
		Args:          cobra.ArbitraryArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, st, args)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&st.global.config, "config", "", "config file (default: .linelint.yml, then $XDG_CONFIG_HOME/linelint/config.yml)")
	pf.BoolVar(&st.global.noColor, "no-color", false, "disable colorized output (on a terminal the file:line prefix is bold)")
	pf.BoolVarP(&st.global.verbose, "verbose", "v", false, "log debug details to stderr")
	pf.IntVar(&st.global.threads, "threads", 0, "files checked in parallel (0 = GOMAXPROCS)")

	addCheckFlags(root, &st.check)
	root.Flags().StringVar(&st.check.format, "format", "text", "output format: text|json|sarif|table")
	root.Flags().BoolVar(&st.check.showSource, "show-source", false, "print each offending line below its report")
	root.Flags().BoolVar(&st.check.summary, "summary", false, "print counts and timing to stderr")

	root.AddCommand(newBaselineCmd(st))
	root.AddCommand(newConfigCmd(st))
	root.AddCommand(newCompletionCmd(root))
	return root, st
}

// addCheckFlags registers the flags that shape which lines are reported.
// They are shared by the root command and "baseline update".
func addCheckFlags(cmd *cobra.Command, f *checkFlags) {
	fs := cmd.Flags()
	fs.IntVar(&f.maxLength, "max-length", 80, "maximum line length")
	fs.BoolVar(&f.ignoreComments, "ignore-comments", false, "do not check comment lines")
	fs.StringArrayVar(&f.ignoreEnvs, "ignore-envs", nil, "environments to ignore (comma or space separated, repeatable)")
	fs.StringArrayVar(&f.ignoreEnvsFiles, "ignore-envs-file", nil, "file listing environments to ignore, one per line (repeatable)")
	fs.StringVar(&f.ignoreStarred, "ignore-starred-envs", "", "any value but 0/f/false/n/no/off makes ignored environments also match their starred form")
	fs.StringVar(&f.include, "include", "", "comma-separated globs selecting files inside directories (default **/*.tex)")
	fs.StringVar(&f.exclude, "exclude", "", "comma-separated globs excluded inside directories")
	fs.BoolVar(&f.defaultExcludes, "default-excludes", true, "skip build, VCS and minted cache directories")
	fs.BoolVar(&f.noCache, "no-cache", false, "disable the cache of unchanged clean files (kept in .git/linelintcache.json, or .linelintcache.json outside a git repository)")
	fs.BoolVar(&f.changed, "changed", false, "only check files git reports as changed")
	fs.StringVar(&f.baseline, "baseline", "linelint.baseline.json", "baseline file of accepted violations")
	fs.BoolVar(&f.failOnMissing, "fail-on-missing", false, "exit 1 when an input file does not exist")
}
