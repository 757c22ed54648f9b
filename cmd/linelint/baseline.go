package linelint

import (
	"fmt"

	"github.com/linelint/linelint/internal/engine"
	"github.com/linelint/linelint/internal/logging"
	"github.com/linelint/linelint/internal/report"
	"github.com/spf13/cobra"
)

func newBaselineCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Manage baselines",
	}

	var f checkFlags
	update := &cobra.Command{
		Use:   "update [files...]",
		Short: "Record the current violations as accepted",
		RunE: func(cmd *cobra.Command, args []string) error {
			sub := &state{global: st.global, check: f}
			s, err := resolveSettings(cmd, sub)
			if err != nil {
				return err
			}
			s.engine.Logger = logging.New(cmd.ErrOrStderr(), st.global.verbose)
			// a baseline must see every violation, not only files changed since the last clean run
			s.engine.NoCache = true
			res, err := engine.Run(cmd.Context(), s.engine, args, nil)
			if err != nil {
				return err
			}
			if err := report.SaveBaseline(s.baseline, res.Violations); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Baseline updated: %d entries in %s\n", len(res.Violations), s.baseline)
			return nil
		},
	}
	addCheckFlags(update, &f)

	cmd.AddCommand(update)
	return cmd
}
