package linelint

import (
	"fmt"
	"os"

	"github.com/linelint/linelint/internal/config"
	"github.com/linelint/linelint/internal/files"
	"github.com/spf13/cobra"
)

func newConfigCmd(st *state) *cobra.Command {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}

	var show checkFlags
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration after merging files and flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sub := &state{global: st.global, check: show}
			s, err := resolveSettings(cmd, sub)
			if err != nil {
				return err
			}
			b, err := config.Marshal(s.effective)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	addCheckFlags(showCmd, &show)
	cfgCmd.AddCommand(showCmd)

	var (
		output    string
		maxLength int
		envs      []string
		starred   bool
		force     bool
		addIgnore bool
	)
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .linelint.yml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if fileExists(output) && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", output)
			}
			var regions []string
			for _, e := range envs {
				regions = append(regions, config.ParseRegionList(e)...)
			}
			fc := config.FileConfig{
				MaxLength:         intPtr(maxLength),
				IgnoreEnvs:        regions,
				IgnoreStarredEnvs: boolPtr(starred),
			}
			b, err := config.Marshal(fc)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, b, 0644); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Wrote", output)
			if addIgnore {
				for _, p := range files.GeneratedIgnores() {
					if err := files.AppendIgnore(".", p); err != nil {
						return fmt.Errorf("update .gitignore: %w", err)
					}
				}
			}
			return nil
		},
	}
	initCmd.Flags().StringVar(&output, "output", ".linelint.yml", "output file path")
	initCmd.Flags().IntVar(&maxLength, "max-length", 80, "maximum line length")
	initCmd.Flags().StringArrayVar(&envs, "ignore-envs", []string{"figure", "table", "equation", "align"}, "environments to ignore")
	initCmd.Flags().BoolVar(&starred, "ignore-starred-envs", true, "also ignore starred environments")
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	initCmd.Flags().BoolVar(&addIgnore, "add-ignore", false, "add the cache file to .gitignore")
	cfgCmd.AddCommand(initCmd)

	return cfgCmd
}
