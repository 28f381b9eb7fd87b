package cmd

import (
	"fmt"

	"github.com/awaller/nab/internal/action"
	"github.com/awaller/nab/internal/organize"
	"github.com/spf13/cobra"
)

var (
	tidyDelete bool
	tidyMoveTo string
	tidyRoot   string
	tidyDedup  bool
	tidyDryRun bool
)

var tidyCmd = &cobra.Command{
	Use:   "tidy <dir>",
	Short: "Apply the configured action to every file under a directory",
	Long: `Walks the directory and applies the configured action to every regular
file. Flags override the action from the config file. With --dedup, files
whose content duplicates an earlier file are deleted instead, keeping the
first copy in walk order.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		act := cfg.Action
		root := cfg.Root
		if tidyDelete || tidyMoveTo != "" {
			act = action.Action{Delete: tidyDelete, MoveTo: tidyMoveTo}
		}
		if tidyRoot != "" {
			root = tidyRoot
		}

		org := &organize.Organizer{
			Action:   act,
			Root:     root,
			Algo:     cfg.Algorithm,
			Dedup:    tidyDedup,
			DryRun:   tidyDryRun,
			Observer: newObserver(),
		}

		result, err := org.Scan(args[0])
		if err != nil {
			return err
		}

		if tidyDryRun {
			info("Dry run — no files touched.")
		}

		counts := map[action.Outcome]int{}
		for _, e := range result.Applied {
			counts[e.Result.Outcome]++
			switch {
			case e.DuplicateOf != "":
				info("  duplicate  %s (copy of %s)", e.File, e.DuplicateOf)
			case e.Result.Outcome == action.Nothing:
				detail("unchanged  %s", e.File)
			default:
				info("  %s  %s", e.Result.Outcome, e.File)
			}
		}
		for _, fe := range result.Errors {
			errorf("%s: %s", fe.File, fe.Err)
		}

		info("")
		info("Tidy complete: %d moved, %d deleted, %d untouched, %d errors.",
			counts[action.Moved], counts[action.Deleted], counts[action.Nothing], len(result.Errors))

		if len(result.Errors) > 0 {
			return fmt.Errorf("%d file(s) failed", len(result.Errors))
		}
		return nil
	},
}

func init() {
	tidyCmd.Flags().BoolVar(&tidyDelete, "delete", false, "delete processed files")
	tidyCmd.Flags().StringVar(&tidyMoveTo, "move-to", "", "move processed files under this directory")
	tidyCmd.Flags().StringVar(&tidyRoot, "root", "", "ancestor directory preserved by rooted moves")
	tidyCmd.Flags().BoolVar(&tidyDedup, "dedup", false, "delete files whose content duplicates an earlier file")
	tidyCmd.Flags().BoolVar(&tidyDryRun, "dry-run", false, "show what would happen without touching files")
	rootCmd.AddCommand(tidyCmd)
}
