package cmd

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/awaller/nab/internal/action"
	"github.com/awaller/nab/internal/organize"
	"github.com/spf13/cobra"
)

var (
	watchMoveTo string
	watchRoot   string
	watchSettle time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch a directory and apply the action to files as they appear",
	Long: `Watches the directory (and subdirectories) and applies the configured
action to each file once it has settled. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		act := cfg.Action
		root := cfg.Root
		if watchMoveTo != "" {
			act = action.Action{MoveTo: watchMoveTo}
		}
		if watchRoot != "" {
			root = watchRoot
		}

		org := &organize.Organizer{
			Action:   act,
			Root:     root,
			Algo:     cfg.Algorithm,
			Observer: newObserver(),
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		info("Watching %s — press Ctrl-C to stop.", args[0])
		return org.Watch(ctx, args[0], watchSettle, func(path string, res action.Result, err error) {
			if err != nil {
				errorf("%s: %s", path, err)
				return
			}
			if res.Outcome != action.Nothing {
				info("  %s  %s", res.Outcome, res.Path)
			}
		})
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchMoveTo, "move-to", "", "move new files under this directory (overrides config)")
	watchCmd.Flags().StringVar(&watchRoot, "root", "", "ancestor directory preserved by rooted moves")
	watchCmd.Flags().DurationVar(&watchSettle, "settle", organize.DefaultSettle, "quiet period before a new file is processed")
	rootCmd.AddCommand(watchCmd)
}
