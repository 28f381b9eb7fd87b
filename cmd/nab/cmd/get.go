package cmd

import (
	"fmt"
	"os"

	"github.com/awaller/nab/internal/action"
	"github.com/awaller/nab/internal/fetch"
	"github.com/spf13/cobra"
)

var getDir string

var getCmd = &cobra.Command{
	Use:   "get <url>...",
	Short: "Download one or more URLs",
	Long: `Downloads each URL into the download directory. File names come from the
Content-Disposition header when present, otherwise from the URL path; name
collisions get a numeric suffix spliced in before the extension. Each
download is digested and reported with its hash, then the configured
action (if any) is applied to the landed file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		dir := getDir
		if dir == "" {
			dir = cfg.Dir
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}

		f := &fetch.Fetcher{
			MaxSize:   cfg.MaxSize,
			UserAgent: cfg.UserAgent,
			Algo:      cfg.Algorithm,
			Observer:  newObserver(),
		}

		failed := 0
		for _, u := range args {
			dl, err := f.Fetch(cmd.Context(), u, dir)
			if err != nil {
				errorf("%s: %s", u, err)
				failed++
				continue
			}
			info("  %s  %s (%d bytes)", dl.Digest, dl.Path, dl.Size)

			res, err := cfg.Action.Execute(dl.Path, cfg.Root, newObserver())
			if err != nil {
				errorf("%s: %s", dl.Path, err)
				failed++
				continue
			}
			if res.Outcome != action.Nothing {
				detail("%s  %s", res.Outcome, res.Path)
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d download(s) failed", failed)
		}
		return nil
	},
}

func init() {
	getCmd.Flags().StringVar(&getDir, "dir", "", "download directory (overrides config)")
	rootCmd.AddCommand(getCmd)
}
