package cmd

import (
	"fmt"

	"github.com/awaller/nab/internal/digest"
	"github.com/spf13/cobra"
)

var hashAlgo string

var hashCmd = &cobra.Command{
	Use:   "hash <file>...",
	Short: "Print content digests",
	Long: `Digests each file with the selected algorithm and prints one line per
file in "<hex>  <path>" form.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, file := range args {
			h, err := digest.New(hashAlgo)
			if err != nil {
				return err
			}
			sum, err := digest.SumFile(file, h)
			if err != nil {
				return err
			}
			fmt.Printf("%s  %s\n", sum, file)
		}
		return nil
	},
}

func init() {
	hashCmd.Flags().StringVar(&hashAlgo, "algo", "sha256", "hash algorithm: sha256, sha1, md5, blake3")
	rootCmd.AddCommand(hashCmd)
}
