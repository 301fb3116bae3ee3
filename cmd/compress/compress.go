package compress

import (
	"fmt"
	"os"

	"huffar/pkg"
	"huffar/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	output  string
	force   bool
	workers int
)

var CompressCmd = &cobra.Command{
	Use:   "compress [files...]",
	Short: "Compress files with Huffman coding",
	Long:  "Compress one or more files. Each file is written next to its source with a .huf extension unless -O is given.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Discard()
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log = logger.New()
		}

		results, err := pkg.CompressFiles(args, pkg.Options{
			Output:  output,
			Force:   force,
			Workers: workers,
			Logger:  log,
		})
		if err != nil {
			fmt.Printf("Error: %s\n", err)
			cmd.Usage()
			os.Exit(2)
		}

		failed := false
		for _, r := range results {
			if r.Err != nil {
				failed = true
				fmt.Printf("Error compressing %s: %s\n", r.Stats.Input, pkg.Classify(r.Err).Message())
				continue
			}
			fmt.Printf("%s -> %s\n\tOriginal Size: %d bytes\n\tReduced Size: %d bytes (%.1f%%)\n",
				r.Stats.Input, r.Stats.Output, r.Stats.OriginalSize, r.Stats.CompressedSize, 100*r.Stats.Ratio())
		}
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	CompressCmd.Flags().StringVarP(&output, "output", "O", "", "Output path (single input only)")
	CompressCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing output files")
	CompressCmd.Flags().IntVarP(&workers, "workers", "w", 0, "Number of compression workers (0 = auto)")
}
