package decompress

import (
	"fmt"
	"os"

	"huffar/pkg"
	"huffar/pkg/logger"

	"github.com/spf13/cobra"
)

var force bool

var DecompressCmd = &cobra.Command{
	Use:   "decompress [container] [output]",
	Short: "Restore a file from a Huffman container",
	Long:  "Restore a file from a Huffman container. The output defaults to the container path without its .huf extension.",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		src := args[0]
		out := ""
		if len(args) == 2 {
			out = args[1]
		}

		log := logger.Discard()
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log = logger.New()
		}

		st, err := pkg.DecompressFile(src, out, pkg.Options{Force: force, Logger: log})
		if err != nil {
			log.Errorf("decompress %s: %v", src, err)
			fmt.Printf("Error decompressing %s: %s\n", src, pkg.Classify(err).Message())
			os.Exit(1)
		}
		fmt.Printf("Successfully restored %s to %s (%d bytes)\n", src, st.Output, st.OriginalSize)
	},
}

func init() {
	DecompressCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing output file")
}
