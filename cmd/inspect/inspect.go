package inspect

import (
	"fmt"
	"os"
	"strconv"

	"huffar/pkg"

	"github.com/spf13/cobra"
)

var InspectCmd = &cobra.Command{
	Use:   "inspect [container]",
	Short: "View a Huffman container",
	Long:  "Inspect the header and code table of a Huffman container",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]
		quiet, _ := cmd.Flags().GetBool("quiet")

		f, err := os.Open(path)
		if err != nil {
			fmt.Printf("Error inspecting %s: %s\n", path, pkg.Classify(err).Message())
			os.Exit(1)
		}
		defer f.Close()

		c, err := pkg.ReadContainer(f)
		if err != nil {
			fmt.Printf("Error inspecting %s: %s\n", path, pkg.Classify(err).Message())
			os.Exit(1)
		}

		fmt.Printf("Container %s:\n", path)
		fmt.Printf("\tSymbols: %d\n\tDecoded: %d bytes\n\tPayload: %d bytes\n\tPadding: %d bits\n\tFingerprint: %016x\n",
			len(c.Frequencies), c.DecodedLen(), len(c.Payload), c.Padding, c.Fingerprint())
		if quiet || len(c.Frequencies) == 0 {
			return
		}

		root, err := pkg.BuildTree(c.Frequencies)
		if err != nil {
			fmt.Printf("Error inspecting %s: %s\n", path, pkg.Classify(err).Message())
			os.Exit(1)
		}
		codes := pkg.GenerateCodes(root)
		fmt.Println("=====================")
		for _, s := range c.Frequencies.Symbols() {
			fmt.Printf("\t0x%02x %s\tfreq %d\tcode %s\n", s, symbolLabel(s), c.Frequencies[s], codes[s])
		}
	},
}

// symbolLabel quotes s as a single raw byte, so bytes above 0x7f show as
// escapes rather than Latin-1 characters.
func symbolLabel(s byte) string {
	return strconv.Quote(string([]byte{s}))
}

func init() {
	InspectCmd.Flags().BoolP("quiet", "Q", false, "Only print the header summary")
}
