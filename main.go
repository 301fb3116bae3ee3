package main

import (
	"os"

	compress "huffar/cmd/compress"
	decompress "huffar/cmd/decompress"
	inspect "huffar/cmd/inspect"
	version "huffar/cmd/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "huffar",
	Short: "Huffman file compressor",
	Long:  "huffar compresses files with a deterministic Huffman code and restores them byte for byte.",
}

func main() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log progress to stderr")
	rootCmd.AddCommand(compress.CompressCmd)
	rootCmd.AddCommand(decompress.DecompressCmd)
	rootCmd.AddCommand(inspect.InspectCmd)
	rootCmd.AddCommand(version.VersionCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
