package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

const Version = "0.1.0"

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "View huffar's version",
	Long:  "Display the version of huffar and its container format.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("huffar version %s\n", Version)
		fmt.Println("container format HFZ v1")
		return nil
	},
}
