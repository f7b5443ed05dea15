package cli

import (
	"github.com/spf13/cobra"

	"github.com/vizlab/dsanim/pkg/layout"
)

// newLayoutsCmd creates the layouts command, which lists the registered
// graph layout algorithms.
func newLayoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List available graph layout algorithms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, line := range layoutLines() {
				cmd.Println(line)
			}
		},
	}
}

// layoutLines formats one line per registered algorithm, marking the
// default.
func layoutLines() []string {
	var lines []string
	for _, alg := range layout.All() {
		line := string(alg)
		if alg == layout.Default {
			line += " (default)"
		}
		lines = append(lines, line)
	}
	return lines
}
