package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/lsss-go/pkg/lsss"
)

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			p := a.printer()
			if p.format == OutputFormatJSON {
				return p.printJSON(map[string]any{
					"version":    lsss.LibraryVersion(),
					"go_version": runtime.Version(),
					"os":         runtime.GOOS,
					"arch":       runtime.GOARCH,
				})
			}
			fmt.Fprintf(a.stdout, "lsss version %s\n", lsss.LibraryVersion())
			fmt.Fprintf(a.stdout, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(a.stdout, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
}
