package main

import (
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/layout"
)

// app holds the state shared by every command.
type app struct {
	logger *charmlog.Logger
	style  layout.Style

	verbose   bool
	stylePath string
	items     int
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "layoutdemo",
		Short:        "Demo of the layout engine and its virtualized list view",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if a.verbose {
				level = charmlog.DebugLevel
			}
			a.logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})
			layout.SetVerbose(a.verbose)

			a.style = layout.DefaultStyle()
			if a.stylePath != "" {
				s, err := layout.LoadStyle(a.stylePath)
				if err != nil {
					return err
				}
				a.style = s
				a.logger.Debug("style loaded", "path", a.stylePath)
			}
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&a.stylePath, "style", "", "TOML style file")
	root.PersistentFlags().IntVarP(&a.items, "items", "n", 200, "number of list items")

	root.AddCommand(newWindowCmd(a))
	root.AddCommand(newDumpCmd(a))
	root.AddCommand(newStyleCmd(a))

	return root
}

func newStyleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "style",
		Short: "Print the active style as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return layout.WriteStyle(cmd.OutOrStdout(), a.style)
		},
	}
}
