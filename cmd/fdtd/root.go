package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"fdtd2d/internal/core"
)

const version = "0.3.0"

func newRootCmd(logger *log.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "fdtd",
		Short: "2D TM-mode FDTD solver",
		Long: `Run two-dimensional FDTD scenes with PML boundaries and a Gaussian
point source, and write field dumps, probe traces and frames.

Run "fdtd scenes" to list the available scenes and their parameters.`,
		SilenceUsage: true,
	}
	root.AddCommand(
		newRunCmd(logger),
		newSweepCmd(logger),
		newScenesCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the fdtd version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "fdtd %s\n", version)
			},
		},
	)
	return root
}

// parseSets turns repeated key=value flags into a scene config map.
func parseSets(sets []string) (map[string]string, error) {
	cfg := map[string]string{}
	for _, kv := range sets {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("bad --set %q, expected key=value", kv)
		}
		cfg[key] = strings.TrimSpace(value)
	}
	return cfg, nil
}

func newScenesCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "scenes [name...]",
		Short: "List registered scenes and their default parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = core.Names()
			}
			out := cmd.OutOrStdout()
			for _, name := range names {
				sc, err := core.NewScene(name, nil)
				if err != nil {
					return err
				}
				size := sc.Size()
				fmt.Fprintf(out, "%s (%dx%d, %d steps)\n", sc.Name(), size.W, size.H, sc.Steps())
				if !verbose {
					continue
				}
				for _, g := range sc.Parameters().Groups {
					fmt.Fprintf(out, "  %s\n", g.Name)
					for _, p := range g.Params {
						fmt.Fprintf(out, "    %-12s %-10s %s\n", p.Key, p.Value, p.Label)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print every parameter")
	return cmd
}
