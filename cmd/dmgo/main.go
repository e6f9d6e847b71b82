// Command dmgo runs a DMG ROM image through the emulator core,
// presenting the framebuffer in an ebiten window.
package main

import (
	"context"
	"log"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dmgo",
		Short: "A Game Boy (DMG) core emulator",
	}

	var scale int
	var dumpFrame string

	runCmd := &cobra.Command{
		Use:   "run [rom]",
		Short: "Run a ROM image in a window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runROM(args[0], scale, dumpFrame)
		},
	}
	runCmd.Flags().IntVar(&scale, "scale", 2, "integer window scale factor")
	runCmd.Flags().StringVar(&dumpFrame, "dump-frame", "", "write the first completed frame to this PNG path and exit")

	stepCmd := &cobra.Command{
		Use:   "step [rom]",
		Short: "Load a ROM and drop into the debug monitor instead of the windowed presenter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return stepROM(args[0])
		},
	}

	rootCmd.AddCommand(runCmd, stepCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func stepROM(path string) error {
	h, err := newHarness(path)
	if err != nil {
		return err
	}
	h.Monitor(context.Background())
	return nil
}
