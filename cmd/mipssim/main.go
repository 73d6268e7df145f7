// Command mipssim is the entry point for the MIPS pipeline simulator: it
// loads a MIPS32 ELF binary, runs it through the cycle-accurate 5-stage
// pipeline and its two caches, and reports the resulting statistics.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Eltaras202/mipspipe-sim/loader"
	"github.com/Eltaras202/mipspipe-sim/timing/core"
	"github.com/Eltaras202/mipspipe-sim/timing/latency"
	"github.com/Eltaras202/mipspipe-sim/timing/pipeline"
)

const regSP = 29

func main() {
	rootCmd := &cobra.Command{
		Use:   "mipssim",
		Short: "Cycle-accurate 5-stage MIPS pipeline simulator",
	}

	rootCmd.AddCommand(newRunCmd(), newConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	var configPath string
	var trace bool
	var maxCycles int

	cmd := &cobra.Command{
		Use:   "run <program.elf>",
		Short: "Run a MIPS32 ELF binary to completion and print statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := loader.Load(args[0])
			if err != nil {
				return err
			}

			cfg := latency.DefaultConfig()
			if configPath != "" {
				cfg, err = latency.LoadConfig(configPath)
				if err != nil {
					return err
				}
			}

			var opts []pipeline.Option
			if trace {
				opts = append(opts, pipeline.WithTrace(os.Stderr))
			}

			sim := core.NewCore(cfg, opts...)
			prog.LoadIntoMemory(sim.Memory())
			sim.Regs().WriteReg(regSP, prog.InitialSP)

			if maxCycles > 0 {
				for i := 0; i < maxCycles && !sim.Halted(); i++ {
					sim.Tick()
				}
			} else {
				sim.Run()
			}

			fmt.Print(sim.Report())
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to a cache/latency configuration JSON file")
	cmd.Flags().BoolVar(&trace, "trace", false, "Print branch recovery trace to stderr")
	cmd.Flags().IntVar(&maxCycles, "max-cycles", 0, "Stop after this many cycles (0 = run to halt)")

	return cmd
}

func newConfigCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write the default cache/latency configuration as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := latency.DefaultConfig()
			if output != "" {
				return cfg.SaveConfig(output)
			}
			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "Output JSON file path (default: print to stdout-equivalent file)")

	return cmd
}
