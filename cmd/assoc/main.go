// SPDX-License-Identifier: MIT
//
// Command assoc replays key-value workloads against the containers in this
// module and generates workloads from keygen orders.
//
//	assoc gen --order shuffled --n 20 --seed 7 > w.toml
//	assoc replay --workload w.toml --kind open --debug
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	logCfg := defaultLogConfig()
	root := &cobra.Command{
		Use:           "assoc",
		Short:         "Replay workloads against hash tables and binary search trees",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&logCfg.Level, "log-level", logCfg.Level, "zap level: debug, info, warn, error")
	pf.BoolVar(&logCfg.Debug, "debug", false, "shorthand for --log-level=debug")
	pf.StringVar(&logCfg.Format, "log-format", logCfg.Format, "console or json")
	pf.StringVar(&logCfg.Filename, "log-file", "", "write logs to a rotated file instead of stderr")
	pf.IntVar(&logCfg.MaxSize, "log-max-size", logCfg.MaxSize, "rotate after this many megabytes")
	pf.IntVar(&logCfg.MaxDays, "log-max-days", logCfg.MaxDays, "days to keep rotated files (0 keeps all)")
	pf.IntVar(&logCfg.MaxBackups, "log-max-backups", logCfg.MaxBackups, "rotated files to keep (0 keeps all)")

	root.AddCommand(newReplayCmd(&logCfg), newGenCmd())
	return root
}
