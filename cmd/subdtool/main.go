// subdtool refines subdivision surface control meshes and prints the
// resulting topology, masks and positions.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/subdiv/internal/config"
	"github.com/Faultbox/subdiv/internal/logger"
)

func main() {
	config.ParseFlags()
	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]

	if command == "help" || command == "-h" || command == "--help" {
		printUsage()
		return
	}
	if command == "init" {
		if err := cmdInit(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	switch command {
	case "info":
		err = cmdInfo(cfg)
	case "refine":
		err = cmdRefine(cfg)
	case "masks":
		err = cmdMasks(cfg, args)
	case "eval":
		err = cmdEval(cfg)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`subdtool - subdivision surface refinement utility

Usage:
  subdtool [flags] <command> [args]

Commands:
  info              Show the base mesh
  refine            Refine and print per-level counts
  masks <level>     Print the masks of the vertices of a refined level
  eval              Refine and print the positions of the last level
  init [path]       Write the default configuration

Flags:
  --config <file>   Config file (default ./subdtool.yaml or the user config dir)
  --scheme <name>   catmark, bilinear or loop
  --level <n>       Refinement level
  --adaptive        Refine adaptively around irregular features
  --masks           Compute refinement masks
  --full-topology   Keep full topology on the last level
  --debug           Enable debug logging

Examples:
  subdtool --level 3 refine
  subdtool --adaptive --level 4 refine
  subdtool masks 1
  subdtool --config torus.yaml eval`)
}
