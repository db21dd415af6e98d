// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing for eulogio.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdExport
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	ConfigPath string // --config: explicit config file path
	Debug      bool   // --debug: verbose logging
	NoSidebar  bool   // --no-sidebar: start with the history pane closed

	// export command
	ConversationID string // conversation to export; "" means all
	Format         string // --format: markdown (default), html, json
	OutputDir      string // --out: destination directory
}

const usageText = `eulogio - asistente de trámites y ayudas sociales en la terminal

Eulogio is a terminal chat assistant, in Spanish, for navigating social
services paperwork in Spain. Conversations are stored locally and replies
stream from the Gemini API.

Usage:
  eulogio                Start the chat TUI (default)
  eulogio export [id]    Export a stored conversation (all when no id)
  eulogio version        Show version information
  eulogio help           Show this help

Flags:
  --config <path>        Use an explicit config file
  --debug                Enable debug logging
  --no-sidebar           Start with the conversation list closed

Export flags:
  --format <f>           markdown (default), html, or json
  --out <dir>            Destination directory (default: current)

Environment:
  GEMINI_API_KEY         API key for the Gemini service
  EULOGIO_DEBUG          Same as --debug when set to 1/true
`

// Parse reads os.Args and returns the command plus its arguments. Unknown
// arguments print usage and exit.
func Parse() (Command, Args) {
	cmd, args, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n\n%s", err, usageText)
		os.Exit(2)
	}
	return cmd, args
}

func parseArgs(argv []string) (Command, Args, error) {
	var args Args
	cmd := CmdTUI

	for len(argv) > 0 {
		arg := argv[0]
		argv = argv[1:]

		switch {
		case arg == "version", arg == "--version", arg == "-v":
			cmd = CmdVersion
		case arg == "help", arg == "--help", arg == "-h":
			cmd = CmdHelp
		case arg == "export":
			cmd = CmdExport
		case arg == "--format":
			if len(argv) == 0 {
				return cmd, args, fmt.Errorf("--format requires a value")
			}
			args.Format = argv[0]
			argv = argv[1:]
		case strings.HasPrefix(arg, "--format="):
			args.Format = strings.TrimPrefix(arg, "--format=")
		case arg == "--out":
			if len(argv) == 0 {
				return cmd, args, fmt.Errorf("--out requires a directory")
			}
			args.OutputDir = argv[0]
			argv = argv[1:]
		case strings.HasPrefix(arg, "--out="):
			args.OutputDir = strings.TrimPrefix(arg, "--out=")
		case arg == "--debug":
			args.Debug = true
		case arg == "--no-sidebar":
			args.NoSidebar = true
		case arg == "--config":
			if len(argv) == 0 {
				return cmd, args, fmt.Errorf("--config requires a path")
			}
			args.ConfigPath = argv[0]
			argv = argv[1:]
		case strings.HasPrefix(arg, "--config="):
			args.ConfigPath = strings.TrimPrefix(arg, "--config=")
		case cmd == CmdExport && args.ConversationID == "" && !strings.HasPrefix(arg, "-"):
			args.ConversationID = arg
		default:
			return cmd, args, fmt.Errorf("unknown argument %q", arg)
		}
	}

	return cmd, args, nil
}

// PrintUsage writes the usage text to stdout.
func PrintUsage() {
	fmt.Print(usageText)
}

// PrintVersion writes version information to stdout.
func PrintVersion() {
	fmt.Printf("eulogio %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}
