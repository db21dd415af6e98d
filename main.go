// eulogio - a terminal assistant for social services paperwork in Spain.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"eulogio/internal/cli"
	"eulogio/internal/config"
	"eulogio/internal/export"
	"eulogio/internal/gemini"
	"eulogio/internal/logging"
	"eulogio/internal/model"
	"eulogio/internal/session"
	"eulogio/internal/storage"
	"eulogio/internal/ui/chat"
	"eulogio/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	case cli.CmdExport:
		runExport(args)
	default:
		runTUI(args)
	}
}

// runExport writes stored conversations to files without starting the TUI.
func runExport(args cli.Args) {
	cfg, err := loadConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store := storage.NewStore(cfg.Storage.Path, zap.NewNop())

	opts := export.DefaultOptions()
	if args.OutputDir != "" {
		opts.OutputDir = args.OutputDir
	}
	exporter, err := export.ForFormat(args.Format, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	var convs []model.Conversation
	if args.ConversationID != "" {
		conv, err := store.Get(args.ConversationID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: conversation %q not found\n", args.ConversationID)
			os.Exit(1)
		}
		convs = []model.Conversation{conv}
	} else {
		convs = store.List()
	}
	if len(convs) == 0 {
		fmt.Println("No stored conversations to export.")
		return
	}

	for _, conv := range convs {
		path, err := export.ExportToFile(conv, exporter, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting %s: %v\n", conv.ID, err)
			os.Exit(1)
		}
		fmt.Printf("Exported %q to %s\n", conv.Name, path)
	}
}

func runTUI(args cli.Args) {
	cfg, err := loadConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if args.Debug {
		cfg.Log.Debug = true
	}
	if args.NoSidebar {
		cfg.UI.SidebarVisible = false
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting eulogio",
		zap.String("version", Version),
		zap.String("model", cfg.Gemini.Model),
		zap.Bool("credentials", cfg.HasCredentials()))

	ctx := context.Background()
	client := gemini.New(ctx, cfg.Gemini, logger)
	store := storage.NewStore(cfg.Storage.Path, logger)
	controller := session.NewController(store, session.WrapClient(client), logger)

	theme := styles.NewTheme()
	m := chat.New(controller, &cfg, theme)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	// Controller mutations can happen on any goroutine; Program.Send is
	// the thread-safe bridge back into the update loop.
	controller.SetNotify(func() {
		p.Send(chat.StateChangedMsg{})
	})

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running eulogio: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(args cli.Args) (config.Config, error) {
	if args.ConfigPath != "" {
		dir, err := config.DataDir()
		if err != nil {
			return config.Config{}, err
		}
		return config.LoadFrom(args.ConfigPath, dir)
	}
	return config.Load()
}
