package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mireldan/crystalquest/internal/catalog"
	"github.com/mireldan/crystalquest/internal/config"
	"github.com/mireldan/crystalquest/internal/tui"
)

const version = "0.1.0"

func main() {
	var (
		configPath string
		themeName  string
		startPage  string
	)

	rootCmd := &cobra.Command{
		Use:           "crystalquest",
		Short:         "CrystalQuest — crystal rewards in your terminal",
		Long:          "CrystalQuest is a terminal crystal-rewards hub: complete tasks, join campaigns, and redeem crystals for NFT whitelists and token swaps.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, themeName, startPage)
		},
	}
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file (YAML)")
	rootCmd.Flags().StringVarP(&themeName, "theme", "t", "", "color theme (light or dark)")
	rootCmd.Flags().StringVarP(&startPage, "page", "p", "", "page to open on start")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, themeName, startPage string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("crystalquest needs an interactive terminal")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if themeName != "" {
		cfg.Theme = themeName
	}

	ctx := context.Background()
	cat, err := catalog.Open(ctx)
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}
	defer cat.Close()

	model := tui.NewMainModel(ctx, cat, cfg)
	if startPage != "" {
		model = model.WithStartPage(startPage)
	}

	p := tea.NewProgram(model, tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
