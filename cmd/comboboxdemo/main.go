package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mossline/combobox"
	"github.com/mossline/combobox/internal/config"
	"github.com/mossline/combobox/internal/demo"
)

func main() {
	var configPath string

	root := &cobra.Command{
		Use:   "comboboxdemo",
		Short: "Combobox - searchable dropdown widget demo",
		Long:  "Interactive demo of the combobox widget: a text field paired with a selectable dropdown list.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(configPath)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().StringVar(&configPath, "config", "", "config file path (default ~/.comboboxdemo/config)")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func runTUI(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg = nil
		} else {
			return err
		}
	}

	theme := combobox.DefaultTheme()
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg != nil {
		if cfg.Accent != "" {
			theme.Accent = theme.Accent.Foreground(lipgloss.Color(cfg.Accent))
		}
		if cfg.Hover != "" {
			theme.Hover = theme.Hover.Foreground(lipgloss.Color(cfg.Hover))
		}
		if cfg.Mouse {
			opts = append(opts, tea.WithMouseCellMotion())
		}
	}

	app := demo.NewApp([]string{"apple", "banana", "cherry", "durian", "elderberry"}, theme)

	p := tea.NewProgram(app, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
