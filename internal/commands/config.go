package commands

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/config"
	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/render"
)

// NewConfigCmd creates the config command and its subcommands
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change settings",
		Long: `Show or change geminichat settings stored in ~/.geminichat/config.json.

Without a subcommand the current settings are printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the current settings as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a setting",
		Long: "Change a setting. Valid keys:\n  " + strings.Join(config.Keys(), "\n  ") +
			"\n\nPass an empty value to clear temperature.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(cmd, args[0], args[1])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "themes",
		Short: "List markdown styles and chat themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Markdown styles (markdown.style):")
			for _, t := range render.AvailableThemes() {
				fmt.Fprintf(out, "  %-12s %s\n", t.Name, t.Description)
			}
			fmt.Fprintln(out, "\nChat themes (tui_theme):")
			for _, t := range render.AvailableTUIThemes() {
				fmt.Fprintf(out, "  %-12s %s\n", t.Name, t.Description)
			}
			return nil
		},
	})

	return cmd
}

var configCmd = NewConfigCmd()

func runConfigShow(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigSet(cmd *cobra.Command, key, value string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	if key == "tui_theme" && !slices.Contains(render.TUIThemeNames(), value) {
		return fmt.Errorf("unknown tui_theme %q (available: %s)", value, strings.Join(render.TUIThemeNames(), ", "))
	}

	if err := cfg.Set(key, value); err != nil {
		return err
	}

	if err := config.SaveConfig(cfg); err != nil {
		return err
	}

	printSuccess(cmd.OutOrStdout(), fmt.Sprintf("%s updated", key))
	return nil
}
