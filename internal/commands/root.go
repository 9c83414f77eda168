// Package commands provides CLI commands for geminichat.
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	modelFlag   string
	verboseFlag bool

	// Single query flags
	outputFlag string
	fileFlag   string
	attachFlag string
	rawFlag    bool

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "geminichat [prompt]",
	Short: "Chat with Gemini about your documents and images",
	Long: `geminichat is a terminal chatbot for Google Gemini. Attach an image,
PDF, Word, PowerPoint or Excel file and its content is added to your next
question.

The API key is read from GOOGLE_API_KEY (or GEMINI_API_KEY), either from the
environment or from a .env file in the working directory or ~/.geminichat.

Examples:
  geminichat chat                              Start interactive chat
  geminichat chat -a report.pdf                Start chat with a file attached
  geminichat "What is Go?"                     Send a single query
  geminichat -a deck.pptx "Summarize this"     Ask about a file
  geminichat -f prompt.md                      Read prompt from file
  cat notes.md | geminichat "Fix the grammar"  Combine stdin with a question
  geminichat "Hello" -o response.md            Save response to file
  geminichat extract budget.xlsx               Show what a file contributes`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Fprintf(cmd.OutOrStdout(), "geminichat %s (built %s)\n", Version, BuildTime)
			return nil
		}

		prompt, err := readPrompt(cmd, args)
		if err != nil {
			return err
		}
		if prompt == "" {
			return cmd.Help()
		}

		return runQuery(cmd, prompt, rawFlag || !isTTY(cmd.OutOrStdout()))
	},
}

// readPrompt collects the prompt from -f, the positional argument and piped stdin.
// When both an argument and stdin are given, the argument comes first.
func readPrompt(cmd *cobra.Command, args []string) (string, error) {
	if fileFlag != "" {
		data, err := os.ReadFile(fileFlag)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	var parts []string
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		parts = append(parts, strings.TrimSpace(args[0]))
	}

	stdin, err := readStdin(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	if stdin != "" {
		parts = append(parts, stdin)
	}

	return strings.Join(parts, "\n\n"), nil
}

// readStdin returns piped input, or "" when stdin is a terminal
func readStdin(in io.Reader) (string, error) {
	if f, ok := in.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
			return "", nil
		}
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", "", "Model to use (e.g., gemini-1.5-pro, or an alias: fast, pro, flash-2)")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Also write log lines to stderr (single query mode)")

	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save response to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read prompt from file")
	rootCmd.Flags().StringVarP(&attachFlag, "attach", "a", "", "File to include as context (png, jpg, pdf, docx, pptx, xlsx)")
	rootCmd.Flags().BoolVar(&rawFlag, "raw", false, "Stream plain text without formatting")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	// Add subcommands
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(formatsCmd)
}
