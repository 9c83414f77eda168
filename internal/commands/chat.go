package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/render"
	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/tui"
)

var chatAttachFlag string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session with Gemini.

The chat keeps the conversation in memory. An attached file is added to the
next message only; type /help inside the chat for the list of commands.
Type 'exit', '/quit', or press Ctrl+C to end the session.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd)
	},
}

func init() {
	chatCmd.Flags().StringVarP(&chatAttachFlag, "attach", "a", "", "File to attach to the first message")
}

func runChat(cmd *cobra.Command) error {
	stderr := cmd.ErrOrStderr()

	// stderr belongs to the TUI, so logs only go to the file
	rt := loadRuntime(stderr, false)
	defer rt.close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := rt.newClient(ctx)
	if err != nil {
		fmt.Fprintln(stderr, formatErrorMessage(err, "Failed to initialize"))
		return err
	}
	defer client.Close()

	session := client.StartChat()
	processor := rt.processor()

	if chatAttachFlag != "" {
		att, err := processor.ProcessFile(chatAttachFlag)
		if err != nil {
			fmt.Fprintln(stderr, formatErrorMessage(err, "Failed to read file"))
			return fmt.Errorf("failed to read %s: %w", chatAttachFlag, err)
		}
		session.Attach(att)
	}

	rt.logger.Info("chat started", zap.String("model", rt.model.Name))

	return deps.TUI.RunChat(session, tui.ChatOptions{
		Processor: processor,
		Markdown:  render.OptionsFromConfig(rt.cfg.Markdown, 0),
		Theme:     rt.cfg.TUITheme,
	})
}
