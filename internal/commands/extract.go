package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/ingest"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Print the content a file contributes to a question",
	Long: `Run a file through the same parser the chat uses and print the result.

Documents print their extracted text. Images are sent to the model as-is, so
only their type and dimensions are shown. A one-line summary goes to stderr.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(cmd, args[0])
	},
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported file types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, ext := range ingest.SupportedExtensions() {
			kind, _ := ingest.KindFromName(ext)
			fmt.Fprintf(out, "%-6s %s\n", ext, kind)
		}
		return nil
	},
}

func runExtract(cmd *cobra.Command, path string) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	rt := loadRuntime(stderr, verboseFlag)
	defer rt.close()

	att, err := rt.processor().ProcessFile(path)
	if err != nil {
		fmt.Fprintln(stderr, formatErrorMessage(err, "Extraction failed"))
		return err
	}

	fmt.Fprintln(stderr, att.Summary())

	if att.IsImage() {
		fmt.Fprintf(stdout, "%s image, %d bytes", att.MIMEType, att.Size)
		if att.Width > 0 && att.Height > 0 {
			fmt.Fprintf(stdout, ", %dx%d", att.Width, att.Height)
		}
		fmt.Fprintln(stdout)
		return nil
	}

	fmt.Fprint(stdout, att.Text)
	if !strings.HasSuffix(att.Text, "\n") {
		fmt.Fprintln(stdout)
	}
	return nil
}
