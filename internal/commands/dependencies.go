package commands

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/api"
	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/config"
	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/ingest"
	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/logging"
	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/models"
	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/tui"
)

// TUIInterface defines the methods required from the TUI package.
type TUIInterface interface {
	RunChat(session tui.ChatSessionInterface, opts tui.ChatOptions) error
}

// ClientFactory creates a Gemini client
type ClientFactory func(ctx context.Context, apiKey string, opts ...api.ClientOption) (api.GeminiClientInterface, error)

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	// NewClient creates the Gemini API client.
	NewClient ClientFactory

	// TUI is the terminal user interface.
	TUI TUIInterface
}

// DefaultTUI is the production implementation of TUIInterface.
type DefaultTUI struct{}

func (d *DefaultTUI) RunChat(session tui.ChatSessionInterface, opts tui.ChatOptions) error {
	return tui.RunChat(session, opts)
}

func newGeminiClient(ctx context.Context, apiKey string, opts ...api.ClientOption) (api.GeminiClientInterface, error) {
	client, err := api.NewClient(ctx, apiKey, opts...)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		NewClient: newGeminiClient,
		TUI:       &DefaultTUI{},
	}
}

// deps is swapped out in tests
var deps = NewDependencies()

// runtime is the state shared by one command invocation
type runtime struct {
	cfg    config.Config
	model  models.Model
	logger *zap.Logger
}

// loadRuntime loads .env files, the config file and the logger.
// A broken config file falls back to defaults with a warning on stderr.
// Log lines go to stderr only when logToStderr is set.
func loadRuntime(stderr io.Writer, logToStderr bool) *runtime {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(stderr, "Warning: failed to load .env: %v\n", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v (using defaults)\n", err)
	}

	var outputs []string
	if path, err := cfg.LogPath(); err == nil {
		outputs = append(outputs, path)
	}
	if logToStderr {
		outputs = append(outputs, "stderr")
	}

	logger, err := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Outputs: outputs,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v (logging disabled)\n", err)
		logger = zap.NewNop()
	}

	model := cfg.Model()
	if modelFlag != "" {
		model = models.ModelFromName(modelFlag)
	}

	return &runtime{cfg: cfg, model: model, logger: logger}
}

// close flushes the logger
func (rt *runtime) close() {
	_ = rt.logger.Sync()
}

// clientOptions maps the configuration onto client options
func (rt *runtime) clientOptions() []api.ClientOption {
	opts := []api.ClientOption{
		api.WithModel(rt.model),
		api.WithSystemPrompt(rt.cfg.SystemPrompt),
		api.WithLogger(rt.logger),
	}
	if rt.cfg.Temperature != nil {
		opts = append(opts, api.WithTemperature(*rt.cfg.Temperature))
	}
	return opts
}

// processor returns a file processor honouring the configured size cap
func (rt *runtime) processor() *ingest.Processor {
	return ingest.NewProcessor(
		ingest.WithMaxSize(rt.cfg.MaxFileSize()),
		ingest.WithLogger(rt.logger.Named("ingest")),
	)
}

// newClient creates the client through deps
func (rt *runtime) newClient(ctx context.Context) (api.GeminiClientInterface, error) {
	client, err := deps.NewClient(ctx, config.APIKey(), rt.clientOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}
