package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/macropower/doodles/api/v1beta1/configs"
	"github.com/macropower/doodles/pkg/config"
	"github.com/macropower/doodles/pkg/log"
	"github.com/macropower/doodles/pkg/mcp"
	"github.com/macropower/doodles/pkg/paging"
	"github.com/macropower/doodles/pkg/telemetry"
	"github.com/macropower/doodles/pkg/ui"
	"github.com/macropower/doodles/pkg/ui/demos"
	"github.com/macropower/doodles/pkg/ui/highlight"
	"github.com/macropower/doodles/pkg/ui/theme"
)

const (
	cmdExamples = `  # Browse the gallery:
  doodles

  # Open the pager doodle directly:
  doodles pager

  # Let an MCP client drive the open pager:
  doodles pager --serve-mcp localhost:8080

  # Export traces to a local collector:
  doodles --otlp-endpoint localhost:4317

  # Print the active configuration:
  doodles --show-config`

	logBufferSize = 100
)

// ErrUnknownDoodle is returned for a doodle argument that is not in the gallery.
var ErrUnknownDoodle = errors.New("unknown doodle")

// RunArgs holds the flags and arguments of the run command.
type RunArgs struct {
	*RootArgs

	Doodle       string
	ConfigPath   string
	ServeMCP     string
	OTLPEndpoint string
	OTLPInsecure bool
	WriteConfig  bool
	ShowConfig   bool
}

func NewRunArgs(rootArgs *RootArgs) *RunArgs {
	return &RunArgs{
		RootArgs: rootArgs,
	}
}

func (ra *RunArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ra.ConfigPath, "config", "", "Path to the doodles configuration file")
	cmd.Flags().StringVar(&ra.ServeMCP, "serve-mcp", "", "Serve the MCP server at the specified address")
	cmd.Flags().StringVar(&ra.OTLPEndpoint, "otlp-endpoint", "", "Export traces to this OTLP gRPC endpoint")
	cmd.Flags().BoolVar(&ra.OTLPInsecure, "otlp-insecure", false, "Disable TLS for the OTLP endpoint")
	cmd.Flags().BoolVar(&ra.WriteConfig, "write-config", false, "Write the default configuration file and exit")
	cmd.Flags().BoolVar(&ra.ShowConfig, "show-config", false, "Print the active configuration and exit")

	err := cmd.MarkFlagFilename("config", "yaml", "yml")
	if err != nil {
		panic(fmt.Errorf("mark config flag: %w", err))
	}
}

func NewRunCmd(ra *RunArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "run [doodle]",
		Short:             "Default command, can be used explicitly if the doodle name is ambiguous",
		Example:           cmdExamples,
		Args:              doodleArgs,
		ValidArgsFunction: runCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				ra.Doodle = args[0]
			}

			return run(cmd, ra)
		},
	}
	ra.AddFlags(cmd)

	bindEnvVars(cmd)

	return cmd
}

// doodleIDs lists every doodle that can be opened from the command line.
func doodleIDs() []string {
	ids := []string{}
	for _, d := range demos.All() {
		ids = append(ids, d.ID)
	}

	return append(ids, ui.ConfigDoodleID)
}

func doodleArgs(cmd *cobra.Command, args []string) error {
	err := cobra.MaximumNArgs(1)(cmd, args)
	if err != nil {
		return err //nolint:wrapcheck // Cobra usage error.
	}

	if len(args) == 1 && !slices.Contains(doodleIDs(), args[0]) {
		return fmt.Errorf("invalid argument %q: %w", args[0], ErrUnknownDoodle)
	}

	return nil
}

func runCompletion(_ *cobra.Command, args []string, _ string) ([]cobra.Completion, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	completions := []cobra.Completion{}
	for _, d := range demos.All() {
		completions = append(completions, cobra.CompletionWithDesc(d.ID, d.Desc))
	}

	completions = append(completions, cobra.CompletionWithDesc(ui.ConfigDoodleID, "The active configuration"))

	return completions, cobra.ShellCompDirectiveNoFileComp
}

func run(cmd *cobra.Command, rc *RunArgs) error {
	configPath := rc.ConfigPath
	if configPath == "" {
		configPath = configs.GetPath()
	}

	err := configs.WriteDefault(configPath, false)
	if err != nil {
		slog.Error("write default config", slog.Any("err", err))
	}
	if rc.WriteConfig {
		// Exit early after writing the default config.
		// Also, if there was an error, it should be fatal.
		return err
	}

	cfg, t, err := loadConfig(configPath, isTerminal(os.Stderr))
	if err != nil {
		return err
	}

	if rc.ShowConfig {
		return showConfig(cmd.OutOrStdout(), cfg, t, configPath)
	}

	// Without a terminal there is nothing to drag, so list the gallery instead.
	if !isTerminal(os.Stdout) {
		return listDoodles(cmd.OutOrStdout())
	}

	err = cfg.UI.RegisterThemes()
	if err != nil {
		return fmt.Errorf("register themes: %w", err)
	}

	shutdown, err := telemetry.Setup(cmd.Context(), rc.OTLPEndpoint, telemetry.WithInsecure(rc.OTLPInsecure))
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(cmd.Context()), 5*time.Second)
		defer cancel()

		err := shutdown(ctx)
		if err != nil {
			slog.Error("shut down telemetry", slog.Any("err", err))
		}
	}()

	// The TUI owns the terminal, so logs are held until it exits.
	logBuf := log.NewCircularBuffer(logBufferSize)
	logHandler, err := log.CreateHandlerWithStrings(logBuf, rc.LogLevel, rc.LogFormat)
	if err != nil {
		return fmt.Errorf("create log handler: %w", err)
	}

	slog.SetDefault(slog.New(logHandler))

	err = runUI(cmd.Context(), cfg.UI, rc)
	if err != nil {
		slog.Error("run UI", slog.Any("err", err))
		flushLogs(cmd.ErrOrStderr(), logBuf)

		return fmt.Errorf("ui program failure: %w", err)
	}

	flushLogs(cmd.ErrOrStderr(), logBuf)

	return nil
}

// loadConfig reads, validates and decodes the config at path. A missing or
// unreadable file falls back to defaults.
func loadConfig(path string, colored bool) (*configs.Config, *theme.Theme, error) {
	cl, err := config.NewLoaderFromFile(path, configs.New, configs.DefaultValidator(),
		config.WithThemeFromData(),
		config.WithColor(colored),
	)
	if err != nil {
		slog.Warn("could not read config, using defaults", slog.Any("err", err))

		return configs.New(), theme.Default, nil
	}

	err = cl.Validate()
	if err != nil {
		return nil, nil, fmt.Errorf("%w %q: %w", config.ErrInvalidConfig, path, err)
	}

	cfg, err := cl.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("%w %q: %w", config.ErrInvalidConfig, path, err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, nil, fmt.Errorf("%w %q: %w", config.ErrInvalidConfig, path, err)
	}

	return cfg, cl.GetTheme(), nil
}

func showConfig(w io.Writer, cfg *configs.Config, t *theme.Theme, path string) error {
	slog.Info("active configuration", slog.String("path", path))

	b, err := cfg.MarshalYAML()
	if err != nil {
		return fmt.Errorf("marshal config yaml: %w", err)
	}

	if !isTerminal(os.Stdout) {
		mustN(fmt.Fprint(w, string(b)))

		return nil
	}

	hl := highlight.NewRenderer(t, highlight.WithLineNumbers(false))

	pretty, err := hl.Render(string(b), 0)
	if err != nil {
		mustN(fmt.Fprint(w, string(b)))

		return fmt.Errorf("highlight config: %w", err)
	}

	mustN(fmt.Fprintln(w, pretty))

	return nil
}

func listDoodles(w io.Writer) error {
	for _, d := range demos.All() {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\n", d.ID, d.Title, d.Desc)
		if err != nil {
			return fmt.Errorf("write doodles: %w", err)
		}
	}

	return nil
}

// runUI starts the UI program, and the MCP server when requested.
func runUI(ctx context.Context, cfg *ui.Config, rc *RunArgs) error {
	store := paging.NewStore()

	opts := []ui.Opt{ui.WithStore(store)}
	if rc.Doodle != "" {
		opts = append(opts, ui.WithInitialDoodle(rc.Doodle))
	}

	p := ui.NewProgram(ui.NewModel(cfg, opts...))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if rc.ServeMCP != "" {
		mcpServer := mcp.NewServer(rc.ServeMCP, ui.NewRemote(p, store))

		go func() {
			err := mcpServer.Serve(ctx)
			if err != nil {
				slog.Error("MCP server failed", slog.Any("err", err))
			}
		}()
	}

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("tea: %w", err)
	}

	return nil
}

func flushLogs(w io.Writer, buf *log.CircularBuffer) {
	slog.Debug("flush logs to console",
		slog.Int("count", buf.Size()),
		slog.Int("max", buf.Capacity()),
		slog.Bool("truncated", buf.IsFull()),
	)

	_, err := buf.WriteTo(w)
	if err != nil {
		panic(err)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
