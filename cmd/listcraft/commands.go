package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/listcraft/listcraft/internal/config"
	"github.com/listcraft/listcraft/internal/listapi"
	"github.com/listcraft/listcraft/internal/lists"
	"github.com/listcraft/listcraft/internal/logging"
	"github.com/listcraft/listcraft/internal/tui"
	"github.com/listcraft/listcraft/internal/ui"
	"github.com/listcraft/listcraft/internal/urls"
	"github.com/listcraft/listcraft/internal/version"
)

// skipSettingsAnnotation marks commands that must work even when the
// settings file is missing or malformed.
const skipSettingsAnnotation = "listcraft/skip-settings"

// rootOptions holds the flags shared by every command and the settings
// resolved from them.
type rootOptions struct {
	configPath string
	endpoint   string
	timeout    int

	settings *config.Settings
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "listcraft",
		Short: "Combine grouped lists in the terminal",
		Long: `Listcraft fetches grouped records from a list service and shows them as
numbered lists.

Select exactly two lists and create a new one between them, then move items
left and right across the three lists before saving or discarding the result.

If no command is specified, the interactive program launches automatically.`,
		Version:       version.Full(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipSettingsAnnotation] == "true" {
				return logging.InitializeFromEnv()
			}
			return opts.resolve(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context(), opts)
		},
	}

	// Disable automatic completion command generation
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Settings file (default is the per-user config directory)")
	cmd.PersistentFlags().StringVar(&opts.endpoint, "endpoint", "", "List service URL (overrides the settings file)")
	cmd.PersistentFlags().IntVar(&opts.timeout, "timeout", 0, "Fetch timeout in seconds (overrides the settings file)")

	cmd.AddCommand(newShowCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// resolve loads the settings file, applies flag overrides and starts logging.
func (o *rootOptions) resolve(cmd *cobra.Command) error {
	settings, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if cmd.Flags().Changed("endpoint") {
		settings.Endpoint = o.endpoint
	}
	if cmd.Flags().Changed("timeout") {
		settings.TimeoutSeconds = o.timeout
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	// The root command runs the full-screen program, which owns the terminal
	logOpts := logOptions(settings)
	logOpts.Interactive = cmd == cmd.Root()
	if err := logging.Initialize(logOpts); err != nil {
		return fmt.Errorf("start logging: %w", err)
	}
	logging.Debug("Settings resolved",
		zap.String("endpoint", settings.Endpoint),
		zap.Duration("timeout", settings.Timeout()),
	)

	o.settings = settings
	return nil
}

func logOptions(s *config.Settings) logging.Options {
	if s.Log == nil {
		return logging.Options{}
	}
	return logging.Options{Level: s.Log.Level, File: s.Log.File}
}

func (o *rootOptions) client() *listapi.Client {
	c := listapi.NewClient(o.settings.Endpoint)
	c.SetTimeout(o.settings.Timeout())
	return c
}

func (o *rootOptions) showScientificNames() bool {
	return o.settings.UI != nil && o.settings.UI.ShowScientificNames
}

func runInteractive(ctx context.Context, opts *rootOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	model := tui.NewAppModel(ctx, opts.client(), tui.Options{
		Endpoint:            opts.settings.Endpoint,
		ShowScientificNames: opts.showScientificNames(),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		// A signal cancelled ctx; that is a normal way out
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run interactive program: %w", err)
	}
	return nil
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Fetch the lists and print them",
		Long: `Fetch the grouped records once, group them into numbered lists and print
them without starting the interactive program.`,
		Example: `  # Boxes, one per list (default)
  listcraft show

  # One line per list
  listcraft show --format compact

  # JSON output for scripting
  listcraft show --format json

  # Another list service with a short timeout
  listcraft show --endpoint http://localhost:8080/lists --timeout 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, opts, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", string(ui.FormatDetailed), "Output format (detailed, compact, json)")
	return cmd
}

func runShow(cmd *cobra.Command, opts *rootOptions, formatName string) error {
	format, err := ui.ParseFormat(formatName)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := ui.NewPrinter(cmd.OutOrStdout())
	endpoint := opts.settings.Endpoint

	if format == ui.FormatDetailed {
		out.PrintHeader("Lists", "listcraft show",
			ui.Param{Key: "Endpoint", Value: endpoint},
			ui.Param{Key: "Timeout", Value: opts.settings.Timeout().String()},
		)
	}

	start := time.Now()
	state := lists.NewState(opts.client())
	if err := state.Load(ctx); err != nil {
		if format != ui.FormatJSON {
			ui.NewPrinter(cmd.ErrOrStderr()).PrintError(
				listapi.ShortMessage(err), err, ui.FetchTroubleshooting(err, endpoint))
		}
		return fmt.Errorf("fetch lists from %s: %w", endpoint, err)
	}

	collections := state.Collections()
	if err := out.PrintCollections(collections, format, opts.showScientificNames()); err != nil {
		return err
	}

	if format == ui.FormatDetailed {
		if len(collections) == 0 {
			out.PrintWarning("No lists returned", ui.Param{Key: "Endpoint", Value: endpoint})
			return nil
		}
		out.PrintSuccess(fmt.Sprintf("Fetched %d lists", len(collections)),
			ui.Param{Key: "Items", Value: fmt.Sprint(state.ItemCount())},
			ui.Param{Key: "Took", Value: time.Since(start).Round(time.Millisecond).String()},
		)
	}
	return nil
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Locate, create, or print the settings file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:         "path",
		Annotations: map[string]string{skipSettingsAnnotation: "true"},
		Short:       "Print the settings file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ResolvePath(opts.configPath)
			if err != nil {
				return fmt.Errorf("resolve settings path: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:         "init",
		Annotations: map[string]string{skipSettingsAnnotation: "true"},
		Short:       "Write a settings file with default values",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.CreateDefaultConfig(opts.configPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Long: `Print the settings after flag overrides and defaults are applied,
followed by where log output goes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ResolvePath(opts.configPath)
			if err != nil {
				return fmt.Errorf("resolve settings path: %w", err)
			}
			data, err := yaml.Marshal(opts.settings)
			if err != nil {
				return fmt.Errorf("marshal settings: %w", err)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "# %s\n", path)
			fmt.Fprint(w, string(data))
			fmt.Fprintf(w, "# logging: %s\n", logging.Describe(logOptions(opts.settings)))
			return nil
		},
	})

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "listcraft %s\n", version.Full())
			fmt.Fprintf(w, "  user agent:       %s\n", version.UserAgent())
			fmt.Fprintf(w, "  default endpoint: %s\n", urls.DefaultListsEndpoint)
		},
	}
}
