package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shjeon-96/dev-tool-kit-sub005/internal/catalog"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/config"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/errors"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/recommend"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/seo"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/slogutil"
)

// app is everything a command needs, loaded once per invocation.
type app struct {
	root    string
	cfg     *config.Config
	catalog *catalog.Catalog
	engine  *recommend.Engine
	planner *seo.Planner
	logger  *slog.Logger
	loggers *slogutil.LoggerFactory
}

// loadApp reads configuration, builds the logger and loads the catalog.
func loadApp(cmd *cobra.Command) (*app, error) {
	root, err := getRepoRoot()
	if err != nil {
		return nil, errors.New(errors.InternalError, "failed to resolve project directory", err)
	}

	cfg, err := config.LoadConfig(root)
	if err != nil {
		return nil, errors.New(errors.ConfigInvalid, "failed to load configuration", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.New(errors.ConfigInvalid, "invalid configuration", err)
	}

	loggers := slogutil.NewLoggerFactory(cfg, cliLevel(cmd))
	logger, err := loggers.Logger(cmd.ErrOrStderr())
	if err != nil {
		return nil, errors.New(errors.ConfigInvalid, "failed to open log file", err).
			WithDetails(map[string]string{"path": cfg.ResolvePath(cfg.Logging.File)})
	}
	logger = logger.With(slog.String("cmd", cmd.Name()))

	c, err := catalog.Load(catalog.Options{
		DirectoryPath: cfg.ResolvePath(cfg.Catalog.DirectoryPath),
		JourneysPath:  cfg.ResolvePath(cfg.Catalog.JourneysPath),
		Alpha:         cfg.Importance.Alpha,
		Logger:        logger,
	})
	if err != nil {
		_ = loggers.Close()
		return nil, err
	}

	return &app{
		root:    root,
		cfg:     cfg,
		catalog: c,
		engine: recommend.NewEngine(c.Directory, c.Graph,
			recommend.WithHistoryLimit(cfg.Recommend.HistoryLimit),
			recommend.WithLogger(logger),
		),
		planner: seo.NewPlanner(c.Graph, c.Directory, seo.WithLogger(logger)),
		logger:  logger,
		loggers: loggers,
	}, nil
}

// Close releases log files.
func (a *app) Close() error {
	return a.loggers.Close()
}

// requireTool fails with TOOL_NOT_FOUND when slug is not in the directory.
func (a *app) requireTool(slug string) error {
	if a.catalog.Directory.IsValidToolSlug(slug) {
		return nil
	}
	return errors.New(errors.ToolNotFound, "Tool '"+slug+"' not found", nil).
		WithDetails(map[string]string{"slug": slug})
}

// cliLevel returns the level chosen by -v or --quiet, or nil when neither
// was given so the configured level applies.
func cliLevel(cmd *cobra.Command) *slog.Level {
	flags := cmd.Flags()
	if !flags.Changed("verbose") && !flags.Changed("quiet") {
		return nil
	}
	level := slogutil.LevelFromVerbosity(verbosityFlag, quietFlag)
	return &level
}

// getRepoRoot returns the project directory.
func getRepoRoot() (string, error) {
	if rootFlag != "" {
		return rootFlag, nil
	}
	return os.Getwd()
}

// writeResponse formats resp and writes it to the command's output.
func writeResponse(cmd *cobra.Command, resp *Response) error {
	out, err := FormatResponse(resp, OutputFormat(formatFlag))
	if err != nil {
		return errors.New(errors.InvalidArgument, "failed to format output", err)
	}
	_, err = io.WriteString(cmd.OutOrStdout(), out+"\n")
	return err
}
