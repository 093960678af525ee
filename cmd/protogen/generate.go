package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/protogen-dev/protogen"
	"github.com/protogen-dev/protogen/catalog"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// Generate command errors.
var (
	ErrNoEndpoint = errors.New("no catalog endpoint specified (use --endpoint or .protogen.yaml)")
	ErrNoToken    = errors.New("no catalog token specified (use --token, UC_TOKEN, or .protogen.yaml)")
	ErrNoTable    = errors.New("no table specified (use --table or .protogen.yaml)")
	ErrNoOutput   = errors.New("no output path specified (use --output or .protogen.yaml)")
)

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Generate a proto2 file from a table schema",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "endpoint",
				Aliases: []string{"e"},
				Usage:   "Unity Catalog endpoint URL",
				Sources: cli.EnvVars("UC_ENDPOINT"),
			},
			&cli.StringFlag{
				Name:    "token",
				Usage:   "Unity Catalog bearer token",
				Sources: cli.EnvVars("UC_TOKEN"),
			},
			&cli.StringFlag{
				Name:    "table",
				Aliases: []string{"t"},
				Usage:   "fully-qualified table name (catalog.schema.table)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output path for the generated proto file",
			},
			&cli.StringFlag{
				Name:    "message",
				Aliases: []string{"m"},
				Usage:   "protobuf message name (default: last segment of the table name)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "verbose output",
			},
		},
		Action: runGenerate,
	}
}

func runGenerate(ctx context.Context, cmd *cli.Command) error {
	logger, err := newLogger(cmd.Bool("verbose"))
	if err != nil {
		return err
	}

	defer func() {
		_ = logger.Sync()
	}()

	cfg := loadOptionalConfig()

	endpoint := firstNonEmpty(cmd.String("endpoint"), cfgString(cfg, func(c *protogen.Config) string { return c.Endpoint }))
	if endpoint == "" {
		return ErrNoEndpoint
	}

	token := firstNonEmpty(cmd.String("token"), cfgString(cfg, func(c *protogen.Config) string { return c.Token }))
	if token == "" {
		return ErrNoToken
	}

	table := firstNonEmpty(cmd.String("table"), cfgString(cfg, func(c *protogen.Config) string { return c.Generate.Table }))
	if table == "" {
		return ErrNoTable
	}

	output := firstNonEmpty(cmd.String("output"), cfgString(cfg, func(c *protogen.Config) string { return c.Generate.Output }))
	if output == "" {
		return ErrNoOutput
	}

	message := firstNonEmpty(
		cmd.String("message"),
		cfgString(cfg, func(c *protogen.Config) string { return c.Generate.Message }),
		protogen.DefaultMessageName(table),
	)

	client := catalog.NewClient(endpoint, token)

	logger.Debug("fetching table schema",
		zap.String("endpoint", endpoint),
		zap.String("table", table))

	schema, err := client.GetTable(ctx, table)
	if err != nil {
		return err
	}

	logger.Debug("fetched table schema",
		zap.String("table", table),
		zap.Int("columns", len(schema.Columns)))

	content, err := protogen.Generate(message, schema.Columns)
	if err != nil {
		return err
	}

	err = os.WriteFile(output, []byte(content), 0o644) //nolint:gosec // G306: output file permissions are fine
	if err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	fmt.Printf("wrote %s\n", output)

	return nil
}

// loadOptionalConfig loads the nearest .protogen.yaml, or nil if none exists.
func loadOptionalConfig() *protogen.Config {
	cwd, err := os.Getwd()
	if err != nil {
		return nil
	}

	cfg, err := protogen.LoadConfig(cwd)
	if err != nil {
		return nil
	}

	return cfg
}

// Helper functions for config access
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func cfgString(cfg *protogen.Config, getter func(*protogen.Config) string) string {
	if cfg == nil {
		return ""
	}
	return getter(cfg)
}
