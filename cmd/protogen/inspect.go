package main

import (
	"context"
	"fmt"
	"os"

	"github.com/protogen-dev/protogen"
	"github.com/protogen-dev/protogen/catalog"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "Fetch a table schema and print its columns as YAML",
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
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "verbose output",
			},
		},
		Action: runInspect,
	}
}

func runInspect(ctx context.Context, cmd *cli.Command) error {
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

	client := catalog.NewClient(endpoint, token)

	logger.Debug("fetching table schema",
		zap.String("endpoint", endpoint),
		zap.String("table", table))

	schema, err := client.GetTable(ctx, table)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(schema)
	if err != nil {
		return fmt.Errorf("rendering schema: %w", err)
	}

	_, err = os.Stdout.Write(out)

	return err
}
