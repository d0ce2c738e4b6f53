package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jllopis/pathfinder/pkg/catalog"
	"github.com/jllopis/pathfinder/pkg/config"
	pathfindermcp "github.com/jllopis/pathfinder/pkg/mcp"
	"github.com/jllopis/pathfinder/pkg/pipeline"
	"github.com/jllopis/pathfinder/pkg/telemetry"
)

const version = "0.1.0"

type globalFlags struct {
	ConfigPath string
	JSON       bool
	Help       bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	global, args, err := parseGlobalFlags(os.Args[1:])
	if err != nil {
		fatal(err)
	}
	if global.Help || len(args) == 0 {
		printUsage()
		return
	}

	cfg, err := config.Load(global.ConfigPath)
	if err != nil {
		fatal(err)
	}
	telemetry.ConfigureSlog(os.Stderr, cfg.Log.Level, cfg.Log.Format)

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init("pathfinder", version, telemetry.Config{
			Exporter: cfg.Telemetry.Exporter,
			Endpoint: cfg.Telemetry.Endpoint,
			Insecure: cfg.Telemetry.Insecure,
		})
		if err != nil {
			fatal(err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(shutdownCtx)
		}()
	}

	switch args[0] {
	case "run":
		runOnce(ctx, global, cfg, args[1:])
	case "serve":
		runWeb(ctx, cfg, args[1:])
	case "mcp":
		runMCP(cfg)
	case "catalog":
		runCatalog(ctx, cfg, args[1:])
	case "help":
		printUsage()
	case "version":
		fmt.Println(version)
	default:
		fatal(fmt.Errorf("unknown command %q", args[0]))
	}
}

func parseGlobalFlags(args []string) (globalFlags, []string, error) {
	var flags globalFlags
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return flags, args[i+1:], nil
		}
		if !strings.HasPrefix(arg, "-") {
			return flags, args[i:], nil
		}
		switch {
		case arg == "-h" || arg == "--help":
			flags.Help = true
			return flags, nil, nil
		case arg == "--json":
			flags.JSON = true
		case arg == "--config":
			if i+1 >= len(args) {
				return flags, nil, fmt.Errorf("missing value for --config")
			}
			flags.ConfigPath = args[i+1]
			i++
		case strings.HasPrefix(arg, "--config="):
			flags.ConfigPath = strings.TrimPrefix(arg, "--config=")
		default:
			return flags, nil, fmt.Errorf("unknown global flag %q", arg)
		}
	}
	return flags, nil, nil
}

// openCatalog builds the configured catalog source.
func openCatalog(cfg *config.Config) (catalog.Catalog, error) {
	switch cfg.Catalog.Source {
	case "", "seed":
		return catalog.Seed(), nil
	case "file":
		return catalog.LoadFile(cfg.Catalog.Path)
	case "sqlite":
		return catalog.OpenSQLite(cfg.Catalog.Path)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}

func buildPipeline(cfg *config.Config) (*pipeline.Pipeline, error) {
	cat, err := openCatalog(cfg)
	if err != nil {
		return nil, err
	}
	timeout, err := cfg.Pipeline.Duration()
	if err != nil {
		return nil, err
	}
	opts := []pipeline.Option{pipeline.WithTimeout(timeout)}
	if cfg.Telemetry.Enabled {
		metrics, err := pipeline.NewMetrics()
		if err != nil {
			return nil, err
		}
		opts = append(opts, pipeline.WithMetrics(metrics))
	}
	return pipeline.New(cat, opts...), nil
}

func runMCP(cfg *config.Config) {
	cat, err := openCatalog(cfg)
	if err != nil {
		fatal(err)
	}
	if err := pathfindermcp.NewServer("pathfinder", version, cat).ServeStdio(); err != nil {
		fatal(err)
	}
}

func runCatalog(ctx context.Context, cfg *config.Config, args []string) {
	if len(args) == 0 || args[0] != "import" {
		fatal(fmt.Errorf("usage: pathfinder catalog import --from <catalog.yaml> --db <path.db>"))
	}
	var from, db string
	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		switch {
		case rest[i] == "--from" && i+1 < len(rest):
			from = rest[i+1]
			i++
		case strings.HasPrefix(rest[i], "--from="):
			from = strings.TrimPrefix(rest[i], "--from=")
		case rest[i] == "--db" && i+1 < len(rest):
			db = rest[i+1]
			i++
		case strings.HasPrefix(rest[i], "--db="):
			db = strings.TrimPrefix(rest[i], "--db=")
		default:
			fatal(fmt.Errorf("unknown catalog import flag %q", rest[i]))
		}
	}
	if from == "" || db == "" {
		fatal(fmt.Errorf("catalog import requires --from and --db"))
	}

	static, err := catalog.LoadFile(from)
	if err != nil {
		fatal(err)
	}
	store, err := catalog.OpenSQLite(db)
	if err != nil {
		fatal(err)
	}
	defer store.Close()

	doc := static.Document()
	if err := store.Import(ctx, doc); err != nil {
		fatal(err)
	}
	fmt.Printf("imported %d careers and %d resources into %s\n", len(doc.Careers), len(doc.Resources), db)
}

func printUsage() {
	fmt.Println(`Pathfinder: career roadmap pipeline

Usage:
  pathfinder [global flags] <command> [args]

Global flags:
  --config <path>      Path to config YAML
  --json               JSON output

Commands:
  run --goal <text> [--skills <list>]    Run the pipeline once and print the plan
  serve [--addr <addr>]                  Serve the web form
  mcp                                    Serve the MCP toolset on stdio
  catalog import --from <yaml> --db <p>  Import a YAML catalog into sqlite
  version
  help`)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
