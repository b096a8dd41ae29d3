package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ironsheep/thumbor-tools-mcp/internal/config"
	"github.com/ironsheep/thumbor-tools-mcp/internal/logging"
	"github.com/ironsheep/thumbor-tools-mcp/internal/render"
	"github.com/ironsheep/thumbor-tools-mcp/internal/server"
	"github.com/rs/zerolog/log"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	configPath := os.Getenv("THUMBOR_CONFIG")

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("thumbor-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		case "--config":
			if len(os.Args) < 3 {
				fmt.Fprintln(os.Stderr, "--config requires a path")
				os.Exit(2)
			}
			configPath = os.Args[2]
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logging.Init("info")
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// stdout is reserved for MCP frames
	logging.Init(cfg.Log.Level)
	logging.Startup(log.Logger, "thumbor-tools-mcp", Version, map[string]string{
		"serverURL":   cfg.ServerURL,
		"signed":      strconv.FormatBool(cfg.SecurityKey != ""),
		"breakpoints": fmt.Sprint(cfg.Breakpoints),
		"lazy":        strconv.FormatBool(cfg.Lazy),
		"commit":      GitCommit,
	})

	r := render.New(cfg.ServerURL, cfg.SecurityKey, cfg.Breakpoints)
	srv := server.New(r,
		server.WithLogger(log.Logger),
		server.WithVersion(Version),
		server.WithDefaultLazy(cfg.Lazy),
	)
	if err := srv.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}

func printHelp() {
	fmt.Println("thumbor-tools-mcp - MCP server for thumbor URLs, srcsets and <img> tags")
	fmt.Println()
	fmt.Println("Usage: thumbor-tools-mcp [--config path]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --config PATH    Config file (default: ./thumbor.yaml or ./config/thumbor.yaml)")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  THUMBOR_CONFIG=path                    Config file")
	fmt.Println("  THUMBOR_SERVER_URL=https://img.example Default thumbor server")
	fmt.Println("  THUMBOR_SECURITY_KEY=...               Sign URLs instead of 'unsafe'")
	fmt.Println("  THUMBOR_BREAKPOINTS=320,640,1024       Default srcset widths")
	fmt.Println("  THUMBOR_LAZY=true                      Render lazysizes markup by default")
	fmt.Println("  THUMBOR_LOG_LEVEL=debug                Enable debug logging")
	fmt.Println()
	fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}
