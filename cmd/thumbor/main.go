package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ironsheep/thumbor-tools-mcp/internal/config"
	"github.com/ironsheep/thumbor-tools-mcp/internal/logging"
	"github.com/ironsheep/thumbor-tools-mcp/internal/render"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// app holds state shared by subcommands once the root has loaded config.
type app struct {
	configPath string
	cfg        *config.Config
	renderer   *render.Renderer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "thumbor",
		Short: "Build thumbor image URLs, srcsets and <img> tags",
		Long: `thumbor builds processed-image URLs for a thumbor server, responsive
srcset candidate lists, and eager or lazy <img> elements. Nothing is fetched:
every command is a pure string builder.

The server URL, security key, breakpoint ladder and lazy default come from
thumbor.yaml (or --config) and THUMBOR_* environment variables.

Examples:
  thumbor url --src https://cdn.example/photo.jpg --width 300 --smart --filter 'quality(80)'
  thumbor srcset --src https://cdn.example/photo.jpg --breakpoints 320,640,1024
  thumbor img --src https://cdn.example/photo.jpg --lazy --attr alt="A photo"
  thumbor serve`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			logging.Init(cfg.Log.Level)

			a.cfg = cfg
			a.renderer = render.New(cfg.ServerURL, cfg.SecurityKey, cfg.Breakpoints)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default: ./thumbor.yaml or ./config/thumbor.yaml)")

	root.AddCommand(
		newURLCmd(a),
		newSrcsetCmd(a),
		newImgCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return root
}

func newURLCmd(a *app) *cobra.Command {
	f := &imageFlags{}
	cmd := &cobra.Command{
		Use:   "url",
		Short: "Print a single processed-image URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := f.props(cmd, false)
			if err != nil {
				return err
			}
			u, err := a.renderer.URL(p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), u)
			return nil
		},
	}
	f.register(cmd, false, false)
	return cmd
}

func newSrcsetCmd(a *app) *cobra.Command {
	f := &imageFlags{}
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "srcset",
		Short: "Print the srcset candidate list for a breakpoint ladder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := f.props(cmd, false)
			if err != nil {
				return err
			}
			set, err := a.renderer.ResponsiveSet(p)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(set)
			}
			fmt.Fprintln(out, set.CandidateSet)
			return nil
		},
	}
	f.register(cmd, true, false)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print src, srcset and candidates as JSON")
	return cmd
}

func newImgCmd(a *app) *cobra.Command {
	f := &imageFlags{}
	cmd := &cobra.Command{
		Use:   "img",
		Short: "Print an eager or lazy <img> element",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := f.props(cmd, a.cfg.Lazy)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := a.renderer.WriteImage(out, p); err != nil {
				return err
			}
			fmt.Fprintln(out)
			return nil
		},
	}
	f.register(cmd, true, true)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// version needs no config
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "thumbor %s\n", Version)
			fmt.Fprintf(out, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
