// Package cli implements the skinscan command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"skin-analyzer/internal/config"
	"skin-analyzer/internal/face"
	"skin-analyzer/internal/logger"
	"skin-analyzer/internal/version"

	"github.com/spf13/cobra"
)

// globalOptions holds flags shared by every subcommand.
type globalOptions struct {
	ConfigPath string
	LogLevel   string
	Cascade    string

	cfg config.Config
}

// detectorParams builds cascade settings from the loaded config.
func (g *globalOptions) detectorParams() face.DetectorParams {
	p := face.DefaultDetectorParams()
	p.MinSize = g.cfg.MinFaceSize
	return p
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "skinscan",
		Short:         "Skin type, brightness and acne assessment for face images",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			// Flags win over file and environment
			if opts.LogLevel != "" {
				cfg.LogLevel = opts.LogLevel
			}
			if opts.Cascade != "" {
				cfg.CascadePath = opts.Cascade
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			opts.cfg = cfg

			if err := logger.Init(cfg.LogLevel, cfg.LogDevelopment); err != nil {
				return err
			}
			logger.Debug("config loaded",
				logger.Field{Key: "cascade", Data: cfg.CascadePath},
				logger.Field{Key: "workers", Data: cfg.Workers},
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Config file (default: "+config.DefaultPath()+")")
	root.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&opts.Cascade, "cascade", "", "Haar cascade XML for face detection")

	root.AddCommand(newAnalyzeCmd(opts))
	root.AddCommand(newBatchCmd(opts))
	root.AddCommand(newSampleCmd())
	return root
}

// Execute runs the command tree with a context cancelled on SIGINT/SIGTERM.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
