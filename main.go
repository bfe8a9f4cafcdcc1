package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Shengwang-Community/ShengwangBeautyView/app"
	"github.com/Shengwang-Community/ShengwangBeautyView/config"
)

var (
	cfgPath   string
	debugFlag bool
)

var rootCmd = &cobra.Command{
	Use:           "beautyview",
	Short:         "Beauty effects control panel with live preview",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGUI,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the control panel window",
	RunE:  runGUI,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", config.DefaultPath, "Config file path")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Force debug logging")
	rootCmd.AddCommand(runCmd)
}

// loadConfig reads the config file. A malformed file falls back to defaults
// and is reported through the returned logger, which writes to out.
func loadConfig(out io.Writer) (*config.Config, *slog.Logger) {
	cfg, err := config.Load(cfgPath)
	if debugFlag {
		cfg.Debug = true
	}
	logger := NewLogger(cfg.Level(), logWriter(cfg, out))
	if err != nil {
		logger.Error("config load failed, using defaults", "path", cfgPath, "error", err)
	}
	return cfg, logger
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, logger := loadConfig(os.Stdout)
	c, err := app.BuildContainer(cfg, cfgPath, logger)
	if err != nil {
		return err
	}
	logger.Info("starting", "material_path", c.Engine.MaterialPath(), "store", cfg.StorePath, "camera", cfg.CameraSource)
	return app.NewApp("Beauty View", c).Start()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
