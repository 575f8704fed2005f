package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	tui "github.com/grindlemire/go-tuikit"
	"github.com/grindlemire/go-tuikit/internal/config"
	"github.com/grindlemire/go-tuikit/internal/debug"
)

var rootCmd = &cobra.Command{
	Use:   "tuikit",
	Short: "Counter demo for the tuikit reactive terminal runtime",
	Long: `tuikit runs a small counter application built from hook-driven
components: keyboard bindings, clickable buttons, area-scoped mouse
tracking and a timer, all wired through the tuikit event distributor.`,
	SilenceUsage: true,
	RunE:         runDemo,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "log.level    = %s\n", cfg.Log.Level)
		fmt.Fprintf(out, "log.file     = %s\n", cfg.Log.File)
		fmt.Fprintf(out, "ui.mouse     = %t\n", cfg.UI.Mouse)
		fmt.Fprintf(out, "ui.quit_key  = %s\n", cfg.UI.QuitKey)
		fmt.Fprintf(out, "ui.accent    = %s\n", cfg.UI.Accent)
		if used := viper.ConfigFileUsed(); used != "" {
			fmt.Fprintf(out, "config file  = %s\n", used)
		}
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/tuikit/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to this file")
	rootCmd.Flags().Bool("no-mouse", false, "disable mouse reporting")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.file", rootCmd.PersistentFlags().Lookup("log-file"))

	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	config.BindEnv()

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

func runDemo(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if noMouse, _ := cmd.Flags().GetBool("no-mouse"); noMouse {
		cfg.UI.Mouse = false
	}

	if cfg.Log.File != "" {
		if err := debug.Init(cfg.Log.File, cfg.Log.Level); err != nil {
			return err
		}
		defer debug.Close()
	}

	opts, err := treeOptions(cfg)
	if err != nil {
		return err
	}
	accent, err := config.ParseColor(cfg.UI.Accent)
	if err != nil {
		return err
	}

	tree, err := tui.NewTree(tui.E(App{Accent: accent}), opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	err = tree.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func treeOptions(cfg *config.Config) ([]tui.Option, error) {
	var opts []tui.Option
	if !cfg.UI.Mouse {
		opts = append(opts, tui.WithoutMouse())
	}

	quit, err := config.ParseQuitKey(cfg.UI.QuitKey)
	if err != nil {
		return nil, err
	}
	if quit.IsZero() {
		opts = append(opts, tui.WithoutQuitPattern())
	} else {
		opts = append(opts, tui.WithQuitPattern(quit))
	}
	return opts, nil
}
