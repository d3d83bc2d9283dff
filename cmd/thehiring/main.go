package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/naveenspark/thehiring/internal/browser"
	"github.com/naveenspark/thehiring/internal/config"
	"github.com/naveenspark/thehiring/internal/logging"
	"github.com/naveenspark/thehiring/internal/tui"
	"github.com/naveenspark/thehiring/pkg/domain"
	"github.com/naveenspark/thehiring/pkg/session"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

const siteURL = "https://thehiring.example"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	verbose    bool
	name       string
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	root := &cobra.Command{
		Use:   "thehiring",
		Short: "The Hiring: learn, certify, match and connect from your terminal",
		Long: `The Hiring is a career platform walkthrough in the terminal.

Browse courses, certifications, job matches and the community. Sign in
from the prompt (any credentials work) to unlock your dashboard.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return runTUI(f)
		},
	}
	root.PersistentFlags().StringVar(&f.configPath, "config", "", "Config file (default ~/.config/thehiring/config.toml or $THEHIRING_CONFIG)")
	root.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "Log at debug level")
	root.Flags().StringVar(&f.name, "name", "", "Start signed in under this name")

	root.AddCommand(
		&cobra.Command{
			Use:   "version",
			Short: "Show version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				printVersion(cmd.OutOrStdout(), version)
			},
		},
		&cobra.Command{
			Use:   "tour",
			Short: "Print a summary of every section without starting the TUI",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := config.Load(f.configPath)
				if err != nil {
					return err
				}
				cat, err := domain.LoadCatalog(cfg.Catalog.Path)
				if err != nil {
					return err
				}
				printTour(cmd.OutOrStdout(), cat)
				return nil
			},
		},
		legalCmd("terms", "Terms of Service"),
		legalCmd("privacy", "Privacy Policy"),
		legalCmd("faq", "Frequently Asked Questions"),
	)
	return root
}

func legalCmd(page, short string) *cobra.Command {
	return &cobra.Command{
		Use:   page,
		Short: short,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			openLegal(cmd.OutOrStdout(), page)
		},
	}
}

// openBrowser is replaced in tests.
var openBrowser = browser.Open

// openLegal opens a legal page, printing the link when no browser is available.
func openLegal(w io.Writer, page string) {
	url := siteURL + "/" + page
	if err := openBrowser(url); err != nil {
		fmt.Fprintln(w, url)
	}
}

func runTUI(f rootFlags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Path, cfg.Log.Level, f.verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	cat, err := domain.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		return err
	}

	ctrl := session.NewController(cfg.Session.DefaultName, logger)
	if f.name != "" {
		ctrl.Login(f.name)
	}

	logger.Info("starting",
		zap.String("version", version),
		zap.String("catalog", cfg.Catalog.Path),
		zap.Duration("splash", cfg.UI.Splash),
	)

	app := tui.NewApp(ctrl, cat, tui.Options{Splash: cfg.UI.Splash, Logger: logger})

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}

	final := ctrl.Snapshot()
	logger.Info("exiting",
		zap.String("view", final.View.String()),
		zap.Bool("authenticated", final.Authenticated),
	)
	return nil
}
