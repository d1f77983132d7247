package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	typefence "github.com/typefence/typefence"
	"github.com/typefence/typefence/i18n"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func initLogger(verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).With().Timestamp().Str("app", "typefence").Logger()
	if !verbose {
		logger = logger.Level(zerolog.WarnLevel)
	}
	return logger
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "typefence",
		Short:         "Check JSON argument lists against declared signatures",
		SilenceErrors: false,
	}
	root.AddCommand(newCheckCmd(), newDescribeCmd())
	return root
}

func newCheckCmd() *cobra.Command {
	var (
		sigPath  string
		argsPath string
		cfgPath  string
		locale   string
		deep     bool
		lax      bool
		failFast bool
		verbose  bool
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a JSON argument list against a signature declaration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := initLogger(verbose)
			cfg, err := loadToolConfig(cfgPath)
			if err != nil {
				return err
			}
			// Config supplies defaults; explicit flags win.
			if !cmd.Flags().Changed("deep") {
				deep = cfg.Deep
			}
			if !cmd.Flags().Changed("lax") {
				lax = cfg.Lax
			}
			if !cmd.Flags().Changed("fail-fast") {
				failFast = cfg.FailFast
			}
			if !cmd.Flags().Changed("locale") && cfg.Locale != "" {
				locale = cfg.Locale
			}
			i18n.SetLanguage(locale)

			sig, err := loadSignatureFile(sigPath)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(argsPath)
			if err != nil {
				return fmt.Errorf("read args: %w", err)
			}
			log.Debug().Str("function", sig.Name()).Str("signature", sig.Describe()).Int("bytes", len(data)).Msg("checking")

			opts := []typefence.Option{typefence.Deep(deep), typefence.RequireAll(!lax)}
			if failFast {
				opts = append(opts, typefence.FailFast())
			}
			err = typefence.CheckJSON(cmd.Context(), sig, data, opts...)
			if err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "ok")
				return nil
			}
			iss, ok := typefence.AsIssues(err)
			if !ok {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderReport(sig, iss))
			cmd.SilenceUsage = true
			return fmt.Errorf("%d issue(s)", len(iss))
		},
	}
	cmd.Flags().StringVar(&sigPath, "sig", "", "signature declaration file (YAML)")
	cmd.Flags().StringVar(&argsPath, "args", "", "argument list file (JSON array or object)")
	cmd.Flags().StringVar(&cfgPath, "config", "", "tool config file (default .typefence.toml when present)")
	cmd.Flags().StringVar(&locale, "locale", "en", "message language (BCP 47)")
	cmd.Flags().BoolVar(&deep, "deep", false, "check container elements recursively")
	cmd.Flags().BoolVar(&lax, "lax", false, "allow parameters without a type hint")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "stop at the first issue")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logs")
	_ = cmd.MarkFlagRequired("sig")
	_ = cmd.MarkFlagRequired("args")
	return cmd
}

func newDescribeCmd() *cobra.Command {
	var sigPath string
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the normalized form of a signature declaration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sig, err := loadSignatureFile(sigPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sig.Describe())
			return nil
		},
	}
	cmd.Flags().StringVar(&sigPath, "sig", "", "signature declaration file (YAML)")
	_ = cmd.MarkFlagRequired("sig")
	return cmd
}
