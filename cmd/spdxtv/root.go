package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ochairo/spdxtv/internal/config"
	"github.com/ochairo/spdxtv/internal/domain-adapters/gateways"
	orchestrators "github.com/ochairo/spdxtv/internal/domain-orchestrators"
	"github.com/ochairo/spdxtv/internal/domain/interfaces"
	ports "github.com/ochairo/spdxtv/internal/domain/interfaces/gateways"
	"github.com/ochairo/spdxtv/internal/domain/interfaces/repositories"
	"github.com/ochairo/spdxtv/internal/domain/services"
	"github.com/ochairo/spdxtv/internal/external-adapters/charmlog"
	"github.com/ochairo/spdxtv/internal/external-adapters/tagvalue"
	"github.com/ochairo/spdxtv/internal/external-adapters/yaml"
)

// Version is set via -ldflags
var Version = "dev"

// errFailed signals a command that already reported its failure
var errFailed = errors.New("command failed")

// rootOptions are the persistent flags shared by every command
type rootOptions struct {
	configFile string
	logLevel   string
	strict     bool
}

// app holds the wired services for one invocation
type app struct {
	cfg        *config.Config
	configPath string
	logger     interfaces.Logger
	documents  *orchestrators.DocumentOrchestrator
	checksums  ports.ChecksumCalculator
	closers    []io.Closer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{}
	defer a.close()

	root := newRootCmd(a, stdout, stderr)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(a *app, stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "spdxtv",
		Short:         "Parse, validate, generate and sign SPDX tag-value documents",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd, opts, stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default is ./spdxtv.yaml or the user config dir)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	root.PersistentFlags().BoolVar(&opts.strict, "strict", false, "fail on any parse diagnostic")

	root.AddCommand(
		newParseCmd(a),
		newValidateCmd(a),
		newFormatCmd(a),
		newGenerateCmd(a),
		newVerifyCmd(a),
		newSignCmd(a),
		newChecksumCmd(a),
		newConfigCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command, opts *rootOptions, stderr io.Writer) error {
	ctx := cmd.Context()

	loadOpts := config.LoadOptions{ConfigFilePath: opts.configFile}
	if opts.configFile == "" {
		loadOpts.SearchDirs = config.DefaultSearchDirs()
	}
	cfg, path, err := config.Load(ctx, loadOpts)
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if cmd.Flags().Changed("strict") {
		cfg.Parse.Strict = opts.strict
	}
	a.cfg = cfg
	a.configPath = path

	if cfg.Log.File != "" {
		//nolint:gosec // G304: log file is configured by the user
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		a.closers = append(a.closers, f)
		a.logger = interfaces.NewWriterLogger(f)
	} else {
		logger, err := charmlog.New(stderr, charmlog.Options{Level: cfg.Log.Level, Prefix: cfg.Log.Prefix})
		if err != nil {
			return err
		}
		a.logger = logger
	}
	logger := a.logger

	var licenses repositories.LicenseRepository = yaml.NewLicenseRepository(cfg.Licenses.File)
	catalog, err := licenses.LoadLicenseList(ctx)
	if err != nil {
		return fmt.Errorf("failed to load license list: %w", err)
	}
	logger.Debug("Loaded license list",
		interfaces.F("version", catalog.ListVersion().String()),
		interfaces.F("licenses", catalog.Len()))

	checksums := gateways.NewChecksumCalculator()
	documents := services.NewDocumentService(services.DocumentDeps{
		Decoder: tagvalue.NewParser(
			tagvalue.WithCatalog(catalog),
			tagvalue.WithLogger(logger),
			tagvalue.WithStrict(cfg.Parse.Strict),
		),
		Encoder:   tagvalue.NewWriter(tagvalue.WithValidation(cfg.Write.Validate)),
		Checksums: checksums,
		Catalog:   catalog,
		Logger:    logger,
	})
	a.checksums = checksums
	a.documents = orchestrators.NewDocumentOrchestrator(
		documents,
		gateways.NewSignatureGateway(cfg.Verify.Passphrase),
		logger,
		orchestrators.DocumentOrchestratorConfig{Keyring: cfg.Verify.Keyring},
	)
	return nil
}

func (a *app) close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}
