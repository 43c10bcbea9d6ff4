package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"solkit/internal/app"
	"solkit/internal/config"
	"solkit/internal/logging"
)

// rootState is shared by the root command and its subcommands.
type rootState struct {
	configPath string
	serverURL  string
	logLevel   string
	logFormat  string
	entropy    io.Reader

	cfg       *config.Config
	log       zerolog.Logger
	logCloser io.Closer
	wire      *app.Wire
}

// Execute runs the CLI with os.Args.
func Execute(ctx context.Context) error {
	root, st := newRootCmd(nil)
	return execute(ctx, root, st, os.Stderr)
}

// execute runs root and releases the log file whether or not the command
// succeeded. cobra skips post-run hooks after a failed RunE.
func execute(ctx context.Context, root *cobra.Command, st *rootState, stderr io.Writer) error {
	err := root.ExecuteContext(ctx)
	if cerr := st.close(); err == nil {
		err = cerr
	}
	var reported *reportedError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintln(stderr, "Error:", err)
	}
	return err
}

func newRootCmd(entropy io.Reader) (*cobra.Command, *rootState) {
	st := &rootState{entropy: entropy}

	root := &cobra.Command{
		Use:           "solkit",
		Short:         "Solana keypair, signing and token-mint toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&st.configPath, "config", "", "config file (YAML, JSON or TOML)")
	root.PersistentFlags().StringVar(&st.serverURL, "server", "", "solkit server base URL (e.g. http://127.0.0.1:3000); empty runs locally")
	root.PersistentFlags().StringVar(&st.logLevel, "log-level", "", "log level override (trace|debug|info|warn|error)")
	root.PersistentFlags().StringVar(&st.logFormat, "log-format", "", "log format override (auto|json|console)")

	root.AddCommand(
		serveCmd(st),
		keygenCmd(st),
		signCmd(st),
		verifyCmd(st),
		mintCmd(st),
		versionCmd(),
	)
	return root, st
}

func (st *rootState) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(st.configPath)
	if err != nil {
		return err
	}
	if st.logLevel != "" {
		cfg.Log.Level = st.logLevel
	}
	if st.logFormat != "" {
		cfg.Log.Format = st.logFormat
	}

	log, closer, err := logging.New(cfg.Log.Options(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	wire, err := app.NewWire(app.Config{Entropy: st.entropy, ServerURL: st.serverURL})
	if err != nil {
		_ = closer.Close()
		return err
	}

	st.cfg, st.log, st.logCloser, st.wire = cfg, log, closer, wire
	cmd.SetContext(log.WithContext(cmd.Context()))
	return nil
}

// close releases the log file, if one was opened.
func (st *rootState) close() error {
	if st.logCloser == nil {
		return nil
	}
	err := st.logCloser.Close()
	st.logCloser = nil
	return err
}
