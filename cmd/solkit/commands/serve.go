package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"solkit/internal/api"
)

func serveCmd(st *rootState) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if st.wire.Remote != nil {
				return errors.New("serve runs the services in-process; drop --server")
			}
			sc := st.cfg.Server
			if addr != "" {
				sc.Addr = addr
			}

			router := api.NewRouter(api.RouterOptions{
				Logger:         st.log,
				AllowedOrigins: st.cfg.CORS.AllowedOrigins,
				RequestTimeout: sc.RequestTimeout,
				MaxBodyBytes:   sc.MaxBodyBytes,
			}, st.wire.Handler())

			srv := api.NewServer(api.ServerOptions{
				Addr:            sc.Addr,
				ReadTimeout:     sc.ReadTimeout,
				WriteTimeout:    sc.WriteTimeout,
				ShutdownTimeout: sc.ShutdownTimeout,
			}, router, st.log)
			return srv.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address override (default from config, :3000)")
	return cmd
}
