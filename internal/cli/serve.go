package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/flowcanvas/flowcanvas/internal/server"
	"github.com/flowcanvas/flowcanvas/pkg/store"
)

// shutdownGrace bounds how long in-flight requests may run after SIGINT.
const shutdownGrace = 5 * time.Second

// newServeCmd creates the serve command, which runs the HTTP API until the
// process is interrupted.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the diagram engine over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}

func runServe(ctx context.Context, addrOverride string) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	addr := cfg.Server.Addr
	if addrOverride != "" {
		addr = addrOverride
	}

	st, err := store.Open(ctx, cfg.StoreOptions())
	if err != nil {
		return err
	}
	defer st.Close()
	logger.Debugf("Opened %q snapshot store", cfg.Store.Backend)

	srv := &http.Server{
		Addr:    addr,
		Handler: server.New(logger, st).Handler(),
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	printInfo("Listening on %s", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}
