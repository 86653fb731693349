package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/longkey1/twin/internal/mockbackend"
	"github.com/longkey1/twin/internal/observability"
	"github.com/spf13/cobra"
)

var (
	mockAddr   string
	mockAvatar string
)

// mockBackendCmd represents the mock-backend command
var mockBackendCmd = &cobra.Command{
	Use:   "mock-backend",
	Short: "Run a local mock of the twin backend",
	Long: `Run a local HTTP server implementing the twin chat API with canned replies.

Messages mentioning experience, education, skills or projects receive the
matching UI action, so every panel can be tried without the real backend:
  twin mock-backend &
  twin chat "What are your skills?"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("addr") {
			mockAddr = cfg.MockAddr
		}

		var avatar []byte
		if mockAvatar != "" {
			if avatar, err = os.ReadFile(mockAvatar); err != nil {
				return fmt.Errorf("reading avatar: %w", err)
			}
		}

		srv := &http.Server{
			Addr:              mockAddr,
			Handler:           mockbackend.NewServer(avatar),
			ReadHeaderTimeout: 5 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.ListenAndServe()
		}()

		fmt.Fprintf(os.Stderr, "Mock backend listening on http://%s\n", mockAddr)
		observability.Logger().Info("mock backend started", "addr", mockAddr)

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("mock backend: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down mock backend: %w", err)
		}
		fmt.Fprintln(os.Stderr, "Mock backend stopped.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mockBackendCmd)

	mockBackendCmd.Flags().StringVar(&mockAddr, "addr", mockbackend.DefaultAddr, "Listen address")
	mockBackendCmd.Flags().StringVar(&mockAvatar, "avatar", "", "PNG file served at /avatar.png")
}
