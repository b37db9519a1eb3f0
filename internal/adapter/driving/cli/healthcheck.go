package cli

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

func newHealthcheckCommand(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "healthcheck",
		Short: "Probe a running GUI server",
		Long:  `Exit 0 when the GUI server at the configured listen address answers /healthz, 1 otherwise.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.cfg.ListenAddr
			}
			return probeHealth(cmd.Context(), normalizeAddr(addr))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "server address (defaults to PASSKEEP_LISTEN_ADDR)")
	return cmd
}

func probeHealth(ctx context.Context, addr string) error {
	client := &http.Client{Timeout: 2 * time.Second}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://%s/healthz", addr), nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("probe %s: %w", addr, err)
	}
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("probe %s: unexpected status %d", addr, resp.StatusCode)
	}

	return nil
}

// normalizeAddr ensures the probe connects to loopback rather than the
// bind-all address.
func normalizeAddr(raw string) string {
	const fallback = "127.0.0.1:8501"

	if raw == "" {
		return fallback
	}

	host, port, err := net.SplitHostPort(raw)
	if err != nil {
		return fallback
	}

	if host == "" || host == "0.0.0.0" {
		host = "127.0.0.1"
	}

	return net.JoinHostPort(host, port)
}
