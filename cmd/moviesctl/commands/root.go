package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"movies/internal/client"
)

var (
	serverURL string
	sessionID string
	timeout   time.Duration

	api *client.HTTP
)

func Execute() error {
	root := &cobra.Command{
		Use:          "moviesctl",
		Short:        "Drive the movies screen-state service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if serverURL == "" {
				serverURL = os.Getenv("MOVIES_SERVER")
			}
			if serverURL == "" {
				serverURL = "http://localhost:8080"
			}
			api = client.NewHTTP(serverURL)
			api.HTTP = &http.Client{Timeout: timeout}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&serverURL, "server", "", "server base URL (default $MOVIES_SERVER or http://localhost:8080)")
	root.PersistentFlags().StringVarP(&sessionID, "session", "s", "", "screen session id")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")

	root.AddCommand(
		validateCmd(),
		moviesCmd(),
		movieCmd(),
		sessionCmd(),
		signInCmd(),
		profileCmd(),
		reviewCmd(),
		bookmarkCmd(),
		savedCmd(),
	)
	return root.Execute()
}

func requireSession() (uuid.UUID, error) {
	if sessionID == "" {
		return uuid.Nil, fmt.Errorf("session id required (-s)")
	}
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid session id %q: %w", sessionID, err)
	}
	return id, nil
}

func requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// sessionRunE adapts a session-scoped call into a cobra RunE that prints
// the result.
func sessionRunE(call func(ctx context.Context, id uuid.UUID, args []string) (any, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := requireSession()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		out, err := call(ctx, id, args)
		if err != nil {
			return err
		}
		if out == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		}
		return printJSON(cmd, out)
	}
}
