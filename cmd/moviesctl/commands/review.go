package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func reviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Compose a review in the session",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "open <movie-id>",
			Short: "Open an empty draft for a movie",
			Args:  cobra.ExactArgs(1),
			RunE: sessionRunE(func(ctx context.Context, id uuid.UUID, args []string) (any, error) {
				return api.OpenReview(ctx, id, args[0])
			}),
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the open draft",
			Args:  cobra.NoArgs,
			RunE: sessionRunE(func(ctx context.Context, id uuid.UUID, args []string) (any, error) {
				return api.Review(ctx, id)
			}),
		},
		&cobra.Command{
			Use:   "text <text>",
			Short: "Replace the draft text",
			Args:  cobra.ExactArgs(1),
			RunE: sessionRunE(func(ctx context.Context, id uuid.UUID, args []string) (any, error) {
				return api.SetReviewText(ctx, id, args[0])
			}),
		},
		&cobra.Command{
			Use:   "rating <1-5>",
			Short: "Set the star rating",
			Args:  cobra.ExactArgs(1),
			RunE: sessionRunE(func(ctx context.Context, id uuid.UUID, args []string) (any, error) {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return nil, fmt.Errorf("rating %q: %w", args[0], err)
				}
				return api.SetReviewRating(ctx, id, n)
			}),
		},
		&cobra.Command{
			Use:   "submit",
			Short: "Submit the draft",
			Args:  cobra.NoArgs,
			RunE: sessionRunE(func(ctx context.Context, id uuid.UUID, args []string) (any, error) {
				return api.SubmitReview(ctx, id)
			}),
		},
		&cobra.Command{
			Use:   "cancel",
			Short: "Discard the draft",
			Args:  cobra.NoArgs,
			RunE: sessionRunE(func(ctx context.Context, id uuid.UUID, args []string) (any, error) {
				return nil, api.CancelReview(ctx, id)
			}),
		},
	)
	return cmd
}
