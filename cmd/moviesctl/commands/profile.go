package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and edit the session profile",
	}

	simple := func(use, short string, call func(context.Context, uuid.UUID) (any, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: sessionRunE(func(ctx context.Context, id uuid.UUID, args []string) (any, error) {
				return call(ctx, id)
			}),
		}
	}

	cmd.AddCommand(
		simple("show", "Print the profile view", func(ctx context.Context, id uuid.UUID) (any, error) {
			return api.Profile(ctx, id)
		}),
		simple("edit", "Enter edit mode", func(ctx context.Context, id uuid.UUID) (any, error) {
			return api.BeginEdit(ctx, id)
		}),
		simple("confirm", "Commit the edit buffer", func(ctx context.Context, id uuid.UUID) (any, error) {
			return api.ConfirmEdit(ctx, id)
		}),
		simple("cancel", "Discard the edit buffer", func(ctx context.Context, id uuid.UUID) (any, error) {
			return api.CancelEdit(ctx, id)
		}),
		simple("toggle", "Flip edit mode; leaving it commits", func(ctx context.Context, id uuid.UUID) (any, error) {
			return api.ToggleEdit(ctx, id)
		}),
		&cobra.Command{
			Use:   "set <first-name> <last-name>",
			Short: "Replace the edit buffer",
			Args:  cobra.ExactArgs(2),
			RunE: sessionRunE(func(ctx context.Context, id uuid.UUID, args []string) (any, error) {
				return api.UpdateBuffer(ctx, id, args[0], args[1])
			}),
		},
		&cobra.Command{
			Use:   "commit <first-name> <last-name>",
			Short: "Write names straight to the profile",
			Args:  cobra.ExactArgs(2),
			RunE: sessionRunE(func(ctx context.Context, id uuid.UUID, args []string) (any, error) {
				return api.CommitProfile(ctx, id, args[0], args[1])
			}),
		},
		&cobra.Command{
			Use:   "avatar <ref>",
			Short: "Set the avatar while editing",
			Args:  cobra.ExactArgs(1),
			RunE: sessionRunE(func(ctx context.Context, id uuid.UUID, args []string) (any, error) {
				return api.SetAvatar(ctx, id, args[0])
			}),
		},
	)
	return cmd
}
