package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func sessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Open, inspect or end a screen session",
	}

	open := &cobra.Command{
		Use:   "open",
		Short: "Open a new session and print its id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := requestContext(cmd)
			defer cancel()

			s, err := api.OpenSession(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.ID)
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the session snapshot",
		Args:  cobra.NoArgs,
		RunE: sessionRunE(func(ctx context.Context, id uuid.UUID, args []string) (any, error) {
			return api.Session(ctx, id)
		}),
	}

	signOut := &cobra.Command{
		Use:   "signout",
		Short: "End the session",
		Args:  cobra.NoArgs,
		RunE: sessionRunE(func(ctx context.Context, id uuid.UUID, args []string) (any, error) {
			return nil, api.SignOut(ctx, id)
		}),
	}

	cmd.AddCommand(open, show, signOut)
	return cmd
}

func signInCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Drive the session's sign-in form",
	}

	var email, password string
	var set *cobra.Command
	set = &cobra.Command{
		Use:   "set",
		Short: "Set email and/or password",
		Args:  cobra.NoArgs,
		RunE: sessionRunE(func(ctx context.Context, id uuid.UUID, args []string) (any, error) {
			var e, p *string
			if set.Flags().Changed("email") {
				e = &email
			}
			if set.Flags().Changed("password") {
				p = &password
			}
			return api.UpdateSignIn(ctx, id, e, p)
		}),
	}
	set.Flags().StringVar(&email, "email", "", "email field")
	set.Flags().StringVar(&password, "password", "", "password field")

	toggle := &cobra.Command{
		Use:   "toggle",
		Short: "Toggle password visibility",
		Args:  cobra.NoArgs,
		RunE: sessionRunE(func(ctx context.Context, id uuid.UUID, args []string) (any, error) {
			return api.TogglePasswordVisibility(ctx, id)
		}),
	}

	submit := &cobra.Command{
		Use:   "submit",
		Short: "Validate the form",
		Args:  cobra.NoArgs,
		RunE: sessionRunE(func(ctx context.Context, id uuid.UUID, args []string) (any, error) {
			return api.SubmitSignIn(ctx, id)
		}),
	}

	cmd.AddCommand(set, toggle, submit)
	return cmd
}
