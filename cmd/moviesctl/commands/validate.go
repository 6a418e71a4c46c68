package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"movies/internal/domain/signin"
)

// validate <email> <password>: run the sign-in checks without a server.
func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <email> <password>",
		Short: "Validate sign-in credentials locally",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := signin.Validate(args[0], args[1])
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "email:    %s\n", verdict(res.EmailValid))
			fmt.Fprintf(out, "password: %s\n", verdict(res.PasswordValid))
			if !res.Valid() {
				return fmt.Errorf("credentials rejected")
			}
			return nil
		},
	}
}

func verdict(ok bool) string {
	if ok {
		return "valid"
	}
	return "invalid"
}
