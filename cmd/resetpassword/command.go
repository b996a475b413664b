package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"hotel/internal/domains/user/service"
	"hotel/shared/failure"
	"hotel/shared/password"

	"github.com/spf13/cobra"
)

const (
	adminUsername   = "admin"
	defaultPassword = "admin123"
)

var errAdminNotFound = errors.New("admin user not found")

// newCommand builds the reset command. The user service is only constructed once the
// password has passed validation.
func newCommand(users func() service.User, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:           "resetpassword [new-password]",
		Short:         "Reset the password of the admin user",
		Long:          "Reset the password of the admin user. Without an argument the password becomes " + defaultPassword + ".",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			newPassword := defaultPassword
			if len(args) == 1 {
				newPassword = args[0]
			}

			return run(cmd.Context(), users, out, newPassword)
		},
	}
}

func run(ctx context.Context, users func() service.User, out io.Writer, newPassword string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := password.Check(newPassword); err != nil {
		fmt.Fprintf(out, "Invalid password: %v\n", err)

		return fmt.Errorf("invalid password: %w", err)
	}

	err := users().ResetPassword(ctx, adminUsername, newPassword)

	switch {
	case err == nil:
		fmt.Fprintf(out, "Password for %q has been reset.\n", adminUsername)

		return nil
	case failure.IsNotFound(err):
		fmt.Fprintf(out, "User %q was not found.\n", adminUsername)

		return errAdminNotFound
	default:
		fmt.Fprintf(out, "Failed to reset password: %v\n", err)

		return fmt.Errorf("failed to reset password: %w", err)
	}
}
