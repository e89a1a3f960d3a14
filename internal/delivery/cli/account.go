package cli

import (
	"context"

	"snapgram/internal/usecase"

	"github.com/spf13/cobra"
)

func (c *cli) newSignUpCmd() *cobra.Command {
	input := &usecase.CreateAccountInput{}

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and its profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, "signup", func(ctx context.Context) (any, error) {
				profile, err := c.client.CreateAccount(ctx, input)
				if err != nil {
					return nil, err
				}

				return newProfileView(profile), nil
			})
		},
	}

	cmd.Flags().StringVar(&input.Email, "email", "", "Login email")
	cmd.Flags().StringVar(&input.Password, "password", "", "Password")
	cmd.Flags().StringVar(&input.Name, "name", "", "Display name")
	cmd.Flags().StringVar(&input.Username, "username", "", "Username")

	return cmd
}

func (c *cli) newSignInCmd() *cobra.Command {
	input := &usecase.SignInInput{}

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Open a session with email and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, "signin", func(ctx context.Context) (any, error) {
				session, err := c.client.SignIn(ctx, input)
				if err != nil {
					return nil, err
				}

				return newSessionView(session), nil
			})
		},
	}

	cmd.Flags().StringVar(&input.Email, "email", "", "Login email")
	cmd.Flags().StringVar(&input.Password, "password", "", "Password")

	return cmd
}

func (c *cli) newSignOutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Close the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, "signout", func(ctx context.Context) (any, error) {
				if err := c.client.SignOut(ctx); err != nil {
					return nil, err
				}

				return map[string]bool{"signedOut": true}, nil
			})
		},
	}
}

func (c *cli) newWhoAmICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user's profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, "whoami", func(ctx context.Context) (any, error) {
				profile, err := c.client.GetCurrentUser(ctx)
				if err != nil {
					return nil, err
				}

				return newProfileView(profile), nil
			})
		},
	}
}

func (c *cli) newUserCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "user <user-id>",
		Short: "Show a profile by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, "user", func(ctx context.Context) (any, error) {
				profile, err := c.client.GetUserByID(ctx, args[0])
				if err != nil {
					return nil, err
				}

				return newProfileView(profile), nil
			})
		},
	}
}
