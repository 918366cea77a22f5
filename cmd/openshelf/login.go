package main

import (
	"github.com/spf13/cobra"

	"github.com/openshelf/openshelf/internal/domain/catalog"
)

func loginCmd(c *cli) *cobra.Command {
	var email, password, returnTo string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Auth.SignIn(cmd.Context(), email, password, returnTo)
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.Flags().StringVar(&returnTo, "return-to", "", "location to resume after sign-in")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func registerCmd(c *cli) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := c.app.API.Users.Register(cmd.Context(), catalog.EditUser{
				Name:         name,
				Email:        email,
				PasswordHash: password,
			})
			if err != nil {
				return err
			}
			return c.print(user)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "display name")
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func logoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			c.app.Auth.SignOut(cmd.Context())
			return nil
		},
	}
}

func whoamiCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			session := c.app.Auth.Resume(cmd.Context())
			return c.print(session)
		},
	}
}
