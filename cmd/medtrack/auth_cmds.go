package main

import (
	"fmt"

	"medication-tracker/internal/adapters/storage/sqlite"

	"github.com/spf13/cobra"
)

func signupCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "signup [email] [password]",
		Short: "Create an account and log in",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := cmd.Context()
			u, err := a.svcs.Users.Signup(ctx, name, args[0], args[1])
			if err != nil {
				return err
			}
			if err := saveSession(ctx, a.store, u); err != nil {
				return err
			}

			fmt.Printf("Welcome, %s (%s)\n", u.Name, u.Email)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "display name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login [email] [password]",
		Short: "Log in (mock mode accepts any non-empty password)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := cmd.Context()
			u, err := a.svcs.Users.Login(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			if err := saveSession(ctx, a.store, u); err != nil {
				return err
			}

			fmt.Printf("Logged in as %s (%s)\n", u.Name, u.Email)
			return nil
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.store.Delete(cmd.Context(), sqlite.KeySession); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			sess, err := loadSession(cmd.Context(), a.store)
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s>  id=%s\n", sess.Name, sess.Email, sess.ID)
			return nil
		},
	}
}
