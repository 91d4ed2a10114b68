package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/clacky-ai/uniapp-fastapi-mysql-starter/client"
)

func newLoginCmd(f *rootFlags) *cobra.Command {
	var req client.LoginRequest
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print the access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, "login", func(ctx context.Context, c *client.Client) *client.Response[client.Token] {
				return c.Login(ctx, req)
			})
		},
	}
	cmd.Flags().StringVar(&req.Username, "username", "", "Username (required)")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password (required)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(f *rootFlags) *cobra.Command {
	var req client.RegisterRequest
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, "register", func(ctx context.Context, c *client.Client) *client.Response[client.User] {
				return c.Register(ctx, req)
			})
		},
	}
	cmd.Flags().StringVar(&req.Username, "username", "", "Username (required)")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email (required)")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password (required)")
	cmd.Flags().StringVar(&req.FullName, "full-name", "", "Full name (optional)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newMeCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, "me", func(ctx context.Context, c *client.Client) *client.Response[client.User] {
				return c.GetProfile(ctx)
			})
		},
	}
}

func newUpdateMeCmd(f *rootFlags) *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:   "update-me",
		Short: "Update the authenticated user from a JSON payload",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req client.UserUpdate
			if err := decodeData(data, &req); err != nil {
				return err
			}
			return run(cmd, f, "update-me", func(ctx context.Context, c *client.Client) *client.Response[client.User] {
				return c.UpdateProfile(ctx, req)
			})
		},
	}
	cmd.Flags().StringVar(&data, "data", "", `JSON payload, e.g. {"full_name":"Ada"}`)
	return cmd
}

func newUsersCmd(f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{Use: "users", Short: "Inspect users"}

	var page client.Page
	list := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, "users list", func(ctx context.Context, c *client.Client) *client.Response[[]client.User] {
				return c.ListUsers(ctx, &page)
			})
		},
	}
	addPageFlags(list, &page)

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return run(cmd, f, "users get", func(ctx context.Context, c *client.Client) *client.Response[client.User] {
				return c.GetUser(ctx, id)
			})
		},
	}

	cmd.AddCommand(list, get)
	return cmd
}
