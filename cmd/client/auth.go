// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-doc-keeper/internal/adapter"
	"github.com/MKhiriev/go-doc-keeper/models"
)

func newSignupCmd(a adapter.ServerAdapter) *cobra.Command {
	var request models.SignupRequest

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and print its session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := a.Signup(cmd.Context(), request)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), response)
		},
	}

	cmd.Flags().StringVar(&request.Username, "username", "", "username")
	cmd.Flags().StringVar(&request.Password, "password", "", "password")
	cmd.Flags().StringVar(&request.Email, "email", "", "email")
	cmd.Flags().StringVar(&request.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&request.LastName, "last-name", "", "last name")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLoginCmd(a adapter.ServerAdapter) *cobra.Command {
	var request models.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and print a session token",
		Long: `Authenticates with username and password. Pass the printed token with
--token or export it as DOC_KEEPER_TOKEN for the following commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := a.Login(cmd.Context(), request)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), response)
		},
	}

	cmd.Flags().StringVar(&request.Username, "username", "", "username")
	cmd.Flags().StringVar(&request.Password, "password", "", "password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(a adapter.ServerAdapter) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Logout(cmd.Context()); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return err
		},
	}
}
