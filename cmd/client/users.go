// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-doc-keeper/internal/adapter"
	"github.com/MKhiriev/go-doc-keeper/models"
)

func newUsersCmd(a adapter.ServerAdapter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Inspect users",
	}

	cmd.AddCommand(newUsersListCmd(a))
	cmd.AddCommand(newUsersGetCmd(a))
	cmd.AddCommand(newUsersDocumentsCmd(a))

	return cmd
}

func newUsersListCmd(a adapter.ServerAdapter) *cobra.Command {
	var page models.Page

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := a.ListUsers(cmd.Context(), page)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), users)
		},
	}
	addPageFlags(cmd, &page)

	return cmd
}

func newUsersGetCmd(a adapter.ServerAdapter) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			user, err := a.GetUser(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), user)
		},
	}
}

func newUsersDocumentsCmd(a adapter.ServerAdapter) *cobra.Command {
	var page models.Page

	cmd := &cobra.Command{
		Use:   "documents ID",
		Short: "List documents owned by a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			documents, err := a.ListUserDocuments(cmd.Context(), id, page)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), documents)
		},
	}
	addPageFlags(cmd, &page)

	return cmd
}
