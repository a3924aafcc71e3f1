// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-doc-keeper/internal/adapter"
)

func newRolesCmd(a adapter.ServerAdapter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Manage roles (admin only)",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List roles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			roles, err := a.ListRoles(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), roles)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "create TITLE",
		Short: "Create a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := a.CreateRole(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), role)
		},
	})

	return cmd
}
