// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-doc-keeper/internal/adapter"
	"github.com/MKhiriev/go-doc-keeper/models"
)

// tokenEnv names the environment variable holding the session token printed
// by login and signup.
const tokenEnv = "DOC_KEEPER_TOKEN"

var errInvalidID = errors.New("id must be a positive integer")

// newRootCmd builds the command tree of the client. Every command talks to
// the server through a.
func newRootCmd(a adapter.ServerAdapter) *cobra.Command {
	var token string

	rootCmd := &cobra.Command{
		Use:   "client",
		Short: "go-doc-keeper CLI - document management client",
		Long: `client is the command-line interface for go-doc-keeper. Use it to sign up,
log in and manage documents, users and roles. Command output is JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.SetToken(token)
		},
	}

	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv(tokenEnv), "session token (also set via "+tokenEnv+")")

	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newVersionCmd(a))
	rootCmd.AddCommand(newSignupCmd(a))
	rootCmd.AddCommand(newLoginCmd(a))
	rootCmd.AddCommand(newLogoutCmd(a))
	rootCmd.AddCommand(newDocumentsCmd(a))
	rootCmd.AddCommand(newUsersCmd(a))
	rootCmd.AddCommand(newRolesCmd(a))

	return rootCmd
}

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Print client build info",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printBuildInfo(cmd.OutOrStdout())
		},
	}
}

func newVersionCmd(a adapter.ServerAdapter) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := a.Version(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), version)
			return err
		},
	}
}

// addPageFlags registers --limit and --offset on cmd.
func addPageFlags(cmd *cobra.Command, page *models.Page) {
	cmd.Flags().Int64Var(&page.Limit, "limit", 0, "page size (server default when 0)")
	cmd.Flags().Int64Var(&page.Offset, "offset", 0, "rows to skip")
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidID, arg)
	}
	return id, nil
}

func printJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
