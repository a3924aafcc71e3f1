// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-doc-keeper/internal/adapter"
	"github.com/MKhiriev/go-doc-keeper/models"
)

func newDocumentsCmd(a adapter.ServerAdapter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "documents",
		Short: "Manage documents",
	}

	cmd.AddCommand(newDocumentsListCmd(a))
	cmd.AddCommand(newDocumentsSearchCmd(a))
	cmd.AddCommand(newDocumentsGetCmd(a))
	cmd.AddCommand(newDocumentsCreateCmd(a))
	cmd.AddCommand(newDocumentsUpdateCmd(a))
	cmd.AddCommand(newDocumentsDeleteCmd(a))

	return cmd
}

func newDocumentsListCmd(a adapter.ServerAdapter) *cobra.Command {
	var page models.Page

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List documents visible to the caller",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			documents, err := a.ListDocuments(cmd.Context(), page)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), documents)
		},
	}
	addPageFlags(cmd, &page)

	return cmd
}

func newDocumentsSearchCmd(a adapter.ServerAdapter) *cobra.Command {
	var page models.Page

	cmd := &cobra.Command{
		Use:   "search TERM",
		Short: "Search documents by title or content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			documents, err := a.SearchDocuments(cmd.Context(), args[0], page)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), documents)
		},
	}
	addPageFlags(cmd, &page)

	return cmd
}

func newDocumentsGetCmd(a adapter.ServerAdapter) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			document, err := a.GetDocument(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), document)
		},
	}
}

func newDocumentsCreateCmd(a adapter.ServerAdapter) *cobra.Command {
	var (
		request models.DocumentCreate
		access  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a document owned by the caller",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			request.Access = models.Access(access)
			document, err := a.CreateDocument(cmd.Context(), request)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), document)
		},
	}

	cmd.Flags().StringVar(&request.Title, "title", "", "title")
	cmd.Flags().StringVar(&request.Content, "content", "", "content")
	cmd.Flags().StringVar(&access, "access", "", "access level: public, private or role")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newDocumentsUpdateCmd(a adapter.ServerAdapter) *cobra.Command {
	var title, content, access string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update the given fields of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			// only flags set on the command line are sent
			var update models.DocumentUpdate
			if cmd.Flags().Changed("title") {
				update.Title = &title
			}
			if cmd.Flags().Changed("content") {
				update.Content = &content
			}
			if cmd.Flags().Changed("access") {
				level := models.Access(access)
				update.Access = &level
			}

			document, err := a.UpdateDocument(cmd.Context(), id, update)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), document)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&content, "content", "", "new content")
	cmd.Flags().StringVar(&access, "access", "", "new access level")

	return cmd
}

func newDocumentsDeleteCmd(a adapter.ServerAdapter) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err = a.DeleteDocument(cmd.Context(), id); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Document deleted.")
			return err
		},
	}
}
