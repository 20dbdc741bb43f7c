package main

import (
	"fmt"
	"os"
	"saude-connect/internal/pkg/dto/requests"

	"github.com/spf13/cobra"
)

func (c *cli) adminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Moderate professionals and manage the catalogue",
	}

	pending := &cobra.Command{
		Use:   "pending",
		Short: "List professionals awaiting approval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.api.Admin.GetPendingProfessionals(cmd.Context())
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, result)
		},
	}

	approve := &cobra.Command{
		Use:   "approve <professional id>",
		Short: "Approve a professional",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			message, err := c.api.Admin.ApproveProfessional(cmd.Context(), id)
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, message)
		},
	}

	var reason string
	reject := &cobra.Command{
		Use:   "reject <professional id>",
		Short: "Reject a professional",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			message, err := c.api.Admin.RejectProfessional(cmd.Context(), id, reason)
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, message)
		},
	}
	reject.Flags().StringVar(&reason, "reason", "", "rejection reason")

	cmd.AddCommand(pending, approve, reject, c.categoryCommand(), c.activityCommand(), c.diplomaCommand())
	return cmd
}

func (c *cli) categoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Create, update or delete categories",
	}

	create := &requests.Category{}
	createCmd := &cobra.Command{
		Use:  "create",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := c.api.Admin.CreateCategory(cmd.Context(), create)
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, message)
		},
	}
	createCmd.Flags().StringVar(&create.Name, "name", "", "category name")
	createCmd.Flags().StringVar(&create.Description, "description", "", "category description")

	update := &requests.Category{}
	updateCmd := &cobra.Command{
		Use:  "update <category id>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			message, err := c.api.Admin.UpdateCategory(cmd.Context(), id, update)
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, message)
		},
	}
	updateCmd.Flags().StringVar(&update.Name, "name", "", "category name")
	updateCmd.Flags().StringVar(&update.Description, "description", "", "category description")

	deleteCmd := &cobra.Command{
		Use:  "delete <category id>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			message, err := c.api.Admin.DeleteCategory(cmd.Context(), id)
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, message)
		},
	}

	cmd.AddCommand(createCmd, updateCmd, deleteCmd)
	return cmd
}

func (c *cli) activityCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "List, create, update or delete activities",
	}

	list := &cobra.Command{
		Use:  "list",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.api.Admin.ListActivities(cmd.Context())
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, result)
		},
	}

	create := &requests.Activity{}
	var createCategory int64
	createCmd := &cobra.Command{
		Use:  "create",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("category") {
				create.CategoryID = &createCategory
			}
			message, err := c.api.Admin.CreateActivity(cmd.Context(), create)
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, message)
		},
	}
	createCmd.Flags().StringVar(&create.Name, "name", "", "activity name")
	createCmd.Flags().StringVar(&create.Description, "description", "", "activity description")
	createCmd.Flags().Int64Var(&createCategory, "category", 0, "category id")

	update := &requests.Activity{}
	var updateCategory int64
	updateCmd := &cobra.Command{
		Use:  "update <activity id>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("category") {
				update.CategoryID = &updateCategory
			}
			message, err := c.api.Admin.UpdateActivity(cmd.Context(), id, update)
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, message)
		},
	}
	updateCmd.Flags().StringVar(&update.Name, "name", "", "activity name")
	updateCmd.Flags().StringVar(&update.Description, "description", "", "activity description")
	updateCmd.Flags().Int64Var(&updateCategory, "category", 0, "category id")

	deleteCmd := &cobra.Command{
		Use:  "delete <activity id>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			message, err := c.api.Admin.DeleteActivity(cmd.Context(), id)
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, message)
		},
	}

	cmd.AddCommand(list, createCmd, updateCmd, deleteCmd)
	return cmd
}

func (c *cli) diplomaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diploma",
		Short: "Download or archive a professional's diploma",
	}

	var out string
	download := &cobra.Command{
		Use:  "download <professional id>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			diploma, err := c.api.Admin.GetDiploma(cmd.Context(), id)
			if err != nil {
				return fail(cmd, err)
			}
			path := out
			if path == "" {
				path = diploma.Filename
			}
			if path == "" {
				path = fmt.Sprintf("diploma-%d", id)
			}
			err = os.WriteFile(path, diploma.Content, 0o600)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	download.Flags().StringVar(&out, "out", "", "output file (defaults to the served filename)")

	archive := &cobra.Command{
		Use:  "archive <professional id>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			archived, err := c.api.Admin.ArchiveDiploma(cmd.Context(), id)
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, archived)
		},
	}

	cmd.AddCommand(download, archive)
	return cmd
}
