package main

import (
	"saude-connect/internal/pkg/dto/requests"

	"github.com/spf13/cobra"
)

func (c *cli) searchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Browse professionals, activities and categories",
	}

	filters := &requests.ProfessionalSearch{}
	professionals := &cobra.Command{
		Use:   "professionals",
		Short: "Search professionals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.api.Search.SearchProfessionals(cmd.Context(), filters)
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, result)
		},
	}
	professionals.Flags().StringVar(&filters.Activity, "activity", "", "activity filter")
	professionals.Flags().StringVar(&filters.Category, "category", "", "category filter")
	professionals.Flags().StringVar(&filters.Name, "name", "", "name filter")

	activities := &cobra.Command{
		Use:   "activities",
		Short: "List activities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.api.Search.GetActivities(cmd.Context())
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, result)
		},
	}

	categories := &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.api.Search.GetCategories(cmd.Context())
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, result)
		},
	}

	professional := &cobra.Command{
		Use:   "professional <id>",
		Short: "Show one professional",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			result, err := c.api.Search.GetProfessionalDetails(cmd.Context(), id)
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, result)
		},
	}

	professionalActivities := &cobra.Command{
		Use:   "professional-activities <id>",
		Short: "List the activities a professional offers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			result, err := c.api.Search.GetProfessionalActivities(cmd.Context(), id)
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, result)
		},
	}

	cmd.AddCommand(professionals, activities, categories, professional, professionalActivities)
	return cmd
}
