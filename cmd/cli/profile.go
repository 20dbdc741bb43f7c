package main

import (
	"saude-connect/internal/pkg/dto/requests"

	"github.com/spf13/cobra"
)

func (c *cli) profileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Read or update the logged-in user's profile",
	}

	get := &cobra.Command{
		Use:   "get",
		Short: "Fetch the full profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := c.api.Profiles.GetUserProfile(cmd.Context())
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, profile)
		},
	}

	update := &requests.UpdateProfile{}
	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := c.api.Profiles.UpdateUserProfile(cmd.Context(), update)
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, message)
		},
	}
	flags := updateCmd.Flags()
	flags.StringVar(&update.Name, "name", "", "full name")
	flags.StringVar(&update.Phone, "phone", "", "phone number")
	flags.StringVar(&update.DocumentNumber, "document", "", "document number")
	flags.StringVar(&update.BirthDate, "birth-date", "", "birth date (YYYY-MM-DD)")
	flags.StringVar(&update.Address, "address", "", "street address")
	flags.StringVar(&update.City, "city", "", "city")
	flags.StringVar(&update.State, "state", "", "state")
	flags.StringVar(&update.Bio, "bio", "", "short biography")

	professional := &requests.UpdateProfessionalProfile{}
	var diplomaPath string
	professionalCmd := &cobra.Command{
		Use:   "update-professional",
		Short: "Update professional fields, optionally replacing the diploma",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			diploma, err := readUpload(diplomaPath)
			if err != nil {
				return err
			}
			professional.Diploma = diploma

			message, err := c.api.Profiles.UpdateProfessionalProfile(cmd.Context(), professional)
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, message)
		},
	}
	professionalCmd.Flags().StringVar(&professional.Name, "name", "", "full name")
	professionalCmd.Flags().StringVar(&professional.Phone, "phone", "", "phone number")
	professionalCmd.Flags().StringVar(&professional.Bio, "bio", "", "short biography")
	professionalCmd.Flags().StringVar(&diplomaPath, "diploma", "", "replacement diploma file")

	cmd.AddCommand(get, updateCmd, professionalCmd)
	return cmd
}
