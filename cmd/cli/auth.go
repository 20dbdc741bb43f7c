package main

import (
	"fmt"
	"saude-connect/internal/pkg/dto/requests"

	"github.com/spf13/cobra"
)

func (c *cli) loginCommand() *cobra.Command {
	request := &requests.Login{}
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := c.api.Auth.Login(cmd.Context(), request)
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, session.User)
		},
	}
	cmd.Flags().StringVar(&request.Email, "email", "", "account email")
	cmd.Flags().StringVar(&request.Password, "password", "", "account password")
	return cmd
}

func (c *cli) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.api.Auth.Logout(cmd.Context())
			return nil
		},
	}
}

func (c *cli) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the cached user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, ok := c.api.Auth.GetUserData(cmd.Context())
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "not logged in")
				return nil
			}
			return printJSON(cmd, user)
		},
	}
}

func (c *cli) claimsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "claims",
		Short: "Decode the stored bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			claims, err := c.api.Auth.TokenClaims(cmd.Context())
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, claims)
		},
	}
}

func (c *cli) registerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create patient or professional accounts",
	}
	cmd.AddCommand(c.registerPatientCommand(), c.registerProfessionalCommand())
	return cmd
}

func (c *cli) registerPatientCommand() *cobra.Command {
	request := &requests.RegisterPatient{}
	var login bool
	cmd := &cobra.Command{
		Use:   "patient",
		Short: "Register a patient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if login {
				session, err := c.api.Registration.SignUpPatient(cmd.Context(), request)
				if err != nil {
					return fail(cmd, err)
				}
				return printJSON(cmd, session.User)
			}
			registration, err := c.api.Registration.RegisterPatient(cmd.Context(), request)
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, registration)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&request.Name, "name", "", "full name")
	flags.StringVar(&request.Email, "email", "", "account email")
	flags.StringVar(&request.Password, "password", "", "account password")
	flags.StringVar(&request.ConfirmPassword, "confirm-password", "", "password confirmation")
	flags.StringVar(&request.Phone, "phone", "", "phone number")
	flags.StringVar(&request.DocumentNumber, "document", "", "CPF")
	flags.StringVar(&request.BirthDate, "birth-date", "", "birth date (YYYY-MM-DD)")
	flags.StringVar(&request.Address, "address", "", "street address")
	flags.StringVar(&request.City, "city", "", "city")
	flags.StringVar(&request.State, "state", "", "state")
	flags.BoolVar(&login, "login", false, "log in right after registering")
	return cmd
}

func (c *cli) registerProfessionalCommand() *cobra.Command {
	request := &requests.RegisterProfessional{}
	var diplomaPath string
	var offers []string
	cmd := &cobra.Command{
		Use:   "professional",
		Short: "Register a professional with a diploma",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			diploma, err := readUpload(diplomaPath)
			if err != nil {
				return err
			}
			request.Diploma = diploma

			for _, raw := range offers {
				offer, err := parseActivityOffer(raw)
				if err != nil {
					return err
				}
				request.Activities = append(request.Activities, offer)
			}

			registration, err := c.api.Registration.RegisterProfessional(cmd.Context(), request)
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, registration)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&request.Name, "name", "", "full name")
	flags.StringVar(&request.Email, "email", "", "account email")
	flags.StringVar(&request.Password, "password", "", "account password")
	flags.StringVar(&request.ConfirmPassword, "confirm-password", "", "password confirmation")
	flags.StringVar(&request.Phone, "phone", "", "phone number")
	flags.StringVar(&request.DocumentNumber, "document", "", "professional registration number")
	flags.StringVar(&request.Bio, "bio", "", "short biography")
	flags.StringVar(&diplomaPath, "diploma", "", "diploma file (pdf, jpg, jpeg, png)")
	flags.StringArrayVar(&offers, "activity", nil, "offered activity as id:years:price[:description], repeatable")
	return cmd
}
