package main

import (
	"saude-connect/internal/pkg/dto/requests"

	"github.com/spf13/cobra"
)

func (c *cli) bookingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Book sessions, pay, review",
	}

	create := &requests.CreateBooking{}
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Book an activity with a professional",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.api.Bookings.CreateBooking(cmd.Context(), create)
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, result)
		},
	}
	flags := createCmd.Flags()
	flags.Int64Var(&create.ProfessionalID, "professional", 0, "professional id")
	flags.Int64Var(&create.ActivityID, "activity", 0, "activity id")
	flags.StringVar(&create.BookingDate, "date", "", "booking date and time")
	flags.StringVar(&create.Address, "address", "", "street address")
	flags.StringVar(&create.City, "city", "", "city")
	flags.StringVar(&create.State, "state", "", "state")
	flags.StringVar(&create.Notes, "notes", "", "notes for the professional")

	var status string
	list := &cobra.Command{
		Use:   "list",
		Short: "List the user's bookings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.api.Bookings.GetUserBookings(cmd.Context(), status)
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, result)
		},
	}
	list.Flags().StringVar(&status, "status", "", "only bookings with this status")

	var method string
	pay := &cobra.Command{
		Use:   "pay <booking id>",
		Short: "Pay for a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			message, err := c.api.Bookings.ProcessPayment(cmd.Context(), id, method)
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, message)
		},
	}
	pay.Flags().StringVar(&method, "method", "", "payment method (credit_card, debit_card, pix, bank_transfer)")

	statusCmd := &cobra.Command{
		Use:   "status <booking id> <status>",
		Short: "Change a booking's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			message, err := c.api.Bookings.UpdateBookingStatus(cmd.Context(), id, args[1])
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, message)
		},
	}

	review := &requests.CreateReview{}
	reviewCmd := &cobra.Command{
		Use:   "review <booking id>",
		Short: "Review a completed booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			message, err := c.api.Bookings.CreateReview(cmd.Context(), id, review)
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, message)
		},
	}
	reviewCmd.Flags().IntVar(&review.Rating, "rating", 0, "rating from 1 to 5")
	reviewCmd.Flags().StringVar(&review.Comment, "comment", "", "review text")

	reviews := &cobra.Command{
		Use:   "reviews <professional id>",
		Short: "Show a professional's reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			summary, err := c.api.Bookings.GetProfessionalReviews(cmd.Context(), id)
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, summary)
		},
	}

	reviewable := &cobra.Command{
		Use:   "reviewable <professional id>",
		Short: "List completed, unreviewed bookings with a professional",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			result, err := c.api.Bookings.ReviewableBookings(cmd.Context(), id)
			if err != nil {
				return fail(cmd, err)
			}
			return printJSON(cmd, result)
		},
	}

	cmd.AddCommand(createCmd, list, pay, statusCmd, reviewCmd, reviews, reviewable)
	return cmd
}
