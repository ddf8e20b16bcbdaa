package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/playtime/internal/services/reservation"
)

func (c *CLI) reserveCommand() CommandHandler {
	var (
		clientID  string
		stationID string
		gameID    string
		minutes   int
		referral  string
	)
	cmd := &cobra.Command{
		Use:     "reserve",
		Aliases: []string{"book"},
		Short:   "Sell a reservation for a station and game",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := c.reservations.CreateReservation(cmd.Context(), &reservation.CreateReservationInput{
				ClientID:     clientID,
				StationID:    stationID,
				GameID:       gameID,
				Duration:     time.Duration(minutes) * time.Minute,
				ReferralCode: referral,
				OperatorID:   c.operator,
			})
			if err != nil {
				return c.RespondWithError(cmd, err)
			}

			r := output.Reservation
			RespondWithMessage(cmd, "%s", describeReservation(r))
			price := "Price " + c.money(r.UnitPrice)
			if output.Promotion != nil {
				price += fmt.Sprintf(" with %s (-%s%%)", output.Promotion.Name, output.Promotion.Rate.Shift(2).String())
			}
			RespondWithMessage(cmd, "%s", price)
			RespondWithMessage(cmd, "Client %s earned %d points", r.ClientID, output.PointsAwarded)
			if output.Referrer != nil {
				RespondWithMessage(cmd, "Referrer %s credited", output.Referrer.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&clientID, "client", "", "client id")
	cmd.Flags().StringVar(&stationID, "station", "", "station id")
	cmd.Flags().StringVar(&gameID, "game", "", "game id")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "reserved minutes, 15 or more")
	cmd.Flags().StringVar(&referral, "referral", "", "referral code")
	for _, name := range []string{"client", "station", "game", "minutes"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return newCommand(cmd)
}

func (c *CLI) quoteCommand() CommandHandler {
	return newCommand(&cobra.Command{
		Use:   "quote <minutes>",
		Short: "Price a duration with today's promotion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := parseMinutes(args[0])
			if err != nil {
				return c.RespondWithError(cmd, err)
			}
			output, err := c.reservations.QuoteReservation(cmd.Context(), &reservation.QuoteReservationInput{
				Duration: time.Duration(minutes) * time.Minute,
			})
			if err != nil {
				return c.RespondWithError(cmd, err)
			}

			if output.Promotion == nil {
				RespondWithMessage(cmd, "%d min: %s", minutes, c.money(output.Price))
				return nil
			}
			RespondWithMessage(cmd, "%d min: %s (base %s, %s)",
				minutes, c.money(output.Price), c.money(output.Base), output.Promotion.Name)
			return nil
		},
	})
}

func (c *CLI) reservationCommand() CommandHandler {
	var byTicket bool
	cmd := &cobra.Command{
		Use:   "reservation <reservation-id>",
		Short: "Show a reservation by id or, with --ticket, by ticket number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := &reservation.GetReservationInput{ReservationID: args[0]}
			if byTicket {
				input = &reservation.GetReservationInput{TicketNumber: args[0]}
			}
			output, err := c.reservations.GetReservation(cmd.Context(), input)
			if err != nil {
				return c.RespondWithError(cmd, err)
			}
			RespondWithMessage(cmd, "%s", describeReservation(output.Reservation))
			return nil
		},
	}
	cmd.Flags().BoolVar(&byTicket, "ticket", false, "look the argument up as a ticket number")
	return newCommand(cmd)
}

func (c *CLI) cancelCommand() CommandHandler {
	return newCommand(&cobra.Command{
		Use:   "cancel <reservation-id>",
		Short: "Cancel a reservation that has not started",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := c.reservations.CancelReservation(cmd.Context(), &reservation.CancelReservationInput{
				ReservationID: args[0],
				OperatorID:    c.operator,
			})
			if err != nil {
				return c.RespondWithError(cmd, err)
			}
			RespondWithMessage(cmd, "%s", describeReservation(output.Reservation))
			return nil
		},
	})
}

func (c *CLI) deleteCommand() CommandHandler {
	return newCommand(&cobra.Command{
		Use:   "delete <reservation-id>",
		Short: "Delete a reservation that is not in play",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := c.reservations.DeleteReservation(cmd.Context(), &reservation.DeleteReservationInput{
				ReservationID: args[0],
				OperatorID:    c.operator,
			})
			if err != nil {
				return c.RespondWithError(cmd, err)
			}
			RespondWithMessage(cmd, "Reservation %s deleted", args[0])
			return nil
		},
	})
}
