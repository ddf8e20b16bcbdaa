package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/playtime/internal/services/messaging"
	"github.com/KirkDiggler/playtime/internal/services/report"
)

func (c *CLI) boardCommand() CommandHandler {
	return newCommand(&cobra.Command{
		Use:   "board",
		Short: "Show every station and its session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := c.reports.GetStationBoard(cmd.Context(), &report.GetStationBoardInput{})
			if err != nil {
				return c.RespondWithError(cmd, err)
			}
			if len(output.Board.Stations) == 0 {
				RespondWithMessage(cmd, "No stations. Import a catalog first.")
				return nil
			}
			for _, status := range output.Board.Stations {
				line, err := c.messages.GetStationStatusMessage(cmd.Context(), &messaging.GetStationStatusMessageInput{Status: status})
				if err != nil {
					return err
				}
				RespondWithMessage(cmd, "%s", line.Line)
			}
			return nil
		},
	})
}

func (c *CLI) reportCommand() CommandHandler {
	var day string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "List a day's reservations and payments with totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := c.parseDay(day)
			if err != nil {
				return c.RespondWithError(cmd, err)
			}
			output, err := c.reports.GetDailyActivity(cmd.Context(), &report.GetDailyActivityInput{Day: at})
			if err != nil {
				return c.RespondWithError(cmd, err)
			}

			RespondWithMessage(cmd, "Activity for %s", output.Day.Format("2006-01-02"))
			for _, a := range output.Activities {
				RespondWithMessage(cmd, "%s", c.describeActivity(a))
			}
			RespondWithMessage(cmd, "Reservations %d  %s", output.ReservationCount, c.money(output.ReservationTotal))
			RespondWithMessage(cmd, "Extensions   %d  %s", output.PaymentCount, c.money(output.PaymentTotal))
			RespondWithMessage(cmd, "Total            %s", c.money(output.Total))
			return nil
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "day to report, YYYY-MM-DD, today when empty")
	return newCommand(cmd)
}

func (c *CLI) describeActivity(a report.Activity) string {
	at := a.OccurredAt().In(c.location).Format("15:04")
	switch v := a.(type) {
	case report.ReservationActivity:
		line := fmt.Sprintf("%s  reservation %s  %s  %s", at, v.Reservation.TicketNumber, v.Reservation.StationID, c.money(a.Amount()))
		if !a.Counted() {
			line += "  (cancelled)"
		}
		return line
	case report.PaymentActivity:
		return fmt.Sprintf("%s  %-11s %s  %s  %s", at, v.Payment.Context, v.Payment.SessionID, v.Payment.Method, c.money(a.Amount()))
	}
	return at
}
