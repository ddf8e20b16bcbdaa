package cli

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/playtime/internal/services/messaging"
	"github.com/KirkDiggler/playtime/internal/services/session"
)

func (c *CLI) startCommand() CommandHandler {
	return newCommand(&cobra.Command{
		Use:   "start <reservation-id>",
		Short: "Start the session of a pending reservation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := c.sessions.StartSession(cmd.Context(), &session.StartSessionInput{
				ReservationID: args[0],
				OperatorID:    c.operator,
			})
			if err != nil {
				return c.RespondWithError(cmd, err)
			}
			RespondWithMessage(cmd, "Session %s started on %s. %s left.",
				output.Session.ID, output.Session.StationID, messaging.FormatDuration(output.Remaining))
			return nil
		},
	})
}

func (c *CLI) pauseCommand() CommandHandler {
	return newCommand(&cobra.Command{
		Use:   "pause <session-id>",
		Short: "Freeze a session's paid time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := c.sessions.PauseSession(cmd.Context(), &session.PauseSessionInput{
				SessionID:  args[0],
				OperatorID: c.operator,
			})
			if err != nil {
				return c.RespondWithError(cmd, err)
			}
			RespondWithMessage(cmd, "Session %s paused. %s frozen.", output.Session.ID, messaging.FormatDuration(output.Remaining))
			return nil
		},
	})
}

func (c *CLI) resumeCommand() CommandHandler {
	return newCommand(&cobra.Command{
		Use:   "resume <session-id>",
		Short: "Resume a paused session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := c.sessions.ResumeSession(cmd.Context(), &session.ResumeSessionInput{
				SessionID:  args[0],
				OperatorID: c.operator,
			})
			if err != nil {
				return c.RespondWithError(cmd, err)
			}
			RespondWithMessage(cmd, "Session %s resumed. %s left.", output.Session.ID, messaging.FormatDuration(output.Remaining))
			return nil
		},
	})
}

func (c *CLI) extendCommand() CommandHandler {
	return newCommand(&cobra.Command{
		Use:   "extend <session-id> <minutes> <cash|card|wave|orange_money>",
		Short: "Sell more time to a running session",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := parseMinutes(args[1])
			if err != nil {
				return c.RespondWithError(cmd, err)
			}
			method := parsePaymentMethod(args[2])

			output, err := c.sessions.ExtendSession(cmd.Context(), &session.ExtendSessionInput{
				SessionID:         args[0],
				AdditionalMinutes: minutes,
				PaymentMethod:     method,
				OperatorID:        c.operator,
			})
			if err != nil {
				return c.RespondWithError(cmd, err)
			}

			RespondWithMessage(cmd, "Session %s extended by %d min. %s left.",
				output.Session.ID, minutes, messaging.FormatDuration(output.Remaining))
			receipt, err := c.messages.GetReceiptMessage(cmd.Context(), &messaging.GetReceiptMessageInput{
				Receipt: output.Receipt,
				Method:  method,
			})
			if err != nil {
				return err
			}
			RespondWithMessage(cmd, "%s", receipt.Message)
			return nil
		},
	})
}

func (c *CLI) terminateCommand() CommandHandler {
	return newCommand(&cobra.Command{
		Use:     "terminate <session-id>",
		Aliases: []string{"stop"},
		Short:   "End a session and complete its reservation",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := c.sessions.TerminateSession(cmd.Context(), &session.TerminateSessionInput{
				SessionID:  args[0],
				OperatorID: c.operator,
			})
			if err != nil {
				return c.RespondWithError(cmd, err)
			}
			RespondWithMessage(cmd, "Session %s completed. Played %s, unused %s.",
				output.Session.ID, messaging.FormatDuration(output.Played), messaging.FormatDuration(output.Unused))
			return nil
		},
	})
}

func (c *CLI) statusCommand() CommandHandler {
	return newCommand(&cobra.Command{
		Use:   "status <session-id>",
		Short: "Show a session's state and time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := c.sessions.GetSession(cmd.Context(), &session.GetSessionInput{SessionID: args[0]})
			if err != nil {
				return c.RespondWithError(cmd, err)
			}

			RespondWithMessage(cmd, "Session %s on %s  %s", output.Session.ID, output.Session.StationID, output.Status)
			RespondWithMessage(cmd, "Played %s  Remaining %s",
				messaging.FormatDuration(output.Elapsed), messaging.FormatDuration(output.Remaining))
			if output.Expired {
				RespondWithMessage(cmd, "Paid time is over. Extend or terminate the session.")
			}
			return nil
		},
	})
}
