package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KirkDiggler/playtime/internal/common/failure"
	"github.com/KirkDiggler/playtime/internal/models"
	"github.com/KirkDiggler/playtime/internal/services/messaging"
)

// RespondWithError prints the operator message for err. A non-fatal failure
// such as terminating a completed session is reported and swallowed.
func (c *CLI) RespondWithError(cmd *cobra.Command, err error) error {
	c.log.Debug("command failed", zap.String("command", cmd.Name()), zap.Error(err))

	msg, mErr := c.messages.GetErrorMessage(cmd.Context(), &messaging.GetErrorMessageInput{Err: err})
	if mErr != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", msg.Title, msg.Message)
	if msg.Retryable {
		fmt.Fprintln(cmd.ErrOrStderr(), "Nothing was saved. Run the command again.")
	}

	if !failure.IsFatal(err) {
		return nil
	}
	return err
}

func (c *CLI) money(amount decimal.Decimal) string {
	return strings.TrimSpace(amount.String() + " " + c.currency)
}

func parseMinutes(arg string) (int, error) {
	minutes, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, failure.Newf(failure.InvalidInput, failure.ReasonInvalidValue, "%q is not a number of minutes", arg)
	}
	return minutes, nil
}

func parsePaymentMethod(arg string) models.PaymentMethod {
	return models.PaymentMethod(strings.ToLower(strings.TrimSpace(arg)))
}

func (c *CLI) parseDay(arg string) (time.Time, error) {
	if arg == "" {
		return time.Time{}, nil
	}
	day, err := time.ParseInLocation(time.DateOnly, arg, c.location)
	if err != nil {
		return time.Time{}, failure.Newf(failure.InvalidInput, failure.ReasonInvalidValue, "%q is not a YYYY-MM-DD date", arg)
	}
	return day, nil
}

func describeReservation(r *models.Reservation) string {
	return fmt.Sprintf("Reservation %s  %s  %s on %s for %s  %s",
		r.TicketNumber, r.Status, r.GameID, r.StationID, messaging.FormatDuration(r.Duration), r.ID)
}
