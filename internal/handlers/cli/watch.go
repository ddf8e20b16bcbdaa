package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KirkDiggler/playtime/internal/services/messaging"
	"github.com/KirkDiggler/playtime/internal/services/report"
	"github.com/KirkDiggler/playtime/internal/watchdog"
)

func (c *CLI) watchCommand() CommandHandler {
	return newCommand(&cobra.Command{
		Use:   "watch",
		Short: "Watch running sessions and prompt when paid time runs low or out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.watcher == nil || c.events == nil {
				return errors.New("watch is not available in this build")
			}
			return c.watch(cmd)
		},
	})
}

// watch runs the watcher beside the prompt loop. The loop ends when the
// command context is done, the event stream closes or the watcher fails.
func (c *CLI) watch(cmd *cobra.Command) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- c.watcher.Run(ctx)
	}()

	names := c.stationNames(ctx)
	RespondWithMessage(cmd, "Watching sessions. Press Ctrl-C to stop.")

	for {
		select {
		case <-ctx.Done():
			return <-done
		case err := <-done:
			return err
		case event, ok := <-c.events:
			if !ok {
				cancel()
				return <-done
			}
			if _, known := names[event.StationID]; !known {
				names = c.stationNames(ctx)
			}
			c.prompt(cmd, event, names[event.StationID])
		}
	}
}

func (c *CLI) prompt(cmd *cobra.Command, event watchdog.Event, stationName string) {
	msg, err := c.messages.GetExpiryMessage(cmd.Context(), &messaging.GetExpiryMessageInput{
		Event:       event,
		StationName: stationName,
	})
	if err != nil {
		c.log.Warn("cannot render expiry notice", zap.String("session_id", event.SessionID), zap.Error(err))
		return
	}
	RespondWithMessage(cmd, "[%s] %s: %s", event.At.In(c.location).Format("15:04"), msg.Title, msg.Message)
}

func (c *CLI) stationNames(ctx context.Context) map[string]string {
	names := make(map[string]string)
	output, err := c.reports.GetStationBoard(ctx, &report.GetStationBoardInput{})
	if err != nil {
		c.log.Warn("cannot load station names", zap.Error(err))
		return names
	}
	for _, st := range output.Board.Stations {
		names[st.StationID] = st.StationName
	}
	return names
}
