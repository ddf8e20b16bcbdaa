package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/playtime/internal/common/failure"
	"github.com/KirkDiggler/playtime/internal/models"
	"github.com/KirkDiggler/playtime/internal/watchdog"
)

// service implements the Service interface
type service struct {
	currency string
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (*service, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}

	return &service{
		currency: config.Currency,
	}, nil
}

type errorMessage struct {
	title     string
	message   string
	severity  MessageSeverity
	retryable bool
}

// reasonMessages is checked before kindMessages
var reasonMessages = map[failure.Reason]errorMessage{
	failure.ReasonStationOccupied: {
		title:   "Station occupied",
		message: "Another session is running on this station. Terminate it or pick another station.",
	},
	failure.ReasonStationOutOfService: {
		title:   "Station out of service",
		message: "This station is marked out of service. Pick another station.",
	},
	failure.ReasonReservationNotPending: {
		title:   "Reservation already used",
		message: "Only a pending reservation can be started or cancelled.",
	},
	failure.ReasonReservationActive: {
		title:   "Reservation in play",
		message: "Terminate the running session before deleting its reservation.",
	},
	failure.ReasonDuplicateSession: {
		title:   "Session already exists",
		message: "This reservation already has a session. Resume or terminate that one.",
	},
	failure.ReasonSessionNotActive: {
		title:   "Session not running",
		message: "Resume the session first.",
	},
	failure.ReasonSessionNotPaused: {
		title:   "Session not paused",
		message: "Only a paused session can be resumed.",
	},
	failure.ReasonSessionCompleted: {
		title:    "Session already ended",
		message:  "The session is already completed.",
		severity: SeverityInfo,
	},
	failure.ReasonDurationTooShort: {
		title:   "Duration too short",
		message: "Reservations start at 15 minutes.",
	},
	failure.ReasonDurationNotPositive: {
		title:   "Invalid duration",
		message: "Enter a number of minutes greater than zero.",
	},
	failure.ReasonPaymentMethodMissing: {
		title:   "Payment method required",
		message: "Choose how the client pays: cash, card, wave or orange_money.",
	},
	failure.ReasonPaymentMethodUnknown: {
		title:   "Unknown payment method",
		message: "Choose how the client pays: cash, card, wave or orange_money.",
	},
	failure.ReasonDatabaseBusy: {
		title:     "Database busy",
		message:   "The database is busy, retry in a moment.",
		retryable: true,
	},
	failure.ReasonConstraintViolation: {
		title:   "Save refused",
		message: "The change conflicts with existing records and was not saved.",
	},
	failure.ReasonGameNotSupported: {
		title:   "Game not available",
		message: "This station cannot run the selected game. Pick another station or game.",
	},
	failure.ReasonReservationNotFound: {title: "Reservation not found", message: "Check the ticket or reservation id."},
	failure.ReasonSessionNotFound:     {title: "Session not found", message: "Check the session id."},
	failure.ReasonStationNotFound:     {title: "Station not found", message: "Check the station id."},
	failure.ReasonClientNotFound:      {title: "Client not found", message: "Register the client first."},
	failure.ReasonGameNotFound:        {title: "Game not found", message: "Check the game id."},
	failure.ReasonMissingField:        {title: "Missing information", message: "Fill in every required field."},
	failure.ReasonInvalidValue:        {title: "Invalid value", message: "One of the values is out of range. Check the input."},
}

var kindMessages = map[failure.Kind]errorMessage{
	failure.PreconditionFailed:    {title: "Not allowed now", message: "The station or reservation is not in a state that allows this."},
	failure.InvalidTransition:     {title: "Not allowed now", message: "The session is not in a state that allows this."},
	failure.InvalidDuration:       {title: "Invalid duration", message: "Check the number of minutes."},
	failure.InvalidPaymentMethod:  {title: "Invalid payment method", message: "Choose cash, card, wave or orange_money."},
	failure.AlreadyTerminated:     {title: "Session already ended", message: "Nothing to do.", severity: SeverityInfo},
	failure.PersistenceContention: {title: "Database busy", message: "The database is busy, retry in a moment.", retryable: true},
	failure.PersistenceFailure:    {title: "Save failed", message: "The change was not saved. Nothing was applied."},
	failure.NotFound:              {title: "Not found", message: "Check the id and try again."},
	failure.InvalidInput:          {title: "Invalid input", message: "Check the command arguments."},
}

// GetErrorMessage maps a failure to a specific, actionable message. The
// reason is the most precise signal, then the kind.
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("error cannot be nil")
	}

	msg, ok := reasonMessages[failure.ReasonOf(input.Err)]
	if !ok {
		msg, ok = kindMessages[failure.KindOf(input.Err)]
	}
	if !ok {
		msg = errorMessage{
			title:   "Unexpected error",
			message: input.Err.Error(),
		}
	}
	if msg.severity == "" {
		msg.severity = SeverityError
	}

	return &GetErrorMessageOutput{
		Title:     msg.title,
		Message:   msg.message,
		Severity:  msg.severity,
		Retryable: msg.retryable,
	}, nil
}

// GetExpiryMessage announces low time, or prompts for a decision once paid time is over
func (s *service) GetExpiryMessage(ctx context.Context, input *GetExpiryMessageInput) (*GetExpiryMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	station := input.StationName
	if station == "" {
		station = input.Event.StationID
	}

	switch input.Event.Kind {
	case watchdog.EventLowTime:
		return &GetExpiryMessageOutput{
			Title:    "Low time",
			Message:  fmt.Sprintf("%s: %s left.", station, FormatDuration(input.Event.Remaining)),
			Severity: SeverityWarning,
		}, nil
	case watchdog.EventSessionEnded:
		return &GetExpiryMessageOutput{
			Title: "Time is up",
			Message: fmt.Sprintf("%s: paid time is over. Extend with `extend %s <minutes> <method>` or end with `terminate %s`.",
				station, input.Event.SessionID, input.Event.SessionID),
			Severity: SeverityWarning,
			Actions:  []Action{ActionExtend, ActionTerminate},
		}, nil
	}
	return nil, fmt.Errorf("unknown event kind %q", input.Event.Kind)
}

// GetStationStatusMessage renders e.g. "PS5 #1  Paused  10:00 frozen"
func (s *service) GetStationStatusMessage(ctx context.Context, input *GetStationStatusMessageInput) (*GetStationStatusMessageOutput, error) {
	if input == nil || input.Status == nil {
		return nil, errors.New("status cannot be nil")
	}

	st := input.Status
	var detail string
	switch st.State {
	case models.StationStateFree:
		detail = "Free"
	case models.StationStateOutOfService:
		detail = "Out of service"
	case models.StationStatePaused:
		detail = fmt.Sprintf("Paused  %s frozen", FormatDuration(st.Remaining))
	case models.StationStateOccupied:
		if st.Expired {
			detail = "Occupied  time is up"
		} else {
			detail = fmt.Sprintf("Occupied  %s left", FormatDuration(st.Remaining))
		}
	default:
		return nil, fmt.Errorf("unknown station state %q", st.State)
	}

	line := fmt.Sprintf("%-12s  %s", st.StationName, detail)
	if st.SessionID != "" {
		line += "  [" + st.SessionID + "]"
	}
	return &GetStationStatusMessageOutput{Line: line}, nil
}

// GetReceiptMessage renders the receipt number, amount and method
func (s *service) GetReceiptMessage(ctx context.Context, input *GetReceiptMessageInput) (*GetReceiptMessageOutput, error) {
	if input == nil || input.Receipt == nil {
		return nil, errors.New("receipt cannot be nil")
	}

	r := input.Receipt
	parts := []string{
		"Receipt " + r.Number,
		strings.TrimSpace(r.Amount.String() + " " + s.currency),
	}
	if input.Method != "" {
		parts = append(parts, string(input.Method))
	}
	parts = append(parts, r.IssuedAt.Format("2006-01-02 15:04"))

	return &GetReceiptMessageOutput{Message: strings.Join(parts, "  ")}, nil
}

// FormatDuration prints mm:ss, or h:mm:ss from one hour up. Negative
// durations print as zero.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	m := int(d%time.Hour) / int(time.Minute)
	sec := int(d%time.Minute) / int(time.Second)
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%02d:%02d", m, sec)
}
