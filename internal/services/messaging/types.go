package messaging

import (
	"github.com/KirkDiggler/playtime/internal/models"
	"github.com/KirkDiggler/playtime/internal/watchdog"
)

// MessageSeverity tells the presentation layer how loudly to show a message
type MessageSeverity string

const (
	SeverityInfo    MessageSeverity = "info"
	SeverityWarning MessageSeverity = "warning"
	SeverityError   MessageSeverity = "error"
)

// Action is a command the operator can answer a prompt with
type Action string

const (
	ActionExtend    Action = "extend"
	ActionTerminate Action = "terminate"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Currency is printed after amounts
	Currency string
}

// GetErrorMessageInput contains the error to explain
type GetErrorMessageInput struct {
	Err error
}

// GetErrorMessageOutput contains the operator-facing explanation
type GetErrorMessageOutput struct {
	// Title is a short headline, e.g. "Station occupied"
	Title string

	// Message tells the operator what to do next
	Message string

	Severity MessageSeverity

	// Retryable is set when repeating the same command may succeed
	Retryable bool
}

// GetExpiryMessageInput contains the event to announce
type GetExpiryMessageInput struct {
	Event watchdog.Event

	// StationName replaces the station id when known
	StationName string
}

// GetExpiryMessageOutput contains the notice and, for ended sessions, the prompt actions
type GetExpiryMessageOutput struct {
	Title    string
	Message  string
	Severity MessageSeverity
	Actions  []Action
}

// GetStationStatusMessageInput contains one row of the station board
type GetStationStatusMessageInput struct {
	Status *models.StationStatus
}

// GetStationStatusMessageOutput contains the rendered line
type GetStationStatusMessageOutput struct {
	Line string
}

// GetReceiptMessageInput contains the receipt to render
type GetReceiptMessageInput struct {
	Receipt *models.Receipt
	Method  models.PaymentMethod
}

// GetReceiptMessageOutput contains the rendered receipt
type GetReceiptMessageOutput struct {
	Message string
}
