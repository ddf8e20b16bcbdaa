package session

// SessionError is a custom error type for session service configuration errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

const (
	ErrNilConfig          SessionError = "config cannot be nil"
	ErrNilSessionRepo     SessionError = "session repository cannot be nil"
	ErrNilReservationRepo SessionError = "reservation repository cannot be nil"
	ErrNilStationRepo     SessionError = "station repository cannot be nil"
	ErrNilPaymentRepo     SessionError = "payment repository cannot be nil"
	ErrNilTransactor      SessionError = "transactor cannot be nil"
	ErrNilTariff          SessionError = "tariff cannot be nil"
	ErrNilClock           SessionError = "clock cannot be nil"
	ErrNilUUIDGenerator   SessionError = "UUID generator cannot be nil"
)
