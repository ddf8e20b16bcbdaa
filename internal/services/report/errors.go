package report

// ReportError is a custom error type for report service configuration errors
type ReportError string

// Error implements the error interface
func (e ReportError) Error() string {
	return string(e)
}

const (
	ErrNilConfig          ReportError = "config cannot be nil"
	ErrNilReservationRepo ReportError = "reservation repository cannot be nil"
	ErrNilPaymentRepo     ReportError = "payment repository cannot be nil"
	ErrNilStationRepo     ReportError = "station repository cannot be nil"
	ErrNilSessionRepo     ReportError = "session repository cannot be nil"
	ErrNilClock           ReportError = "clock cannot be nil"
)
