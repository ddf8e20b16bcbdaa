package watchdog

// WatchdogError is a custom error type for watchdog errors
type WatchdogError string

// Error implements the error interface
func (e WatchdogError) Error() string {
	return string(e)
}

const (
	ErrNilConfig      WatchdogError = "config cannot be nil"
	ErrNilSessionRepo WatchdogError = "session repository cannot be nil"
	ErrNilNotifier    WatchdogError = "notifier cannot be nil"
	ErrNilClock       WatchdogError = "clock cannot be nil"

	// ErrDropped is returned by ChannelNotifier when the consumer's buffer is full
	ErrDropped WatchdogError = "event dropped, consumer is behind"
)
