package reservation

// ReservationError is a custom error type for reservation service configuration errors
type ReservationError string

// Error implements the error interface
func (e ReservationError) Error() string {
	return string(e)
}

const (
	ErrNilConfig          ReservationError = "config cannot be nil"
	ErrNilReservationRepo ReservationError = "reservation repository cannot be nil"
	ErrNilClientRepo      ReservationError = "client repository cannot be nil"
	ErrNilStationRepo     ReservationError = "station repository cannot be nil"
	ErrNilPromotionRepo   ReservationError = "promotion repository cannot be nil"
	ErrNilTransactor      ReservationError = "transactor cannot be nil"
	ErrNilTariff          ReservationError = "tariff cannot be nil"
	ErrNilTicketGenerator ReservationError = "ticket generator cannot be nil"
	ErrNilClock           ReservationError = "clock cannot be nil"
	ErrNilUUIDGenerator   ReservationError = "UUID generator cannot be nil"
)
