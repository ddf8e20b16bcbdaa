package catalog

// CatalogError is a custom error type for catalog service configuration errors
type CatalogError string

// Error implements the error interface
func (e CatalogError) Error() string {
	return string(e)
}

const (
	ErrNilConfig        CatalogError = "config cannot be nil"
	ErrNilStationRepo   CatalogError = "station repository cannot be nil"
	ErrNilClientRepo    CatalogError = "client repository cannot be nil"
	ErrNilPromotionRepo CatalogError = "promotion repository cannot be nil"
	ErrNilTransactor    CatalogError = "transactor cannot be nil"
	ErrNilClock         CatalogError = "clock cannot be nil"
)
