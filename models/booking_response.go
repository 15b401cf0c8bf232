package models

// BookingDetail is the display form of a booking: the ledger record plus
// denormalized service and identity fields resolved at read time. Presentation
// only; the lifecycle invariants live on Booking itself.
type BookingDetail struct {
	Booking
	Service  *ServiceSummary `json:"service,omitempty"`
	Provider *UserSummary    `json:"provider,omitempty"`
	Customer *UserSummary    `json:"customer,omitempty"`
}
