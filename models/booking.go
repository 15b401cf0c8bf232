package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// IsValidBookingStatus reports whether s is one of the booking enum values.
func IsValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// PaymentStatus is the state of a booking's payment sub-record.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment is the embedded payment sub-record of a booking. Amount is copied
// from the service price at creation time.
type Payment struct {
	Amount        float64       `bson:"amount" json:"amount"`
	Status        PaymentStatus `bson:"status" json:"status"`
	TransactionID string        `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}

// Booking is a ledger record tying a customer to a service slot on a date.
// ProviderID is denormalized from the service at creation time.
type Booking struct {
	ID         string        `bson:"id" json:"id"`
	ServiceID  string        `bson:"serviceId" json:"serviceId"`
	CustomerID string        `bson:"customerId" json:"customerId"`
	ProviderID string        `bson:"providerId" json:"providerId"`
	Date       string        `bson:"date" json:"date"` // "YYYY-MM-DD"
	Slot       SlotWindow    `bson:"slot" json:"slot"`
	Status     BookingStatus `bson:"status" json:"status"`
	Payment    Payment       `bson:"payment" json:"payment"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// IsParticipant reports whether userID is the booking's customer or provider.
func (b *Booking) IsParticipant(userID string) bool {
	return b.CustomerID == userID || b.ProviderID == userID
}
