package models

import "time"

// DayAvailability is a weekday's list of bookable slot windows. The template
// is display-only: booking creation does not check requested windows against
// it.
type DayAvailability struct {
	Day   string       `bson:"day" json:"day" binding:"required"`
	Slots []SlotWindow `bson:"slots" json:"slots" binding:"required,min=1,dive"`
}

// Service is a provider's listing in the catalog.
type Service struct {
	ID           string            `bson:"id" json:"id"`
	ProviderID   string            `bson:"providerId" json:"providerId"`
	Title        string            `bson:"title" json:"title"`
	Description  string            `bson:"description" json:"description"`
	Category     string            `bson:"category" json:"category"`
	Price        float64           `bson:"price" json:"price"`
	Duration     int               `bson:"duration" json:"duration"` // minutes
	Images       []string          `bson:"images,omitempty" json:"images,omitempty"`
	Availability []DayAvailability `bson:"availability,omitempty" json:"availability,omitempty"`
	CreatedAt    time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// ServiceSummary is the slice of catalog fields embedded in booking responses.
type ServiceSummary struct {
	ID       string  `bson:"id" json:"id"`
	Title    string  `bson:"title" json:"title"`
	Price    float64 `bson:"price" json:"price"`
	Duration int     `bson:"duration" json:"duration"`
}

// Summary returns the embeddable catalog view of the service.
func (s *Service) Summary() ServiceSummary {
	return ServiceSummary{ID: s.ID, Title: s.Title, Price: s.Price, Duration: s.Duration}
}

// ServiceUpdate is an explicit partial update for a listing: nil fields are
// left unchanged.
type ServiceUpdate struct {
	Title        *string            `json:"title"`
	Description  *string            `json:"description"`
	Category     *string            `json:"category"`
	Price        *float64           `json:"price"`
	Duration     *int               `json:"duration"`
	Images       *[]string          `json:"images"`
	Availability *[]DayAvailability `json:"availability"`
}

// ServiceFilter narrows catalog listings.
type ServiceFilter struct {
	Category string
	Search   string
	MinPrice *float64
	MaxPrice *float64
}
