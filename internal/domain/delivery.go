package domain

import "time"

// Delivery is the user's request: send the file at FilePath with Text to the
// person registered under RecipientEmail.
type Delivery struct {
	RecipientEmail string
	FilePath       string
	Text           string
}

// Person is a messaging platform account as returned by the people lookup.
type Person struct {
	ID          string
	Email       string
	DisplayName string
}

// Message is the payload of a single delivery.
type Message struct {
	ToPersonID string
	Text       string
	FilePath   string
}

// SendResult describes an accepted message.
type SendResult struct {
	StatusCode int
	Duration   time.Duration
}

// Receipt is the outcome of a successful Delivery.
type Receipt struct {
	RecipientEmail string
	PersonID       string
	StatusCode     int
	Duration       time.Duration
}
