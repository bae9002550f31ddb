package models

import "time"

// DispositionStatus is the staff decision recorded on a report. The
// transition is PENDING -> APPROVED or PENDING -> REJECTED, terminal.
type DispositionStatus int

const (
	// DispositionPending means no decision has been made yet
	DispositionPending DispositionStatus = iota
	// DispositionApproved means the refund was granted
	DispositionApproved
	// DispositionRejected means the claim was declined
	DispositionRejected
)

// Report represents a refund/incident claim collected from a user
type Report struct {
	ID            int               `bson:"id" json:"id"`
	UserID        int64             `bson:"user_id" json:"userId"`
	Photo         string            `bson:"photo,omitempty" json:"photo,omitempty"`
	RentalTime    string            `bson:"rental_time" json:"rentalTime"`
	ScooterNumber string            `bson:"scooter_number" json:"scooterNumber"`
	PhoneNumber   string            `bson:"phone_number" json:"phoneNumber"`
	CardNumber    string            `bson:"card_number" json:"cardNumber"`
	Description   string            `bson:"description_of_the_problem" json:"description"`
	Sent          int               `bson:"sent" json:"sent"`
	Returned      DispositionStatus `bson:"returned" json:"returned"`
	RefundAmount  *float64          `bson:"refund_amount,omitempty" json:"refundAmount,omitempty"`
	CreatedAt     time.Time         `bson:"created_at" json:"createdAt"`
}
