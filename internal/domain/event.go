package domain

// Event types offered on the creation form
const (
	TypeFullWedding  = "Full Wedding Package"
	TypeOnlyWedding  = "Only Wedding"
	TypeBirthday     = "Birthdays"
	TypePrivateParty = "Private Parties"
	TypeConcert      = "Concerts"
	TypeCorporate    = "Corporate Events"
	TypeConference   = "Conferences"
	TypeOthers       = "Others" // Requires a free-text description
)

// EventTypes lists every selectable event type
var EventTypes = []string{
	TypeFullWedding,
	TypeOnlyWedding,
	TypeBirthday,
	TypePrivateParty,
	TypeConcert,
	TypeCorporate,
	TypeConference,
	TypeOthers,
}

// Event lifecycle stages
const (
	StatusCreated             = "Event Created"
	StatusManagerAssigned     = "Event Manager Assigned"
	StatusInitialPlanning     = "Initial Planning"
	StatusInitialPlanningDone = "Initial Planning Done"
	StatusVendorSelection     = "Vendor Selection"
	StatusFinalPlanning       = "Final Planning"
	StatusFinalPlanningDone   = "Final Planning Done"
	StatusFinalPreparations   = "Final Preparations"
	StatusExecution           = "Execution"
	StatusFeedbackCollection  = "Feedback Collection"
	StatusCompleted           = "Event Successfully Created" // Terminal stage
)

// EventStatusOrder is the single source of truth for the lifecycle pipeline.
// Both the lifecycle engine and the client progress view are driven off this order.
var EventStatusOrder = []string{
	StatusCreated,
	StatusManagerAssigned,
	StatusInitialPlanning,
	StatusInitialPlanningDone,
	StatusVendorSelection,
	StatusFinalPlanning,
	StatusFinalPlanningDone,
	StatusFinalPreparations,
	StatusExecution,
	StatusFeedbackCollection,
	StatusCompleted,
}

// Event Model
type Event struct {
	ID               string `gorm:"primaryKey;size:36" json:"id"`          // UUID primary key
	ClientID         string `gorm:"index;size:36;not null" json:"client_id"` // Owning client
	ClientName       string `gorm:"not null" json:"client_name"`           // Client name captured at creation
	ClientPhone      string `json:"client_phone"`                          // Client phone captured at creation
	ClientDOB        string `json:"client_dob"`                            // Client date of birth captured at creation
	Type             string `gorm:"not null" json:"type"`                  // One of EventTypes
	OtherDescription string `json:"other_description,omitempty"`           // Required when Type is Others
	Date             string `gorm:"not null" json:"date"`                  // Requested event date (YYYY-MM-DD)
	GuestCount       int    `gorm:"not null" json:"guest_count"`           // Positive guest count
	Status           string `gorm:"not null" json:"status"`                // One of EventStatusOrder
	ManagerID        string `gorm:"index;size:36" json:"manager_id,omitempty"` // Assigned manager, empty until assigned
	CreatedAt        int64  `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}
