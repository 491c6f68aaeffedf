package domain

// User roles
const (
	RoleClient  = "CLIENT"  // Creates events and tracks their progress
	RoleManager = "MANAGER" // Assigned to events, responsible for advancing them
	RoleAdmin   = "ADMIN"   // Global visibility and manager assignment
)

// User Model
type User struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"` // UUID primary key
	Name     string `gorm:"not null" json:"name"`         // Full name
	Email    string `gorm:"unique;not null" json:"email"` // Unique email address
	Phone    string `json:"phone,omitempty"`              // Optional phone number
	Role     string `gorm:"default:CLIENT" json:"role"`   // Role: CLIENT, MANAGER or ADMIN
	Password string `gorm:"not null" json:"-"`            // Hashed password, never serialized
}
