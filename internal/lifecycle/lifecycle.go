// Package lifecycle implements the event status pipeline and the access
// policy around it. Statuses form a strict order (domain.EventStatusOrder);
// advancing walks that order one stage at a time, while a manager edit may
// jump to an arbitrary stage as an explicit override.
package lifecycle

import "lunvee/internal/domain"

// Progress returns the zero-based position of status in the pipeline,
// or -1 if the status is not one of the known stages.
func Progress(status string) int {
	for i, s := range domain.EventStatusOrder {
		if s == status {
			return i
		}
	}
	return -1
}

// TotalStages returns the number of stages in the pipeline.
func TotalStages() int {
	return len(domain.EventStatusOrder)
}

// IsTerminal reports whether status is the final pipeline stage.
func IsTerminal(status string) bool {
	return status == domain.EventStatusOrder[len(domain.EventStatusOrder)-1]
}

// ValidStatus reports whether status is one of the known stages.
func ValidStatus(status string) bool {
	return Progress(status) >= 0
}

// ValidType reports whether t is one of the selectable event types.
func ValidType(t string) bool {
	for _, et := range domain.EventTypes {
		if et == t {
			return true
		}
	}
	return false
}

// Next returns the stage following status in pipeline order.
// The terminal stage maps to itself; an unknown status is returned unchanged.
func Next(status string) string {
	idx := Progress(status)
	if idx < 0 || idx >= len(domain.EventStatusOrder)-1 {
		return status
	}
	return domain.EventStatusOrder[idx+1]
}

// Advance moves the event one stage forward. Advancing a terminal event
// is a no-op, never an error.
func Advance(e domain.Event) domain.Event {
	e.Status = Next(e.Status)
	return e
}

// AssignManager sets the event's manager. Re-assigning overwrites. When the
// event is still at "Event Created", assignment auto-advances it to
// "Event Manager Assigned"; at any later stage the status is untouched.
func AssignManager(e domain.Event, managerID string) domain.Event {
	e.ManagerID = managerID
	if e.Status == domain.StatusCreated {
		e.Status = domain.StatusManagerAssigned
	}
	return e
}

// CanAssignManager reports whether u may assign or reassign an event's manager.
func CanAssignManager(u domain.User) bool {
	return u.Role == domain.RoleAdmin
}

// CanModify reports whether u may advance the event or edit its date/status.
// Only the assigned manager qualifies.
func CanModify(u domain.User, e domain.Event) bool {
	return u.Role == domain.RoleManager && e.ManagerID != "" && e.ManagerID == u.ID
}

// CanView reports whether u may read the event: the owning client, the
// assigned manager, or any admin.
func CanView(u domain.User, e domain.Event) bool {
	switch u.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleManager:
		return e.ManagerID == u.ID
	default:
		return e.ClientID == u.ID
	}
}
