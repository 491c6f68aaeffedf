package api

import (
	"errors"                    // Sentinel error matching
	"lunvee/internal/lifecycle" // Lifecycle engine
	"lunvee/internal/metrics"   // Prometheus collectors
	"lunvee/internal/store"     // Record stores
	"net/http"                  // HTTP status codes
	"time"                      // Timestamps for logging

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Request struct for the free-form manager edit
type UpdateEventRequest struct {
	Date   string `json:"date"`   // New requested date, optional
	Status string `json:"status"` // New stage, optional; may jump stages
}

// ListManagerEventsHandler returns the events assigned to the
// authenticated manager
func ListManagerEventsHandler(events store.EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c) // Get the authenticated manager
		// Check if the user is present in context
		if !ok {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		all, err := events.GetAll() // Read the full collection
		if err != nil {
			// If reading fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
			return
		}
		// Keep only events assigned to this manager
		resp := make([]EventResponse, 0)
		for _, e := range all {
			if e.ManagerID == user.ID {
				resp = append(resp, toEventResponse(e))
			}
		}
		c.JSON(http.StatusOK, gin.H{"events": resp}) // Return the manager's events
	}
}

// AdvanceEventHandler moves an assigned event one stage forward.
// Advancing a terminal event is a no-op, never an error.
func AdvanceEventHandler(events store.EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c) // Get the authenticated manager
		// Check if the user is present in context
		if !ok {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		event, err := events.GetByID(c.Param("id")) // Look up the event
		if err != nil {
			// A missing record is reported, not silently ignored
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event"})
			return
		}
		// Only the assigned manager may advance the event
		if !lifecycle.CanModify(user, event) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Event is not assigned to you"})
			return
		}
		updated := lifecycle.Advance(event) // Compute the next stage
		// Persist only if the status actually moved
		if updated.Status != event.Status {
			if err := events.UpdateByID(updated.ID, updated); err != nil {
				// Log the error with context
				logrus.WithFields(logrus.Fields{
					"event_id":   updated.ID,  // Event ID
					"manager_id": user.ID,     // Acting manager
					"error":      err.Error(), // Error message
				}).Error("Failed to advance event") // Log advance failure
				// Return internal server error
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to advance event"})
				return
			}
			// Log the stage change
			logrus.WithFields(logrus.Fields{
				"event_id":   updated.ID,                      // Event ID
				"manager_id": user.ID,                         // Acting manager
				"from":       event.Status,                    // Previous stage
				"to":         updated.Status,                  // New stage
				"timestamp":  time.Now().Format(time.RFC3339), // Current timestamp
			}).Info("Event advanced")
			metrics.ObserveStatusChange(updated.Status) // Count the transition
			invalidateAdminCaches(c)                    // Admin listings are now stale
		}
		// Return the (possibly unchanged) event
		c.JSON(http.StatusOK, gin.H{"message": "Event advanced", "event": toEventResponse(updated)})
	}
}

// UpdateEventHandler applies a free-form edit of date and/or status by the
// assigned manager. Setting the status directly may skip stages; that is an
// explicit override, and a later advance continues from the new stage.
func UpdateEventHandler(events store.EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c) // Get the authenticated manager
		// Check if the user is present in context
		if !ok {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req UpdateEventRequest // Bind JSON request to struct
		// Validate request
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// At least one field must be edited
		if req.Date == "" && req.Status == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
			return
		}
		// A new status must be one of the fixed stages
		if req.Status != "" && !lifecycle.ValidStatus(req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
			return
		}
		event, err := events.GetByID(c.Param("id")) // Look up the event
		if err != nil {
			// A missing record is reported, not silently ignored
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event"})
			return
		}
		// Only the assigned manager may edit the event
		if !lifecycle.CanModify(user, event) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Event is not assigned to you"})
			return
		}
		prevStatus := event.Status // Remember the previous stage for logging
		if req.Date != "" {
			event.Date = req.Date // Apply the new date
		}
		if req.Status != "" {
			event.Status = req.Status // Apply the override
		}
		// Persist the edit
		if err := events.UpdateByID(event.ID, event); err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"event_id":   event.ID,    // Event ID
				"manager_id": user.ID,     // Acting manager
				"error":      err.Error(), // Error message
			}).Error("Failed to update event") // Log update failure
			// Return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
			return
		}
		// Log the edit
		logrus.WithFields(logrus.Fields{
			"event_id":   event.ID,                        // Event ID
			"manager_id": user.ID,                         // Acting manager
			"from":       prevStatus,                      // Previous stage
			"to":         event.Status,                    // New stage
			"timestamp":  time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("Event updated")
		// Count the transition if the stage changed
		if event.Status != prevStatus {
			metrics.ObserveStatusChange(event.Status)
		}
		invalidateAdminCaches(c) // Admin listings are now stale
		// Return the updated event
		c.JSON(http.StatusOK, gin.H{"message": "Event updated", "event": toEventResponse(event)})
	}
}
