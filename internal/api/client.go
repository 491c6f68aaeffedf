package api

import (
	"context"                   // Context for Redis operations
	"errors"                    // Sentinel error matching
	"lunvee/internal/domain"    // Importing domain models
	"lunvee/internal/lifecycle" // Lifecycle engine
	"lunvee/internal/metrics"   // Prometheus collectors
	"lunvee/internal/store"     // Record stores
	"lunvee/internal/utils"     // Utility functions
	"net/http"                  // HTTP status codes
	"strconv"                   // String conversion

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/google/uuid"       // UUID generation
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// Request struct for event creation
type CreateEventRequest struct {
	Name             string `json:"name" binding:"required"`           // Client name
	Phone            string `json:"phone" binding:"required"`          // Client phone
	DOB              string `json:"dob" binding:"required"`            // Client date of birth
	Type             string `json:"type" binding:"required"`           // Event type
	OtherDescription string `json:"other_description"`                 // Required when type is Others
	Date             string `json:"date" binding:"required"`           // Requested event date
	GuestCount       int    `json:"guest_count" binding:"required,gt=0"` // Positive guest count
}

// EventResponse pairs an event with its pipeline progress
type EventResponse struct {
	domain.Event     // Embedded event record
	Progress     int `json:"progress"`     // Zero-based index of the current stage
	TotalStages  int `json:"total_stages"` // Number of stages in the pipeline
}

// currentUser returns the user attached to the context by the role middleware
func currentUser(c *gin.Context) (domain.User, bool) {
	v, exists := c.Get("currentUser") // Set by RequireRole
	if !exists {
		return domain.User{}, false
	}
	user, ok := v.(domain.User)
	return user, ok
}

// toEventResponse decorates an event with its progress position
func toEventResponse(e domain.Event) EventResponse {
	return EventResponse{
		Event:       e,                           // The event record
		Progress:    lifecycle.Progress(e.Status), // Position in the pipeline
		TotalStages: lifecycle.TotalStages(),      // Pipeline length
	}
}

// invalidateAdminCaches drops the cached admin event listings after a write
// (simple version: delete the first 5 pages at the default size)
func invalidateAdminCaches(c *gin.Context) {
	if rdb, ok := c.MustGet("redisClient").(*redis.Client); ok {
		ctx := context.Background() // Context for Redis operations
		for i := 1; i <= 5; i++ {
			// Delete cache entries for the default page size
			_ = utils.DeleteCache(ctx, rdb, "admin:events:page="+strconv.Itoa(i)+":size=20")
		}
	}
}

// CreateEventHandler lets a client request a new event, scoped to its own id
func CreateEventHandler(events store.EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c) // Get the authenticated client
		// Check if the user is present in context
		if !ok {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req CreateEventRequest // Bind JSON request to struct
		// Validate request
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate the event type against the fixed list
		if !lifecycle.ValidType(req.Type) {
			// If unknown, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown event type"})
			return
		}
		// A description is required if and only if the type is Others
		if req.Type == domain.TypeOthers && req.OtherDescription == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Description is required for type Others"})
			return
		}
		if req.Type != domain.TypeOthers {
			req.OtherDescription = "" // Drop stray descriptions for named types
		}
		// Build the event at the first pipeline stage
		event := domain.Event{
			ID:               uuid.NewString(),     // New UUID identifier
			ClientID:         user.ID,              // Owning client
			ClientName:       req.Name,             // Denormalized client name
			ClientPhone:      req.Phone,            // Denormalized client phone
			ClientDOB:        req.DOB,              // Denormalized date of birth
			Type:             req.Type,             // Chosen event type
			OtherDescription: req.OtherDescription, // Present only for Others
			Date:             req.Date,             // Requested date
			GuestCount:       req.GuestCount,       // Positive guest count
			Status:           domain.StatusCreated, // Initial stage
		}
		// Persist the new event
		if err := events.Append(event); err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"client_id": user.ID,     // Owning client
				"error":     err.Error(), // Error message
			}).Error("Failed to create event") // Log creation failure
			// Return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"event_id":  event.ID,     // New event ID
			"client_id": user.ID,      // Owning client
			"type":      event.Type,   // Event type
			"status":    event.Status, // Initial stage
		}).Info("Event created")
		metrics.ObserveEventCreated()  // Count the creation
		invalidateAdminCaches(c)       // Admin listings are now stale
		// Return the created event
		c.JSON(http.StatusCreated, gin.H{"message": "Event created successfully", "event": toEventResponse(event)})
	}
}

// ListClientEventsHandler returns the authenticated client's own events
// with their pipeline progress
func ListClientEventsHandler(events store.EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c) // Get the authenticated client
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
		// Keep only events owned by this client
		resp := make([]EventResponse, 0)
		for _, e := range all {
			if e.ClientID == user.ID {
				resp = append(resp, toEventResponse(e))
			}
		}
		c.JSON(http.StatusOK, gin.H{"events": resp}) // Return the client's events
	}
}

// GetEventHandler returns a single event, visible to the owning client,
// the assigned manager, or an admin
func GetEventHandler(events store.EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c) // Get the authenticated user
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
		// Enforce the visibility policy
		if !lifecycle.CanView(user, event) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to view this event"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"event": toEventResponse(event)}) // Return the event
	}
}
