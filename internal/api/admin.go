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
	"time"                      // Time durations

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// UserAdminResponse represents the user data returned to admin
type UserAdminResponse struct {
	ID    string `json:"id"`              // User ID
	Name  string `json:"name"`            // Full name
	Email string `json:"email"`           // Email address
	Phone string `json:"phone,omitempty"` // Phone number
	Role  string `json:"role"`            // User role
}

// Request struct for manager assignment
type AssignManagerRequest struct {
	ManagerID string `json:"manager_id" binding:"required"` // Manager to assign
}

// parsePagination reads page and page_size query parameters with defaults
func parsePagination(c *gin.Context) (int, int) {
	page := 1      // Default page number
	pageSize := 20 // Default page size
	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v // Set page if valid
		}
	}
	// Check and set page size within limits
	if ps := c.Query("page_size"); ps != "" {
		// If valid, set page size
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			pageSize = v // Set page size
		}
	}
	return page, pageSize
}

// ListAllEventsHandler returns every event in the system, paginated and cached
func ListAllEventsHandler(events store.EventStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()   // Use background context for Redis
		page, pageSize := parsePagination(c) // Read pagination parameters
		// Create a cache key based on pagination parameters
		cacheKey := "admin:events:page=" + strconv.Itoa(page) + ":size=" + strconv.Itoa(pageSize)
		// Try to get cached response
		var cached struct {
			Events     []EventResponse `json:"events"`      // List of events
			Page       int             `json:"page"`        // Current page
			PageSize   int             `json:"page_size"`   // Page size
			Total      int             `json:"total"`       // Total number of events
			TotalPages int             `json:"total_pages"` // Total pages
		}
		// If cached data found, return it
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"events":      cached.Events,     // List of events
				"page":        cached.Page,       // Current page
				"page_size":   cached.PageSize,   // Page size
				"total":       cached.Total,      // Total number of events
				"total_pages": cached.TotalPages, // Total pages
				"cached":      true,              // Indicate response is from cache
			})
			return
		}
		all, err := events.GetAll() // Read the full collection
		if err != nil {
			// If reading fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
			return
		}
		total := len(all) // Total event count
		// Slice out the requested page
		start := (page - 1) * pageSize
		if start > total {
			start = total
		}
		end := start + pageSize
		if end > total {
			end = total
		}
		// Map the page to the response format
		resp := make([]EventResponse, 0, end-start)
		for _, e := range all[start:end] {
			resp = append(resp, toEventResponse(e))
		}
		// The total number of pages
		totalPages := (total + pageSize - 1) / pageSize
		// Prepare final response data
		respData := gin.H{
			"events":      resp,       // List of events
			"page":        page,       // Current page
			"page_size":   pageSize,   // Page size
			"total":       total,      // Total number of events
			"total_pages": totalPages, // Total pages
			"cached":      false,      // Indicate response is not from cache
		}
		// Cache the response for future requests
		_ = utils.SetCache(ctx, rdb, cacheKey, respData, 60*time.Second)
		c.JSON(http.StatusOK, respData) // Return the response
	}
}

// ListUsersHandler returns all users without password material,
// paginated and cached
func ListUsersHandler(users store.UserStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()          // Use background context for Redis
		page, pageSize := parsePagination(c) // Read pagination parameters
		// Create a cache key based on pagination parameters
		cacheKey := "admin:users:page=" + strconv.Itoa(page) + ":size=" + strconv.Itoa(pageSize)
		// Try to get cached response
		var cached struct {
			Users      []UserAdminResponse `json:"users"`       // List of users
			Page       int                 `json:"page"`        // Current page
			PageSize   int                 `json:"page_size"`   // Page size
			Total      int                 `json:"total"`       // Total number of users
			TotalPages int                 `json:"total_pages"` // Total pages
		}
		// If cached data found, return it
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"users":       cached.Users,      // List of users
				"page":        cached.Page,       // Current page
				"page_size":   cached.PageSize,   // Page size
				"total":       cached.Total,      // Total number of users
				"total_pages": cached.TotalPages, // Total pages
				"cached":      true,              // Indicate response is from cache
			})
			return
		}
		all, err := users.GetAll() // Read the full collection
		if err != nil {
			// If reading fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		total := len(all) // Total user count
		// Slice out the requested page
		start := (page - 1) * pageSize
		if start > total {
			start = total
		}
		end := start + pageSize
		if end > total {
			end = total
		}
		// Map users to response format
		resp := make([]UserAdminResponse, 0, end-start)
		for _, u := range all[start:end] {
			resp = append(resp, UserAdminResponse{
				ID:    u.ID,    // User ID
				Name:  u.Name,  // Full name
				Email: u.Email, // Email address
				Phone: u.Phone, // Phone number
				Role:  u.Role,  // User role
			})
		}
		// The total number of pages
		totalPages := (total + pageSize - 1) / pageSize
		// Prepare final response data
		respData := gin.H{
			"users":       resp,       // List of users
			"page":        page,       // Current page
			"page_size":   pageSize,   // Page size
			"total":       total,      // Total number of users
			"total_pages": totalPages, // Total pages
			"cached":      false,      // Indicate response is not from cache
		}
		// Cache the response for future requests
		_ = utils.SetCache(ctx, rdb, cacheKey, respData, 60*time.Second)
		c.JSON(http.StatusOK, respData) // Return the response
	}
}

// AssignManagerHandler assigns or reassigns a manager to an event. An event
// still at the first stage auto-advances to "Event Manager Assigned".
func AssignManagerHandler(events store.EventStore, users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c) // Get the authenticated admin
		// Check if the user is present in context
		if !ok {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Assignment authority lives in the lifecycle policy
		if !lifecycle.CanAssignManager(user) {
			c.JSON(http.StatusForbidden, gin.H{"error": "ADMIN access required"})
			return
		}
		var req AssignManagerRequest // Bind JSON request to struct
		// Validate request
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
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
		manager, err := users.GetByID(req.ManagerID) // Look up the target manager
		if err != nil {
			// If the target user does not exist, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Manager not found"})
			return
		}
		// The target must actually hold the manager role
		if manager.Role != domain.RoleManager {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User is not a manager"})
			return
		}
		prevStatus := event.Status                          // Remember the previous stage
		updated := lifecycle.AssignManager(event, manager.ID) // Assign, auto-advancing from the first stage
		// Persist the assignment
		if err := events.UpdateByID(updated.ID, updated); err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"event_id":   updated.ID, // Event ID
				"manager_id": manager.ID, // Assigned manager
				"admin_id":   user.ID,    // Acting admin
				"error":      err.Error(),
			}).Error("Failed to assign manager") // Log assignment failure
			// Return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign manager"})
			return
		}
		// Log the assignment
		logrus.WithFields(logrus.Fields{
			"event_id":   updated.ID,                      // Event ID
			"manager_id": manager.ID,                      // Assigned manager
			"admin_id":   user.ID,                         // Acting admin
			"status":     updated.Status,                  // Stage after assignment
			"timestamp":  time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("Manager assigned")
		metrics.ObserveManagerAssignment() // Count the assignment
		// Count the implicit transition from the first stage
		if updated.Status != prevStatus {
			metrics.ObserveStatusChange(updated.Status)
		}
		invalidateAdminCaches(c) // Admin listings are now stale
		// Return the updated event
		c.JSON(http.StatusOK, gin.H{"message": "Manager assigned", "event": toEventResponse(updated)})
	}
}
