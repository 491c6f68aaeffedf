package api

import (
	"errors"                   // Sentinel error matching
	"lunvee/internal/domain"   // Importing domain models
	"lunvee/internal/identity" // Identity service
	"lunvee/internal/utils"    // Utility functions
	"net/http"                 // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Request struct for registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`        // Full name must be provided
	Email    string `json:"email" binding:"required,email"` // Valid email must be provided
	Password string `json:"password" binding:"required"`    // Password must be provided
	Phone    string `json:"phone" binding:"required"`       // Phone must be provided
	Role     string `json:"role" binding:"required"`        // Role must be provided (CLIENT or MANAGER)
}

// Request struct for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Response struct for authentication
type AuthResponse struct {
	Token string      `json:"token"` // JWT token
	User  domain.User `json:"user"`  // Authenticated user
}

// RegisterHandler creates a new client or manager account and signs them in
func RegisterHandler(svc *identity.Service, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Create the user through the identity service
		user, err := svc.Register(req.Name, req.Email, req.Password, req.Phone, req.Role)
		if err != nil {
			// Duplicate emails are rejected with a clear message
			if errors.Is(err, identity.ErrDuplicateEmail) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
				return
			}
			// Admin cannot self-register
			if errors.Is(err, identity.ErrRoleNotAllowed) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be CLIENT or MANAGER"})
				return
			}
			// Anything else is a server-side failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
			return
		}
		// Issue a token so registration doubles as sign-in
		token, err := utils.GenerateJWT(user.ID, user.Role, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Log the registration
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,   // New user ID
			"role":    user.Role, // Chosen role
		}).Info("User registered")
		// Return the token and user in the response
		c.JSON(http.StatusCreated, AuthResponse{Token: token, User: user})
	}
}

// LoginHandler authenticates a user and returns a JWT token
func LoginHandler(svc *identity.Service, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Verify the credentials
		user, err := svc.Authenticate(req.Email, req.Password)
		if err != nil {
			// Wrong email or wrong password both surface the same message
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		// Generate JWT token
		token, err := utils.GenerateJWT(user.ID, user.Role, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Return the token and user in the response
		c.JSON(http.StatusOK, AuthResponse{Token: token, User: user})
	}
}
