package models

import "github.com/golang-jwt/jwt/v4"

// AdminClaims are the custom claims carried by admin tokens.
type AdminClaims struct {
	AdminID int64  `json:"admin_id"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// SetBlockedRequest defines the request body for blocking or unblocking a profile
type SetBlockedRequest struct {
	Blocked *bool `json:"blocked" validate:"required"`
}

// AdminStats aggregates the global entity counters shown on the admin panel.
type AdminStats struct {
	Providers       int64 `json:"providers"`
	Requesters      int64 `json:"requesters"`
	Likes           int64 `json:"likes"`
	Complaints      int64 `json:"complaints"`
	ContactRequests int64 `json:"contact_requests"`
}
