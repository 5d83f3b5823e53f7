package models

import "time"

type AdminUser struct {
	ID           int64      `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	PasswordHash []byte     `db:"password_hash" json:"-"`
	FullName     string     `db:"full_name" json:"full_name"`
	IsActive     bool       `db:"is_active" json:"is_active"`
	LastLogin    *time.Time `db:"last_login" json:"last_login,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

// AdminIdentity is the decoded token payload attached to authenticated
// requests.
type AdminIdentity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

type DashboardStats struct {
	TotalSculptures       int64 `db:"total_sculptures" json:"total_sculptures"`
	FeaturedSculptures    int64 `db:"featured_sculptures" json:"featured_sculptures"`
	TotalCategories       int64 `db:"total_categories" json:"total_categories"`
	PendingInquiries      int64 `db:"pending_inquiries" json:"pending_inquiries"`
	PendingCustomRequests int64 `db:"pending_custom_requests" json:"pending_custom_requests"`
	TotalViews            int64 `db:"total_views" json:"total_views"`
}
