package model

import "time"

// ExportRecord describes a produced export file. Passwords are never stored.
type ExportRecord struct {
	ID        int64     `json:"id"`
	Filename  string    `json:"filename"`
	Format    string    `json:"format"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"created_at"`
}

// ExportRequest carries the passwords to export.
type ExportRequest struct {
	Passwords []string `json:"passwords"`
}

// TokenRequest exchanges the admin password for a bearer token.
type TokenRequest struct {
	Password string `json:"password"`
}

// TokenResponse carries a signed bearer token.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
