// Package domain defines the wire-level data transfer objects exchanged with
// the adboard backend. These types mirror the backend's JSON field names
// exactly; no renaming happens on the wire.
//
// Every field the backend may omit is either a pointer or a type whose zero
// value is a valid default, so decoding never fails on an absent field.
// Unknown response fields are ignored by the standard decoder, which keeps the
// DTOs forward-compatible with backend additions.
package domain

// LoginRequest is the credentials payload for POST /api/auth/local.
// Identifier accepts either the registered email or the username.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// RegisterRequest is the payload for POST /api/auth/local/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by both login and registration. The caller is
// responsible for storing the JWT in the session store; the services layer
// never does this implicitly.
type AuthResponse struct {
	JWT  string `json:"jwt"`
	User *User  `json:"user,omitempty"`
}

// User is the backend user record.
//
// Confirmed and Blocked are pointers because older backend versions omit them
// entirely rather than sending false.
type User struct {
	ID        int           `json:"id"`
	Username  string        `json:"username"`
	Email     string        `json:"email"`
	Confirmed *bool         `json:"confirmed,omitempty"`
	Blocked   *bool         `json:"blocked,omitempty"`
	Avatar    *UploadedFile `json:"avatar,omitempty"`
	Addresses []Address     `json:"addresses,omitempty"`
	CreatedAt string        `json:"created_at,omitempty"`
}

// UserUpdateRequest carries the mutable profile fields for PUT /api/users/<id>.
// Nil fields are omitted from the payload and left untouched by the backend.
type UserUpdateRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Avatar   *int    `json:"avatar,omitempty"`
}

// Address is a delivery address attached to a user profile.
type Address struct {
	ID     int     `json:"id"`
	Title  *string `json:"title,omitempty"`
	City   string  `json:"city"`
	Street string  `json:"street"`
	Zip    string  `json:"zip"`
	User   *User   `json:"user,omitempty"`
}

// AddressRequest is the create/update payload for /api/addresses.
type AddressRequest struct {
	Title  string `json:"title,omitempty"`
	City   string `json:"city"`
	Street string `json:"street"`
	Zip    string `json:"zip"`
	User   *int   `json:"user,omitempty"`
}

// Advert is a published listing.
type Advert struct {
	ID          int            `json:"id"`
	Title       string         `json:"title"`
	Description *string        `json:"description,omitempty"`
	Price       *float64       `json:"price,omitempty"`
	Images      []UploadedFile `json:"images,omitempty"`
	User        *User          `json:"user,omitempty"`
	CreatedAt   string         `json:"created_at,omitempty"`
}

// UploadedFile describes one stored file as returned by POST /api/upload.
type UploadedFile struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	URL    string   `json:"url"`
	Mime   *string  `json:"mime,omitempty"`
	Size   *float64 `json:"size,omitempty"`
	Width  *int     `json:"width,omitempty"`
	Height *int     `json:"height,omitempty"`
}

// LogEntry is a remote logger record.
type LogEntry struct {
	ID        int     `json:"id"`
	Message   string  `json:"message"`
	Level     *string `json:"level,omitempty"`
	CreatedAt string  `json:"created_at,omitempty"`
}

// LogEntryRequest is the payload for POST /api/loggers.
type LogEntryRequest struct {
	Message string `json:"message"`
	Level   string `json:"level,omitempty"`
}
