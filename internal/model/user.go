package model

// RoleAdmin marks users allowed into the admin dashboard.
const RoleAdmin = "admin"

// User represents the profile the backend returns on login.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Role    string `json:"role,omitempty"`
}
