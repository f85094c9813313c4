package auth

// User is an admin account for the dashboard.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}
