package domain

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// APIClient is a caller allowed to obtain gateway tokens.
type APIClient struct {
	ID         string
	SecretHash string
	Role       string
}
