package domain

// Role distinguishes the two kinds of registered identities
type Role string

const (
	RoleCustomer Role = "customer" // Books rooms for themselves
	RoleManager  Role = "manager"  // Maintains rooms and reservations
)

// Person holds the fields shared by customers and managers
type Person struct {
	ID         uint   `gorm:"primaryKey"`                    // Primary key
	FirstName  string `gorm:"not null"`                      // Given name
	LastName   string `gorm:"not null"`                      // Family name
	Phone      string `gorm:"size:10;uniqueIndex;not null"`  // Unique 10-digit phone number
	Email      string `gorm:"size:255;uniqueIndex;not null"` // Unique email
	SecretHash string `gorm:"not null" json:"-"`             // Bcrypt hash of the credential secret
}

// FullName joins first and last name for display
func (p Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Customer Model
type Customer struct {
	Person
}

// Manager Model
type Manager struct {
	Person
}

// Identity is the role-tagged view of a registered person returned by the identity service
type Identity struct {
	Role Role
	Person
}
