package shop

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleBarber Role = "barber"
	RoleClient Role = "client"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleBarber, RoleClient:
		return true
	}
	return false
}

// Actor é quem executa a operação, extraído do token.
type Actor struct {
	UserID     uint
	Role       Role
	EmployeeID uint
	ClientID   uint
}

func (a Actor) IsAdmin() bool  { return a.Role == RoleAdmin }
func (a Actor) IsBarber() bool { return a.Role == RoleBarber }
func (a Actor) IsClient() bool { return a.Role == RoleClient }

// UserRef é o ponteiro usado nos eventos de auditoria.
func (a Actor) UserRef() *uint {
	if a.UserID == 0 {
		return nil
	}
	id := a.UserID
	return &id
}
