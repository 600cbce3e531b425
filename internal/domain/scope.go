package domain

// Scope is the explicit visibility capability passed into the query layer.
// A non-admin scope is restricted to the requester's own appointments;
// an admin scope is unrestricted.
type Scope struct {
	UserID int64
	Admin  bool
}

// UserScope возвращает область видимости обычного пользователя
func UserScope(userID int64) Scope {
	return Scope{UserID: userID}
}

// AdminScope возвращает неограниченную область видимости
func AdminScope(userID int64) Scope {
	return Scope{UserID: userID, Admin: true}
}

// CanSee reports whether the scope may see an appointment owned by ownerID
func (s Scope) CanSee(ownerID int64) bool {
	return s.Admin || s.UserID == ownerID
}
