package models

// SessionUser is the locally known identity of the signed-in user,
// decoded from the app token. Used to decorate freshly created comments
// and to gate author-only affordances.
type SessionUser struct {
	UserId      string
	DisplayName string
	Email       string
}
