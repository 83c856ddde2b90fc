package types

// ServerAuth is the caller identity resolved from a verified bearer token.
type ServerAuth struct {
	UserId  string
	IsAdmin bool
}

// CanModify reports whether the caller may mutate a resource owned by
// authorId. Admins bypass the ownership check.
func (a *ServerAuth) CanModify(authorId string) bool {
	return a.IsAdmin || a.UserId == authorId
}
