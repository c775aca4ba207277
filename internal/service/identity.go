package service

// IdentityResolver turns a free-text handle into the chat platform's
// canonical identity. Resolution may fail for unparseable input.
type IdentityResolver interface {
	Resolve(handle string) (string, error)
}
