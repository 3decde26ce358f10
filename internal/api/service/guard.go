package service

// Guard decides whether an authenticated actor may mutate a resource. The
// rule is plain ownership equality: actors mutate only what they own, and
// absence of a resource is surfaced before ownership is ever consulted so
// 404 wins over 403.
type Guard struct{}

// Authorize returns ErrForbidden unless actorID owns the resource.
func (Guard) Authorize(actorID, ownerID string) error {
	if actorID == "" || actorID != ownerID {
		return ErrForbidden
	}
	return nil
}
