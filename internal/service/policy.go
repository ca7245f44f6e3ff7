package service

// Ownable is any entity that carries its author's user id.
type Ownable interface {
	OwnerID() string
}

// CanMutate reports whether the actor may update or delete the resource.
// Ownership is the sole rule: no roles, no admin override.
func CanMutate(actorID string, res Ownable) bool {
	return actorID != "" && actorID == res.OwnerID()
}
