package types

// Status is a type for the lifecycle status of a persisted resource in the database.
// It is independent of the subscription's own delivery status and is only used to
// soft delete or archive rows.
type Status string

const (
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
	StatusDeleted   Status = "deleted"
)

func (s Status) String() string {
	return string(s)
}
