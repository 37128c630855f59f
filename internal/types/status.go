package types

// Status is a type for the lifecycle of a database record itself (not the
// person's onboarding status, see PersonStatus). It is used to soft-delete
// and archive rows while keeping them queryable for audits.
type Status string

const (
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
	StatusDeleted   Status = "deleted"
)
