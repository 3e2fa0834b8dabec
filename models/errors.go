package models

import "fmt"

// Error taxonomy for lifecycle transitions. Services return these
// directly; handlers map them to HTTP statuses via the helper.

// InvalidStateError is returned when a transition is attempted from a
// state it is not legal in. Always a caller error, never retried.
type InvalidStateError struct {
	Op      string
	Current ArticleStatus
}

func (e InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s article in state %s", e.Op, e.Current)
}

// AuthorizationError is a role or ownership mismatch.
type AuthorizationError struct {
	Reason string
}

func (e AuthorizationError) Error() string {
	return e.Reason
}

// SpecializationMismatchError is returned when an editor tries to claim
// an article outside their specialization.
type SpecializationMismatchError struct {
	EditorSpecialization EditType
	ArticleEditType      EditType
}

func (e SpecializationMismatchError) Error() string {
	return fmt.Sprintf("editor specialization %s does not match article edit type %s",
		e.EditorSpecialization, e.ArticleEditType)
}

// DuplicateAssignmentError means an active assignment already exists for
// the article. Backed by the ledger's unique index, so it also surfaces
// when two claims race.
type DuplicateAssignmentError struct {
	ArticleID uint
}

func (e DuplicateAssignmentError) Error() string {
	return fmt.Sprintf("article %d already has an active assignment", e.ArticleID)
}

// NotAssignedError is returned when Submit is called by an editor who
// does not hold the article, or when the article is not in review.
type NotAssignedError struct {
	ArticleID uint
	EditorID  uint
}

func (e NotAssignedError) Error() string {
	return fmt.Sprintf("editor %d is not assigned to article %d", e.EditorID, e.ArticleID)
}

// AssignmentNotFoundError is an integrity fault: the article claims an
// editor but the ledger has no matching active row. Unreachable while
// the invariants hold; logged and surfaced, never swallowed.
type AssignmentNotFoundError struct {
	ArticleID uint
	EditorID  uint
}

func (e AssignmentNotFoundError) Error() string {
	return fmt.Sprintf("no active assignment found for article %d and editor %d", e.ArticleID, e.EditorID)
}

// NotFoundError means the referenced record does not exist.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}
