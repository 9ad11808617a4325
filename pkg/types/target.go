package types

// Content is the content of a file as read from disk. An absent file and an
// empty file are different values: Present is false only for the former.
type Content struct {
	Value   string
	Present bool
}

// Absent returns the content of a file that does not exist
func Absent() Content {
	return Content{}
}

// Present returns the content of an existing file
func Present(value string) Content {
	return Content{Value: value, Present: true}
}

// Matches reports whether the content is exactly the desired string.
// Absent content never matches, not even an empty desired string.
func (c Content) Matches(desired string) bool {
	return c.Present && c.Value == desired
}

// Target is a single file to reconcile. It has no identity beyond its path
// and is re-derived from the filesystem on every invocation.
type Target struct {
	Path     string
	Desired  string
	Existing Content
}

// NewTarget creates an unread target
func NewTarget(path, desired string) *Target {
	return &Target{
		Path:    path,
		Desired: desired,
	}
}
