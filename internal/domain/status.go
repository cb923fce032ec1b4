package domain

// Status tags the outcome of a mutation workflow. Handlers map StatusOK
// to a redirect, StatusInvalid to a form re-render with the collected
// errors, and StatusNotFound to a 404 response.
type Status int

const (
	StatusOK Status = iota
	StatusInvalid
	StatusNotFound
)
