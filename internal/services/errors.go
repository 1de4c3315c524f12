package services

// InvalidInputError marks a request that failed validation before any
// external call was made.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return e.Reason
}
