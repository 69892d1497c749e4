package planner

// Error is an application-layer error that can be mapped to an HTTP response.
type Error struct {
	Status  int
	Code    string
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func errNotLoggedIn() *Error {
	return &Error{Status: 401, Code: "NOT_LOGGED_IN", Message: "not logged in"}
}
