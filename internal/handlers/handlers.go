package handlers

// ListRequest represents shared pagination query parameters
type ListRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}
