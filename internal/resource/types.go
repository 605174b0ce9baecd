package resource

// Meta is the pagination block of every list envelope. One canonical shape
// for all resources; TotalPages is always ceil(Total/Limit), so an empty
// result has TotalPages 0.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta computes the pagination block for a page of results.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 && total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Envelope is the canonical paginated list response.
// Invariant: len(Data) <= Meta.Limit.
type Envelope[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

// Result is the uniform mutation outcome. Success=false implies Data is
// nil and Message is human-readable; callers only branch on Success.
type Result[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *T     `json:"data,omitempty"`
}

// Ok builds a successful Result.
func Ok[T any](message string, data *T) Result[T] {
	return Result[T]{Success: true, Message: message, Data: data}
}

// Fail builds a failed Result.
func Fail[T any](message string) Result[T] {
	return Result[T]{Success: false, Message: message}
}
