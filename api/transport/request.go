package transport

// TodoCreateRequest is the payload for creating a todo. Content is raw
// Markdown source and is stored verbatim.
type TodoCreateRequest struct {
	Content string `json:"content"`
}

// TodoUpdateRequest is the payload for editing a todo's content.
type TodoUpdateRequest struct {
	Content string `json:"content"`
}
