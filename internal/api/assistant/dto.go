package assistant

type MagicWriteRequest struct {
	Title       string `json:"title" validate:"max=256"`
	Description string `json:"description" validate:"max=1024"`
}

type MagicWriteResponse struct {
	Content string `json:"content"`
}

// StreamFrame is one websocket message. Exactly one of the fields is set.
type StreamFrame struct {
	Chunk string `json:"chunk,omitempty"`
	Done  bool   `json:"done,omitempty"`
	Error string `json:"error,omitempty"`
}
