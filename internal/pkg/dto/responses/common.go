package responses

// Message is the generic acknowledgement body most mutating endpoints answer with.
type Message struct {
	Message string `json:"message,omitempty"`
	ID      int64  `json:"id,omitempty"`
}
