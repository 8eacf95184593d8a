package dispatch

// PromptResponse is the outcome of a dispatch: either a Response or an Error.
type PromptResponse interface {
	Kind() string
	String() string
}

// Response is the text generated by the service.
type Response string

func (r Response) Kind() string   { return "response" }
func (r Response) String() string { return string(r) }

// Error is a human-readable diagnostic for a failed dispatch.
type Error string

func (e Error) Kind() string   { return "error" }
func (e Error) String() string { return string(e) }
