package dto

// MessageResponse is the acknowledgement body for calls that return no entity.
type MessageResponse struct {
	Message string `json:"message"`
}
