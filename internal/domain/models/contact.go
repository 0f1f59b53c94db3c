package models

// ContactMessage is the payload submitted from the about page form.
type ContactMessage struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ContactAcknowledgement is returned once a message has been received.
type ContactAcknowledgement struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
