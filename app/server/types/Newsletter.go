package types

type NewsletterSendRequest struct {
	Subject *string `json:"subject"`
	Content *string `json:"content"`
}

type NewsletterSendError struct {
	Email string `json:"email"`
	Error string `json:"error"`
}

type NewsletterSendResult struct {
	Message string                `json:"message"`
	Sent    int                   `json:"sent"`
	Failed  int                   `json:"failed"`
	Errors  []NewsletterSendError `json:"errors"`
}
