package payload

type RecipientRow struct {
	Name         string            `json:"name" validate:"required"`
	Email        string            `json:"email" validate:"omitempty,email"`
	Course       string            `json:"course"`
	IssueDate    string            `json:"issueDate"`
	CustomFields map[string]string `json:"customFields"`
}

// AddRecipientsPayload carries one or many recipient rows, typically the
// parsed content of an uploaded spreadsheet.
type AddRecipientsPayload struct {
	Recipients []RecipientRow `json:"recipients" validate:"required,min=1,dive"`
}
