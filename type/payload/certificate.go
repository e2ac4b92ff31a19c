package payload

type IssueCertificatePayload struct {
	RecipientID string `json:"recipientId" validate:"required"`
	TemplateID  string `json:"templateId" validate:"required"`
	IssueDate   string `json:"issueDate"`
}

type GenerateCertificatesPayload struct {
	RecipientIDs []string `json:"recipientIds" validate:"required,min=1"`
}

type GenerateResult struct {
	CertificateID string `json:"certificateId"`
	RecipientID   string `json:"recipientId"`
	Filename      string `json:"filename,omitempty"`
	Status        string `json:"status"`
	Error         string `json:"error,omitempty"`
}

type GenerateCertificatesResponse struct {
	Results    []GenerateResult `json:"results"`
	Succeeded  int              `json:"succeeded"`
	Failed     int              `json:"failed"`
	ArchiveURL string           `json:"archiveUrl"`
}
