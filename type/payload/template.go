package payload

type CreateTemplatePayload struct {
	Name     string `json:"name" validate:"required"`
	ImageURL string `json:"imageUrl"`
	Fields   string `json:"fields" validate:"required"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

type UpdateTemplatePayload struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Fields   string `json:"fields"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}
