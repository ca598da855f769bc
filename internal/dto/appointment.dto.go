package dto

type AppointmentDTO struct {
	ID        uint   `json:"id"`
	Reference string `json:"reference"`

	Date   string `json:"date"`
	Period string `json:"period"`
	Status string `json:"status"`

	Description    string   `json:"description"`
	SuggestedPrice *float64 `json:"suggested_price"`

	ClientName   string `json:"client_name,omitempty"`
	ProviderName string `json:"provider_name,omitempty"`
	CategoryName string `json:"category_name,omitempty"`

	CancelledBy *string `json:"cancelled_by,omitempty"`

	// Derivado na consulta: aceito e com a data já alcançada
	Reviewable bool `json:"reviewable"`
}
