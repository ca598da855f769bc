package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Código público do agendamento (uuid)
	Reference string `gorm:"size:36;uniqueIndex;not null" json:"reference"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ProviderID uint     `json:"provider_id"`
	Provider   Provider `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"provider"`

	CategoryID uint     `json:"category_id"`
	Category   Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category"`

	// Agendamento por meio-dia: data (sem hora) + período morning/afternoon
	Date   time.Time `gorm:"type:date;index" json:"date"`
	Period string    `gorm:"size:20" json:"period"`

	Status string `gorm:"size:20;default:'pending';index" json:"status"`

	Description    string   `gorm:"size:500" json:"description"`
	SuggestedPrice *float64 `gorm:"type:decimal(10,2)" json:"suggested_price"`

	CancelledBy *string    `gorm:"size:20" json:"cancelled_by"`
	CancelledAt *time.Time `json:"cancelled_at"`
	AcceptedAt  *time.Time `json:"accepted_at"`
	DeclinedAt  *time.Time `json:"declined_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
