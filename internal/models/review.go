package models

import "time"

// Avaliação unilateral vinculada a um agendamento.
// Unicidade por (appointment_id, rater_role) garantida por índice no banco.
type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"not null" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	RaterRole string `gorm:"size:20;not null" json:"rater_role"`

	Rating  float64 `gorm:"type:decimal(2,1);not null" json:"rating"`
	Comment string  `gorm:"size:500" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}
