package events

import "go.uber.org/zap"

// NotifierSink entrega eventos ao colaborador de notificação/e-mail.
// O colaborador é externo ao core; aqui a entrega é um log estruturado
// no mesmo contrato fire-and-forget.
type NotifierSink struct {
	log *zap.Logger
}

func NewNotifierSink(log *zap.Logger) *NotifierSink {
	return &NotifierSink{log: log}
}

func (s *NotifierSink) Handle(ev Event) error {
	switch ev.Action {
	case AppointmentAccepted, AppointmentDeclined, AppointmentCancelled:
		s.log.Info("notify",
			zap.String("action", ev.Action),
			zap.String("actor_role", ev.ActorRole),
			zap.Uintp("appointment_id", ev.EntityID),
			zap.Any("metadata", ev.Metadata),
		)
	}
	return nil
}
