package events

import "go.uber.org/zap"

// Ações de domínio emitidas pelo booking engine
const (
	AppointmentRequested = "appointment_requested"
	AppointmentAccepted  = "appointment_accepted"
	AppointmentDeclined  = "appointment_declined"
	AppointmentCancelled = "appointment_cancelled"
	ReviewSubmitted      = "review_submitted"
)

type Event struct {
	Action    string
	Entity    string
	EntityID  *uint
	ActorRole string
	ActorID   *uint
	Metadata  any
}

// Sink consome eventos de forma independente (auditoria, notificação,
// invalidação de cache). Erro de sink nunca volta para a request.
type Sink interface {
	Handle(ev Event) error
}

type Dispatcher struct {
	sinks []Sink
	queue chan Event
}

func NewDispatcher(sinks ...Sink) *Dispatcher {
	d := &Dispatcher{
		sinks: sinks,
		queue: make(chan Event, 100), // buffer seguro
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		for _, s := range d.sinks {
			if err := s.Handle(ev); err != nil {
				zap.L().Warn("event sink error",
					zap.String("action", ev.Action),
					zap.Error(err),
				)
			}
		}
	}
}

// Dispatch é fire-and-forget: fila cheia descarta o evento
// (nunca quebrar a API por causa de notificação)
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		zap.L().Warn("event queue full, dropping event",
			zap.String("action", ev.Action),
		)
	}
}
