package entity

import "time"

// Status estado de uma visita no ciclo de vida. Conjunto fechado; valores
// desconhecidos são rejeitados na borda HTTP, não dentro do motor.
type Status string

// Estados válidos para Visit.
const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusDenied    Status = "denied"
	StatusCompleted Status = "completed"
)

// ParseStatus valida um status vindo da borda HTTP.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusDenied, StatusCompleted:
		return Status(s), true
	}
	return "", false
}

// transitions grafo de transições permitidas do ciclo de vida.
// pending → approved | denied; approved → completed.
// denied e completed são terminais; nada volta para pending.
var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusDenied},
	StatusApproved: {StatusCompleted},
}

// CanTransitionTo informa se a visita pode mudar do status atual para o destino.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal informa se o status não admite nenhuma transição.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// Visit registra a entrada de um visitante no condomínio.
//
// Invariantes mantidas pelo caso de uso:
//   - Status inicia em pending e segue o grafo de transitions.
//   - ApprovedBy é preenchido na decisão (approved/denied) e nunca antes.
//   - ExitTime é preenchido somente na conclusão (completed).
//   - CreatedBy é imutável após a criação.
type Visit struct {
	ID              string
	VisitorName     string
	VisitorDocument string
	Destination     string // número do apartamento/casa
	Purpose         string
	EntryTime       time.Time
	ExitTime        *time.Time
	Status          Status
	ApprovedBy      *string
	Notes           *string
	CreatedBy       string
}
