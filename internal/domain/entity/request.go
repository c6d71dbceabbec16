package entity

import "time"

// Estados de una solicitud de personalización. La máquina es monótona:
// Pending → Accepted → Completed, sin retrocesos.
const (
	RequestStatusPending   = "Pending"
	RequestStatusAccepted  = "Accepted"
	RequestStatusCompleted = "Completed"
)

// ValidRequestStatus indica si s es un estado conocido.
func ValidRequestStatus(s string) bool {
	return s == RequestStatusPending || s == RequestStatusAccepted || s == RequestStatusCompleted
}

// CanTransitionRequest indica si el cambio de estado from → to respeta la
// máquina Pending → Accepted → Completed.
func CanTransitionRequest(from, to string) bool {
	switch from {
	case RequestStatusPending:
		return to == RequestStatusAccepted
	case RequestStatusAccepted:
		return to == RequestStatusCompleted
	}
	return false
}

// CustomizationRequest es la solicitud de personalización de una prenda,
// creada por un Customer y propiedad exclusiva de éste.
type CustomizationRequest struct {
	RequestID  int64
	UserID     int64
	FabricType string
	Size       string
	Style      string // opcional
	Status     string
	CreatedAt  time.Time
}
