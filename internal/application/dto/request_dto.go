package dto

import "time"

// CreateRequestRequest entrada para crear una solicitud de personalización.
type CreateRequestRequest struct {
	FabricType string `json:"fabric_type" validate:"required,max=50"`
	Size       string `json:"size" validate:"required,max=10"`
	Style      string `json:"style,omitempty"`
}

// UpdateRequestStatusRequest entrada para avanzar el estado de una solicitud.
type UpdateRequestStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Accepted Completed"`
}

// RequestResponse salida de una solicitud.
type RequestResponse struct {
	RequestID  int64     `json:"request_id"`
	UserID     int64     `json:"user_id"`
	FabricType string    `json:"fabric_type"`
	Size       string    `json:"size"`
	Style      string    `json:"style,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
