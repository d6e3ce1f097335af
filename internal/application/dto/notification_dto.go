package dto

import "time"

// NotificationResponse notificación para la interfaz.
type NotificationResponse struct {
	ID        string     `json:"id"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Read      bool       `json:"read"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// NotificationListResponse notificaciones vigentes.
type NotificationListResponse struct {
	Items  []NotificationResponse `json:"items"`
	Unread int                    `json:"unread"`
}

// NotificationRequest alta manual de una notificación.
type NotificationRequest struct {
	Type    string `json:"type" validate:"required,oneof=success error warning info"`
	Title   string `json:"title" validate:"required,max=120"`
	Message string `json:"message" validate:"max=500"`
}
