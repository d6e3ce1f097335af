package notify

import (
	"github.com/jhoicas/Reciclaje-api/internal/application/dto"
	"github.com/jhoicas/Reciclaje-api/internal/domain"
)

// UseCase expone el store a la capa HTTP.
type UseCase struct {
	store *Store
}

// NewUseCase construye el caso de uso sobre un store compartido con los publicadores.
func NewUseCase(store *Store) *UseCase {
	return &UseCase{store: store}
}

// List notificaciones vigentes, la más reciente primero.
func (uc *UseCase) List() *dto.NotificationListResponse {
	list := uc.store.List()
	out := &dto.NotificationListResponse{Items: make([]dto.NotificationResponse, 0, len(list))}
	for _, n := range list {
		if !n.Read {
			out.Unread++
		}
		out.Items = append(out.Items, toResponse(n))
	}
	return out
}

func (uc *UseCase) Create(in dto.NotificationRequest) dto.NotificationResponse {
	return toResponse(uc.store.Publish(in.Type, in.Title, in.Message))
}

func (uc *UseCase) MarkRead(id string) error {
	if !uc.store.Exists(id) {
		return domain.ErrNotFound
	}
	uc.store.Dispatch(MarkRead{ID: id})
	return nil
}

func (uc *UseCase) MarkAllRead() {
	uc.store.Dispatch(MarkAllRead{})
}

func (uc *UseCase) Remove(id string) error {
	if !uc.store.Exists(id) {
		return domain.ErrNotFound
	}
	uc.store.Dispatch(Remove{ID: id})
	return nil
}

func toResponse(n Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
		ExpiresAt: n.ExpiresAt,
	}
}
