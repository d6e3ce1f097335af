// Package notify implementa el bus de notificaciones de la interfaz como un store con acciones
// tipadas. Toda mutación pasa por Reduce, así los puntos de cambio son enumerables.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Tipos de notificación.
const (
	TypeSuccess = "success"
	TypeError   = "error"
	TypeWarning = "warning"
	TypeInfo    = "info"
)

// SuccessTTL las notificaciones de éxito desaparecen solas tras este intervalo.
const SuccessTTL = 5 * time.Second

// maxNotifications las más antiguas se descartan al superar el límite.
const maxNotifications = 200

// Notification mensaje para el operador. La más reciente va primero.
type Notification struct {
	ID        string
	Type      string
	Title     string
	Message   string
	Read      bool
	CreatedAt time.Time
	ExpiresAt *time.Time
}

// Action acción sobre el store. Solo las de este paquete la implementan.
type Action interface{ isAction() }

// Add inserta una notificación al principio.
type Add struct{ Notification Notification }

// Remove elimina por ID.
type Remove struct{ ID string }

// MarkRead marca una notificación como leída.
type MarkRead struct{ ID string }

// MarkAllRead marca todas como leídas.
type MarkAllRead struct{}

// Expire descarta las vencidas a la fecha Now.
type Expire struct{ Now time.Time }

func (Add) isAction()         {}
func (Remove) isAction()      {}
func (MarkRead) isAction()    {}
func (MarkAllRead) isAction() {}
func (Expire) isAction()      {}

// Reduce aplica una acción y devuelve el nuevo estado sin modificar el anterior.
func Reduce(state []Notification, action Action) []Notification {
	switch a := action.(type) {
	case Add:
		next := make([]Notification, 0, len(state)+1)
		next = append(next, a.Notification)
		next = append(next, state...)
		if len(next) > maxNotifications {
			next = next[:maxNotifications]
		}
		return next
	case Remove:
		return filter(state, func(n Notification) bool { return n.ID != a.ID })
	case MarkRead:
		return mapState(state, func(n Notification) Notification {
			if n.ID == a.ID {
				n.Read = true
			}
			return n
		})
	case MarkAllRead:
		return mapState(state, func(n Notification) Notification {
			n.Read = true
			return n
		})
	case Expire:
		return filter(state, func(n Notification) bool { return n.ExpiresAt == nil || n.ExpiresAt.After(a.Now) })
	}
	return state
}

func filter(state []Notification, keep func(Notification) bool) []Notification {
	next := make([]Notification, 0, len(state))
	for _, n := range state {
		if keep(n) {
			next = append(next, n)
		}
	}
	return next
}

func mapState(state []Notification, fn func(Notification) Notification) []Notification {
	next := make([]Notification, len(state))
	for i, n := range state {
		next[i] = fn(n)
	}
	return next
}

// Publisher lo reciben los casos de uso que avisan al operador.
type Publisher interface {
	Publish(typ, title, message string) Notification
}

// Store estado vivo del bus, seguro para uso concurrente.
type Store struct {
	mu    sync.Mutex
	state []Notification
	now   func() time.Time
}

var _ Publisher = (*Store)(nil)

// NewStore construye un store vacío. now nil = time.Now.
func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{now: now, state: []Notification{}}
}

// Dispatch aplica la acción al estado.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a)
}

// Publish crea y agrega una notificación; las de éxito llevan vencimiento.
func (s *Store) Publish(typ, title, message string) Notification {
	now := s.now()
	n := Notification{
		ID:        uuid.New().String(),
		Type:      typ,
		Title:     title,
		Message:   message,
		CreatedAt: now,
	}
	if typ == TypeSuccess {
		exp := now.Add(SuccessTTL)
		n.ExpiresAt = &exp
	}
	s.Dispatch(Add{Notification: n})
	return n
}

// List descarta las vencidas y devuelve una copia del estado.
func (s *Store) List() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, Expire{Now: s.now()})
	out := make([]Notification, len(s.state))
	copy(out, s.state)
	return out
}

// Exists indica si la notificación sigue en el store.
func (s *Store) Exists(id string) bool {
	for _, n := range s.List() {
		if n.ID == id {
			return true
		}
	}
	return false
}
