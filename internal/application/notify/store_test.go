package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce_NoModificaElEstadoAnterior(t *testing.T) {
	s0 := Reduce(nil, Add{Notification: Notification{ID: "a"}})
	s1 := Reduce(s0, Add{Notification: Notification{ID: "b"}})
	s2 := Reduce(s1, MarkRead{ID: "a"})

	require.Len(t, s1, 2)
	assert.Equal(t, "b", s1[0].ID, "la más reciente primero")
	assert.False(t, s1[1].Read)
	assert.True(t, s2[1].Read)
}

func TestReduce_RemoveYMarkAllRead(t *testing.T) {
	state := []Notification{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	state = Reduce(state, Remove{ID: "b"})
	require.Len(t, state, 2)

	state = Reduce(state, MarkAllRead{})
	for _, n := range state {
		assert.True(t, n.Read)
	}
}

func TestStore_ExitoVenceACincoSegundos(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s := NewStore(func() time.Time { return now })

	ok := s.Publish(TypeSuccess, "Análisis validado", "")
	warn := s.Publish(TypeWarning, "Stock bajo", "PET bajo el umbral")

	require.Len(t, s.List(), 2)

	now = now.Add(SuccessTTL - time.Millisecond)
	assert.True(t, s.Exists(ok.ID))

	now = now.Add(time.Millisecond)
	assert.False(t, s.Exists(ok.ID))
	assert.True(t, s.Exists(warn.ID), "solo las de éxito vencen")
}

func TestStore_LimiteDeNotificaciones(t *testing.T) {
	s := NewStore(nil)
	for i := 0; i < maxNotifications+10; i++ {
		s.Publish(TypeInfo, "n", "")
	}
	assert.Len(t, s.List(), maxNotifications)
}
