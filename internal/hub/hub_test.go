package hub

import (
	"context"
	"testing"

	"github.com/Try3D/joy-pad/internal/room"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHub_EnsureThenGet_SamePointer(t *testing.T) {
	req := require.New(t)
	h := NewHub(context.Background(), zap.NewNop().Sugar())
	reply := make(chan *room.Room, 1)

	h.Inbox() <- EnsureRoom{Code: "ZED123", Reply: reply}
	rm1 := <-reply
	req.NotNil(rm1)

	h.Inbox() <- GetRoom{Code: "ZED123", Reply: reply}
	rm2 := <-reply
	req.Same(rm1, rm2)
}

func TestHub_GetUnknownCode_Nil(t *testing.T) {
	h := NewHub(context.Background(), zap.NewNop().Sugar())
	reply := make(chan *room.Room, 1)

	h.Inbox() <- GetRoom{Code: "NOPE", Reply: reply}
	require.Nil(t, <-reply)
}

func TestHub_EnsureIsIdempotent(t *testing.T) {
	req := require.New(t)
	h := NewHub(context.Background(), zap.NewNop().Sugar())
	reply := make(chan *room.Room, 1)

	h.Inbox() <- EnsureRoom{Code: "AAAAAA", Reply: reply}
	rm1 := <-reply
	h.Inbox() <- EnsureRoom{Code: "AAAAAA", Reply: reply}
	rm2 := <-reply
	req.Same(rm1, rm2)
}

func TestHub_RemoveRoom(t *testing.T) {
	req := require.New(t)
	h := NewHub(context.Background(), zap.NewNop().Sugar())
	reply := make(chan *room.Room, 1)

	h.Inbox() <- EnsureRoom{Code: "GONE01", Reply: reply}
	req.NotNil(<-reply)

	h.Inbox() <- RemoveRoom{Code: "GONE01"}
	h.Inbox() <- GetRoom{Code: "GONE01", Reply: reply}
	req.Nil(<-reply)
}
