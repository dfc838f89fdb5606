package room

import (
	"context"
	"errors"

	"github.com/Try3D/joy-pad/internal/protocol"
	"go.uber.org/zap"
)

type Msg interface{ isRoomMsg() }

// Connect registers a live connection and the channel it wants outbound
// messages on. The connection starts unassigned; host_connect or join
// binds its role later.
type Connect struct {
	ConnID string
	Outbox chan protocol.ServerMessage
}

func (Connect) isRoomMsg() {}

// FromClient carries one raw inbound frame.
type FromClient struct {
	ConnID string
	Data   []byte
}

func (FromClient) isRoomMsg() {}

// Disconnect reports transport-level closure of a connection.
type Disconnect struct{ ConnID string }

func (Disconnect) isRoomMsg() {}

type Shutdown struct{}

func (Shutdown) isRoomMsg() {}

type GetState struct {
	Reply chan View
}

func (GetState) isRoomMsg() {}

// View reflects internal state for tests without data races.
type View struct {
	Players       []protocol.Player
	LeaderID      string
	CurrentGameID string
	Layout        protocol.Layout
	Config        *protocol.GameConfig
	HostID        string
	NumConns      int
	LastSequence  int64
}

// Room owns one State and processes its inbox strictly one message at a
// time; that serialization is the only guard on the color cursor, the
// sequence counter and the leader invariant.
type Room struct {
	inbox  chan Msg
	state  *State
	conns  map[string]chan protocol.ServerMessage
	hostID string
	log    *zap.SugaredLogger
	ctx    context.Context
	cancel context.CancelFunc
}

func NewRoom(parent context.Context, code string, log *zap.SugaredLogger) *Room {
	ctx, cancel := context.WithCancel(parent)

	r := &Room{
		inbox:  make(chan Msg, 64),
		state:  NewState(),
		conns:  make(map[string]chan protocol.ServerMessage),
		log:    log.With("room", code),
		ctx:    ctx,
		cancel: cancel,
	}

	go r.loop()
	return r
}

func (r *Room) Inbox() chan<- Msg { return r.inbox }

func (r *Room) loop() {
	for {
		select {
		case <-r.ctx.Done():
			r.shutdown()
			return

		case m := <-r.inbox:
			switch msg := m.(type) {
			case Connect:
				r.conns[msg.ConnID] = msg.Outbox
				r.log.Debugw("connection opened", "conn", msg.ConnID)

			case FromClient:
				r.handleFrame(msg.ConnID, msg.Data)

			case Disconnect:
				r.handleDisconnect(msg.ConnID)

			case GetState:
				msg.Reply <- View{
					Players:       r.state.Players(),
					LeaderID:      r.state.LeaderID,
					CurrentGameID: r.state.CurrentGameID,
					Layout:        r.state.Layout,
					Config:        r.state.Config,
					HostID:        r.hostID,
					NumConns:      len(r.conns),
					LastSequence:  r.state.LastSequence(),
				}

			case Shutdown:
				r.shutdown()
				return
			}
		}
	}
}

func (r *Room) shutdown() {
	for id, ch := range r.conns {
		close(ch)
		delete(r.conns, id)
	}
	r.cancel()
}

func (r *Room) handleFrame(connID string, data []byte) {
	msg, err := protocol.DecodeClient(data)
	if err != nil {
		if errors.Is(err, protocol.ErrUnknownType) {
			r.sendError(connID, "Unknown message type")
		} else {
			r.sendError(connID, "Invalid message format")
		}
		return
	}

	switch m := msg.(type) {
	case protocol.HostConnect:
		r.handleHostConnect(connID)
	case protocol.Join:
		r.handleJoin(connID, m.Name)
	case protocol.Input:
		r.handleInput(connID, m.Button, m.Action, m.Modifiers)
	case protocol.Kick:
		r.handleKick(connID, m.PlayerID)
	case protocol.SelectGame:
		r.handleSelectGame(connID, m.GameID)
	}
}

func (r *Room) handleHostConnect(connID string) {
	if r.hostID != "" {
		r.log.Infow("replacing host connection", "old", r.hostID, "new", connID)
	} else {
		r.log.Infow("host connected", "conn", connID)
	}
	r.hostID = connID

	r.send(connID, protocol.HostAck{Type: "host_ack"})
	r.send(connID, r.roomState())
}

func (r *Room) handleJoin(connID, name string) {
	p, err := r.state.Join(connID, name)
	if err != nil {
		r.sendError(connID, "Room is full")
		return
	}
	if p == nil {
		// Already joined; drop the duplicate silently.
		r.log.Debugw("duplicate join ignored", "conn", connID)
		return
	}

	r.log.Infow("player joined", "name", p.Name, "leader", p.IsLeader)

	r.send(connID, protocol.Joined{
		Type:        "joined",
		PlayerID:    p.ID,
		PlayerName:  p.Name,
		PlayerColor: p.Color,
		IsLeader:    p.IsLeader,
	})
	r.send(connID, r.roomState())

	joined := protocol.PlayerJoined{
		Type:        "player_joined",
		PlayerID:    p.ID,
		PlayerName:  p.Name,
		PlayerColor: p.Color,
		IsLeader:    p.IsLeader,
	}
	r.sendToHost(joined)
	r.broadcastToPlayersExcept(connID, joined)
}

func (r *Room) handleInput(connID, button, action string, modifiers []string) {
	ev, ok := r.state.RecordInput(connID, button, action, modifiers)
	if !ok {
		return
	}

	msg := protocol.PlayerInput{
		Type:        "player_input",
		SequenceID:  ev.SequenceID,
		PlayerID:    ev.PlayerID,
		PlayerName:  ev.PlayerName,
		PlayerColor: ev.PlayerColor,
		Button:      ev.Button,
		Action:      ev.Action,
		Modifiers:   ev.Modifiers,
		Timestamp:   ev.Timestamp,
	}

	// The sender hears its own input back: every controller and the
	// display observe the same ordered stream.
	r.sendToHost(msg)
	r.broadcastToPlayers(msg)
}

func (r *Room) handleKick(connID, targetID string) {
	target, err := r.state.Kick(connID, targetID)
	switch {
	case errors.Is(err, ErrNotLeader):
		r.sendError(connID, "Only the leader can kick players")
		return
	case errors.Is(err, ErrCannotKickSelf):
		r.sendError(connID, "You can't kick yourself")
		return
	case errors.Is(err, ErrPlayerNotFound):
		r.sendError(connID, "Player not found")
		return
	}

	r.log.Infow("player kicked", "name", target.Name)

	msg := protocol.PlayerKicked{
		Type:     "player_kicked",
		PlayerID: targetID,
		Reason:   "Kicked by leader",
	}

	// The record is already gone, so the broadcast below skips the
	// target; it gets its notice directly, then a forced close. The
	// close never reaches the leave path's reassignment because no
	// player record remains to match.
	r.send(targetID, msg)
	r.sendToHost(msg)
	r.broadcastToPlayers(msg)

	r.closeConn(targetID)
}

func (r *Room) handleSelectGame(connID, gameID string) {
	isHost := r.hostID != "" && connID == r.hostID
	isLeader := r.state.LeaderID != "" && connID == r.state.LeaderID
	if !isHost && !isLeader {
		r.sendError(connID, "Only the leader can select games")
		return
	}

	r.state.SelectGame(gameID)

	r.log.Infow("game selected", "game", gameID, "layout", r.state.Layout)

	msg := protocol.GameSelected{
		Type:   "game_selected",
		GameID: gameID,
		Layout: r.state.Layout,
		Config: r.state.Config,
	}
	r.sendToHost(msg)
	r.broadcastToPlayers(msg)
}

func (r *Room) handleDisconnect(connID string) {
	r.closeConn(connID)

	if connID == r.hostID {
		r.hostID = ""
		r.log.Infow("host disconnected")
		return
	}

	p, ok := r.state.RemovePlayer(connID)
	if !ok {
		return
	}

	r.log.Infow("player left", "name", p.Name)

	left := protocol.PlayerLeft{Type: "player_left", PlayerID: p.ID}
	r.sendToHost(left)
	r.broadcastToPlayers(left)

	if r.state.LeaderID != connID {
		return
	}

	if next, ok := r.state.ReassignLeader(); ok {
		r.log.Infow("new leader", "name", next.Name)
		changed := protocol.LeaderChanged{Type: "leader_changed", PlayerID: next.ID}
		r.sendToHost(changed)
		r.broadcastToPlayers(changed)
	} else {
		r.log.Infow("room empty, reset to defaults")
	}
}

func (r *Room) roomState() protocol.RoomState {
	return protocol.RoomState{
		Type:          "room_state",
		Players:       r.state.Players(),
		LeaderID:      optID(r.state.LeaderID),
		CurrentGameID: optID(r.state.CurrentGameID),
		Layout:        r.state.Layout,
		Config:        r.state.Config,
	}
}

func optID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}

// send delivers to one connection without ever blocking the loop. A
// full outbox means the recipient stopped draining; its channel is
// closed so the transport tears the socket down, and the resulting
// Disconnect cleans up any player record.
func (r *Room) send(connID string, msg protocol.ServerMessage) {
	ch, ok := r.conns[connID]
	if !ok {
		return
	}
	select {
	case ch <- msg:
	default:
		r.log.Warnw("slow connection dropped", "conn", connID)
		close(ch)
		delete(r.conns, connID)
	}
}

func (r *Room) sendToHost(msg protocol.ServerMessage) {
	if r.hostID != "" {
		r.send(r.hostID, msg)
	}
}

func (r *Room) broadcastToPlayers(msg protocol.ServerMessage) {
	for _, id := range r.state.PlayerIDs() {
		r.send(id, msg)
	}
}

func (r *Room) broadcastToPlayersExcept(excludeID string, msg protocol.ServerMessage) {
	for _, id := range r.state.PlayerIDs() {
		if id != excludeID {
			r.send(id, msg)
		}
	}
}

func (r *Room) sendError(connID, text string) {
	r.send(connID, protocol.Error{Type: "error", Message: text})
}

func (r *Room) closeConn(connID string) {
	if ch, ok := r.conns[connID]; ok {
		close(ch)
		delete(r.conns, connID)
	}
}
