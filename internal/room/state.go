package room

import (
	"errors"
	"strings"
	"time"

	"github.com/Try3D/joy-pad/internal/protocol"
	"github.com/samber/lo"
)

var ErrRoomFull = errors.New("room full")
var ErrNotLeader = errors.New("not the leader")
var ErrCannotKickSelf = errors.New("cannot kick self")
var ErrPlayerNotFound = errors.New("player not found")
var ErrNotAuthorized = errors.New("not authorized")

const MaxPlayers = 8

const maxNameLen = 20
const defaultName = "Anonymous"

// playerColors is cycled in join order; the cursor wraps past the end
// rather than reusing freed colors.
var playerColors = [...]string{
	"#3B82F6",
	"#EF4444",
	"#10B981",
	"#F59E0B",
	"#8B5CF6",
	"#F97316",
	"#EC4899",
	"#14B8A6",
}

const GameTyping = "typing"

const typingWordCount = 30

var gameLayouts = map[string]protocol.Layout{
	GameTyping: protocol.LayoutKeyboard,
}

// InputEvent is one accepted button event, stamped with the room's
// sequence counter. Name and color are snapshotted at emission time.
type InputEvent struct {
	SequenceID  int64
	PlayerID    string
	PlayerName  string
	PlayerColor string
	Button      string
	Action      string
	Modifiers   []string
	Timestamp   int64
}

// State is the authoritative per-room model. It is owned by exactly one
// Room goroutine and must never be touched from outside its loop.
type State struct {
	players map[string]*protocol.Player
	order   []string // join order, drives leader succession

	LeaderID      string
	CurrentGameID string
	Layout        protocol.Layout
	Config        *protocol.GameConfig

	colorCursor int
	sequence    int64
}

func NewState() *State {
	return &State{
		players: make(map[string]*protocol.Player),
		Layout:  protocol.LayoutDPad,
	}
}

func (s *State) HasPlayer(id string) bool {
	_, ok := s.players[id]
	return ok
}

// Players returns the roster in join order.
func (s *State) Players() []protocol.Player {
	return lo.Map(s.order, func(id string, _ int) protocol.Player {
		return *s.players[id]
	})
}

func (s *State) PlayerIDs() []string {
	ids := make([]string, len(s.order))
	copy(ids, s.order)
	return ids
}

func cleanName(raw string) string {
	name := strings.TrimSpace(raw)
	// Truncate by runes, not bytes, so multibyte names never get cut
	// mid-character.
	if r := []rune(name); len(r) > maxNameLen {
		name = string(r[:maxNameLen])
	}
	if name == "" {
		name = defaultName
	}
	return name
}

// Join adds a player record for connID. A connection that already holds
// a record gets (nil, nil): the duplicate join is dropped without error
// or mutation. The first player into an empty roster becomes leader.
func (s *State) Join(connID, rawName string) (*protocol.Player, error) {
	if s.HasPlayer(connID) {
		return nil, nil
	}
	if len(s.players) >= MaxPlayers {
		return nil, ErrRoomFull
	}

	isLeader := len(s.players) == 0

	p := &protocol.Player{
		ID:       connID,
		Name:     cleanName(rawName),
		Color:    playerColors[s.colorCursor%len(playerColors)],
		IsLeader: isLeader,
	}
	s.colorCursor++

	s.players[connID] = p
	s.order = append(s.order, connID)

	if isLeader {
		s.LeaderID = connID
	}
	return p, nil
}

// RecordInput stamps a button event with the next sequence id. Input
// from a connection with no player record is silently dropped.
func (s *State) RecordInput(connID, button, action string, modifiers []string) (InputEvent, bool) {
	p, ok := s.players[connID]
	if !ok {
		return InputEvent{}, false
	}

	s.sequence++
	return InputEvent{
		SequenceID:  s.sequence,
		PlayerID:    p.ID,
		PlayerName:  p.Name,
		PlayerColor: p.Color,
		Button:      button,
		Action:      action,
		Modifiers:   modifiers,
		Timestamp:   time.Now().UnixMilli(),
	}, true
}

// Kick removes targetID's record on behalf of senderID. Only the current
// leader may kick, never themselves. The failure paths leave the state
// untouched.
func (s *State) Kick(senderID, targetID string) (*protocol.Player, error) {
	if s.LeaderID != senderID {
		return nil, ErrNotLeader
	}
	if targetID == senderID {
		return nil, ErrCannotKickSelf
	}
	target, ok := s.players[targetID]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	s.removeRecord(targetID)
	return target, nil
}

// SelectGame switches the room to gameID ("" returns it to the lobby),
// picks the matching controller layout and rebuilds the config payload.
// Authorization is the router's job; by this point the sender is known
// to be the host or the leader.
func (s *State) SelectGame(gameID string) {
	s.CurrentGameID = gameID

	layout, ok := gameLayouts[gameID]
	if !ok {
		layout = protocol.LayoutDPad
	}
	s.Layout = layout

	s.Config = nil
	if gameID == GameTyping {
		s.Config = &protocol.GameConfig{
			Text: strings.Join(drawWords(typingWordCount), " "),
		}
	}
}

// RemovePlayer drops connID's record, reporting whether it existed and
// whether it was the leader's. Leader reassignment is left to the
// caller's disconnect path.
func (s *State) RemovePlayer(connID string) (*protocol.Player, bool) {
	p, ok := s.players[connID]
	if !ok {
		return nil, false
	}
	s.removeRecord(connID)
	return p, true
}

func (s *State) removeRecord(connID string) {
	delete(s.players, connID)
	for i, id := range s.order {
		if id == connID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// LastSequence reports the most recently issued sequence id.
func (s *State) LastSequence() int64 { return s.sequence }
