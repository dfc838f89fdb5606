package protocol

import (
	"encoding/json"
	"errors"
)

var ErrMalformed = errors.New("malformed message")
var ErrUnknownType = errors.New("unknown message type")

type Layout string

const (
	LayoutDPad     Layout = "dpad"
	LayoutKeyboard Layout = "keyboard"
)

// Player is the wire shape shared by room_state, joined and player_joined.
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	IsLeader bool   `json:"isLeader"`
}

// GameConfig is the per-game payload attached to game_selected and
// room_state. Only the typing game populates it; every other game id
// leaves it null on the wire.
type GameConfig struct {
	Text string `json:"text"`
}

// Client -> Server

type ClientMessage interface{ isClientMessage() }

type HostConnect struct{}

type Join struct {
	Name string `json:"name"`
}

type Input struct {
	Button    string   `json:"button"`
	Action    string   `json:"action"`
	Modifiers []string `json:"modifiers,omitempty"`
}

type Kick struct {
	PlayerID string `json:"playerId"`
}

type SelectGame struct {
	GameID string `json:"gameId"`
}

func (HostConnect) isClientMessage() {}
func (Join) isClientMessage()        {}
func (Input) isClientMessage()       {}
func (Kick) isClientMessage()        {}
func (SelectGame) isClientMessage()  {}

// DecodeClient sniffs the type tag and unmarshals into the matching
// variant, so everything past this point switches on a closed set.
func DecodeClient(data []byte) (ClientMessage, error) {
	var env struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, ErrMalformed
	}

	switch env.Type {
	case "host_connect":
		return HostConnect{}, nil
	case "join":
		var m Join
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, ErrMalformed
		}
		return m, nil
	case "input":
		var m Input
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, ErrMalformed
		}
		return m, nil
	case "kick":
		var m Kick
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, ErrMalformed
		}
		return m, nil
	case "select_game":
		var m SelectGame
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, ErrMalformed
		}
		return m, nil
	default:
		return nil, ErrUnknownType
	}
}

// Server -> Client

type ServerMessage interface{ isServerMessage() }

type HostAck struct {
	Type string `json:"type"`
}

type RoomState struct {
	Type          string      `json:"type"`
	Players       []Player    `json:"players"`
	LeaderID      *string     `json:"leaderId"`
	CurrentGameID *string     `json:"currentGameId"`
	Layout        Layout      `json:"layout"`
	Config        *GameConfig `json:"config"`
}

type Joined struct {
	Type        string `json:"type"`
	PlayerID    string `json:"playerId"`
	PlayerName  string `json:"playerName"`
	PlayerColor string `json:"playerColor"`
	IsLeader    bool   `json:"isLeader"`
}

type PlayerJoined struct {
	Type        string `json:"type"`
	PlayerID    string `json:"playerId"`
	PlayerName  string `json:"playerName"`
	PlayerColor string `json:"playerColor"`
	IsLeader    bool   `json:"isLeader"`
}

type PlayerLeft struct {
	Type     string `json:"type"`
	PlayerID string `json:"playerId"`
}

type PlayerKicked struct {
	Type     string `json:"type"`
	PlayerID string `json:"playerId"`
	Reason   string `json:"reason"`
}

type LeaderChanged struct {
	Type     string `json:"type"`
	PlayerID string `json:"playerId"`
}

type PlayerInput struct {
	Type        string   `json:"type"`
	SequenceID  int64    `json:"sequenceId"`
	PlayerID    string   `json:"playerId"`
	PlayerName  string   `json:"playerName"`
	PlayerColor string   `json:"playerColor"`
	Button      string   `json:"button"`
	Action      string   `json:"action"`
	Modifiers   []string `json:"modifiers,omitempty"`
	Timestamp   int64    `json:"timestamp"`
}

type GameSelected struct {
	Type   string      `json:"type"`
	GameID string      `json:"gameId"`
	Layout Layout      `json:"layout"`
	Config *GameConfig `json:"config"`
}

type Error struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (HostAck) isServerMessage()       {}
func (RoomState) isServerMessage()     {}
func (Joined) isServerMessage()        {}
func (PlayerJoined) isServerMessage()  {}
func (PlayerLeft) isServerMessage()    {}
func (PlayerKicked) isServerMessage()  {}
func (LeaderChanged) isServerMessage() {}
func (PlayerInput) isServerMessage()   {}
func (GameSelected) isServerMessage()  {}
func (Error) isServerMessage()         {}
