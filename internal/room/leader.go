package room

import "github.com/Try3D/joy-pad/internal/protocol"

// ReassignLeader promotes the earliest-joined remaining player. With an
// empty roster it instead resets the room to its lobby defaults; the
// sequence counter deliberately survives the reset so downstream
// consumers keep a totally ordered input stream across reconnects.
func (s *State) ReassignLeader() (*protocol.Player, bool) {
	if len(s.order) == 0 {
		s.LeaderID = ""
		s.CurrentGameID = ""
		s.Layout = protocol.LayoutDPad
		s.Config = nil
		s.colorCursor = 0
		return nil, false
	}

	next := s.players[s.order[0]]
	next.IsLeader = true
	s.LeaderID = next.ID
	return next, true
}
