package players

// ToPlayer builds a record from the request fields using the given id.
func (r PlayerRequest) ToPlayer(id uint32) Player {
	return Player{
		ID:           id,
		FirstName:    r.FirstName,
		MiddleName:   r.MiddleName,
		LastName:     r.LastName,
		DateOfBirth:  r.DateOfBirth,
		SquadNumber:  r.SquadNumber,
		Position:     r.Position,
		AbbrPosition: r.AbbrPosition,
		Team:         r.Team,
		League:       r.League,
		Starting11:   r.Starting11,
	}
}

// NewResponse maps a stored record to its response view.
func NewResponse(p Player) PlayerResponse {
	return PlayerResponse{
		ID:           p.ID,
		FirstName:    p.FirstName,
		MiddleName:   p.MiddleName,
		LastName:     p.LastName,
		DateOfBirth:  p.DateOfBirth,
		SquadNumber:  p.SquadNumber,
		Position:     p.Position,
		AbbrPosition: p.AbbrPosition,
		Team:         p.Team,
		League:       p.League,
		Starting11:   p.Starting11,
	}
}

// NewResponses maps records in order. A nil or empty input yields an empty,
// non-nil slice so the list endpoint always encodes as a JSON array.
func NewResponses(items []Player) []PlayerResponse {
	out := make([]PlayerResponse, 0, len(items))
	for _, p := range items {
		out = append(out, NewResponse(p))
	}
	return out
}
