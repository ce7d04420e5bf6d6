package testutil

import (
	"encoding/json"
	"fmt"

	"github.com/preston-bernstein/football-players-service/internal/domain/players"
)

// SamplePlayer returns a complete player record with the given id and squad number.
func SamplePlayer(id, squadNumber uint32) players.Player {
	p := SampleRequest(squadNumber).ToPlayer(id)
	p.FirstName = fmt.Sprintf("Player%d", id)
	return p
}

// SampleRequest returns a valid request payload wearing squadNumber.
func SampleRequest(squadNumber uint32) players.PlayerRequest {
	return players.PlayerRequest{
		FirstName:    "Emiliano",
		LastName:     "Martínez",
		DateOfBirth:  "1992-09-02T00:00:00.000Z",
		SquadNumber:  squadNumber,
		Position:     "Goalkeeper",
		AbbrPosition: "GK",
		Team:         "Aston Villa FC",
		League:       "Premier League",
		Starting11:   true,
	}
}

// SampleRequestJSON encodes SampleRequest(squadNumber) for request bodies.
func SampleRequestJSON(squadNumber uint32) string {
	b, err := json.Marshal(SampleRequest(squadNumber))
	if err != nil {
		panic(err)
	}
	return string(b)
}
