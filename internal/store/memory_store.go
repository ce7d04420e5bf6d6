package store

import (
	"fmt"
	"math"
	"sync"

	"github.com/preston-bernstein/football-players-service/internal/domain/players"
)

// MemoryStore keeps the player collection in insertion order behind a single
// mutex. Readers and writers are serialized the same way.
type MemoryStore struct {
	mu      sync.Mutex
	players []players.Player
}

// NewMemoryStore constructs a store seeded with a copy of initial.
func NewMemoryStore(initial []players.Player) *MemoryStore {
	items := make([]players.Player, len(initial))
	copy(items, initial)
	return &MemoryStore{players: items}
}

// ListPlayers returns a copy of the current collection in store order.
func (s *MemoryStore) ListPlayers() []players.Player {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]players.Player, len(s.players))
	copy(result, s.players)
	return result
}

// GetPlayer retrieves a player by identifier.
func (s *MemoryStore) GetPlayer(id uint32) (players.Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return s.players[i], true
	}
	return players.Player{}, false
}

// GetPlayerBySquadNumber retrieves a player by squad number.
func (s *MemoryStore) GetPlayerBySquadNumber(n uint32) (players.Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.players {
		if p.SquadNumber == n {
			return p, true
		}
	}
	return players.Player{}, false
}

// InsertPlayer appends a new record. The ID on fields is ignored; the stored
// record gets max(existing IDs)+1, or 1 when the store is empty. Once an ID
// of math.MaxUint32 is stored no further inserts are accepted.
func (s *MemoryStore) InsertPlayer(fields players.Player) (players.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.squadNumberOwner(fields.SquadNumber); taken {
		return players.Player{}, fmt.Errorf("squad number %d: %w", fields.SquadNumber, players.ErrConflict)
	}

	id, ok := s.nextID()
	if !ok {
		return players.Player{}, fmt.Errorf("next id after %d: %w", uint32(math.MaxUint32), players.ErrIDsExhausted)
	}
	fields.ID = id
	s.players = append(s.players, fields)
	return fields, nil
}

// ReplacePlayer overwrites every field of the record with the given id except
// the id itself. A record keeping its own squad number is not a conflict.
func (s *MemoryStore) ReplacePlayer(id uint32, fields players.Player) (players.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return players.Player{}, fmt.Errorf("player %d: %w", id, players.ErrNotFound)
	}
	if owner, taken := s.squadNumberOwner(fields.SquadNumber); taken && owner != id {
		return players.Player{}, fmt.Errorf("squad number %d: %w", fields.SquadNumber, players.ErrConflict)
	}

	fields.ID = id
	s.players[i] = fields
	return fields, nil
}

// RemovePlayer deletes the record with the given id, keeping the order of the rest.
func (s *MemoryStore) RemovePlayer(id uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("player %d: %w", id, players.ErrNotFound)
	}
	s.players = append(s.players[:i], s.players[i+1:]...)
	return nil
}

// Len reports the number of stored players.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.players)
}

// The helpers below expect s.mu to be held.

func (s *MemoryStore) indexOf(id uint32) int {
	for i, p := range s.players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *MemoryStore) squadNumberOwner(n uint32) (uint32, bool) {
	for _, p := range s.players {
		if p.SquadNumber == n {
			return p.ID, true
		}
	}
	return 0, false
}

func (s *MemoryStore) nextID() (uint32, bool) {
	var maxID uint32
	for _, p := range s.players {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	if maxID == math.MaxUint32 {
		return 0, false
	}
	return maxID + 1, true
}
