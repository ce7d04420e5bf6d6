package players

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/football-players-service/internal/domain/players"
	"github.com/preston-bernstein/football-players-service/internal/logging"
	"github.com/preston-bernstein/football-players-service/internal/metrics"
)

const (
	opList          = "list"
	opGet           = "get"
	opGetBySquadNum = "get_by_squad_number"
	opCreate        = "create"
	opUpdate        = "update"
	opDelete        = "delete"
)

// Store defines the contract for persisting and retrieving players.
type Store interface {
	ListPlayers() []players.Player
	GetPlayer(id uint32) (players.Player, bool)
	GetPlayerBySquadNumber(n uint32) (players.Player, bool)
	InsertPlayer(fields players.Player) (players.Player, error)
	ReplacePlayer(id uint32, fields players.Player) (players.Player, error)
	RemovePlayer(id uint32) error
}

// Service coordinates player operations using a Store. It only ever hands
// out PlayerResponse values.
type Service struct {
	store    Store
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time
}

// NewService constructs a Service with the provided Store. logger and
// recorder may be nil.
func NewService(store Store, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		store:    store,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

// Players returns every player in store order.
func (s *Service) Players() []players.PlayerResponse {
	start := s.now()
	items := s.store.ListPlayers()
	s.record(opList, start, nil)
	return players.NewResponses(items)
}

// PlayerByID returns a single player or an error wrapping players.ErrNotFound.
func (s *Service) PlayerByID(id uint32) (players.PlayerResponse, error) {
	start := s.now()
	p, ok := s.store.GetPlayer(id)
	if !ok {
		err := fmt.Errorf("player %d: %w", id, players.ErrNotFound)
		s.record(opGet, start, err)
		return players.PlayerResponse{}, err
	}
	s.record(opGet, start, nil)
	return players.NewResponse(p), nil
}

// PlayerBySquadNumber returns the player wearing n or an error wrapping players.ErrNotFound.
func (s *Service) PlayerBySquadNumber(n uint32) (players.PlayerResponse, error) {
	start := s.now()
	p, ok := s.store.GetPlayerBySquadNumber(n)
	if !ok {
		err := fmt.Errorf("squad number %d: %w", n, players.ErrNotFound)
		s.record(opGetBySquadNum, start, err)
		return players.PlayerResponse{}, err
	}
	s.record(opGetBySquadNum, start, nil)
	return players.NewResponse(p), nil
}

// Create stores a new player. A taken squad number yields players.ErrConflict.
func (s *Service) Create(req players.PlayerRequest) (players.PlayerResponse, error) {
	start := s.now()
	p, err := s.store.InsertPlayer(req.ToPlayer(0))
	s.record(opCreate, start, err)
	if err != nil {
		logging.Warn(s.logger, "player create rejected",
			logging.FieldSquadNumber, req.SquadNumber, "error", err)
		return players.PlayerResponse{}, err
	}
	logging.Info(s.logger, "player created",
		logging.FieldPlayerID, p.ID, logging.FieldSquadNumber, p.SquadNumber)
	return players.NewResponse(p), nil
}

// Update replaces every field of player id with req.
func (s *Service) Update(id uint32, req players.PlayerRequest) (players.PlayerResponse, error) {
	start := s.now()
	p, err := s.store.ReplacePlayer(id, req.ToPlayer(id))
	s.record(opUpdate, start, err)
	if err != nil {
		logging.Warn(s.logger, "player update rejected",
			logging.FieldPlayerID, id, logging.FieldSquadNumber, req.SquadNumber, "error", err)
		return players.PlayerResponse{}, err
	}
	logging.Info(s.logger, "player updated",
		logging.FieldPlayerID, p.ID, logging.FieldSquadNumber, p.SquadNumber)
	return players.NewResponse(p), nil
}

// Delete removes player id.
func (s *Service) Delete(id uint32) error {
	start := s.now()
	err := s.store.RemovePlayer(id)
	s.record(opDelete, start, err)
	if err != nil {
		return err
	}
	logging.Info(s.logger, "player deleted", logging.FieldPlayerID, id)
	return nil
}

func (s *Service) record(operation string, start time.Time, err error) {
	s.recorder.RecordPlayerOperation(operation, outcome(err), s.now().Sub(start))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, players.ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, players.ErrConflict):
		return metrics.OutcomeConflict
	case errors.Is(err, players.ErrInvalidInput):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}
