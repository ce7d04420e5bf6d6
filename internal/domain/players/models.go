package players

// Player is the stored record. It never leaves the service layer; callers
// receive a PlayerResponse instead.
type Player struct {
	ID           uint32 `json:"id" yaml:"id"`
	FirstName    string `json:"firstName" yaml:"firstName"`
	MiddleName   string `json:"middleName" yaml:"middleName"`
	LastName     string `json:"lastName" yaml:"lastName"`
	DateOfBirth  string `json:"dateOfBirth" yaml:"dateOfBirth"`
	SquadNumber  uint32 `json:"squadNumber" yaml:"squadNumber"`
	Position     string `json:"position" yaml:"position"`
	AbbrPosition string `json:"abbrPosition" yaml:"abbrPosition"`
	Team         string `json:"team" yaml:"team"`
	League       string `json:"league" yaml:"league"`
	Starting11   bool   `json:"starting11" yaml:"starting11"`
}

// PlayerRequest is the body accepted by create and update. Update is a full
// replacement, so both operations share the shape.
type PlayerRequest struct {
	FirstName    string `json:"firstName"`
	MiddleName   string `json:"middleName,omitempty"`
	LastName     string `json:"lastName"`
	DateOfBirth  string `json:"dateOfBirth"`
	SquadNumber  uint32 `json:"squadNumber"`
	Position     string `json:"position"`
	AbbrPosition string `json:"abbrPosition"`
	Team         string `json:"team"`
	League       string `json:"league"`
	Starting11   bool   `json:"starting11"`
}

// PlayerResponse is the only representation returned to callers.
type PlayerResponse struct {
	ID           uint32 `json:"id"`
	FirstName    string `json:"firstName"`
	MiddleName   string `json:"middleName,omitempty"`
	LastName     string `json:"lastName"`
	DateOfBirth  string `json:"dateOfBirth"`
	SquadNumber  uint32 `json:"squadNumber"`
	Position     string `json:"position"`
	AbbrPosition string `json:"abbrPosition"`
	Team         string `json:"team"`
	League       string `json:"league"`
	Starting11   bool   `json:"starting11"`
}
