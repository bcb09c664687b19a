package models

import "slices"

// PlayerStats is the scoreboard row of one player.
type PlayerStats struct {
	ID     int64  `db:"id" json:"id"`
	Player string `db:"player" json:"player"`
	Wins   int64  `db:"wins" json:"wins"`
	Losses int64  `db:"losses" json:"losses"`
	Draws  int64  `db:"draws" json:"draws"`
}

// Counter names one of the three scoreboard counters.
type Counter string

const (
	CounterWins   Counter = "wins"
	CounterLosses Counter = "losses"
	CounterDraws  Counter = "draws"
)

// Counters lists every counter in column order.
var Counters = []Counter{CounterWins, CounterLosses, CounterDraws}

// Valid reports whether c names a known counter.
func (c Counter) Valid() bool {
	return slices.Contains(Counters, c)
}

// Value returns the counter's current value in s.
func (s PlayerStats) Value(c Counter) int64 {
	switch c {
	case CounterWins:
		return s.Wins
	case CounterLosses:
		return s.Losses
	case CounterDraws:
		return s.Draws
	}
	return 0
}

// UpdateRequest defines the body of a score update.
type UpdateRequest struct {
	Win  bool `json:"win,omitempty"`
	Loss bool `json:"loss,omitempty"`
	Draw bool `json:"draw,omitempty"`
}

// Counter returns the counter selected by the request. Flags are honoured in the
// order win, loss, draw; ok is false when no flag is set.
func (r UpdateRequest) Counter() (c Counter, ok bool) {
	switch {
	case r.Win:
		return CounterWins, true
	case r.Loss:
		return CounterLosses, true
	case r.Draw:
		return CounterDraws, true
	}
	return "", false
}

// StatusResponse is the body returned by a successful update.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
