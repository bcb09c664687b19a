package proto

import "ctchen222/Tic-Tac-Toe-Scoreboard/internal/api/models"

const (
	TypeSnapshot     = "snapshot"
	TypeScoreUpdated = "score_updated"
)

// ServerToClientMessage represents a message from the server to a feed subscriber.
type ServerToClientMessage struct {
	Type    string               `json:"type"`
	Counter models.Counter       `json:"counter,omitempty"`
	Stats   *models.PlayerStats  `json:"stats,omitempty"`
	Players []models.PlayerStats `json:"players,omitempty"`
}
