package entity

import (
	"time"

	"github.com/rocketscienceinc/othello-backend/internal/othello"
)

// SearchRecord - diagnostics of one computer turn.
type SearchRecord struct {
	ID        string         `json:"id"`
	GameID    string         `json:"game_id"`
	Player    othello.Player `json:"player"`
	Depth     int            `json:"depth"`
	Pruning   bool           `json:"pruning"`
	Move      *othello.Move  `json:"move,omitempty"`
	Score     int            `json:"score"`
	Nodes     int            `json:"nodes"`
	Prunes    int            `json:"prunes"`
	Elapsed   time.Duration  `json:"elapsed"`
	CreatedAt time.Time      `json:"created_at"`
}
