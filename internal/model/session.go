package model

import "time"

// GameSession - живая сессия многошаговой игры в хранилище сессий
type GameSession interface {
	SessionID() string
	OwnerID() int64
	LastActivity() time.Time
}
