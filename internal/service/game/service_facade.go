package game

import (
	"github.com/iamasit07/4-in-a-row/console/internal/service/bot"
	"github.com/iamasit07/4-in-a-row/console/pkg/uid"
)

// Service is the entry point for game logic (facade)
type Service struct {
	Input  MoveReader
	View   Renderer
	Engine bot.Engine
}

func NewService(input MoveReader, view Renderer, engine bot.Engine) *Service {
	return &Service{
		Input:  input,
		View:   view,
		Engine: engine,
	}
}

// NewGame starts a fresh session on an empty board.
func (s *Service) NewGame() *GameSession {
	return NewGameSession(uid.GenerateGameID(), s.Input, s.Engine, s.View)
}
