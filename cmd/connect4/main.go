package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/iamasit07/4-in-a-row/console/internal/config"
	"github.com/iamasit07/4-in-a-row/console/internal/service/bot"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
	"github.com/iamasit07/4-in-a-row/console/internal/transport/console"
	"github.com/iamasit07/4-in-a-row/console/pkg/logger"
)

func main() {
	logger.Init(os.Stderr, slog.LevelWarn)

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables", slog.String("component", "config"))
	}

	run(os.Stdin, os.Stdout)
}

// run plays one game. Every ending, including bad configuration and closed
// input, exits with status 0.
func run(in io.Reader, out io.Writer) {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config: "+err.Error(), slog.String("component", "config"))
		return
	}
	logger.Init(os.Stderr, logger.ParseLevel(cfg.LogLevel, slog.LevelWarn))

	theme := console.NewTheme(cfg.HumanMarker, cfg.ComputerMarker, cfg.Color)
	svc := game.NewService(
		console.NewReader(in, out, theme),
		console.NewRenderer(out, theme),
		bot.NewEngine(cfg.Seed),
	)

	session := svc.NewGame()
	outcome, err := session.Run(context.Background())
	switch {
	case errors.Is(err, io.EOF):
		slog.Info("input closed, leaving game", slog.String("component", "game"), slog.String("game_id", session.GameID))
	case err != nil:
		slog.Error("game stopped: "+err.Error(), slog.String("component", "game"), slog.String("game_id", session.GameID))
	default:
		slog.Info("game finished",
			slog.String("component", "game"),
			slog.String("game_id", session.GameID),
			slog.String("status", string(outcome.Status)),
			slog.String("winner", outcome.Winner.String()),
			slog.Int("turns", outcome.Turns))
	}
}
