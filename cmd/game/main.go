package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"github.com/okvist/pursuit/internal/audio"
	"github.com/okvist/pursuit/internal/game"
)

// soundAdapter maps session events onto the audio manager's typed effects.
type soundAdapter struct {
	mgr *audio.Manager
}

func (a *soundAdapter) Play(ev game.Event) {
	switch ev {
	case game.EventPellet:
		a.mgr.PlayPellet()
	case game.EventPower:
		a.mgr.PlayPower()
	case game.EventCapture:
		a.mgr.PlayCapture()
	case game.EventLifeLost:
		a.mgr.PlayLifeLost()
	case game.EventGameOver:
		a.mgr.PlayGameOver()
	}
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	var sounds game.SoundPlayer
	mgr := audio.NewManager()
	if err := mgr.Initialize(); err != nil {
		// No audio device is not fatal; the game just runs silent.
		log.WithError(err).Warn("audio unavailable, continuing without sound")
	} else {
		defer mgr.Cleanup()
		sounds = &soundAdapter{mgr: mgr}
	}

	ebiten.SetWindowTitle("Pursuit")
	ebiten.SetWindowSize(game.Cols*game.TileSize*2, game.Rows*game.TileSize*2)
	if err := ebiten.RunGame(game.New(sounds)); err != nil {
		log.Fatal(err)
	}
}
