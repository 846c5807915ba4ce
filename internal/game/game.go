package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"
)

// tickDt is the fixed simulation step fed from Ebiten's 60 Hz clock.
const tickDt = 1.0 / 60.0

// bannerScale is the integer upscale factor for the READY!/GAME OVER text.
const bannerScale = 3

var pursuerColors = [PursuerCount]color.RGBA{
	{R: 255, G: 0, B: 0, A: 255},
	{R: 255, G: 184, B: 255, A: 255},
	{R: 0, G: 255, B: 255, A: 255},
	{R: 255, G: 184, B: 82, A: 255},
}

var (
	wallColor       = color.RGBA{R: 0, G: 50, B: 200, A: 255}
	pelletColor     = color.RGBA{R: 240, G: 220, B: 0, A: 255}
	powerColor      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	playerColor     = color.RGBA{R: 255, G: 220, B: 0, A: 255}
	frightenedColor = color.RGBA{R: 50, G: 50, B: 255, A: 255}
	textColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// SoundPlayer receives session events at the presentation boundary. A nil
// player is valid (headless, or audio device unavailable).
type SoundPlayer interface {
	Play(Event)
}

// Game wraps a Session behind the ebiten.Game interface: it drains input
// into the session, feeds it the fixed clock, and draws snapshots. All
// simulation state stays inside the session.
type Game struct {
	session *Session
	simLog  *SimLog
	sounds  SoundPlayer

	prevKeys map[ebiten.Key]bool
	quit     bool

	// Presentation-only animation state.
	mouthPhase float64
	powerPulse *gween.Tween
	powerGrow  bool
	powerR     float64

	bannerBuf *ebiten.Image
}

// New creates the game over the default maze layout.
func New(sounds SoundPlayer) *Game {
	m := ParseMaze(DefaultLayout)
	sl := NewSimLog(false)
	return &Game{
		session:    NewSession(m, 1, sl),
		simLog:     sl,
		sounds:     sounds,
		prevKeys:   make(map[ebiten.Key]bool),
		powerPulse: gween.New(3, 6, 0.4, ease.InOutQuad),
		powerGrow:  true,
		powerR:     3,
		bannerBuf:  ebiten.NewImage(Cols*TileSize/bannerScale, Rows*TileSize/bannerScale),
	}
}

func (g *Game) Update() error {
	g.handleInput()
	if g.quit {
		return ebiten.Termination
	}

	g.session.Tick(tickDt)
	for _, ev := range g.session.DrainEvents() {
		if g.sounds != nil {
			g.sounds.Play(ev)
		}
	}

	// Mouth chomp and power-pellet throb: presentation clocks only.
	g.mouthPhase += tickDt * 6.7
	r, done := g.powerPulse.Update(float32(tickDt))
	g.powerR = float64(r)
	if done {
		if g.powerGrow {
			g.powerPulse = gween.New(6, 3, 0.4, ease.InOutQuad)
		} else {
			g.powerPulse = gween.New(3, 6, 0.4, ease.InOutQuad)
		}
		g.powerGrow = !g.powerGrow
	}
	return nil
}

// handleInput drains the frame's key events into session requests.
// Edge-triggered keys follow the prevKeys pattern.
func (g *Game) handleInput() {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.session.RequestTurn(DirLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.session.RequestTurn(DirRight)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.session.RequestTurn(DirUp)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.session.RequestTurn(DirDown)
	}

	current := map[ebiten.Key]bool{}
	for _, k := range []ebiten.Key{ebiten.KeyR, ebiten.KeyEscape, ebiten.KeyF1} {
		current[k] = ebiten.IsKeyPressed(k)
	}
	if current[ebiten.KeyR] && !g.prevKeys[ebiten.KeyR] {
		g.session.RequestRestart()
	}
	if current[ebiten.KeyEscape] && !g.prevKeys[ebiten.KeyEscape] {
		g.quit = true
	}
	if current[ebiten.KeyF1] && !g.prevKeys[ebiten.KeyF1] {
		if err := CopyReport(g.session, g.simLog); err != nil {
			log.WithError(err).Warn("could not copy session report to clipboard")
		}
	}
	g.prevKeys = current
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	m := g.session.Maze()

	// Maze walls: filled block with a dark inset, the classic look.
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if m.IsOpen(Tile{Row: r, Col: c}) {
				continue
			}
			x := float32(c * TileSize)
			y := float32(r * TileSize)
			vector.DrawFilledRect(screen, x, y, TileSize, TileSize, wallColor, false)
			vector.DrawFilledRect(screen, x+2, y+2, TileSize-4, TileSize-4, color.RGBA{A: 255}, false)
		}
	}

	for _, t := range snap.Pellets {
		c := TileCenter(t)
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), 2, pelletColor, true)
	}
	for _, t := range snap.Powers {
		c := TileCenter(t)
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(g.powerR), powerColor, true)
	}

	for i, pv := range snap.Pursuers {
		g.drawPursuer(screen, i, pv)
	}
	if snap.Player.Alive {
		g.drawPlayer(screen, snap.Player)
	}

	// HUD overlay.
	text.Draw(screen, fmt.Sprintf("SCORE %d", snap.Score), basicfont.Face7x13, 6, 14, textColor)
	lives := ""
	for i := 0; i < snap.Lives; i++ {
		lives += "* "
	}
	text.Draw(screen, "LIVES "+lives, basicfont.Face7x13, Cols*TileSize-110, 14, textColor)

	switch snap.Phase {
	case PhaseCountdown:
		g.drawBanner(screen, "READY!", color.RGBA{R: 255, G: 240, B: 0, A: 255})
	case PhaseTerminal:
		g.drawBanner(screen, "GAME OVER", color.RGBA{R: 240, G: 100, B: 100, A: 255})
		text.Draw(screen, "press R to restart, ESC to quit", basicfont.Face7x13,
			Cols*TileSize/2-105, Rows*TileSize/2+24, textColor)
	}
}

// drawBanner renders big centered text by drawing at 1x into an offscreen
// buffer and blitting it back up at bannerScale.
func (g *Game) drawBanner(screen *ebiten.Image, msg string, clr color.RGBA) {
	g.bannerBuf.Clear()
	w := len(msg) * 7
	bw, bh := g.bannerBuf.Bounds().Dx(), g.bannerBuf.Bounds().Dy()
	text.Draw(g.bannerBuf, msg, basicfont.Face7x13, (bw-w)/2, bh/2, clr)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(bannerScale, bannerScale)
	screen.DrawImage(g.bannerBuf, op)
}

func (g *Game) drawPlayer(screen *ebiten.Image, pv PlayerView) {
	x := float32(pv.Pos.X)
	y := float32(pv.Pos.Y)
	vector.DrawFilledCircle(screen, x, y, agentRadius, playerColor, true)

	// Mouth wedge: a black triangle opening toward the facing direction.
	mouth := 0.25 + 0.25*math.Sin(g.mouthPhase)
	ang := 0.0
	switch pv.Dir {
	case DirUp:
		ang = -math.Pi / 2
	case DirDown:
		ang = math.Pi / 2
	case DirLeft:
		ang = math.Pi
	}
	a1 := ang - mouth*math.Pi/2
	a2 := ang + mouth*math.Pi/2
	var path vector.Path
	path.MoveTo(x, y)
	path.LineTo(x+float32(math.Cos(a1))*agentRadius, y+float32(math.Sin(a1))*agentRadius)
	path.LineTo(x+float32(math.Cos(a2))*agentRadius, y+float32(math.Sin(a2))*agentRadius)
	path.Close()
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = 0, 0, 0, 1
	}
	screen.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{})
}

func (g *Game) drawPursuer(screen *ebiten.Image, i int, pv PursuerView) {
	x := float32(pv.Pos.X)
	y := float32(pv.Pos.Y)

	if pv.Mode == ModeEaten {
		// Eyes only while heading home.
		vector.DrawFilledCircle(screen, x-4, y-2, 3, powerColor, true)
		vector.DrawFilledCircle(screen, x+4, y-2, 3, powerColor, true)
		vector.DrawFilledCircle(screen, x-4, y-2, 1, color.RGBA{B: 255, A: 255}, true)
		vector.DrawFilledCircle(screen, x+4, y-2, 1, color.RGBA{B: 255, A: 255}, true)
		return
	}

	body := pursuerColors[i]
	if pv.Mode == ModeFrightened {
		body = frightenedColor
	}
	vector.DrawFilledCircle(screen, x, y-2, agentRadius, body, true)
	vector.DrawFilledRect(screen, x-agentRadius, y-2, agentRadius*2, agentRadius+2, body, false)
	vector.DrawFilledCircle(screen, x-4, y-3, 2.5, powerColor, true)
	vector.DrawFilledCircle(screen, x+4, y-3, 2.5, powerColor, true)
}

var whitePx *ebiten.Image

// whitePixel returns a shared 1x1 white image for DrawTriangles fills.
func whitePixel() *ebiten.Image {
	if whitePx == nil {
		whitePx = ebiten.NewImage(1, 1)
		whitePx.Fill(color.White)
	}
	return whitePx
}

func (g *Game) Layout(_, _ int) (int, int) {
	return Cols * TileSize, Rows * TileSize
}
