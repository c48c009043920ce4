// Package client liga a partida ao ebiten: janela, teclado, desenho e o
// painel de log com o chat.
package client

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"

	"github.com/remram44/japong/configs"
	"github.com/remram44/japong/internal/chat"
	"github.com/remram44/japong/internal/chatlog"
	"github.com/remram44/japong/internal/frame"
	"github.com/remram44/japong/internal/input"
	"github.com/remram44/japong/internal/transport"
)

const (
	lineHeight = 16
	padding    = 6
)

var (
	panelColor  = color.RGBA{0x20, 0x20, 0x30, 0xff}
	scoreColor  = color.RGBA{0xff, 0xff, 0xff, 0x80}
	promptColor = color.White

	classColors = map[chatlog.Class]color.Color{
		chatlog.Warn:  color.RGBA{0xff, 0xd7, 0x00, 0xff},
		chatlog.Msg:   color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
		chatlog.Error: color.RGBA{0xff, 0x55, 0x55, 0xff},
	}
)

// Sender é o lado de saída do transporte.
type Sender interface {
	Send(text string) bool
}

// Game implementa ebiten.Game. O ebiten agenda o próximo quadro assim que
// Update retorna; todo o estado do jogo fica nesta goroutine.
type Game struct {
	cfg  configs.Config
	loop *frame.Loop
	log  *chatlog.Log
	conn Sender
	zlog *zap.SugaredLogger

	chat    chat.Composer
	face    text.Face
	keys    []ebiten.Key
	runes   []rune
	stopped bool
}

func New(cfg configs.Config, loop *frame.Loop, log *chatlog.Log, conn Sender, zlog *zap.SugaredLogger) *Game {
	return &Game{
		cfg:  cfg,
		loop: loop,
		log:  log,
		conn: conn,
		zlog: zlog,
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.pollKeys()

	err := g.loop.Update()
	if errors.Is(err, frame.ErrStopped) {
		// A janela continua aberta mostrando o último quadro e o log.
		if !g.stopped {
			g.zlog.Info("frame loop stopped")
			g.stopped = true
		}
		return nil
	}
	return err
}

func (g *Game) pollKeys() {
	tracker := g.loop.Session().Input

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if tracker.KeyDown(mapKey(k)) {
			continue
		}
		switch k {
		case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
			g.sendChat()
		case ebiten.KeyBackspace:
			g.chat.Backspace()
		}
	}

	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		tracker.KeyUp(mapKey(k))
	}

	g.runes = ebiten.AppendInputChars(g.runes[:0])
	g.chat.Insert(g.runes)
}

func mapKey(k ebiten.Key) input.Key {
	switch k {
	case ebiten.KeyArrowUp:
		return input.KeyUp
	case ebiten.KeyArrowDown:
		return input.KeyDown
	}
	return input.KeyOther
}

func (g *Game) sendChat() {
	msg, ok := g.chat.Submit()
	if !ok {
		return
	}
	if !g.conn.Send(transport.ChatFrame(g.cfg.Protocol, msg)) {
		g.log.Error("!! Error: message not sent, queue full")
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	f := g.cfg.Field
	w, h := int(f.Width), int(f.Height)

	field := screen.SubImage(image.Rect(0, 0, w, h)).(*ebiten.Image)
	g.loop.Draw(surface{field})

	s := g.loop.Session().Score
	score := fmt.Sprintf("%d  %d", s[0], s[1])
	g.drawText(screen, score, float64(w)/2-float64(len(score)*7)/2, padding, scoreColor)

	vector.FillRect(screen, 0, float32(h), float32(w), float32(panelHeight(g.cfg)), panelColor, false)
	y := float64(h + padding)
	for _, line := range g.log.Lines() {
		g.drawText(screen, line.Text, padding, y, classColors[line.Class])
		y += lineHeight
	}
	g.drawText(screen, fmt.Sprintf("%s> %s_", g.cfg.Nickname, g.chat.Text()), padding, y, promptColor)
}

func (g *Game) drawText(dst *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, g.face, op)
}

// Layout fixa o tamanho lógico: campo mais painel, sem redimensionar.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.Width), int(g.cfg.Height) + panelHeight(g.cfg)
}

// Painel com as linhas de log mais a linha do chat.
func panelHeight(cfg configs.Config) int {
	return (cfg.LogLines+1)*lineHeight + 2*padding
}

// surface adapta uma imagem do ebiten para render.Surface.
type surface struct {
	img *ebiten.Image
}

func (s surface) Fill(c color.Color) {
	s.img.Fill(c)
}

func (s surface) FillRect(x, y, w, h float64, c color.Color) {
	vector.FillRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}
