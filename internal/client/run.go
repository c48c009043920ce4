package client

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/remram44/japong/configs"
	"github.com/remram44/japong/internal/chatlog"
	"github.com/remram44/japong/internal/frame"
	"github.com/remram44/japong/internal/game"
	"github.com/remram44/japong/internal/render"
	"github.com/remram44/japong/internal/timer"
	"github.com/remram44/japong/internal/transport"
)

// Run abre a janela e conecta ao servidor. Bloqueia até a janela fechar;
// precisa ser chamada da goroutine principal.
func Run(ctx context.Context, cfg configs.Config, zlog *zap.SugaredLogger) error {
	log := chatlog.New(cfg.LogLines, zlog)
	session := game.NewSession(cfg.Field, game.Side(cfg.Racket))
	conn := transport.New(cfg, zlog)
	loop := frame.New(session, timer.New(), render.New(), log, conn.Events(), cfg.StopOnClose)
	g := New(cfg, loop, log, conn, zlog)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		// Erros de conexão aparecem no painel de log; não derrubam a janela.
		if err := conn.Run(ctx); err != nil {
			zlog.Warnw("connection ended", "error", err)
		}
		return nil
	})

	zlog.Infow("starting client", "nickname", cfg.Nickname, "racket", cfg.Racket, "server", cfg.ServerURL())

	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(fmt.Sprintf("japong - %s", cfg.Nickname))

	err := ebiten.RunGame(g)
	cancel()
	_ = eg.Wait()
	if err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
