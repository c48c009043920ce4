package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/remram44/japong/configs"
	"github.com/remram44/japong/internal/client"
	"github.com/remram44/japong/internal/logging"
)

func main() {
	cfg := configs.New()
	cobra.CheckErr(newCmd(&cfg).Execute())
}

func newCmd(cfg *configs.Config) *cobra.Command {
	var protocol string

	cmd := &cobra.Command{
		Use:     "japong-client",
		Short:   "Two-player Pong with chat, played through a websocket relay.",
		Args:    cobra.ExactArgs(0),
		Version: configs.ReleaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Protocol = configs.Protocol(protocol)
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := logging.New(logging.Options{File: cfg.LogFile, Verbose: cfg.Verbose})
			defer func() { _ = log.Sync() }()

			if err := client.Run(cmd.Context(), *cfg, log); err != nil {
				log.Errorw("client stopped", "error", err)
				return fmt.Errorf("client: %w", err)
			}
			return nil
		},
	}

	fs := cmd.Flags()
	configs.NormalizeFlags(fs)

	fs.StringVarP(&cfg.Nickname, "nick", "n", cfg.Nickname, "nickname shown in chat (env: JAPONG_NICK)")
	fs.StringVarP(&cfg.Key, "key", "k", cfg.Key, "game key sent to the server on connect (env: JAPONG_KEY)")
	fs.IntVarP(&cfg.Racket, "racket", "r", cfg.Racket, "local racket, 0 (left) or 1 (right) (env: JAPONG_RACKET)")
	fs.StringVarP(&cfg.ServerAddr, "server", "s", cfg.ServerAddr, "relay host:port (env: JAPONG_SERVER)")
	fs.StringVar(&protocol, "protocol", string(cfg.Protocol), `frame format, "prefixed" or "raw" (env: JAPONG_PROTOCOL)`)
	fs.BoolVar(&cfg.StopOnClose, "stop-on-close", cfg.StopOnClose, "freeze the game when the connection closes (env: JAPONG_STOP_ON_CLOSE)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "rotated log file, empty to disable (env: JAPONG_LOG_FILE)")
	fs.IntVar(&cfg.LogLines, "log-lines", cfg.LogLines, "lines kept in the chat panel (env: JAPONG_LOG_LINES)")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "log debug output (env: JAPONG_VERBOSE)")

	fs.Float64Var(&cfg.Width, "width", cfg.Width, "playfield width (env: JAPONG_WIDTH)")
	fs.Float64Var(&cfg.Height, "height", cfg.Height, "playfield height (env: JAPONG_HEIGHT)")
	fs.Float64Var(&cfg.RacketWidth, "racket-width", cfg.RacketWidth, "racket width (env: JAPONG_RACKET_WIDTH)")
	fs.Float64Var(&cfg.RacketHeight, "racket-height", cfg.RacketHeight, "racket height (env: JAPONG_RACKET_HEIGHT)")
	fs.Float64Var(&cfg.BallSize, "ball-size", cfg.BallSize, "ball side (env: JAPONG_BALL_SIZE)")
	fs.Float64Var(&cfg.RacketSpeed, "racket-speed", cfg.RacketSpeed, "racket speed in px/ms (env: JAPONG_RACKET_SPEED)")
	fs.Float64Var(&cfg.BallSpeed, "ball-speed", cfg.BallSpeed, "ball speed in px/ms (env: JAPONG_BALL_SPEED)")

	configs.BindEnv(fs, configs.EnvPrefix)

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("japong-client v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
