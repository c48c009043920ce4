package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/remram44/japong/configs"
	"github.com/remram44/japong/internal/logging"
	"github.com/remram44/japong/internal/relay"
)

func main() {
	cfg := configs.NewServer()
	cobra.CheckErr(newCmd(&cfg).Execute())
}

func newCmd(cfg *configs.Server) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "japong-server",
		Short:   "Websocket relay for japong: every frame goes to every connected client.",
		Args:    cobra.ExactArgs(0),
		Version: configs.ReleaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := logging.New(logging.Options{File: cfg.LogFile, Console: true, Verbose: cfg.Verbose})
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := relay.Serve(ctx, *cfg, log); err != nil {
				log.Errorw("server stopped", "error", err)
				return fmt.Errorf("server: %w", err)
			}
			return nil
		},
	}

	fs := cmd.Flags()
	configs.NormalizeFlags(fs)

	fs.StringVarP(&cfg.Bind, "bind", "b", cfg.Bind, "address to bind to (env: JAPONG_BIND)")
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on (env: JAPONG_PORT)")
	fs.StringVar(&cfg.Hostname, "hostname", cfg.Hostname, "public host advertised on the home page and QR code (env: JAPONG_HOSTNAME)")
	fs.IntVar(&cfg.SendQueue, "send-queue", cfg.SendQueue, "frames buffered per client before it is dropped (env: JAPONG_SEND_QUEUE)")
	fs.DurationVar(&cfg.PongWait, "pong-wait", cfg.PongWait, "time allowed between pongs (env: JAPONG_PONG_WAIT)")
	fs.DurationVar(&cfg.WriteTimeout, "write-timeout", cfg.WriteTimeout, "deadline for each frame write (env: JAPONG_WRITE_TIMEOUT)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "rotated log file, empty to disable (env: JAPONG_LOG_FILE)")
	fs.BoolVar(&cfg.Profile, "profile", cfg.Profile, "register net/http/pprof handlers (env: JAPONG_PROFILE)")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "log every relayed frame (env: JAPONG_VERBOSE)")

	configs.BindEnv(fs, configs.EnvPrefix)

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("japong-server v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
