package main

import (
	"bufio"
	"context"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ludopark/lobbyclient/internal/config"
	"github.com/ludopark/lobbyclient/internal/conn"
	"github.com/ludopark/lobbyclient/internal/lobby"
	"github.com/ludopark/lobbyclient/internal/protocol"
	"github.com/ludopark/lobbyclient/internal/router"
	"github.com/ludopark/lobbyclient/internal/view"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("could not load .env file")
	}

	// Setup logging
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if os.Getenv("LOBBY_DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg, err := config.Load(os.Getenv("LOBBY_CONFIG"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	store := lobby.NewStore()
	port := newConsolePort(os.Stdout)
	model := view.NewModel(store, port)
	rt := router.New(store, model.HandleBalance)

	connCfg := conn.DefaultConfig(cfg.Endpoint())
	connCfg.RetryDelay = cfg.RetryDelay()
	connCfg.DialTimeout = cfg.DialTimeout()
	manager := conn.NewManager(connCfg, rt.HandleFrame, model.HandleConnState)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go manager.Run(ctx)
	manager.Connect()

	log.Info().
		Str("endpoint", cfg.Endpoint()).
		Str("caller_id", cfg.CallerID).
		Msg("lobby client started")

	go readCommands(stop, manager, model)

	<-ctx.Done()
}

// readCommands drives the client from stdin:
//
//	create <stake> <winCondition>
//	join <gameId>
//	filter all | filter min <x> | filter range <min> <max>
//	list
//	quit
func readCommands(stop context.CancelFunc, manager *conn.Manager, model *view.Model) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "create":
			if len(fields) != 3 {
				log.Warn().Msg("usage: create <stake> <winCondition>")
				continue
			}
			stake, err1 := strconv.Atoi(fields[1])
			winCondition, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil {
				log.Warn().Msg("stake and winCondition must be integers")
				continue
			}
			log.Info().
				Int("stake", stake).
				Float64("prize_preview", protocol.ComputePrize(float64(stake))).
				Msg("placing create_game")
			manager.Send(protocol.CreateGame(stake, winCondition))

		case "join":
			if len(fields) != 2 {
				log.Warn().Msg("usage: join <gameId>")
				continue
			}
			manager.Send(protocol.JoinGame(fields[1]))

		case "filter":
			f, ok := parseFilter(fields[1:])
			if !ok {
				log.Warn().Msg("usage: filter all | filter min <x> | filter range <min> <max>")
				continue
			}
			model.SetFilter(f)

		case "list":
			model.SetFilter(model.Filter()) // reprojects and reprints

		case "quit", "exit":
			stop()
			return

		default:
			log.Warn().Str("command", fields[0]).Msg("unknown command")
		}
	}
}

func parseFilter(args []string) (lobby.Filter, bool) {
	if len(args) == 0 {
		return lobby.Filter{}, false
	}
	switch args[0] {
	case "all":
		return lobby.All(), true
	case "min":
		if len(args) != 2 {
			return lobby.Filter{}, false
		}
		threshold, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return lobby.Filter{}, false
		}
		return lobby.MinOnly(threshold), true
	case "range":
		if len(args) != 3 {
			return lobby.Filter{}, false
		}
		min, err1 := strconv.ParseFloat(args[1], 64)
		max, err2 := strconv.ParseFloat(args[2], 64)
		if err1 != nil || err2 != nil {
			return lobby.Filter{}, false
		}
		return lobby.Range(min, max), true
	default:
		return lobby.Filter{}, false
	}
}
