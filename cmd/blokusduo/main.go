// Command blokusduo plays a self-contained game of Blokus Duo on the
// terminal, alternating NegaScout-driven moves for both sides and
// switching to the exact endgame solvers once few enough turns remain.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/irori/blokusduo/board"
	"github.com/irori/blokusduo/config"
	"github.com/irori/blokusduo/search"
)

func main() {
	var cfg config.Config
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("failed to parse configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.LogLevel).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	spec := board.Standard()
	if cfg.Variant == "mini" {
		spec = board.Mini()
	}
	log.Info().Str("variant", spec.Name).Msg("starting game")

	b := board.New(spec)
	stop := time.Duration(cfg.StopMs) * time.Millisecond
	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
	wldTimeout := time.Duration(cfg.WLDTimeoutS) * time.Second

	turn := 0
	for !b.IsGameOver() {
		turn++
		var m = search.OpeningMove(&b)
		remainingBlocks := spec.NumBlocks()*2 + 2 - b.Turn()
		switch {
		case m.IsValid():
			log.Debug().Msg("using opening book")
		case remainingBlocks <= 8:
			result := search.Perfect(b)
			m = result.Move
			log.Debug().Int("score", int(result.Score)).Msg("perfect solver")
		case remainingBlocks <= 16:
			result := search.WLD(b, wldTimeout)
			m = result.Move
			log.Debug().Int("wld", int(result.Score)).Msg("wld solver")
		default:
			result := search.NegaScout(b, 12, stop, timeout)
			m = result.Move
			log.Debug().Int("score", int(result.Score)).Msg("negascout")
		}

		b.PlayMove(m)
		fmt.Printf("turn %d: player %d plays %s\n", turn, b.Opponent(), m.Code())
	}

	fmt.Print(b.String())
	fmt.Printf("final score: violet=%d orange=%d\n", b.Score(0), b.Score(1))
	log.Info().Int("nodes", search.VisitedNodes).Msg("game complete")
}
