package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"svw.info/gridsolve/internal/domain"
	"svw.info/gridsolve/internal/gridio"
	"svw.info/gridsolve/internal/hint"
	"svw.info/gridsolve/internal/infrastructure/storage"
	"svw.info/gridsolve/internal/ports"
	"svw.info/gridsolve/internal/solver"
	"svw.info/gridsolve/internal/usecase"
	"svw.info/gridsolve/internal/validator"
	"svw.info/gridsolve/logger"
)

func main() {
	in := flag.String("in", "", "puzzle file: 9 lines of 9 space-separated digits, 0 = empty")
	solverKind := flag.String("solver", "search", "solver to use: search|backtrack")
	hintOnly := flag.Bool("hint", false, "print the next forced move instead of solving")
	persist := flag.String("persist-path", "", "directory to save the solved puzzle into")
	name := flag.String("name", "", "name for the saved puzzle")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	timeout := flag.Duration("timeout", 30*time.Second, "give up solving after this long")
	flag.Parse()

	lvl := zerolog.InfoLevel
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = zerolog.DebugLevel
	case "warn":
		lvl = zerolog.WarnLevel
	case "error":
		lvl = zerolog.ErrorLevel
	}
	logger.Set(logger.Logger().Level(lvl))
	log := logger.Logger()

	g, err := gridio.Build(nil, *in)
	if err != nil {
		log.Fatal().Err(err).Msg("could not construct grid")
	}

	// Choose solver: propagation+search by default, plain backtracking via flag.
	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(*solverKind)) {
	case "backtrack", "backtracking":
		s = solver.NewBacktracker()
	default:
		s = solver.NewSearcher()
	}

	var st ports.Storage
	if *persist != "" {
		st = storage.NewFS(*persist)
	}

	// Wire providers → use cases
	uc := usecase.NewService(s, validator.New(), hint.NewSingles(), st)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if ok, conflicts, _ := uc.Validate(ctx, g); !ok {
		for _, c := range conflicts {
			log.Error().Int("row", c.Row).Int("col", c.Col).Msg("conflicting cell")
		}
		log.Fatal().Msg("input grid breaks the rules")
	}

	if *hintOnly {
		h, ok, err := uc.Hint(ctx, g)
		if err != nil {
			log.Fatal().Err(err).Msg("hint failed")
		}
		if !ok {
			log.Info().Msg("no forced move found")
			return
		}
		cell := h.Cells[0]
		fmt.Printf("(%d,%d): %s\n", cell.Row, cell.Col, h.Message)
		return
	}

	solved, stats, err := uc.Solve(ctx, g)
	if err != nil {
		log.Error().Err(err).Int("nodes", stats.Nodes).Dur("took", stats.Duration).Msg("no solution found")
		fmt.Print(gridio.String(g))
		os.Exit(1)
	}
	log.Info().Int("nodes", stats.Nodes).Dur("took", stats.Duration).Str("solver", *solverKind).Msg("solved")
	fmt.Print(gridio.String(solved))

	if *persist != "" {
		p := &domain.Puzzle{
			ID:        strconv.FormatInt(time.Now().UnixNano(), 36),
			Grid:      *solved,
			Name:      *name,
			CreatedAt: time.Now().Unix(),
		}
		if err := uc.Save(ctx, p); err != nil {
			log.Fatal().Err(err).Msg("save failed")
		}
		log.Info().Str("id", p.ID).Str("dir", *persist).Msg("saved")
	}
}
