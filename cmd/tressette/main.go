package main

import (
	"context"
	"flag"
	"math/big"
	"math/rand"
	"os"

	"go.uber.org/zap"

	"tressette/internal/bot"
	"tressette/internal/config"
	"tressette/internal/domain"
	"tressette/internal/engine"
	"tressette/internal/luarules"
	"tressette/internal/tressette"
)

func main() {
	var (
		seed        = flag.Int64("seed", 1, "shuffle seed")
		cfgPath     = flag.String("config", "", "path to a match config JSON file")
		rulesScript = flag.String("rules", "", "path to a Lua variant script (default: built-in tressette)")
	)
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	if *cfgPath != "" {
		if err := config.Load(*cfgPath); err != nil {
			logger.Fatal("load config", zap.Error(err))
		}
	}
	cfg := config.Get()

	script := *rulesScript
	if script == "" {
		script = cfg.RulesScript
	}
	var rules engine.Rules
	if script != "" {
		lr, err := luarules.Load(script)
		if err != nil {
			logger.Fatal("load rules script", zap.Error(err))
		}
		logger.Info("playing scripted variant", zap.String("variant", lr.Name()))
		rules = lr
	} else {
		tr, err := tressette.New(tressette.Config{
			WinThreshold:         cfg.WinThreshold,
			LastTrickBonusThirds: cfg.LastTrickBonusThirds,
			FloorHandScore:       cfg.FloorHandScore,
		})
		if err != nil {
			logger.Fatal("build rules", zap.Error(err))
		}
		rules = tr
	}

	rng := rand.New(rand.NewSource(*seed))
	agents := make([]engine.Agent, rules.Players())
	for i := range agents {
		if i%2 == 0 {
			agents[i] = bot.NewGreedy(rules)
		} else {
			agents[i] = bot.NewRandom(rng)
		}
	}

	match, err := engine.NewMatch(rules)
	if err != nil {
		logger.Fatal("start match", zap.Error(err))
	}

	deal := func() ([][]domain.Card, error) {
		return domain.Deal(domain.Shuffle(domain.NewDeck(), rng), rules.Players(), rules.Tricks())
	}

	winner, err := match.Play(context.Background(), deal, agents, &zapReporter{log: logger})
	if err != nil {
		logger.Fatal("match failed", zap.Error(err))
	}
	logger.Info("match finished",
		zap.String("match_id", match.ID()),
		zap.Int("winner", winner),
		zap.Int("hands", match.HandsPlayed()),
		zap.Strings("scores", ratStrings(match.Scores())),
	)
}

// zapReporter logs every engine event.
type zapReporter struct {
	log *zap.Logger
}

func (r *zapReporter) ReportTrickCompleted(t *engine.Trick) {
	cards := t.Cards()
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.String()
	}
	r.log.Info("trick completed",
		zap.Strings("cards", names),
		zap.Int("leader", t.First().Index()),
		zap.Int("taker", t.Taker().Index()),
		zap.String("taken_with", t.TakenWith().String()),
	)
}

func (r *zapReporter) ReportHandCompleted(h *engine.Hand) {
	r.log.Info("hand completed", zap.Strings("side_scores", ratStrings(h.Scores())))
}

func (r *zapReporter) ReportMatchCompleted(scores []*big.Rat, winner int) {
	r.log.Info("match completed", zap.Strings("side_scores", ratStrings(scores)), zap.Int("winner", winner))
}

func ratStrings(scores []*big.Rat) []string {
	out := make([]string, len(scores))
	for i, s := range scores {
		out[i] = s.RatString()
	}
	return out
}
