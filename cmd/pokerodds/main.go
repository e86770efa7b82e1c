package main

import (
	"flag"
	"os"
	"strings"

	"pokerodds/internal/config"
	"pokerodds/internal/rng"
	"pokerodds/pkg/equity"
	"pokerodds/pkg/odds"
	"pokerodds/pkg/poker"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var (
	command    = flag.String("c", "equity", "specifies the command (equity, settle)")
	output     = flag.String("o", "text", "specifies the output format (text, json, yaml)")
	hole       = flag.String("hole", "", "your hole cards, e.g. Ah,Kd")
	board      = flag.String("board", "", "the community cards, e.g. 2c,7h,Td")
	opponents  = flag.Int("opponents", 1, "the number of opponents")
	iterations = flag.Int("iterations", 0, "overrides the configured number of iterations")
)

func main() {
	flag.Parse()
	setupLogger()

	if !validFormat(*output) {
		logrus.Fatalf("unknown output format: %s", *output)
	}

	logger := logrus.WithField("runID", uuid.New().String())
	svc := newService(config.Instance(), logger)

	var res interface{}
	var err error
	switch *command {
	case "equity":
		var req odds.EquityRequest
		req, err = equityRequest()
		if err != nil {
			logger.WithError(err).Fatal("could not read request")
		}

		res, err = svc.ComputeEquity(req)
	case "settle":
		var req odds.SettleRequest
		req, err = decodeSettleRequest(os.Stdin)
		if err != nil {
			logger.WithError(err).Fatal("could not read request")
		}

		res, err = svc.SettleGame(req)
	default:
		logrus.Fatalf("unknown command: %s", *command)
	}

	if err != nil {
		if werr := writeError(os.Stdout, *output, err); werr != nil {
			logger.WithError(werr).Error("could not write error")
		}

		os.Exit(1)
	}

	if err := writeResponse(os.Stdout, *output, res); err != nil {
		logger.WithError(err).Fatal("could not write response")
	}
}

// equityRequest builds the request from the flags, the terminal, or stdin
func equityRequest() (odds.EquityRequest, error) {
	if *hole != "" {
		return odds.EquityRequest{
			HoleCards:      splitCards(*hole),
			CommunityCards: splitCards(*board),
			OpponentCount:  *opponents,
		}, nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return promptEquityRequest()
	}

	return decodeEquityRequest(os.Stdin)
}

func newService(cfg config.Config, logger logrus.FieldLogger) *odds.Service {
	factory := rng.PCGFactory(cfg.Equity.Seed)
	if cfg.Equity.Source == config.SourceCrypto {
		factory = rng.CryptoFactory()
	}

	n := cfg.Equity.Iterations
	if *iterations > 0 {
		n = *iterations
	}

	sim := equity.NewSimulator(
		poker.Default(),
		equity.WithIterations(n),
		equity.WithGeneratorFactory(factory),
		equity.WithLogger(logger),
	)

	return odds.NewService(sim, odds.WithPotMismatch(cfg.Settlement.PotMismatch), odds.WithLogger(logger))
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(config.Instance().Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
