package mangler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/valpere/mangler/internal/translator"
)

// HopResult describes one completed (or failed) hop.
type HopResult struct {
	Index   int
	Pair    translator.LanguagePair
	Text    string
	Latency time.Duration
	Err     error
}

type Config struct {
	// Delay is waited between consecutive hops, never before the first or
	// after the last.
	Delay  time.Duration
	Logger zerolog.Logger
	// OnHop, when set, is called after every hop attempt.
	OnHop func(HopResult)
}

type Pipeline struct {
	translator translator.Translator
	config     Config
}

func New(tr translator.Translator, config Config) *Pipeline {
	return &Pipeline{
		translator: tr,
		config:     config,
	}
}

// Execute translates text along path, feeding each hop's output into the next.
// The first failing hop ends the walk and its error is returned as the
// translator reported it; no partial text is returned. An empty path returns
// text unchanged without calling the translator.
//
// Cancelling ctx during an inter-hop wait returns ctx.Err().
func (p *Pipeline) Execute(ctx context.Context, text string, path []translator.LanguagePair) (string, error) {
	log := p.config.Logger.With().
		Str("translator", p.translator.Name()).
		Int("hops", len(path)).
		Logger()

	current := text
	for i, pair := range path {
		if i > 0 && p.config.Delay > 0 {
			if err := sleep(ctx, p.config.Delay); err != nil {
				log.Debug().Int("hop", i).Err(err).Msg("Mangling interrupted")
				return "", err
			}
		}

		start := time.Now()
		out, err := p.translator.Translate(ctx, current, pair)
		hop := HopResult{Index: i, Pair: pair, Text: out, Latency: time.Since(start), Err: err}
		if p.config.OnHop != nil {
			p.config.OnHop(hop)
		}

		if err != nil {
			log.Warn().
				Int("hop", i).
				Str("from", pair.From).
				Str("to", pair.To).
				Err(err).
				Msg("Hop failed")
			return "", err
		}

		log.Debug().
			Int("hop", i).
			Str("from", pair.From).
			Str("to", pair.To).
			Dur("latency", hop.Latency).
			Msg("Hop done")
		current = out
	}

	return current, nil
}

// Mangle runs text through path with tr, waiting delay between hops.
func Mangle(ctx context.Context, tr translator.Translator, text string, path []translator.LanguagePair, delay time.Duration) (string, error) {
	return New(tr, Config{Delay: delay, Logger: zerolog.Nop()}).Execute(ctx, text, path)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
