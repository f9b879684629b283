// Command rbplay is an interactive playground for the ordered map: insert,
// remove and pop string keys, then look at the red-black tree underneath.
//
//	rbplay --order natural --random 20
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/dakv/rb-tree/cli"
	"github.com/dakv/rb-tree/logger"
	"github.com/dakv/rb-tree/maps"
	"github.com/manifoldco/promptui"
	"github.com/spf13/pflag"
)

var (
	order  = pflag.String("order", "lexical", "key order: lexical, natural, reverse, collate:<bcp47 tag> or ask")
	random = pflag.Int("random", 0, "preload this many random keys")
	seed   = pflag.Uint64("seed", 1, "seed for --random and the random command")
	quiet  = pflag.Bool("quiet", false, "skip the banner")
)

func main() {
	pflag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.ConfigureLogging(ctx, "rbplay")

	if err := run(ctx, os.Stdout); err != nil {
		slog.Error("rbplay failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer) error {
	name := *order

	if name == "ask" {
		picked, err := cli.Select("Key order", orderNames...)
		if err != nil {
			return err
		}

		name = picked
	}

	cmp, err := parseOrder(name)
	if err != nil {
		return err
	}

	s := &session{
		m:       maps.NewRedBlackTreeMap[string, string](cmp),
		out:     out,
		rng:     rand.New(rand.NewPCG(*seed, *seed)), //nolint:gosec // Playground data
		pick:    cli.MultiSelect,
		confirm: cli.PromptConfirm,
		ask:     cli.PromptString,
		number:  cli.PromptInt,
	}

	if *random > 0 {
		s.preload(s.rng, *random)
	}

	if !*quiet {
		_, _ = fmt.Fprintln(out, cli.BannerAutoWidth(fmt.Sprintf("rbplay (%s order, %d keys)\ntype help for commands", name, s.m.Size()), cli.AlignCenter))
	}

	for ctx.Err() == nil {
		line, err := cli.PromptStringEmptyOk("rbplay", "")
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil
			}

			return err
		}

		done, err := s.exec(ctx, line)
		if err != nil {
			s.println("error:", err)
		}

		if done {
			return nil
		}
	}

	return nil
}
