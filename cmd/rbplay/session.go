package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/dakv/rb-tree/debug"
	"github.com/dakv/rb-tree/logger"
	"github.com/dakv/rb-tree/maps"
	"gopkg.in/yaml.v3"
)

var (
	errUsage          = errors.New("usage")
	errUnknownCommand = errors.New("unknown command")
)

const helpText = `commands:
  insert <key> [value]   store value under key (asks when value is missing)
  get <key>              show the value under key
  remove [key...]        delete keys (pick interactively when none given)
  pop                    remove the smallest key
  random [n]             insert n random keys (asks when n is missing)
  print                  list pairs in key order
  render                 draw the tree
  json | yaml            encode the map
  verify                 check the red-black invariants
  clear                  drop everything
  len                    count pairs
  quit                   leave`

// session is one playground run: a string map plus where to write results.
// pick, confirm, ask and number are the interactive hooks, replaced in tests.
type session struct {
	m       *maps.RedBlackTreeMap[string, string]
	out     io.Writer
	rng     *rand.Rand
	pick    func(label string, choices ...string) ([]string, error)
	confirm func(label string) (bool, error)
	ask     func(label string) (string, error)
	number  func(label string) (int, error)
}

// preload inserts n random keys drawn from rng.
func (s *session) preload(rng *rand.Rand, n int) {
	for range n {
		key := fmt.Sprintf("key%d", rng.IntN(n*10)) //nolint:perfsprint
		s.m.Insert(key, fmt.Sprintf("%08x", rng.Uint32()))
	}
}

// exec runs one command line. It reports true when the session should end.
func (s *session) exec(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	cmd, args := fields[0], fields[1:]

	logger.Get(ctx).Debug("command", "name", cmd, "args", len(args))

	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		s.println(helpText)
	case "insert":
		if err := s.insert(args); err != nil {
			return false, err
		}
	case "get":
		if len(args) != 1 {
			return false, fmt.Errorf("%w: get <key>", errUsage)
		}

		value, found := s.m.Get(args[0])
		if !found {
			s.println("not found")
		} else {
			s.println(value)
		}
	case "remove":
		return false, s.remove(args)
	case "pop":
		if pair, ok := s.m.Pop().Get(); ok {
			s.println(pair.String())
		} else {
			s.println("empty")
		}
	case "random":
		if err := s.random(args); err != nil {
			return false, err
		}
	case "print":
		s.println(s.m.String())
	case "render":
		if err := debug.DumpTree(s.out, s.m); err != nil {
			return false, err
		}
	case "json":
		return false, debug.DumpJSON(s.m, s.out)
	case "yaml":
		return false, s.yaml()
	case "verify":
		if err := debug.CheckTree(ctx, s.m); err != nil {
			return false, err
		}

		s.println("ok")
	case "clear":
		return false, s.clear()
	case "len":
		s.println(s.m.Size())
	default:
		return false, fmt.Errorf("%w %q, try help", errUnknownCommand, cmd)
	}

	debug.LogTree(ctx, "after "+cmd, s.m)

	return false, nil
}

func (s *session) insert(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: insert <key> [value]", errUsage)
	}

	value := strings.Join(args[1:], " ")

	if len(args) == 1 {
		answer, err := s.ask("Value for " + args[0])
		if err != nil {
			return err
		}

		value = answer
	}

	if prev, ok := s.m.Insert(args[0], value).Get(); ok {
		s.println("replaced", prev.String())
	}

	return nil
}

func (s *session) random(args []string) error {
	var (
		n   int
		err error
	)

	switch len(args) {
	case 0:
		n, err = s.number("How many keys")
	case 1:
		n, err = strconv.Atoi(args[0])
	default:
		return fmt.Errorf("%w: random [n]", errUsage)
	}

	if err != nil {
		return err
	}

	if n <= 0 {
		return fmt.Errorf("%w: random needs a positive count, got %d", errUsage, n)
	}

	before := s.m.Size()
	s.preload(s.rng, n)
	s.println("added", s.m.Size()-before)

	return nil
}

func (s *session) remove(keys []string) error {
	if len(keys) == 0 {
		if s.m.IsEmpty() {
			s.println("empty")

			return nil
		}

		picked, err := s.pick("Remove", s.m.Keys()...)
		if err != nil {
			return err
		}

		keys = picked
	}

	for _, key := range keys {
		if value, ok := s.m.Remove(key).Get(); ok {
			s.println("removed", key+"="+value)
		} else {
			s.println("not found:", key)
		}
	}

	return nil
}

func (s *session) clear() error {
	ok, err := s.confirm(fmt.Sprintf("Drop all %d pairs", s.m.Size()))
	if err != nil || !ok {
		return err
	}

	s.m.Clear()

	return nil
}

func (s *session) yaml() error {
	encoder := yaml.NewEncoder(s.out)
	encoder.SetIndent(2) //nolint:mnd

	if err := encoder.Encode(s.m); err != nil {
		return err
	}

	return encoder.Close()
}

func (s *session) println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}
