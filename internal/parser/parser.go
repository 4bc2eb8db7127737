// Package parser puts os.Args and the IGNORE_CASE toggle into AppInit structure and validates it for any issues
package parser

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/UnendingLoop/minigrep/internal/model"
)

// Build creates Config from raw arguments: args[0] is the program name,
// args[1] and args[2] are the query and the file path.
func Build(args []string, ignoreCase bool) (model.Config, error) {
	if len(args) < 3 {
		return model.Config{}, model.ErrMissingArgument
	}

	return model.Config{
		Query:      args[1],
		FilePath:   args[2],
		IgnoreCase: ignoreCase,
	}, nil
}

// IgnoreCaseFromEnv reports whether IGNORE_CASE is set, whatever its value.
func IgnoreCaseFromEnv() bool {
	_, ok := os.LookupEnv(model.IgnoreCaseEnv)
	return ok
}

// knownFlags - флаги режимов; только с них может начинаться os.Args[1:]
var knownFlags = map[string]struct{}{
	"mode":    {},
	"address": {},
	"quorum":  {},
	"node":    {},
}

// InitAppMode parses full os.Args (program name included).
// Flags are recognised only when args[1] is one of them, so any other
// dash-leading argument stays a plain query.
func InitAppMode(args []string) (*model.AppInit, error) {
	if len(args) == 0 {
		return nil, model.ErrMissingArgument
	}

	if len(args) < 2 || !isKnownFlag(args[1]) {
		appInit := model.AppInit{Mode: model.ModeLocal}
		if err := initConfig(&appInit, args[0], args[1:]); err != nil {
			return nil, err
		}
		return &appInit, nil
	}

	var appInit model.AppInit
	flagParser := flag.NewFlagSet("minigrep", flag.ContinueOnError)
	flagParser.SetOutput(io.Discard)

	mode := flagParser.String("mode", string(model.ModeLocal), "specify mode of the app: 'local', 'server' or 'remote'")
	addr := flagParser.String("address", "", "specify search-node listen address, used in 'server'-mode")
	q := flagParser.Int("quorum", 1, "set search-nodes N for quorum, used in 'remote'-mode")
	flagParser.Var(&appInit.Nodes, "node", "set search-node address, used in 'remote'-mode")

	// парсим аргументы
	if err := flagParser.Parse(args[1:]); err != nil {
		return nil, err
	}

	appInit.Mode = model.AppMode(*mode)

	// проверяем режим
	switch appInit.Mode {
	case model.ModeLocal:
		if err := initConfig(&appInit, args[0], flagParser.Args()); err != nil {
			return nil, err
		}
	case model.ModeRemote:
		if err := initConfig(&appInit, args[0], flagParser.Args()); err != nil {
			return nil, err
		}
		if len(appInit.Nodes) == 0 {
			return nil, errors.New("at least one -node must be provided running in 'remote'-mode")
		}
		appInit.Quorum = *q
		if appInit.Quorum <= 0 || appInit.Quorum > len(appInit.Nodes) {
			return nil, fmt.Errorf("incorrect quorum %d provided for %d nodes", appInit.Quorum, len(appInit.Nodes))
		}
	case model.ModeServer:
		if *addr == "" {
			return nil, errors.New("empty search-node address")
		}
		appInit.Address = *addr
	default:
		return nil, fmt.Errorf("unknown mode %q specified", appInit.Mode)
	}

	return &appInit, nil
}

func initConfig(ai *model.AppInit, program string, positional []string) error {
	cfg, err := Build(append([]string{program}, positional...), IgnoreCaseFromEnv())
	if err != nil {
		return fmt.Errorf("%w\nUsage: minigrep [flags] <query> <file_path>", err)
	}
	ai.Config = cfg
	return nil
}

// isKnownFlag accepts "-name", "--name" and the "=value" forms of both.
func isKnownFlag(arg string) bool {
	name, ok := strings.CutPrefix(arg, "-")
	if !ok {
		return false
	}
	name = strings.TrimPrefix(name, "-")
	name, _, _ = strings.Cut(name, "=")
	_, ok = knownFlags[name]
	return ok
}
