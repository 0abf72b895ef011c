package main

import (
	"os"
	"strings"

	"github.com/btcsuite/btclog"
	"github.com/f3rmion/ecc/curves"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	customCurve = "custom"

	defaultCurve    = curves.NameSecp256k1
	defaultLogLevel = "info"
	defaultLimit    = 10000
)

type configFlags struct {
	ConfigFile           string `short:"C" long:"configfile" description:"Path to an INI configuration file"`
	Curve                string `short:"c" long:"curve" description:"Curve preset name, or \"custom\" to use --coef-a, --coef-b and --modulus"`
	A                    string `short:"a" long:"coef-a" description:"Coefficient a of a custom curve (decimal or 0x-hex)"`
	B                    string `short:"b" long:"coef-b" description:"Coefficient b of a custom curve (decimal or 0x-hex)"`
	Modulus              string `short:"p" long:"modulus" description:"Field modulus of a custom curve (decimal or 0x-hex)"`
	Limit                int64  `long:"limit" description:"Largest modulus the points command will enumerate"`
	LogLevel             string `long:"loglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	ListCommands         bool   `short:"l" long:"list-commands" description:"List all commands and exit"`
	CommandAndParameters []string
}

func newConfigParser(cfg *configFlags, options flags.Options) *flags.Parser {
	parser := flags.NewParser(cfg, options)
	parser.Usage = "[OPTIONS] COMMAND [ARGS...]\n\n" +
		"Use `ecc --list-commands` to get a list of all commands and their parameters"
	return parser
}

// parseConfig reads the command line, then the optional INI file named by
// --configfile, then the command line again so that flags override the
// file.
func parseConfig(args []string) (*configFlags, error) {
	preCfg := &configFlags{}
	preParser := newConfigParser(preCfg, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := preParser.ParseArgs(args); err != nil {
		return nil, err
	}

	cfg := &configFlags{
		Curve:    defaultCurve,
		Limit:    defaultLimit,
		LogLevel: defaultLogLevel,
	}
	parser := newConfigParser(cfg, flags.HelpFlag|flags.PassDoubleDash)

	if preCfg.ConfigFile != "" {
		if _, err := os.Stat(preCfg.ConfigFile); err != nil {
			return nil, errors.Wrapf(err, "config file %s", preCfg.ConfigFile)
		}
		if err := flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile); err != nil {
			return nil, errors.Wrapf(err, "error parsing config file %s", preCfg.ConfigFile)
		}
	}

	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	cfg.CommandAndParameters = remainingArgs
	cfg.Curve = strings.ToLower(cfg.Curve)

	if cfg.ListCommands {
		return cfg, nil
	}
	if len(cfg.CommandAndParameters) == 0 {
		return nil, errors.New("a command must be specified")
	}
	if _, ok := btclog.LevelFromString(cfg.LogLevel); !ok {
		return nil, errors.Errorf("invalid log level %q", cfg.LogLevel)
	}

	custom := cfg.A != "" || cfg.B != "" || cfg.Modulus != ""
	if cfg.Curve == customCurve {
		if cfg.A == "" || cfg.B == "" || cfg.Modulus == "" {
			return nil, errors.New("--curve=custom requires --coef-a, --coef-b and --modulus")
		}
	} else if custom {
		return nil, errors.Errorf("--coef-a, --coef-b and --modulus need --curve=%s", customCurve)
	}

	return cfg, nil
}
