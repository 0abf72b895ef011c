package main

import (
	"io"

	"github.com/btcsuite/btclog"
	"github.com/f3rmion/ecc/group"
)

var log = btclog.Disabled

// initLog routes the command's and the group package's loggers to w at the
// given level.
func initLog(w io.Writer, level string) {
	backendLog := btclog.NewBackend(w)
	lvl, _ := btclog.LevelFromString(level)

	log = backendLog.Logger("ECC ")
	log.SetLevel(lvl)

	grpLog := backendLog.Logger("GRUP")
	grpLog.SetLevel(lvl)
	group.UseLogger(grpLog)
}
