// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"log"
	"os"

	"github.com/cpmech/gosl/utl"
)

// logFile holds the handle opened by InitLogFile, closed by FlushLog.
var logFile *os.File

// InitLogFile redirects the standard logger to dirout/fnamekey.log. The
// teacher's version picked an MPI-rank-qualified filename; this solver
// never runs distributed (spec.md's Non-goals exclude parallel
// execution), so the suffix is dropped along with the mpi import.
func InitLogFile(dirout, fnamekey string) (err error) {
	f, err := os.Create(utl.Sf("%s/%s.log", dirout, fnamekey))
	if err != nil {
		return err
	}
	logFile = f
	log.SetOutput(logFile)
	return nil
}

// FlushLog closes the log file opened by InitLogFile.
func FlushLog() {
	if logFile != nil {
		logFile.Close()
	}
}

// LogErr logs err under msg and reports whether it was non-nil.
func LogErr(err error, msg string) (stop bool) {
	if err != nil {
		log.Printf("ERROR: %s : %v", msg, err)
		return true
	}
	return false
}

// LogErrCond logs a formatted message when condition is true and
// reports condition back, mirroring LogErr's stop-flag idiom for
// one-off checks that aren't already errors.
func LogErrCond(condition bool, msg string, prm ...interface{}) (stop bool) {
	if condition {
		log.Printf("ERROR: %s", utl.Sf(msg, prm...))
		return true
	}
	return false
}
