package main

import (
	"context"
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/counterchess/valuecore/pkg/engine"
	eval "github.com/counterchess/valuecore/pkg/eval/material"
	"github.com/counterchess/valuecore/pkg/uci"
)

/*
Counter Copyright (C) 2017-2023 Vadim Chizhov
This program is free software: you can redistribute it and/or modify it under the terms of the GNU General Public License as published by the Free Software Foundation, either version 3 of the License, or (at your option) any later version.
This program is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU General Public License for more details.
You should have received a copy of the GNU General Public License along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

const (
	name   = "Counter"
	author = "Vadim Chizhov"
)

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
	flgHash     int
)

func main() {
	flag.IntVar(&flgHash, "hash", 16, "position cache size in megabytes")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

	logger.Println(name,
		"VersionName", versionName,
		"BuildDate", buildDate,
		"GitRevision", gitRevision,
		"RuntimeVersion", runtime.Version(),
		"GOARCH", runtime.GOARCH,
		"GOOS", runtime.GOOS,
		"NumCPU", runtime.NumCPU(),
	)

	var options = engine.NewOptions()
	options.Hash = flgHash

	var protocol = uci.New(name, author, versionName, os.Stdout,
		options, eval.NewEvaluationService())
	var err = uci.RunCli(context.Background(), logger, os.Stdin, protocol)
	if err != nil {
		logger.Println(err)
	}
}
