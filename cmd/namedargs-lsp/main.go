// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"namedargs/internal/lsp"
)

const lsName = "namedargs"

var (
	version = "0.1.0"
	handler protocol.Handler
)

func main() {
	verbosity := flag.Int("v", 1, "log verbosity")
	logFile := flag.String("log", "", "log file (default: stderr)")
	debug := flag.Bool("debug", false, "enable glsp debug logging")
	flag.Parse()

	var path *string
	if *logFile != "" {
		path = logFile
	}
	commonlog.Configure(*verbosity, path)
	log := commonlog.GetLogger("namedargs.lsp")

	nargsHandler := lsp.NewNamedArgsHandler()

	handler = protocol.Handler{
		Initialize:                     nargsHandler.Initialize,
		Initialized:                    nargsHandler.Initialized,
		Shutdown:                       nargsHandler.Shutdown,
		SetTrace:                       nargsHandler.SetTrace,
		TextDocumentDidOpen:            nargsHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           nargsHandler.TextDocumentDidClose,
		TextDocumentDidChange:          nargsHandler.TextDocumentDidChange,
		TextDocumentCompletion:         nargsHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: nargsHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, *debug)

	log.Infof("starting %s language server %s", lsName, version)

	// Editors talk to the server over standard input/output
	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %s", err)
		os.Exit(1)
	}
}
