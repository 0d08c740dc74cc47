// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"stant/internal/lsp"
)

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	// 1 = info, 2 = debug; nil writes to stderr, which stdio clients keep separate
	verbosity := 1
	if *verbose {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)
	log := commonlog.GetLogger("stant.lsp")

	stantHandler := lsp.NewStantHandler()

	handler := protocol.Handler{
		Initialize:                     stantHandler.Initialize,
		Initialized:                    stantHandler.Initialized,
		Shutdown:                       stantHandler.Shutdown,
		SetTrace:                       stantHandler.SetTrace,
		TextDocumentDidOpen:            stantHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           stantHandler.TextDocumentDidClose,
		TextDocumentDidChange:          stantHandler.TextDocumentDidChange,
		TextDocumentCompletion:         stantHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: stantHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsp.Name, *verbose)

	log.Infof("starting %s language server %s", lsp.Name, lsp.Version)

	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %s", err)
		os.Exit(1)
	}
}
