// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"quill/internal/lsp"
)

const lsName = "quill" // Name identifier for the language server

var handler protocol.Handler

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	quillHandler := lsp.NewHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     quillHandler.Initialize,
		Initialized:                    quillHandler.Initialized,
		Shutdown:                       quillHandler.Shutdown,
		SetTrace:                       quillHandler.SetTrace,
		TextDocumentDidOpen:            quillHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           quillHandler.TextDocumentDidClose,
		TextDocumentDidChange:          quillHandler.TextDocumentDidChange,
		TextDocumentSemanticTokensFull: quillHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting Quill LSP server...")

	// Serve over standard input/output, the transport editors expect
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting Quill LSP server:", err)
		os.Exit(1)
	}
}
