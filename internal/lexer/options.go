package lexer

import (
	"github.com/tliron/commonlog"

	"stant/internal/arena"
	"stant/token"
)

// Option configures a Lexer.
type Option func(*Lexer)

// WithLogger sets the logger that receives scan diagnostics.
func WithLogger(logger commonlog.Logger) Option { return func(l *Lexer) { l.logger = logger } }

// WithDebug dumps every produced token at debug level.
func WithDebug(debug bool) Option { return func(l *Lexer) { l.debug = debug } }

// WithFilename names the buffer in diagnostics.
func WithFilename(name string) Option { return func(l *Lexer) { l.filename = name } }

// WithArena attaches the arena that Drain fills.
func WithArena(a *arena.Arena[token.Token]) Option { return func(l *Lexer) { l.arena = a } }
