// Package log provides centralised audit logging for iconforge operations.
// Logs are stored in ~/.iconforge/log/iconforge-log.db and track CLI
// commands and MCP tool invocations across projects.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("cli:generate", "generate").
//		Icon(job.Icon).
//		Output(job.Output).
//		Modes(job.Modes).
//		Assets(len(manifest.Assets)).
//		Write(err)
//
//	log.Event("cli:verify", "verify").
//		Detail("quality", rec["quality"]).
//		Write(err)
//
// The source parameter follows the format "cli:{command}" for CLI commands
// or "mcp:{tool}" for MCP tools.
package log

import (
	"strings"
	"sync"
	"time"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g., "cli:generate", "mcp:iconforge_generate"
	Action string // verb: generate, verify, config, profile, etc.
	Icon   string // input: source icon path
	Output string // input: output directory
	Modes  string // comma-joined target modes

	// Output fields - populated after the operation completes
	Assets int // number of asset files produced

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether the operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call
// [Builder.Write] to persist the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "cli:{command}" (e.g., "cli:generate", "cli:config")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:iconforge_generate")
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Icon sets the source icon path for this operation.
func (b *Builder) Icon(path string) *Builder {
	b.entry.Icon = path
	return b
}

// Output sets the output directory for this operation.
func (b *Builder) Output(dir string) *Builder {
	b.entry.Output = dir
	return b
}

// Modes records the target modes for this operation.
func (b *Builder) Modes(modes []string) *Builder {
	b.entry.Modes = strings.Join(modes, ",")
	return b
}

// Assets records how many asset files the operation produced.
func (b *Builder) Assets(n int) *Builder {
	b.entry.Assets = n
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// config keys, filter names, probe results, etc. Can be called multiple
// times to add multiple details.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure
// from err. This is the standard way to complete a log entry:
//
//	manifest, err := generate.Run(job, nil)
//	log.Event("cli:generate", "generate").Icon(job.Icon).Write(err)
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them
// (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	l, err := open()
	if err != nil {
		return err
	}
	global = l
	return nil
}

// SetProject sets the project identifier for subsequent log entries.
// The dir should be the absolute path of the working directory.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. Safe to call if the logger is not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}

// open is split out so tests can construct loggers against temp paths.
func open() (*Logger, error) {
	db, err := openDB()
	if err != nil {
		return nil, err
	}
	return &Logger{db: db}, nil
}
