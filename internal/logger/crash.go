// Package logger provides structured logging setup and crash recovery for todolist.
package logger

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"
)

const (
	// DefaultBaseDir holds crash logs when no base path is set.
	DefaultBaseDir = ".todolist"

	// CrashLogDir is the directory for crash logs relative to the base path.
	CrashLogDir = "crash_logs"

	// MaxCrashLogs is the maximum number of crash logs to keep.
	MaxCrashLogs = 10

	maxInputLen = 500
)

// crashContext records what the user was doing, for crash reports.
type crashContext struct {
	mu        sync.RWMutex
	fs        afero.Fs
	basePath  string
	version   string
	command   string
	lastInput string
	dataFile  string
}

var globalContext = newCrashContext()

func newCrashContext() *crashContext {
	return &crashContext{fs: afero.NewOsFs()}
}

// SetBasePath sets the directory under which crash_logs/ is created.
func SetBasePath(path string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.basePath = path
}

// SetVersion sets the application version for crash logs.
func SetVersion(version string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.version = version
}

// SetCommand sets the current command being executed.
func SetCommand(cmd string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.command = cmd
}

// SetDataFile records the task file in use.
func SetDataFile(path string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.dataFile = path
}

// SetLastInput records the last raw line the user typed.
func SetLastInput(input string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.lastInput = truncateForLog(strings.TrimSpace(input), maxInputLen)
}

func truncateForLog(value string, maxLen int) string {
	if len(value) <= maxLen {
		return value
	}
	return value[:maxLen] + "... [truncated]"
}

// CrashLog represents a crash log entry.
type CrashLog struct {
	Timestamp  time.Time
	Version    string
	Command    string
	DataFile   string
	PanicValue string
	StackTrace string
	LastInput  string
	GoVersion  string
	OS         string
	Arch       string
}

// HandlePanic recovers from a panic, writes a crash log and exits with status 1.
// Usage: defer logger.HandlePanic()
func HandlePanic() {
	r := recover()
	if r == nil {
		return
	}

	log := createCrashLog(r)
	path, err := writeCrashLog(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\n[CRASH] Failed to write crash log: %v\n", err)
		fmt.Fprintf(os.Stderr, "[CRASH] Panic: %v\n%s\n", r, log.StackTrace)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "\n🔴 todolist encountered an unexpected error.\n")
	fmt.Fprintf(os.Stderr, "A crash log has been saved to:\n  %s\n", path)
	os.Exit(1)
}

func createCrashLog(panicValue any) CrashLog {
	globalContext.mu.RLock()
	defer globalContext.mu.RUnlock()

	return CrashLog{
		Timestamp:  time.Now(),
		Version:    globalContext.version,
		Command:    globalContext.command,
		DataFile:   globalContext.dataFile,
		PanicValue: fmt.Sprintf("%v", panicValue),
		StackTrace: string(debug.Stack()),
		LastInput:  globalContext.lastInput,
		GoVersion:  runtime.Version(),
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
	}
}

// writeCrashLog writes log under the crash directory and returns its path.
func writeCrashLog(log CrashLog) (string, error) {
	fsys := crashFs()
	dir := crashLogDir()

	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create crash log dir: %w", err)
	}
	if err := cleanOldCrashLogs(fsys, dir); err != nil {
		fmt.Fprintf(os.Stderr, "[WARN] Failed to clean old crash logs: %v\n", err)
	}

	path := crashLogPath(log.Timestamp)
	if err := afero.WriteFile(fsys, path, []byte(formatCrashLog(log)), 0o644); err != nil {
		return "", fmt.Errorf("write crash log: %w", err)
	}
	return path, nil
}

func crashFs() afero.Fs {
	globalContext.mu.RLock()
	defer globalContext.mu.RUnlock()
	return globalContext.fs
}

func crashLogDir() string {
	globalContext.mu.RLock()
	basePath := globalContext.basePath
	globalContext.mu.RUnlock()

	if basePath == "" {
		basePath = DefaultBaseDir
	}
	return filepath.Join(basePath, CrashLogDir)
}

func crashLogPath(t time.Time) string {
	return filepath.Join(crashLogDir(), fmt.Sprintf("crash_%s.log", t.Format("20060102_150405")))
}

func formatCrashLog(log CrashLog) string {
	rule := strings.Repeat("-", 80)
	var sb strings.Builder

	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString("TODOLIST CRASH LOG\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n\n")

	fmt.Fprintf(&sb, "Timestamp: %s\n", log.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(&sb, "Version:   %s\n", log.Version)
	fmt.Fprintf(&sb, "Command:   %s\n", log.Command)
	fmt.Fprintf(&sb, "Data file: %s\n", log.DataFile)
	fmt.Fprintf(&sb, "Go:        %s\n", log.GoVersion)
	fmt.Fprintf(&sb, "OS/Arch:   %s/%s\n", log.OS, log.Arch)

	fmt.Fprintf(&sb, "\n%s\nPANIC VALUE\n%s\n%s\n", rule, rule, log.PanicValue)
	fmt.Fprintf(&sb, "\n%s\nSTACK TRACE\n%s\n%s", rule, rule, log.StackTrace)

	if log.LastInput != "" {
		fmt.Fprintf(&sb, "\n%s\nLAST USER INPUT\n%s\n%s\n", rule, rule, log.LastInput)
	}
	return sb.String()
}

// cleanOldCrashLogs keeps only the MaxCrashLogs-1 newest logs so that the
// one about to be written brings the total to MaxCrashLogs.
func cleanOldCrashLogs(fsys afero.Fs, dir string) error {
	names, err := crashLogNames(fsys, dir)
	if err != nil {
		return err
	}
	keep := MaxCrashLogs - 1
	if len(names) <= keep {
		return nil
	}
	for _, name := range names[:len(names)-keep] {
		if err := fsys.Remove(filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("remove old crash log %s: %w", name, err)
		}
	}
	return nil
}

// crashLogNames returns crash log file names, oldest first.
func crashLogNames(fsys afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if isCrashLog(e) {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}

func isCrashLog(e fs.FileInfo) bool {
	return !e.IsDir() && strings.HasPrefix(e.Name(), "crash_") && strings.HasSuffix(e.Name(), ".log")
}

// ListCrashLogs returns the paths of all crash logs, oldest first.
func ListCrashLogs() ([]string, error) {
	dir := crashLogDir()
	names, err := crashLogNames(crashFs(), dir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(names))
	for _, n := range names {
		paths = append(paths, filepath.Join(dir, n))
	}
	return paths, nil
}
