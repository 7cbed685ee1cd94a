package output

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If INTERM_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.interm/logs/interm.log
func GetLogFilePath() string {
	if customPath := os.Getenv("INTERM_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "interm.log"
	}

	return filepath.Join(homeDir, ".interm", "logs", "interm.log")
}
