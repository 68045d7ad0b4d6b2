package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// LoadBanner reads the decorative banner from path. The banner is optional:
// any failure is logged and an empty banner returned.
func LoadBanner(path string, logger *log.Logger) string {
	if path == "" {
		return ""
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Banner not available, skipping", "path", path, "error", err)
		return ""
	}

	banner := strings.TrimRight(string(data), "\r\n")
	logger.Debug("Loaded banner", "path", path, "lines", strings.Count(banner, "\n")+1)
	return banner
}
