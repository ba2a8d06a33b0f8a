// handler.go
package email

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"FlightRadarAnalytics/src/storage"
)

// XLSXAttachmentHandler saves xlsx attachments of matching mail into
// the data directory, where the file monitor picks them up. Each UID is
// handled at most once per process lifetime.
type XLSXAttachmentHandler struct {
	DataDir       string
	processedUIDs map[uint32]bool
	mu            sync.RWMutex
}

func NewXLSXAttachmentHandler(dataDir string) *XLSXAttachmentHandler {
	return &XLSXAttachmentHandler{
		DataDir:       dataDir,
		processedUIDs: make(map[uint32]bool),
	}
}

func (h *XLSXAttachmentHandler) isProcessed(uid uint32) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.processedUIDs[uid]
}

func (h *XLSXAttachmentHandler) markProcessed(uid uint32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.processedUIDs[uid] = true
}

// Handle writes the mail's xlsx attachments to the data directory and
// returns the saved paths.
func (h *XLSXAttachmentHandler) Handle(e *Email, logger *storage.Logger) ([]string, error) {
	if e == nil || h.isProcessed(e.UID) {
		return nil, nil
	}

	if err := os.MkdirAll(h.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	var saved []string
	for _, attachment := range e.Attachments {
		if filepath.Ext(attachment.Filename) != ".xlsx" {
			continue
		}
		path := filepath.Join(h.DataDir, attachment.Filename)
		if err := os.WriteFile(path, attachment.Content, 0644); err != nil {
			return saved, fmt.Errorf("save attachment %s: %w", attachment.Filename, err)
		}
		logger.Info("saved export attachment: " + path)
		saved = append(saved, path)
	}

	if len(saved) > 0 {
		h.markProcessed(e.UID)
	}
	return saved, nil
}
