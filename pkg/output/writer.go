package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Writer persists rendered images: a latest file that is overwritten on
// every render and a history copy named by the Unix time of the write
type Writer struct {
	Dir        string           // Root output directory
	LatestName string           // File name of the most recent render
	HistoryDir string           // History directory, relative to Dir
	Now        func() time.Time // Clock used to name history files
}

// NewWriter creates a writer rooted at dir with the standard file layout
func NewWriter(dir string) *Writer {
	return &Writer{
		Dir:        dir,
		LatestName: "latest_image",
		HistoryDir: "images",
		Now:        time.Now,
	}
}

// Write stores data with extension ext (without the dot) and returns the
// latest and history paths
func (w *Writer) Write(data []byte, ext string) (latestPath, historyPath string, err error) {
	historyDir := filepath.Join(w.Dir, w.HistoryDir)
	if err := os.MkdirAll(historyDir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create output directory: %w", err)
	}

	latestPath = filepath.Join(w.Dir, fmt.Sprintf("%s.%s", w.LatestName, ext))
	if err := os.WriteFile(latestPath, data, 0644); err != nil {
		return "", "", fmt.Errorf("failed to write %s: %w", latestPath, err)
	}

	now := time.Now
	if w.Now != nil {
		now = w.Now
	}
	historyPath = filepath.Join(historyDir, fmt.Sprintf("%d.%s", now().Unix(), ext))
	if err := os.WriteFile(historyPath, data, 0644); err != nil {
		return "", "", fmt.Errorf("failed to write %s: %w", historyPath, err)
	}

	return latestPath, historyPath, nil
}
