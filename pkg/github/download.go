package github

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cavaliergopher/grab/v3"
)

// Download streams the asset into targetDir, named after the asset, and
// returns the path of the written file. The call blocks until the
// transfer finished or failed; failures (including non-2xx responses)
// abort without retry.
func Download(ctx context.Context, targetDir string, asset Asset) (string, error) {
	destination := filepath.Join(targetDir, asset.Name)
	// Asset names repeat across releases, so a leftover file from an
	// older release must neither be kept nor resumed into.
	if err := os.Remove(destination); err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("error replacing '%s': %w", destination, err)
	}

	request, err := grab.NewRequest(destination, asset.DownloadURL)
	if err != nil {
		return "", fmt.Errorf("error creating download request: %w", err)
	}
	request = request.WithContext(ctx)
	request.NoResume = true

	response := grab.DefaultClient.Do(request)
	if err := response.Err(); err != nil {
		return "", fmt.Errorf("error downloading '%s': %w", asset.Name, err)
	}

	return response.Filename, nil
}
