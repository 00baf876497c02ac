package charts

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/karvel-dev/bankscope/internal/utils"
)

// ManifestName is the file written next to the chart artifacts.
const ManifestName = "manifest.yaml"

// Manifest records one rendering run: which source produced which
// artifacts, in render order.
type Manifest struct {
	RunID       string     `yaml:"run_id"`
	Source      string     `yaml:"source"`
	Rows        int        `yaml:"rows"`
	GeneratedAt time.Time  `yaml:"generated_at"`
	Artifacts   []Artifact `yaml:"artifacts"`
}

// WriteManifest writes the run manifest atomically into outDir and
// returns its path.
func WriteManifest(outDir, source string, rows int, artifacts []Artifact) (string, error) {
	m := Manifest{
		RunID:       uuid.NewString(),
		Source:      source,
		Rows:        rows,
		GeneratedAt: time.Now().UTC(),
		Artifacts:   artifacts,
	}
	b, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("marshal manifest: %w", err)
	}
	path := filepath.Join(outDir, ManifestName)
	if err := utils.SafeWriteFile(path, b); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	return path, nil
}
