package go4rs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Deployer copies artifact files into a target directory, preserving their
// base names.
type Deployer struct {
	target string
}

// NewDeployer creates a deployer for the given target directory, creating
// the directory tree if absent. An empty target means the current directory.
func NewDeployer(target string) (*Deployer, error) {
	if target == "" {
		target = "."
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return nil, fmt.Errorf("creating deploy target %s: %w", target, err)
	}
	return &Deployer{target: target}, nil
}

// Target returns the deploy target directory
func (d *Deployer) Target() string {
	return d.target
}

// Deploy copies the file at sourcePath into the target directory and returns
// the destination path.
func (d *Deployer) Deploy(sourcePath string) (string, error) {
	src, err := os.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("opening artifact %s: %w", sourcePath, err)
	}
	defer src.Close()

	destPath := filepath.Join(d.target, filepath.Base(sourcePath))
	dest, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", destPath, err)
	}

	if _, err := io.Copy(dest, src); err != nil {
		dest.Close()
		return "", fmt.Errorf("copying %s to %s: %w", sourcePath, destPath, err)
	}
	if err := dest.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", destPath, err)
	}

	logger.Debug("deployed artifact", "src", sourcePath, "dest", destPath)
	return destPath, nil
}

// DeployManifest lists artifacts to deploy into one target directory
type DeployManifest struct {
	Target    string   `yaml:"target"`
	Artifacts []string `yaml:"artifacts"`
}

// LoadManifest reads a YAML deploy manifest from path
func LoadManifest(path string) (*DeployManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	var m DeployManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// Apply deploys every artifact in the manifest and returns the destination
// paths. It stops at the first failure.
func (m *DeployManifest) Apply() ([]string, error) {
	d, err := NewDeployer(m.Target)
	if err != nil {
		return nil, err
	}
	deployed := make([]string, 0, len(m.Artifacts))
	for _, artifact := range m.Artifacts {
		dest, err := d.Deploy(artifact)
		if err != nil {
			return deployed, err
		}
		deployed = append(deployed, dest)
	}
	return deployed, nil
}
