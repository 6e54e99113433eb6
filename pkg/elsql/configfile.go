package elsql

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CLIConfigFile is the CLI's own on-disk configuration — a data file,
// distinct from the behavioral Config interface above. Its default
// dialect name is used by `elsql render`/`elsql validate`/`elsql debug`
// when no --dialect flag or inline dialect hint picks one. ResourceDir
// is read from the file but no command uses it; `elsql render` takes
// its resource directory from --dir only.
type CLIConfigFile struct {
	Dialect     string   `yaml:"dialect,omitempty"`
	ResourceDir []string `yaml:"resource_dirs,omitempty"`
}

// LoadCLIConfigFile searches the current directory and its parents
// (stopping at a git root), then $HOME, for an .elsqlrc.yaml /
// elsql.yaml file. Returns an empty CLIConfigFile, not an error, when
// none is found — absence of a config file is not a failure.
func LoadCLIConfigFile() (*CLIConfigFile, error) {
	for _, path := range configSearchPaths() {
		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cf CLIConfigFile
		if err := yaml.Unmarshal(content, &cf); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		return &cf, nil
	}
	return &CLIConfigFile{}, nil
}

func configSearchPaths() []string {
	var paths []string

	if dir, err := os.Getwd(); err == nil {
		paths = append(paths, findConfigInParentDirs(dir)...)
	}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".elsqlrc.yaml"),
			filepath.Join(home, ".elsqlrc.yml"),
			filepath.Join(home, ".elsql.yaml"),
		)
	}

	return paths
}

func findConfigInParentDirs(startDir string) []string {
	var paths []string
	dir := startDir

	for {
		for _, filename := range []string{".elsqlrc.yaml", ".elsqlrc.yml", "elsql.yaml", "elsql.yml"} {
			paths = append(paths, filepath.Join(dir, filename))
		}

		parent := filepath.Dir(dir)
		if parent == dir || isGitRoot(dir) {
			break
		}
		dir = parent
	}

	return paths
}

func isGitRoot(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil && info.IsDir()
}
