package mods

import (
	"os"
	"path/filepath"

	"gcl/common"
)

// Find searches for a project file governing the given path, walking up the
// directory tree from it.  It returns the directory containing the nearest
// project file.
func Find(start string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}

	if finfo, err := os.Stat(dir); err != nil {
		return "", false
	} else if !finfo.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		if finfo, err := os.Stat(filepath.Join(dir, common.ProjectFileName)); err == nil && !finfo.IsDir() {
			return dir, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}

		dir = parent
	}
}

// LoadNearest finds and loads the project governing the given path, falling
// back to the default configuration if no project file exists.
func LoadNearest(path string) (*GclProject, error) {
	dir, ok := Find(path)
	if !ok {
		return Default(), nil
	}

	return Load(dir)
}
