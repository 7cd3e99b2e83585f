package mods

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"gcl/common"
)

// InitProject initializes a new project with the given name in the directory
// at the given path, writing out a fresh project file.
func InitProject(name, dir string) error {
	projFilePath := filepath.Join(dir, common.ProjectFileName)

	if _, err := os.Stat(projFilePath); err == nil {
		return errors.New("project file already exists")
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("error checking for project file: %s", err.Error())
	}

	if !IsValidIdentifier(name) {
		return fmt.Errorf("`%s` is not a valid project name", name)
	}

	tpf := &tomlProjectFile{
		Project: &tomlProject{
			Name:        name,
			Version:     "0.1.0",
			GclcVersion: ">= " + common.GclcVersion,
		},
		Translate: &tomlTranslate{
			Output:   OutputNamed,
			MaxDepth: common.DefaultMaxDepth,
			MaxSteps: common.DefaultMaxSteps,
		},
	}

	f, err := os.Create(projFilePath)
	if err != nil {
		return fmt.Errorf("error creating project file: %s", err.Error())
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(tpf); err != nil {
		return fmt.Errorf("error writing project file: %s", err.Error())
	}

	return nil
}
