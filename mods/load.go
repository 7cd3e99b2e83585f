package mods

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml"

	"gcl/common"
	"gcl/report"
)

// tomlProjectFile represents the project file as it is encoded in TOML.
type tomlProjectFile struct {
	Project   *tomlProject   `toml:"project"`
	Translate *tomlTranslate `toml:"translate"`
}

// tomlProject represents the `[project]` table of a project file.
type tomlProject struct {
	Name        string `toml:"name"`
	Version     string `toml:"version"`
	GclcVersion string `toml:"gclc-version,omitempty"`
}

// tomlTranslate represents the `[translate]` table of a project file.
type tomlTranslate struct {
	Output   string `toml:"output,omitempty"`
	MaxDepth int    `toml:"max-depth,omitempty"`
	MaxSteps int    `toml:"max-steps,omitempty"`
}

// Default returns the project configuration used when no project file
// exists near the source file being translated.
func Default() *GclProject {
	return &GclProject{
		Output:   OutputNamed,
		MaxDepth: common.DefaultMaxDepth,
		MaxSteps: common.DefaultMaxSteps,
	}
}

// Load loads and validates the project file contained in the directory at
// the given path.
func Load(dir string) (*GclProject, error) {
	f, err := os.Open(filepath.Join(dir, common.ProjectFileName))
	if err != nil {
		return nil, fmt.Errorf("unable to open project file: %s", err.Error())
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading project file: %s", err.Error())
	}

	tpf := &tomlProjectFile{}
	if err := toml.Unmarshal(buff, tpf); err != nil {
		return nil, fmt.Errorf("error parsing project file: %s", err.Error())
	}

	proj := &GclProject{ProjectRoot: dir}
	if err := validateProject(proj, tpf); err != nil {
		return nil, err
	}

	return proj, nil
}

// validateProject checks the deserialized contents of a project file and
// moves them into the final project structure, filling in defaults for any
// settings the file leaves out.
func validateProject(proj *GclProject, tpf *tomlProjectFile) error {
	if tpf.Project == nil || tpf.Project.Name == "" {
		return errors.New("missing project name")
	}

	if !IsValidIdentifier(tpf.Project.Name) {
		return fmt.Errorf("`%s` is not a valid project name", tpf.Project.Name)
	}

	proj.Name = tpf.Project.Name

	if tpf.Project.Version == "" {
		return errors.New("missing project version")
	}

	version, err := semver.NewVersion(tpf.Project.Version)
	if err != nil {
		return fmt.Errorf("`%s` is not a valid semantic version", tpf.Project.Version)
	}

	proj.Version = version

	// An unsatisfied compiler constraint is only worth a warning: the
	// project may well still translate fine.
	if tpf.Project.GclcVersion != "" {
		constraint, err := semver.NewConstraint(tpf.Project.GclcVersion)
		if err != nil {
			return fmt.Errorf("`%s` is not a valid version constraint", tpf.Project.GclcVersion)
		}

		if !constraint.Check(semver.MustParse(common.GclcVersion)) {
			report.PrintWarningMessage(
				"Project",
				fmt.Sprintf("`%s` expects gclc %s but this is gclc v%s", proj.Name, tpf.Project.GclcVersion, common.GclcVersion),
			)
		}
	}

	if tpf.Translate != nil {
		proj.Output = tpf.Translate.Output
		proj.MaxDepth = tpf.Translate.MaxDepth
		proj.MaxSteps = tpf.Translate.MaxSteps
	}

	switch proj.Output {
	case OutputNamed, OutputExpanded:
	case "":
		proj.Output = OutputNamed
	default:
		return fmt.Errorf("`%s` is not a valid output mode", proj.Output)
	}

	if proj.MaxDepth <= 0 {
		proj.MaxDepth = common.DefaultMaxDepth
	}

	if proj.MaxSteps <= 0 {
		proj.MaxSteps = common.DefaultMaxSteps
	}

	return nil
}
