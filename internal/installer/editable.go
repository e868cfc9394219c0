package installer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/airlift-sh/airlift/internal/config"
	"github.com/airlift-sh/airlift/internal/messages"
)

// knownSubprojects are the fixed sub-project directories of the Airflow
// source tree installed editable alongside the root project when present.
var knownSubprojects = []string{
	"airflow-core",
	"task-sdk",
	"airflow-ctl",
	"kubernetes-tests",
	"docker-tests",
	"devel-common",
	"dev",
}

// providersDir is the search root for dynamically discovered sub-projects.
const providersDir = "providers"

// Provider is a provider sub-project discovered under providers/.
type Provider struct {
	// Dir is the directory containing the provider's pyproject.toml.
	Dir string
	// PackageName comes from provider.yaml when present.
	PackageName string
}

// editableSpecifiers composes the editable install flags for the local
// sources method: the root project with extras, the known sub-projects,
// and every discovered provider directory.
func editableSpecifiers(cfg *config.Config, extras string) ([]string, error) {
	root := cfg.Install.SourcesRoot
	if root == "" {
		root = "."
	}
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf(messages.InstallerSourcesMissingFmt, root)
	}

	specs := []string{"--editable", root + extras}
	for _, sub := range knownSubprojects {
		dir := filepath.Join(root, sub)
		if _, err := os.Stat(filepath.Join(dir, "pyproject.toml")); err == nil {
			specs = append(specs, "--editable", dir)
		}
	}

	providers, err := DiscoverProviders(root)
	if err != nil {
		return nil, err
	}
	for _, provider := range providers {
		specs = append(specs, "--editable", provider.Dir)
	}
	return specs, nil
}

// DiscoverProviders walks providers/ under root and returns every
// directory that carries a pyproject.toml, in lexical order. Provider
// metadata is read from provider.yaml when the file exists.
func DiscoverProviders(root string) ([]Provider, error) {
	searchRoot := filepath.Join(root, providersDir)
	if _, err := os.Stat(searchRoot); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf(messages.InstallerDiscoverEditableFmt, searchRoot, err)
	}

	var providers []Provider
	err := filepath.WalkDir(searchRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if _, err := os.Stat(filepath.Join(path, "pyproject.toml")); err != nil {
			return nil
		}
		providers = append(providers, Provider{
			Dir:         path,
			PackageName: providerPackageName(path),
		})
		// Providers do not nest; no need to descend further.
		return fs.SkipDir
	})
	if err != nil {
		return nil, fmt.Errorf(messages.InstallerDiscoverEditableFmt, searchRoot, err)
	}
	return providers, nil
}

// providerPackageName reads the package-name field from provider.yaml,
// returning "" when the manifest is missing or malformed. The name is
// informational only, so discovery never fails on it.
func providerPackageName(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "provider.yaml"))
	if err != nil {
		return ""
	}
	var manifest struct {
		PackageName string `yaml:"package-name"`
	}
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return ""
	}
	return manifest.PackageName
}
