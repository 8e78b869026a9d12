// Package config provides the analysis-session configuration: which atom,
// where the solver output lives and which holes to load up front.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/user/fortran_output_go/internal/atom"
)

// EnvPrefix is prepended to environment overrides, e.g. ONEPHOTON_DATA_ROOT.
const EnvPrefix = "ONEPHOTON"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// HoleConfig selects a hole to load.
type HoleConfig struct {
	N     int `mapstructure:"n"`
	Kappa int `mapstructure:"kappa"`
	// BindingEnergy in Hartree. Loaded from the output when omitted.
	BindingEnergy *float64 `mapstructure:"binding_energy"`
}

// DiagConfig overrides the diagonal data file locations.
type DiagConfig struct {
	Eigenvalues    string `mapstructure:"eigenvalues"`
	MatrixElements string `mapstructure:"matrix_elements"`
}

// Config holds all configuration options for an analysis session.
type Config struct {
	AtomName string       `mapstructure:"atom_name"`
	DataRoot string       `mapstructure:"data_root"`
	OmegaIR  float64      `mapstructure:"omega_ir"` // Hartree
	LoadDiag bool         `mapstructure:"load_diag"`
	Diag     DiagConfig   `mapstructure:"diag"`
	Holes    []HoleConfig `mapstructure:"holes"`
}

// Defaults returns the configuration used for keys missing from the file.
func Defaults() Config {
	return Config{
		DataRoot: ".",
	}
}

// Load reads the YAML (or any viper-supported) file at path from fsys,
// applies ONEPHOTON_* environment overrides and validates the result.
// An empty path yields defaults plus environment.
func Load(fsys afero.Fs, path string) (Config, error) {
	v := viper.New()
	v.SetFs(fsys)

	defaults := Defaults()
	v.SetDefault("atom_name", defaults.AtomName)
	v.SetDefault("data_root", defaults.DataRoot)
	v.SetDefault("omega_ir", defaults.OmegaIR)
	v.SetDefault("load_diag", defaults.LoadDiag)
	v.SetDefault("diag.eigenvalues", defaults.Diag.Eigenvalues)
	v.SetDefault("diag.matrix_elements", defaults.Diag.MatrixElements)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration names an atom, a data root and
// only physical holes.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.AtomName) == "" {
		return fmt.Errorf("%w: atom_name is required", ErrInvalidConfig)
	}
	if strings.TrimSpace(cfg.DataRoot) == "" {
		return fmt.Errorf("%w: data_root is required", ErrInvalidConfig)
	}
	for i, h := range cfg.Holes {
		if err := atom.ValidateKappa(h.Kappa); err != nil {
			return fmt.Errorf("%w: holes[%d]: %w", ErrInvalidConfig, i, err)
		}
		if h.N <= atom.LFromKappa(h.Kappa) {
			return fmt.Errorf("%w: holes[%d]: n=%d must exceed l=%d",
				ErrInvalidConfig, i, h.N, atom.LFromKappa(h.Kappa))
		}
	}
	return nil
}
