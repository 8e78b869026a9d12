package onephoton

import (
	"fmt"

	"github.com/user/fortran_output_go/internal/config"
)

// NewFromConfig creates a registry for cfg.AtomName and loads everything the
// configuration asks for.
func NewFromConfig(cfg config.Config, opts ...Option) (*OnePhoton, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	o := New(cfg.AtomName, cfg.OmegaIR, opts...)
	if err := o.LoadFromConfig(cfg); err != nil {
		return nil, err
	}
	return o, nil
}

// LoadFromConfig loads the diagonal data, if enabled, and every configured
// hole from cfg.DataRoot. Already loaded entries are left untouched.
func (o *OnePhoton) LoadFromConfig(cfg config.Config) error {
	if cfg.LoadDiag {
		err := o.LoadDiagData(cfg.DataRoot, LoadDiagOptions{
			Eigenvalues:    cfg.Diag.Eigenvalues,
			MatrixElements: cfg.Diag.MatrixElements,
		})
		if err != nil {
			return fmt.Errorf("loading diagonal data: %w", err)
		}
	}
	for _, h := range cfg.Holes {
		err := o.LoadHole(h.N, h.Kappa, cfg.DataRoot, LoadHoleOptions{BindingEnergy: h.BindingEnergy})
		if err != nil {
			return fmt.Errorf("loading hole n=%d kappa=%d: %w", h.N, h.Kappa, err)
		}
	}
	return nil
}
