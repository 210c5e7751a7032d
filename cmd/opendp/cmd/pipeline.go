package cmd

import (
	"github.com/OpenTraceLab/OpenTraceDP/pkg/circuit"
	"github.com/OpenTraceLab/OpenTraceDP/pkg/constraints"
	"github.com/OpenTraceLab/OpenTraceDP/pkg/errors"
	"github.com/OpenTraceLab/OpenTraceDP/pkg/pdb"
)

// loadDesign validates the configuration and reads the design file.
func loadDesign() (*pdb.Design, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("reading design", "file", cfg.Design)
	return pdb.ParseFile(cfg.Design)
}

// loadConstraints reads the configured constraints file. A missing file is
// only an error when the configuration requires one.
func loadConstraints() (*constraints.Constraints, error) {
	if cfg.Constraints == "" {
		return nil, nil
	}
	cons, err := constraints.ParseFile(cfg.Constraints)
	if err != nil {
		if errors.Is(err, errors.ErrCodeFileNotFound) && !cfg.ConstraintsRequired {
			logger.Warn("continuing without constraints", "err", err)
			return nil, nil
		}
		return nil, err
	}
	return cons, nil
}

func newCircuit() *circuit.Circuit {
	opts := []circuit.Option{
		circuit.WithLogger(logger),
		circuit.WithIgnoreGroups(cfg.Grid.IgnoreGroups),
	}
	if !cfg.Grid.MarkFixed {
		opts = append(opts, circuit.WithFixedCellMarker(nil))
	}
	return circuit.New(opts...)
}

// prepare runs the whole pipeline with the configured constraints.
func prepare(db *pdb.Design) (*circuit.Circuit, *circuit.Result, error) {
	cons, err := loadConstraints()
	if err != nil {
		return nil, nil, err
	}

	c := newCircuit()
	var hooks []func(*circuit.Circuit) error
	if cons != nil {
		hooks = append(hooks, cons.Apply)
	}
	res, err := c.Prepare(db, hooks...)
	return c, res, err
}
