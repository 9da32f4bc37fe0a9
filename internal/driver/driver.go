// Package driver runs the block header pipeline against the filesystem.
package driver

import (
	"github.com/kr/pretty"
	"github.com/sirupsen/logrus"
	"github.com/woozymasta/blockgen"
)

// State is a step of the generation pipeline.
type State int

const (
	// Idle is the state before Run.
	Idle State = iota
	// Reading loads the block list.
	Reading
	// Validating checks block textures.
	Validating
	// Emitting writes the header.
	Emitting
	// Succeeded is terminal: the header was written.
	Succeeded
	// Failed is terminal: nothing was written.
	Failed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Reading:
		return "reading"
	case Validating:
		return "validating"
	case Emitting:
		return "emitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Driver reads the block list, validates textures and writes the header.
// A Driver runs once.
type Driver struct {
	cfg   Config
	log   logrus.FieldLogger
	chk   blockgen.Checker
	state State
}

// New creates a Driver. A nil chk checks the filesystem under cfg.Root.
func New(cfg Config, log logrus.FieldLogger, chk blockgen.Checker) *Driver {
	if chk == nil {
		chk = blockgen.FileChecker{Resolver: blockgen.PathResolver{Root: cfg.Root}}
	}
	return &Driver{cfg: cfg, log: log, chk: chk}
}

// State returns the current pipeline state.
func (d *Driver) State() State {
	return d.state
}

// Run executes the pipeline. The output file is written only if every
// texture exists.
func (d *Driver) Run() error {
	log := d.log.WithFields(logrus.Fields{
		"input":  d.cfg.Input,
		"output": d.cfg.Output,
	})
	log.Debugf("config: %# v", pretty.Formatter(d.cfg))

	d.enter(Reading)
	reg, err := blockgen.DecodeFile(d.cfg.path(d.cfg.Input))
	if err != nil {
		return d.fail(err)
	}
	log = log.WithField("blocks", reg.Len())

	// Name issues never fail a run; Lint reports them as warnings.
	for _, issue := range blockgen.Validate(reg, &blockgen.ValidateOptions{DisableFileCheck: true}) {
		log.Debug(issue.String())
	}

	d.enter(Validating)
	opt := d.cfg.generateOptions()
	textures, err := blockgen.TextureList(reg, d.chk, opt.Generate)
	if err != nil {
		return d.fail(err)
	}

	d.enter(Emitting)
	if err := blockgen.EncodeFile(d.cfg.path(d.cfg.Output), reg, textures, opt.Format); err != nil {
		return d.fail(err)
	}

	d.enter(Succeeded)
	log.Debugf("wrote %d textures", reg.TextureCount())
	return nil
}

// Lint reads the block list and returns every issue, including all missing
// textures. Nothing is written.
func (d *Driver) Lint() ([]blockgen.Issue, error) {
	reg, err := blockgen.DecodeFile(d.cfg.path(d.cfg.Input))
	if err != nil {
		return nil, err
	}
	return blockgen.Validate(reg, &blockgen.ValidateOptions{Root: d.cfg.Root}), nil
}

// enter moves to state s.
func (d *Driver) enter(s State) {
	d.log.WithField("state", s).Debug("entering state")
	d.state = s
}

// fail moves to Failed and returns err.
func (d *Driver) fail(err error) error {
	d.log.WithFields(logrus.Fields{"state": d.state, "error": err}).Debug("generation failed")
	d.state = Failed
	return err
}
