// Package profile provides a simple way to generate pprof compatible profiles
// of a circuit's constraint emission, broken down by scope.
//
// Since the circuit environment is not thread safe and operates in a single
// go-routine, this package is also NOT thread safe across sessions and is
// meant to be driven from the circuit-building go-routine.
package profile

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/Zibelmann/snarkVM/logger"
	"github.com/google/pprof/profile"
)

var (
	mu             sync.Mutex
	sessions       []*Profile // active sessions
	activeSessions uint32
)

// Profile represents an active constraint profiling session.
type Profile struct {
	// defaults to ./snarkvm.pprof
	// if blank, profile is not written to disk
	filePath string

	// actual pprof profile struct
	// details on pprof format: https://github.com/google/pprof/blob/main/proto/README.md
	pprof profile.Profile

	functions map[string]*profile.Function
	locations map[string]*profile.Location

	nbConstraints int
}

// Option defines configuration Options for Profile.
type Option func(*Profile)

// WithPath controls the profile destination file. If blank, profile is not written.
//
// Defaults to ./snarkvm.pprof.
func WithPath(path string) Option {
	return func(p *Profile) {
		p.filePath = path
	}
}

// WithNoOutput indicates that the profile is not going to be written to disk.
//
// This is equivalent to WithPath("")
func WithNoOutput() Option {
	return func(p *Profile) {
		p.filePath = ""
	}
}

// Start creates a new active profiling session. When Stop() is called, this
// session is removed from the active sessions and may be serialized to disk
// as a pprof compatible file (see WithPath option).
//
// It is allowed to create multiple overlapping profiling sessions for one
// circuit.
func Start(options ...Option) *Profile {
	p := &Profile{
		functions: make(map[string]*profile.Function),
		locations: make(map[string]*profile.Location),
		filePath:  filepath.Join(".", "snarkvm.pprof"),
	}

	p.pprof.SampleType = []*profile.ValueType{{
		Type: "constraints",
		Unit: "count",
	}}

	for _, option := range options {
		option(p)
	}

	log := logger.Logger()
	if p.filePath == "" {
		log.Warn().Msg("snarkvm profiling enabled [not writing to disk]")
	} else {
		log.Info().Str("path", p.filePath).Msg("snarkvm profiling enabled")
	}

	mu.Lock()
	sessions = append(sessions, p)
	mu.Unlock()
	atomic.AddUint32(&activeSessions, 1)

	return p
}

// Stop removes the profile from the active sessions and may write the pprof
// file to disk. See WithPath option.
func (p *Profile) Stop() {
	mu.Lock()
	for i := range sessions {
		if sessions[i] == p {
			sessions = append(sessions[:i], sessions[i+1:]...)
			break
		}
	}
	mu.Unlock()
	atomic.AddUint32(&activeSessions, ^uint32(0))

	log := logger.Logger()

	if p.filePath != "" {
		f, err := os.Create(p.filePath)
		if err != nil {
			log.Fatal().Err(err).Msg("creating profile file")
		}
		defer f.Close()
		if err := p.pprof.Write(f); err != nil {
			log.Fatal().Err(err).Msg("writing profile")
		}
		log.Info().Str("path", p.filePath).Int("nbConstraints", p.nbConstraints).Msg("profile written")
	}
}

// NbConstraints returns the number of constraints recorded by this session.
func (p *Profile) NbConstraints() int {
	return p.nbConstraints
}

// RecordConstraint attributes one emitted constraint to the given scope path
// in every active session. It is a no-op when no session is active.
func RecordConstraint(scope []string) {
	if atomic.LoadUint32(&activeSessions) == 0 {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	for _, p := range sessions {
		p.record(scope)
	}
}

func (p *Profile) record(scope []string) {
	p.nbConstraints++

	// one location per scope prefix, leaf first, like a call stack
	locs := make([]*profile.Location, 0, len(scope)+1)
	for i := len(scope); i > 0; i-- {
		locs = append(locs, p.location(scope[:i]))
	}
	if len(locs) == 0 {
		locs = append(locs, p.location([]string{"(unscoped)"}))
	}

	p.pprof.Sample = append(p.pprof.Sample, &profile.Sample{
		Location: locs,
		Value:    []int64{1},
	})
}

func (p *Profile) location(path []string) *profile.Location {
	key := strings.Join(path, "/")
	if l, ok := p.locations[key]; ok {
		return l
	}
	f := p.function(path[len(path)-1], key)
	l := &profile.Location{
		ID:   uint64(len(p.pprof.Location) + 1),
		Line: []profile.Line{{Function: f}},
	}
	p.pprof.Location = append(p.pprof.Location, l)
	p.locations[key] = l
	return l
}

func (p *Profile) function(name, fullName string) *profile.Function {
	if f, ok := p.functions[fullName]; ok {
		return f
	}
	f := &profile.Function{
		ID:         uint64(len(p.pprof.Function) + 1),
		Name:       fullName,
		SystemName: name,
	}
	p.pprof.Function = append(p.pprof.Function, f)
	p.functions[fullName] = f
	return f
}
