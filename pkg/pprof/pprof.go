package pprof

import (
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Profiler writes cpu.pprof while running and memory.pprof on Stop.
type Profiler struct {
	dir string
	cpu *os.File
}

// Dir resolves the profile directory, ~/.chartfmt when path is empty.
func Dir(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user home directory")
	}
	return filepath.Join(home, ".chartfmt"), nil
}

// Start begins CPU profiling into path.
func Start(path string) (*Profiler, error) {
	dir, err := Dir(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create pprof directory")
	}

	cpuFile := filepath.Join(dir, "cpu.pprof")
	f, err := os.Create(cpuFile)
	if err != nil {
		return nil, errors.Wrap(err, "could not create CPU profile file")
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "could not start CPU profile")
	}

	log.Info().Str("path", cpuFile).Msg("CPU profiling started")
	return &Profiler{dir: dir, cpu: f}, nil
}

// Stop ends CPU profiling and writes a heap profile.
func (p *Profiler) Stop() {
	if p == nil {
		return
	}
	pprof.StopCPUProfile()
	if err := p.cpu.Close(); err != nil {
		log.Error().Err(err).Msg("Could not close CPU profile")
	}

	memFile := filepath.Join(p.dir, "memory.pprof")
	f, err := os.Create(memFile)
	if err != nil {
		log.Error().Err(err).Str("path", memFile).Msg("Could not create memory profile file")
		return
	}
	defer f.Close()

	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Error().Err(err).Str("path", memFile).Msg("Could not write memory profile")
		return
	}
	log.Info().Str("path", memFile).Msg("Memory profile written")
}
