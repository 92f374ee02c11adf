// seehuhn.de/go/glyphren - rename glyphs in FontForge font sources
// Copyright (C) 2026  The glyphren Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package profile enables CPU and memory profiling for command line tools.
package profile

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/sirupsen/logrus"
)

// Profiler writes the profiles requested when it was started.
type Profiler struct {
	cpuFile    *os.File
	memprofile string
	log        logrus.Ext1FieldLogger
}

// Start begins CPU profiling to the file cpuprofile and arranges for a heap
// profile to be written to memprofile when Stop is called.  Empty file
// names disable the corresponding profile.
func Start(cpuprofile, memprofile string, log logrus.Ext1FieldLogger) (*Profiler, error) {
	p := &Profiler{memprofile: memprofile, log: log}
	if cpuprofile == "" {
		return p, nil
	}

	fd, err := os.Create(cpuprofile)
	if err != nil {
		return nil, fmt.Errorf("CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(fd); err != nil {
		fd.Close()
		return nil, fmt.Errorf("CPU profile: %w", err)
	}
	p.cpuFile = fd
	log.Debugf("writing CPU profile to %s", cpuprofile)
	return p, nil
}

// Stop finishes all profiles.  Errors are logged.
func (p *Profiler) Stop() {
	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		if err := p.cpuFile.Close(); err != nil {
			p.log.Errorf("CPU profile: %v", err)
		}
		p.cpuFile = nil
	}

	if p.memprofile == "" {
		return
	}
	fd, err := os.Create(p.memprofile)
	if err != nil {
		p.log.Errorf("memory profile: %v", err)
		return
	}
	defer fd.Close()

	runtime.GC()
	allocs := pprof.Lookup("allocs")
	if allocs == nil {
		p.log.Error("memory profile: allocs profile not available")
		return
	}
	if err := allocs.WriteTo(fd, 0); err != nil {
		p.log.Errorf("memory profile: %v", err)
	}
}
