package ulog

import "sync"

// CallSite is the metadata record interned for one textual log invocation.
// In the original C/C++ library this lives in a 256-byte-aligned,
// non-allocatable linker section so the host can walk the image and the
// runtime never reads it. Go has no such section reachable from a
// library, so per spec.md's "Design Notes" (link-time counter option)
// call-sites are interned into a process-wide slice by a package-level
// var initializer, which runs once before main() -- the closest Go
// analog to "link time". The record is immutable for the life of the
// process once registered.
type CallSite struct {
	id       IDType
	Severity Severity
	Line     uint32
	TypeCode TypeCode
	File     string
	Format   string
	nargs    int
}

// ID returns the call-site's wire identifier.
func (c *CallSite) ID() IDType { return c.id }

// NArgs returns the number of arguments this call-site was registered
// with, for host tooling (see the decode subpackage) that needs to know
// how many packets make up one logical record.
func (c *CallSite) NArgs() int { return c.nargs }

var registry struct {
	mu    sync.Mutex
	sites []*CallSite
}

// Metadata returns a snapshot of every registered call-site in
// registration order, playing the role of "a host tool walks the
// metadata section": index i of the result is the call-site whose id is
// i (8-bit variant) or i with the continuation bit cleared (16-bit
// variant).
func Metadata() []*CallSite {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	out := make([]*CallSite, len(registry.sites))
	copy(out, registry.sites)
	return out
}

// register interns one call-site and returns its record, whose ID() is
// its identifier. Call-sites below Threshold are not interned at all:
// register (and so every Site*) returns nil, and
// every Log* on a nil *CallSite is a no-op, mirroring the original's
// "no metadata, no code" elision as closely as a library can.
func register(sev Severity, file string, line uint32, format string, nargs int, tags ...TypeTag) *CallSite {
	if !enabled(sev) {
		return nil
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	id := len(registry.sites)
	if id >= maxCallSites {
		panic("ulog: call-site capacity exceeded; this is a link-time error in the original design")
	}

	cs := &CallSite{
		id:       IDType(id),
		Severity: sev,
		Line:     line,
		TypeCode: packTypeCode(tags...),
		File:     file,
		Format:   format,
		nargs:    nargs,
	}
	registry.sites = append(registry.sites, cs)
	return cs
}

// Site0 registers a call-site with no arguments.
func Site0(sev Severity, file string, line uint32, format string) *CallSite {
	return register(sev, file, line, format, 0)
}

// Site1 registers a single-argument call-site; A's TypeTag is derived
// once, at registration time.
func Site1[A Arg](sev Severity, file string, line uint32, format string) *CallSite {
	return register(sev, file, line, format, 1, tagOf[A]())
}

// Site2 registers a two-argument call-site.
func Site2[A, B Arg](sev Severity, file string, line uint32, format string) *CallSite {
	return register(sev, file, line, format, 2, tagOf[A](), tagOf[B]())
}

// Site3 registers a three-argument call-site.
func Site3[A, B, C Arg](sev Severity, file string, line uint32, format string) *CallSite {
	return register(sev, file, line, format, 3, tagOf[A](), tagOf[B](), tagOf[C]())
}

// Site4 registers a four-argument call-site, the MAX_ARGS=4 ceiling of
// the 8-bit ID build. The 16-bit build raises this to MAX_ARGS=8 via
// Site5..Site8 in callsite_wide.go, since only that build has a spare
// continuation bit to chain more than 4 argument packets together.
func Site4[A, B, C, D Arg](sev Severity, file string, line uint32, format string) *CallSite {
	return register(sev, file, line, format, 4, tagOf[A](), tagOf[B](), tagOf[C](), tagOf[D]())
}

// SiteStr registers a single string-argument call-site.
func SiteStr(sev Severity, file string, line uint32, format string) *CallSite {
	return register(sev, file, line, format, 1, TagStr)
}

// Site1Str registers a call-site taking one leading scalar argument
// followed by one string argument (e.g. "Sensor %d: %s").
func Site1Str[A Arg](sev Severity, file string, line uint32, format string) *CallSite {
	return register(sev, file, line, format, 2, tagOf[A](), TagStr)
}
