// Package ulog is an ultra-lightweight structured logging runtime for
// memory-constrained embedded devices and interrupt contexts.
//
// Call-sites carry no runtime format work: severity, source location,
// format string and argument type signature are interned once, at
// package-init time, into a process-wide metadata registry. The hot path
// invoked on every log call only ever computes a small byte payload and
// pushes a fixed-size Packet onto a lock-guarded ring buffer. A cooperative
// drain engine moves one frame at a time to a Port's byte sink whenever the
// transport signals readiness.
//
// A typical call-site looks like:
//
//	var siteBoot = ulog.Site0(ulog.Info, "boot.go", 12, "Boot")
//	...
//	ulog.Log0(siteBoot)
//
//	var siteTemp = ulog.Site1[float32](ulog.Info, "sensor.go", 40, "Temp: %f")
//	...
//	ulog.Log1(siteTemp, temperature)
package ulog
