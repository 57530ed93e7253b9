//go:build !ulog_id8

package ulog

// Log5..Log8 emit the matching Site5..Site8 call-sites as one packet per
// argument, every packet after the first carrying the continuation flag,
// per spec.md §4.2's emission rule, exactly like Log2..Log4.

// Log5 emits a five-argument log record as five packets.
func Log5[A, B, C, D, E Arg](site *CallSite, a A, b B, c C, d D, e E) {
	if site == nil {
		return
	}
	p0, n0 := encode(a)
	Default.enqueue(newPacket(site.id, p0[:n0]))
	p1, n1 := encode(b)
	Default.enqueue(newPacket(site.id|continuationFlag, p1[:n1]))
	p2, n2 := encode(c)
	Default.enqueue(newPacket(site.id|continuationFlag, p2[:n2]))
	p3, n3 := encode(d)
	Default.enqueue(newPacket(site.id|continuationFlag, p3[:n3]))
	p4, n4 := encode(e)
	Default.enqueue(newPacket(site.id|continuationFlag, p4[:n4]))
}

// Log6 emits a six-argument log record as six packets.
func Log6[A, B, C, D, E, F Arg](site *CallSite, a A, b B, c C, d D, e E, f F) {
	if site == nil {
		return
	}
	p0, n0 := encode(a)
	Default.enqueue(newPacket(site.id, p0[:n0]))
	p1, n1 := encode(b)
	Default.enqueue(newPacket(site.id|continuationFlag, p1[:n1]))
	p2, n2 := encode(c)
	Default.enqueue(newPacket(site.id|continuationFlag, p2[:n2]))
	p3, n3 := encode(d)
	Default.enqueue(newPacket(site.id|continuationFlag, p3[:n3]))
	p4, n4 := encode(e)
	Default.enqueue(newPacket(site.id|continuationFlag, p4[:n4]))
	p5, n5 := encode(f)
	Default.enqueue(newPacket(site.id|continuationFlag, p5[:n5]))
}

// Log7 emits a seven-argument log record as seven packets.
func Log7[A, B, C, D, E, F, G Arg](site *CallSite, a A, b B, c C, d D, e E, f F, g G) {
	if site == nil {
		return
	}
	p0, n0 := encode(a)
	Default.enqueue(newPacket(site.id, p0[:n0]))
	p1, n1 := encode(b)
	Default.enqueue(newPacket(site.id|continuationFlag, p1[:n1]))
	p2, n2 := encode(c)
	Default.enqueue(newPacket(site.id|continuationFlag, p2[:n2]))
	p3, n3 := encode(d)
	Default.enqueue(newPacket(site.id|continuationFlag, p3[:n3]))
	p4, n4 := encode(e)
	Default.enqueue(newPacket(site.id|continuationFlag, p4[:n4]))
	p5, n5 := encode(f)
	Default.enqueue(newPacket(site.id|continuationFlag, p5[:n5]))
	p6, n6 := encode(g)
	Default.enqueue(newPacket(site.id|continuationFlag, p6[:n6]))
}

// Log8 emits an eight-argument log record as eight packets, the
// MAX_ARGS=8 ceiling of the 16-bit ID build.
func Log8[A, B, C, D, E, F, G, H Arg](site *CallSite, a A, b B, c C, d D, e E, f F, g G, h H) {
	if site == nil {
		return
	}
	p0, n0 := encode(a)
	Default.enqueue(newPacket(site.id, p0[:n0]))
	p1, n1 := encode(b)
	Default.enqueue(newPacket(site.id|continuationFlag, p1[:n1]))
	p2, n2 := encode(c)
	Default.enqueue(newPacket(site.id|continuationFlag, p2[:n2]))
	p3, n3 := encode(d)
	Default.enqueue(newPacket(site.id|continuationFlag, p3[:n3]))
	p4, n4 := encode(e)
	Default.enqueue(newPacket(site.id|continuationFlag, p4[:n4]))
	p5, n5 := encode(f)
	Default.enqueue(newPacket(site.id|continuationFlag, p5[:n5]))
	p6, n6 := encode(g)
	Default.enqueue(newPacket(site.id|continuationFlag, p6[:n6]))
	p7, n7 := encode(h)
	Default.enqueue(newPacket(site.id|continuationFlag, p7[:n7]))
}
