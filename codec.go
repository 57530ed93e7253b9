package ulog

// Sentinel is the framing byte reserved by the codec; it never appears
// inside the body of an encoded frame, so receivers resynchronize on
// sentinel boundaries. Fixed at 0xA6, matching the original's EOF define
// and spec.md §4.4.
const Sentinel byte = 0xA6

// scratchSize is TxScratch's capacity: payload_max + id_size + 2, the
// worst case for COBS-style stuffing of a 4-byte payload, matching
// spec.md §3 and the original's tx_encoded sizing.
const scratchSize = maxPayload + 2 /* max idByteWidth */ + 2

// encodeFrame byte-stuffs body into dst (which must have capacity
// scratchSize) using the classical consistent-overhead variant: a
// leading code byte records the distance to the next sentinel (or to
// end-of-frame), sentinel bytes in the input are elided and replace the
// pending code byte, and the frame is terminated by one literal sentinel.
// It returns the number of bytes written, always <= len(body)+2 for the
// payload sizes this module ever encodes.
func encodeFrame(dst []byte, body []byte) int {
	writeIndex := 1
	codeIndex := 0
	code := byte(1)

	for _, b := range body {
		if b == Sentinel {
			dst[codeIndex] = code
			codeIndex = writeIndex
			writeIndex++
			code = 1
		} else {
			dst[writeIndex] = b
			writeIndex++
			code++
		}
	}

	dst[codeIndex] = code
	dst[writeIndex] = Sentinel
	writeIndex++

	return writeIndex
}

// decodeFrames is the reference, host-side decoder described
// informatively in spec.md §4.4: it walks a byte stream, desuffices each
// sentinel-terminated frame, and returns the recovered packet bodies in
// stream order. Empty frames (two sentinels back to back) are treated as
// idle filler and skipped, matching "Empty frames are ignored".
func decodeFrames(stream []byte) [][]byte {
	var frames [][]byte
	var cur []byte

	i := 0
	for i < len(stream) {
		code := stream[i]
		i++
		if code == Sentinel {
			// A sentinel where a code byte is expected ends an empty frame:
			// idle filler, skipped.
			cur = nil
			continue
		}
		if code == 0 {
			// Malformed: a zero code byte can't occur from this encoder;
			// resynchronize by skipping to the next sentinel.
			for i < len(stream) && stream[i] != Sentinel {
				i++
			}
			if i < len(stream) {
				i++
			}
			cur = nil
			continue
		}

		run := int(code) - 1
		if i+run > len(stream) {
			break // truncated stream
		}
		cur = append(cur, stream[i:i+run]...)
		i += run

		if code < 255 {
			if i < len(stream) && stream[i] == Sentinel {
				i++
				if len(cur) > 0 {
					frames = append(frames, cur)
				}
				cur = nil
				continue
			}
			// code<255 but no sentinel follows within the frame body: a
			// literal sentinel belongs in the reconstructed data.
			cur = append(cur, Sentinel)
		}
	}

	return frames
}
