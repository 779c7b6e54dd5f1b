// Package wavstrip rewrites RIFF/WAVE files down to their essential chunks.
//
// A Reader walks the chunk sequence of a WAVE container, validates the
// RIFF framing and the PCM fmt chunk, and collects the sample data while
// every other chunk (LIST/INFO, bext, cue, JUNK, ...) is dropped. A Writer
// then emits a minimal container holding only the fmt and data chunks, with
// the RIFF size recomputed from scratch.
//
// Which chunk types survive is decided by a Policy:
//
//   - fmt  -> ParseFormat
//   - data -> ParseDataAndStop
//   - LIST -> SkimSubfield
//   - fact -> Reject
//   - anything else -> SkipWithPadding
//
// The whole source is scanned before a single byte is written, so a rejected
// input never produces a destination file:
//
//	err := wavstrip.StripMetadata("in.wav", "out.wav")
//	if errors.Is(err, wavstrip.ErrUnsupportedCodec) {
//		// not linear PCM
//	}
//
// Only uncompressed PCM is supported. Samples are copied verbatim and never
// decoded.
package wavstrip
