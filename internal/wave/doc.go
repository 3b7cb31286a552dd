// Package wave provides the waveform model and frame composition for the
// ripple animation.
//
//   - [Code]: binary waveform code, fixed or drawn at random
//   - [SymbolSet]: glyphs for one full crest sweep
//   - [NextFrame]: pure frame transition from the previous glyphs
//   - [FrameState]: history and counter owned by a render loop
//
// # Example
//
//	code, _ := wave.NewCode(wave.DefaultCode)
//	symbols, _ := wave.NewSymbolSet(wave.DefaultSymbols)
//	var st wave.FrameState
//	for i := 0; i < 100; i++ {
//		glyphs := st.Step(code, symbols, 40)
//		fmt.Printf("\r%s", string(glyphs))
//	}
//
// # Thread Safety
//
// Code and SymbolSet are immutable and safe to share. FrameState is NOT
// thread-safe and belongs to a single loop.
package wave
