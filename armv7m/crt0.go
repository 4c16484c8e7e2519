package armv7m

import "github.com/cbiffle/etl-sub000/debug"

// BootImage names the memory regions and initializer tables the reset
// sequence operates on. On hardware the linker provides their bounds
// through the Sym... symbols; hosted callers and the test suite assemble
// one from plain slices.
type BootImage struct {
	// DataImage is the initialized-data load image in ROM, starting at
	// _etext. Its length equals that of Data.
	DataImage []byte
	// Data is the initialized-data region in RAM, _data through _edata.
	Data []byte
	// BSS is the zero-fill region, _edata through _ebss.
	BSS []byte

	// Preinit and Init are the function tables between the
	// _preinit_array and _init_array bounds, in ascending address order.
	// Init holds the static constructors.
	Preinit []func()
	Init    []func()
}

// CRT0Init prepares memory and runs the three-phase initializer sequence:
// copy the data image into RAM, zero BSS, then run the preinit table
// followed by the init table, each in table order. After it returns every
// statically constructed object, peripheral singletons included, is valid.
//
// The toolchain's _init prologue/epilogue bracket contributes no behavior
// beyond ordering and is not reproduced.
func CRT0Init(img *BootImage) {
	debug.Assert(len(img.DataImage) == len(img.Data), "crt0: data image length mismatch")

	copy(img.Data, img.DataImage)
	clear(img.BSS)

	for _, f := range img.Preinit {
		f()
	}
	for _, f := range img.Init {
		f()
	}
}

// ResetHandler is the reset handler sequence: initialize memory, run
// constructors, transfer to main. It does not return. If main returns there
// is no hosted runtime to exit to, so the core parks in an infinite loop.
func ResetHandler(img *BootImage, main func()) {
	CRT0Init(img)
	main()
	for {
	}
}
