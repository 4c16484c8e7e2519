package debug

import "runtime"

// OnFail is called with the location and message of a failed assertion
// before the panic is raised. It must not return if the application cannot
// unwind; the usual bare-metal hook masks interrupts and spins or requests a
// system reset. A nil hook goes straight to panic, which is the right
// behavior in hosted tests.
var OnFail func(file string, line int, fn, message string)

func fail(message string) {
	if OnFail != nil {
		pc, file, line, _ := runtime.Caller(2)
		fn := ""
		if f := runtime.FuncForPC(pc); f != nil {
			fn = f.Name()
		}
		OnFail(file, line, fn, message)
	}
	panic(message)
}
