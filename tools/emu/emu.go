// Package emu boots linked test programs under an emulator and turns their
// console output into an exit code.
package emu

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/aymanbagabas/go-pty"
	"github.com/buildkite/shellwords"
)

const usageString = `Emulated test runner.

Usage: %s [flags] <elffile>

Boots the program under an emulator and watches the console for a verdict:
a PASS line exits 0, a FAIL line or a runtime crash exits 1, and so does a
run with no verdict before the timeout. The emulator gets a pseudo terminal
so its output stays line buffered no matter what it is talking to.

`

var (
	flags = flag.NewFlagSet("emu", flag.ExitOnError)

	qemu = flags.String("qemu", "qemu-system-arm -M netduinoplus2 -semihosting -nographic",
		"emulator command, given the ELF through -kernel")
	timeout = flags.Duration("timeout", 2*time.Minute, "give up after this long without a verdict")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "emu")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() != 1 {
		flags.Usage()
		os.Exit(1)
	}

	argv, err := shellwords.Split(*qemu)
	if err != nil {
		log.Fatalln("emulator command:", err)
	}
	argv = append(argv, "-kernel", flags.Arg(0))

	code, err := run(argv, *timeout)
	if err != nil {
		log.Fatalln(err)
	}
	os.Exit(code)
}

// run executes argv on a pseudo terminal and scans the output for a
// verdict. Only an explicit PASS earns exit code 0.
func run(argv []string, timeout time.Duration) (int, error) {
	ptmx, err := pty.New()
	if err != nil {
		return 0, fmt.Errorf("pty: %w", err)
	}
	defer ptmx.Close()

	cmd := ptmx.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("start %s: %w", argv[0], err)
	}

	kill := func() {
		if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
			log.Println("kill:", err)
		}
	}

	// The parent holds both ends of the terminal open, so the scan loop
	// below never sees EOF on its own. Reap the emulator, let the loop
	// drain what was written, then close the terminal to end it.
	waitc := make(chan struct{})
	go func() {
		cmd.Wait()
		time.Sleep(500 * time.Millisecond)
		ptmx.Close()
		close(waitc)
	}()

	sigintr := make(chan os.Signal, 1)
	signal.Notify(sigintr, os.Interrupt)
	defer signal.Stop(sigintr)
	go func() {
		select {
		case <-sigintr:
			kill()
		case <-waitc:
		}
	}()

	timer := time.AfterFunc(timeout, func() {
		log.Println("no verdict after", timeout)
		kill()
	})
	defer timer.Stop()

	code := 1
	exiting := false
	scanner := bufio.NewScanner(ptmx)
	for scanner.Scan() {
		line := scanner.Text()
		log.Println(line)
		if exiting {
			continue
		}
		if v, ok := verdict(line); ok {
			code, exiting = v, true
			timer.Stop()
			// A crashing program still has a stack trace to print;
			// kill only after it had its chance.
			time.AfterFunc(500*time.Millisecond, kill)
		}
	}
	<-waitc
	return code, nil
}

// verdict classifies one line of console output. The PASS and FAIL matches
// are exact: go test prints subtest results as "--- FAIL: ..." and those
// must not end the run early.
func verdict(line string) (code int, ok bool) {
	switch {
	case line == "PASS":
		return 0, true
	case line == "FAIL",
		strings.HasPrefix(line, "panic:"),
		strings.HasPrefix(line, "fatal error:"):
		return 1, true
	}
	return 0, false
}
