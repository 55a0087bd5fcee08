package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

// stdinArg names standard input on the command line.
const stdinArg = "-"

// useStdin reports whether a command should read in instead of files: when
// "-" is the only argument, or when there are no arguments and in is piped
// or redirected from a file. An interactive terminal or a character device
// such as /dev/null does not count.
func useStdin(in io.Reader, args []string) bool {
	if len(args) == 1 && args[0] == stdinArg {
		return true
	}
	if len(args) > 0 {
		return false
	}

	f, ok := in.(*os.File)
	if !ok {
		return in != nil
	}
	if term.IsTerminal(int(f.Fd())) {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	mode := info.Mode()
	return mode&os.ModeNamedPipe != 0 || mode.IsRegular()
}
