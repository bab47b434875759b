// Command ipp23 interprets an IPPcode23 program delivered as an XML
// document, read from -s/--source (or stdin) and executed against -i/--input
// (or stdin).
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"

	"ipp23/pkg/alert"
	"ipp23/pkg/debugserver"
	"ipp23/pkg/engine"
	"ipp23/pkg/fingerprint"
	"ipp23/pkg/ipperr"
	"ipp23/pkg/program"
	"ipp23/pkg/receipt"
	"ipp23/pkg/xmlload"
)

func printUsage(fs *flag.FlagSet) {
	fmt.Println("ipp23 - an interpreter for IPPcode23")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  ipp23 -s source.xml -i input.txt")
	fmt.Println("  ipp23 -s source.xml            (input from stdin)")
	fmt.Println("  ipp23 -i input.txt < source.xml")
	fmt.Println()
	fmt.Println("Flags:")
	fs.SetOutput(os.Stdout)
	fs.PrintDefaults()
}

func main() {
	// .env is optional; load it before flags so its values become flag
	// defaults.
	_ = godotenv.Load()

	fs := flag.NewFlagSet("ipp23", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	help := fs.Bool("h", false, "show this help message")
	helpLong := fs.Bool("help", false, "show this help message")
	source := fs.String("s", envDefault("IPP23_SOURCE", ""), "path to the XML source program")
	fs.StringVar(source, "source", *source, "path to the XML source program")
	input := fs.String("i", envDefault("IPP23_INPUT", ""), "path to the interpreted program's input")
	fs.StringVar(input, "input", *input, "path to the interpreted program's input")
	debugAddr := fs.String("debug-addr", envDefault("IPP23_DEBUG_ADDR", ""), "optional host:port to serve live BREAK/DPRINT events over WebSocket")
	receiptSecret := fs.String("receipt-secret", envDefault("IPP23_RECEIPT_SECRET", ""), "optional secret to sign a JWT run receipt emitted on exit")
	smtpHost := fs.String("notify-smtp-host", envDefault("IPP23_SMTP_HOST", ""), "optional SMTP host for fatal-error alert emails")
	smtpFrom := fs.String("notify-smtp-from", envDefault("IPP23_SMTP_FROM", ""), "From address for alert emails")
	smtpTo := fs.String("notify-smtp-to", envDefault("IPP23_SMTP_TO", ""), "To address for alert emails")

	fs.Usage = func() { printUsage(fs) }
	if err := fs.Parse(os.Args[1:]); err != nil {
		fail(ipperr.New(ipperr.WrongArguments, "%v", err))
	}

	if fs.NArg() > 0 {
		fail(ipperr.New(ipperr.WrongArguments, "unexpected positional arguments: %v", fs.Args()))
	}
	if *help || *helpLong {
		if fs.NFlag() > 1 {
			fail(ipperr.New(ipperr.WrongArguments, "-h/--help cannot be combined with other flags"))
		}
		printUsage(fs)
		os.Exit(0)
	}
	if *source == "" && *input == "" {
		fail(ipperr.New(ipperr.WrongArguments, "at least one of -s/--source or -i/--input is required"))
	}

	start := time.Now()

	sourceBytes, sourceReader, closeSource := openOrStdin(*source, "source")
	defer closeSource()
	inputReader, closeInput := openInputOrStdin(*input)
	defer closeInput()

	prog, err := xmlload.Load(sourceReader)
	if err != nil {
		handleFatal(err, sourceBytes, start, 0, *receiptSecret, *smtpHost, *smtpFrom, *smtpTo)
	}

	labels, err := program.ScanLabels(prog)
	if err != nil {
		handleFatal(err, sourceBytes, start, 0, *receiptSecret, *smtpHost, *smtpFrom, *smtpTo)
	}

	fp := fingerprint.Of(sourceBytes)
	fmt.Fprintf(os.Stderr, "ipp23: program fingerprint %s (%d instructions)\n", fp, prog.Len())

	interp := engine.New(prog, labels, inputReader, os.Stdout, os.Stderr)
	interp.SetFingerprint(fp)

	var dbgServer *debugserver.Server
	if *debugAddr != "" {
		dbgServer, err = debugserver.Start(*debugAddr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ipp23: debug server disabled: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "ipp23: debug server listening on %s\n", *debugAddr)
			interp.SetSink(dbgServer.Sink())
			defer dbgServer.Close()
		}
	}

	exitCode, runErr := interp.Run()
	if runErr != nil {
		handleFatal(runErr, sourceBytes, start, interp.InstrCount(), *receiptSecret, *smtpHost, *smtpFrom, *smtpTo)
	}

	smtpCfg := alert.Config{Host: *smtpHost, From: *smtpFrom, To: *smtpTo}
	if *receiptSecret != "" {
		emitReceipt(fp, exitCode, interp.InstrCount(), time.Since(start), *receiptSecret)
	}
	if exitCode != 0 && smtpCfg.Enabled() {
		if err := alert.Notify(smtpCfg, fp, "exit", fmt.Sprintf("guest program exited with code %d", exitCode)); err != nil {
			fmt.Fprintf(os.Stderr, "ipp23: alert email failed: %v\n", err)
		}
	}

	os.Exit(exitCode)
}

// emitReceipt signs and writes the run receipt, the last line on stderr
// before the process exits. Signing failures are logged, not fatal.
func emitReceipt(fp string, exitCode, instrCount int, duration time.Duration, secret string) {
	token, err := receipt.Sign(receipt.Summary{
		Fingerprint: fp,
		ExitCode:    exitCode,
		Instr:       instrCount,
		Duration:    duration,
	}, secret)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ipp23: failed to sign receipt: %v\n", err)
		return
	}
	fmt.Fprintln(os.Stderr, token)
}

func envDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// openOrStdin opens path for the XML source, or reads stdin fully when path
// is empty (so both the reader and the fingerprint can see the bytes).
func openOrStdin(path, role string) (data []byte, r io.Reader, closeFn func()) {
	var f *os.File
	var err error
	if path == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(path)
		if err != nil {
			fail(ipperr.New(ipperr.WrongInputFile, "cannot open %s file %q: %v", role, path, err))
		}
	}
	data, err = io.ReadAll(f)
	if err != nil {
		fail(ipperr.New(ipperr.WrongInputFile, "cannot read %s file %q: %v", role, path, err))
	}
	if f != os.Stdin {
		closeFn = func() { f.Close() }
	} else {
		closeFn = func() {}
	}
	return data, bytes.NewReader(data), closeFn
}

func openInputOrStdin(path string) (r io.Reader, closeFn func()) {
	if path == "" {
		return os.Stdin, func() {}
	}
	f, err := os.Open(path)
	if err != nil {
		fail(ipperr.New(ipperr.WrongInputFile, "cannot open input file %q: %v", path, err))
	}
	return f, func() { f.Close() }
}

func handleFatal(err error, sourceBytes []byte, start time.Time, instrCount int, receiptSecret, smtpHost, smtpFrom, smtpTo string) {
	ierr, ok := ipperr.As(err)
	if !ok {
		ierr = ipperr.New(ipperr.Semantics, "%v", err)
	}
	fmt.Fprintf(os.Stderr, "ipp23: %s: %s\n", ierr.Code.Name(), ierr.Message)

	fp := fingerprint.Of(sourceBytes)
	cfg := alert.Config{Host: smtpHost, From: smtpFrom, To: smtpTo}
	if cfg.Enabled() {
		if notifyErr := alert.Notify(cfg, fp, ierr.Code.Name(), ierr.Message); notifyErr != nil {
			fmt.Fprintf(os.Stderr, "ipp23: alert email failed: %v\n", notifyErr)
		}
	}
	if receiptSecret != "" {
		emitReceipt(fp, int(ierr.Code), instrCount, time.Since(start), receiptSecret)
	}
	os.Exit(int(ierr.Code))
}

func fail(err *ipperr.Error) {
	fmt.Fprintf(os.Stderr, "ipp23: %s: %s\n", err.Code.Name(), err.Message)
	os.Exit(int(err.Code))
}
