// Command nilai-trace prints the event trace streamed by a Nilai board.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"nilai/core"
	"nilai/host/serial"
	"nilai/protocol"
)

var (
	device  = flag.String("device", "/dev/ttyUSB0", "Serial device path")
	baud    = flag.Int("baud", serial.DefaultBaud, "Baud rate")
	file    = flag.String("file", "", "Read a captured stream from a file instead of the device")
	verbose = flag.Bool("verbose", false, "Report framing errors and decoder statistics")
)

func main() {
	flag.Parse()

	var src io.ReadCloser
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		src = f
	} else {
		cfg := serial.DefaultConfig(*device)
		cfg.Baud = *baud
		p, err := serial.Open(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		src = p
	}
	defer src.Close()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		src.Close()
	}()

	d := newDumper(os.Stdout, *verbose)
	err := d.copy(src)
	if *verbose {
		d.printStats()
	}
	if err != nil && !errors.Is(err, os.ErrClosed) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type dumper struct {
	w       io.Writer
	verbose bool
	dec     *protocol.BlockDecoder
}

func newDumper(w io.Writer, verbose bool) *dumper {
	return &dumper{w: w, verbose: verbose, dec: protocol.NewBlockDecoder(1024)}
}

// copy reads r until EOF, printing each record as it completes.
func (d *dumper) copy(r io.Reader) error {
	buf := make([]byte, 256)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			d.feed(buf[:n])
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (d *dumper) feed(data []byte) {
	for len(data) > 0 {
		n := d.dec.Feed(data)
		data = data[n:]
		d.drain()
		if n == 0 {
			return
		}
	}
}

func (d *dumper) drain() {
	for {
		b, err := d.dec.Next()
		if errors.Is(err, protocol.ErrNoBlock) {
			return
		}
		if err != nil {
			if d.verbose {
				fmt.Fprintf(d.w, "# %v\n", err)
			}
			continue
		}
		rec, err := protocol.DecodeTraceRecord(b.Payload)
		if err != nil {
			if d.verbose {
				fmt.Fprintf(d.w, "# seq %d: %v\n", b.Seq, err)
			}
			continue
		}
		fmt.Fprintln(d.w, formatRecord(rec))
	}
}

func (d *dumper) printStats() {
	blocks, rejected, skipped := d.dec.Stats()
	fmt.Fprintf(d.w, "# %d blocks, %d rejected, %d bytes skipped\n", blocks, rejected, skipped)
}

func formatRecord(r protocol.TraceRecord) string {
	if r.IsDropMarker() {
		return fmt.Sprintf("%10d  dropped %d records", r.Timestamp, r.Handle)
	}
	typ := core.EventType(r.Type)
	cat := core.EventCategory(r.Category)
	return fmt.Sprintf("%10d  %-26s %-9s %d", r.Timestamp, typ, cat, r.Handle)
}
