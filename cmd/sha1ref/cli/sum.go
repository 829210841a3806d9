package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/codahale/sha1ref"
	"github.com/spf13/cobra"
)

const readChunk = 32 * 1024

type sumOptions struct {
	literal string
	lower   bool
}

func newSumCommand(ro *rootOptions) *cobra.Command {
	o := &sumOptions{}

	cmd := &cobra.Command{
		Use:   "sum [FILE...]",
		Short: "Print the SHA-1 digest of each FILE, or of standard input.",
		Long: "Print the SHA-1 digest of each FILE. With no FILE, or when FILE is -, read standard input.\n" +
			"Digests are printed as 20 space-separated uppercase hex bytes unless --lower is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, ro, args)
		},
	}
	cmd.Flags().StringVarP(&o.literal, "string", "s", "", "digest the given string instead of reading input")
	cmd.Flags().BoolVar(&o.lower, "lower", false, "print the digest as one lowercase hex string")
	return cmd
}

func (o *sumOptions) run(cmd *cobra.Command, ro *rootOptions, args []string) error {
	out := cmd.OutOrStdout()

	if cmd.Flags().Changed("string") {
		if len(args) > 0 {
			return fmt.Errorf("--string cannot be combined with file arguments: %w", ErrUsage)
		}
		d, err := digestReader(strings.NewReader(o.literal))
		if err != nil {
			return err
		}
		return o.print(out, d, fmt.Sprintf("%q", o.literal))
	}

	if len(args) == 0 {
		args = []string{"-"}
	}

	var errs []error
	for _, name := range args {
		d, err := o.digestFile(cmd, name)
		if err != nil {
			ro.logger.Error("digest failed", "file", name, "err", err)
			errs = append(errs, err)
			continue
		}
		ro.logger.Debug("digest computed", "file", name)

		if err := o.print(out, d, name); err != nil {
			return err
		}
	}
	return errors.Join(errs...)
}

func (o *sumOptions) digestFile(cmd *cobra.Command, name string) ([sha1ref.Size]byte, error) {
	if name == "-" {
		return digestReader(cmd.InOrStdin())
	}

	f, err := os.Open(name)
	if err != nil {
		return [sha1ref.Size]byte{}, fmt.Errorf("open %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	d, err := digestReader(f)
	if err != nil {
		return [sha1ref.Size]byte{}, fmt.Errorf("%s: %w", name, err)
	}
	return d, nil
}

func (o *sumOptions) print(w io.Writer, d [sha1ref.Size]byte, name string) error {
	var err error
	if o.lower {
		_, err = fmt.Fprintf(w, "%x  %s\n", d[:], name)
	} else {
		_, err = fmt.Fprintf(w, "% X  %s\n", d[:], name)
	}
	if err != nil {
		return fmt.Errorf("write digest: %w", err)
	}
	return nil
}

// digestReader feeds r to a fresh context in fixed-size chunks.
func digestReader(r io.Reader) ([sha1ref.Size]byte, error) {
	c := sha1ref.New()
	buf := make([]byte, readChunk)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if ierr := c.Input(buf[:n]); ierr != nil {
				return [sha1ref.Size]byte{}, fmt.Errorf("hash input: %w", ierr)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return [sha1ref.Size]byte{}, fmt.Errorf("read: %w", err)
		}
	}

	d, err := c.Digest()
	if err != nil {
		return [sha1ref.Size]byte{}, fmt.Errorf("hash result: %w", err)
	}
	return d, nil
}
