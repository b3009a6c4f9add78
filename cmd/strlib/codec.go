package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/picatz/strlib/pkg/base64"
	"github.com/picatz/strlib/pkg/bytecodec"
	"github.com/picatz/strlib/pkg/hex"
	"github.com/picatz/strlib/pkg/keyutil"
)

// parseValue parses the flags of fs and returns the single positional
// value. A final argument that starts with "-" but names no flag of fs is
// taken as the value, so base64url text such as "-_8" needs no "--".
func parseValue(fs *flag.FlagSet, args []string) (string, bool) {
	if n := len(args); n > 0 && strings.HasPrefix(args[n-1], "-") && !isFlag(fs, args[n-1]) {
		if err := fs.Parse(args[:n-1]); err != nil || fs.NArg() != 0 {
			return "", false
		}
		return args[n-1], true
	}

	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		return "", false
	}
	return fs.Arg(0), true
}

// isFlag reports whether arg is "--" or names a flag defined in fs.
func isFlag(fs *flag.FlagSet, arg string) bool {
	name := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	if name == "" {
		return arg == "--"
	}
	name, _, _ = strings.Cut(name, "=")
	return fs.Lookup(name) != nil || name == "h" || name == "help"
}

func cmdBase64(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "usage: strlib base64 <subcommand> ...")
		fmt.Fprintln(errOut, "subcommands: encode, decode")
		return 2
	}

	logger := newLogger(errOut, false)
	defer logger.Sync()

	switch args[0] {
	case "encode":
		fs := flag.NewFlagSet("base64 encode", flag.ContinueOnError)
		fs.SetOutput(errOut)
		var url bool
		fs.BoolVar(&url, "url", false, "Use the URL-safe alphabet without padding")
		text, ok := parseValue(fs, args[1:])
		if !ok {
			fmt.Fprintln(errOut, "usage: strlib base64 encode [--url] <text>")
			return 2
		}
		fmt.Fprintln(out, base64.EncodeString(bytecodec.EncodeUTF8Safe(text), url))
		return 0
	case "decode":
		fs := flag.NewFlagSet("base64 decode", flag.ContinueOnError)
		fs.SetOutput(errOut)
		// Both alphabets are always accepted; the flag is kept for symmetry.
		fs.Bool("url", false, "Input is base64url text")
		encoded, ok := parseValue(fs, args[1:])
		if !ok {
			fmt.Fprintln(errOut, "usage: strlib base64 decode [--url] <text>")
			return 2
		}
		text, err := bytecodec.DecodeUTF8Safe(base64.DecodeToString(encoded))
		if err != nil {
			logger.Error("decoded bytes are not UTF-8 text",
				zap.String("hex", hex.Encode(base64.Decode(encoded), true)),
				zap.Error(err),
			)
			return 1
		}
		fmt.Fprintln(out, text)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown base64 subcommand: %s\n", args[0])
		return 2
	}
}

func cmdHex(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "usage: strlib hex <subcommand> ...")
		fmt.Fprintln(errOut, "subcommands: encode, decode")
		return 2
	}

	logger := newLogger(errOut, false)
	defer logger.Sync()

	switch args[0] {
	case "encode":
		fs := flag.NewFlagSet("hex encode", flag.ContinueOnError)
		fs.SetOutput(errOut)
		var separate bool
		fs.BoolVar(&separate, "separate", false, "Insert a '-' every four bytes")
		text, ok := parseValue(fs, args[1:])
		if !ok {
			fmt.Fprintln(errOut, "usage: strlib hex encode [--separate] <text>")
			return 2
		}
		fmt.Fprintln(out, hex.Encode([]byte(text), separate))
		return 0
	case "decode":
		fs := flag.NewFlagSet("hex decode", flag.ContinueOnError)
		fs.SetOutput(errOut)
		input, ok := parseValue(fs, args[1:])
		if !ok {
			fmt.Fprintln(errOut, "usage: strlib hex decode <hex>")
			return 2
		}
		b, err := hex.Decode(input)
		if err != nil {
			logger.Error("invalid hex", zap.String("input", input), zap.Error(err))
			return 1
		}
		fmt.Fprintln(out, base64.Encode(b))
		return 0
	default:
		fmt.Fprintf(errOut, "unknown hex subcommand: %s\n", args[0])
		return 2
	}
}

func cmdKeygen(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("keygen", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var (
		size   int
		format string
	)
	fs.IntVar(&size, "size", 32, "Key size in bytes")
	fs.StringVar(&format, "format", string(keyutil.Base64), "Output format: hex or base64")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if size <= 0 {
		fmt.Fprintln(errOut, "--size must be positive")
		return 2
	}

	logger := newLogger(errOut, false)
	defer logger.Sync()

	key, err := keyutil.NewSymmetricKey(size)
	if err != nil {
		logger.Error("failed to generate key", zap.Int("size", size), zap.Error(err))
		return 1
	}

	s, err := keyutil.FormatSymmetricKey(key, keyutil.Format(format))
	if err != nil {
		logger.Error("unsupported key format", zap.String("format", format), zap.Error(err))
		return 2
	}

	fmt.Fprintln(out, s)
	return 0
}
