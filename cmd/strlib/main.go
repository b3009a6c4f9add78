package main

import (
	"fmt"
	"io"
	"os"
)

// secretEnv is read when no --secret flag is given.
const secretEnv = "STRLIB_SECRET"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "token":
		return cmdToken(args[1:], out, errOut)
	case "base64":
		return cmdBase64(args[1:], out, errOut)
	case "hex":
		return cmdHex(args[1:], out, errOut)
	case "keygen":
		return cmdKeygen(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "strlib: byte codec and JWT assembly CLI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  strlib token --header <json> --payload <json> [--secret <s>] [--secret-format text|hex|base64] [--alg HS256|HS384|HS512|none] [--demo] [--verbose]")
	fmt.Fprintln(w, "  strlib base64 encode [--url] <text>")
	fmt.Fprintln(w, "  strlib base64 decode [--url] <text>")
	fmt.Fprintln(w, "  strlib hex encode [--separate] <text>")
	fmt.Fprintln(w, "  strlib hex decode <hex>")
	fmt.Fprintln(w, "  strlib keygen [--size <bytes>] [--format hex|base64]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintf(w, "  - when --secret is omitted, the secret is read from $%s\n", secretEnv)
	fmt.Fprintln(w, "  - --demo encodes the header and signature as padded base64 (not RFC 7519)")
	fmt.Fprintln(w, "  - text is encoded from its UTF-8 bytes")
}
