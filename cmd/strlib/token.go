package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/picatz/strlib/pkg/header"
	"github.com/picatz/strlib/pkg/jwa"
	"github.com/picatz/strlib/pkg/jwt"
	"github.com/picatz/strlib/pkg/keyutil"
)

func cmdToken(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var (
		headerText   string
		payloadText  string
		secret       string
		secretFormat string
		alg          string
		demo         bool
		verbose      bool
	)
	fs.StringVar(&headerText, "header", "", "Header JSON text")
	fs.StringVar(&payloadText, "payload", "", "Payload JSON text")
	fs.StringVar(&secret, "secret", "", "Signing secret (default $"+secretEnv+")")
	fs.StringVar(&secretFormat, "secret-format", string(keyutil.Text), "Secret format: text, hex or base64")
	fs.StringVar(&alg, "alg", "", "Signing algorithm (default: the header \"alg\", else HS256)")
	fs.BoolVar(&demo, "demo", false, "Encode the header and signature as padded base64")
	fs.BoolVar(&verbose, "verbose", false, "Log debug details to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if headerText == "" || payloadText == "" {
		fmt.Fprintln(errOut, "usage: strlib token --header <json> --payload <json> [--secret <s>]")
		return 2
	}

	logger := newLogger(errOut, verbose)
	defer logger.Sync()

	headerText = strings.TrimSpace(headerText)
	payloadText = strings.TrimSpace(payloadText)

	if secret == "" {
		secret = os.Getenv(secretEnv)
		logger.Debug("secret read from environment", zap.String("env", secretEnv))
	}

	var key []byte
	if secret != "" {
		var err error
		key, err = keyutil.ParseSymmetricKey(secret, keyutil.Format(secretFormat))
		if err != nil {
			logger.Error("invalid secret", zap.Error(err))
			return 1
		}
	}

	if alg == "" {
		alg = headerAlgorithm(headerText, logger)
	}

	signer, err := jwt.SignerFor(alg)
	if err != nil {
		logger.Error("unsupported signer", zap.String("alg", alg), zap.Error(err))
		return 1
	}

	var opts []jwt.Option
	if demo {
		opts = append(opts, jwt.WithDemoEncodings())
	}

	token, err := jwt.Assemble(headerText, payloadText, key, signer, opts...)
	if err != nil {
		logger.Error("failed to assemble token", zap.Error(err))
		return 1
	}

	logger.Debug("token assembled",
		zap.String("alg", alg),
		zap.Bool("demo", demo),
		zap.Int("length", len(token)),
	)

	fmt.Fprintln(out, token)
	return 0
}

// headerAlgorithm returns the "alg" of the header JSON text, or HS256 when
// the header can not be read.
func headerAlgorithm(text string, logger *zap.Logger) jwa.Algorithm {
	params, err := header.Parse(text)
	if err != nil {
		logger.Warn("header is not a JSON object, signing with HS256", zap.Error(err))
		return jwa.HS256
	}

	alg, err := params.Algorithm()
	if err != nil {
		logger.Warn("header has no usable alg, signing with HS256", zap.Error(err))
		return jwa.HS256
	}

	return alg
}
