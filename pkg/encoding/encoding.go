// Package encoding holds the text transformation strategies. The "aes" and
// "rsa" strategies are labels only: every strategy base64-encodes the UTF-8
// bytes of its input and differs from the others by its output prefix.
package encoding

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/patterns/pkg/errors"
	"github.com/arthur-debert/patterns/pkg/registry"
)

// Transformer turns input text into its encoded form. Transform is total:
// it accepts any string, including the empty one, and never fails.
type Transformer interface {
	Name() string
	Transform(input string) string
}

// Canonical strategy names
const (
	StrategyAES    = "aes"
	StrategyRSA    = "rsa"
	StrategyBase64 = "base64"
)

// Labelled is a base64 strategy that prefixes its output with a label
type Labelled struct {
	name   string
	prefix string
}

// NewLabelled creates a strategy called name whose output starts with prefix
func NewLabelled(name, prefix string) Labelled {
	return Labelled{name: name, prefix: prefix}
}

func (l Labelled) Name() string { return l.name }

// Prefix returns the literal label written before the payload
func (l Labelled) Prefix() string { return l.prefix }

func (l Labelled) Transform(input string) string {
	return l.prefix + base64.StdEncoding.EncodeToString([]byte(input))
}

var strategies = registry.NewVariants[Transformer]("encoding strategy")

func init() {
	strategies.MustRegister(StrategyAES, func() Transformer { return NewLabelled(StrategyAES, "[AES] ") })
	strategies.MustRegister(StrategyRSA, func() Transformer { return NewLabelled(StrategyRSA, "[RSA] ") })
	strategies.MustRegister(StrategyBase64, func() Transformer { return NewLabelled(StrategyBase64, "") })
	if err := strategies.Alias("b64", StrategyBase64); err != nil {
		panic(err)
	}
}

// Create builds the strategy registered under name
func Create(name string) (Transformer, error) {
	return strategies.Create(name)
}

// Names lists the canonical strategy names
func Names() []string {
	return strategies.Names()
}

// Variants exposes the strategy registry so callers can add strategies
func Variants() *registry.Variants[Transformer] {
	return strategies
}

// Payload reverses Transform for strategies that expose their prefix:
// the prefix is stripped and the remainder base64-decoded.
func Payload(t Transformer, output string) (string, error) {
	if p, ok := t.(interface{ Prefix() string }); ok {
		if !strings.HasPrefix(output, p.Prefix()) {
			return "", errors.Newf(errors.ErrInvalidInput, "output is missing the %q prefix of %s", p.Prefix(), t.Name())
		}
		output = strings.TrimPrefix(output, p.Prefix())
	}

	raw, err := base64.StdEncoding.DecodeString(output)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "%s payload is not base64", t.Name())
	}
	return string(raw), nil
}

// Encryptor applies one strategy chosen at construction. Switching strategy
// means building a new Encryptor.
type Encryptor struct {
	strategy Transformer
}

// NewEncryptor binds an encryptor to strategy
func NewEncryptor(strategy Transformer) Encryptor {
	return Encryptor{strategy: strategy}
}

// Strategy returns the bound strategy
func (e Encryptor) Strategy() Transformer {
	return e.strategy
}

// Encrypt transforms data with the bound strategy
func (e Encryptor) Encrypt(data string) string {
	return e.strategy.Transform(data)
}

// EncryptTo writes the transformed data to w as one line
func (e Encryptor) EncryptTo(w io.Writer, data string) error {
	_, err := fmt.Fprintln(w, e.Encrypt(data))
	return err
}
