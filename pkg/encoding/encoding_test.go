package encoding_test

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/arthur-debert/patterns/pkg/encoding"
	"github.com/arthur-debert/patterns/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var prefixes = map[string]string{
	encoding.StrategyAES:    "[AES] ",
	encoding.StrategyRSA:    "[RSA] ",
	encoding.StrategyBase64: "",
}

var inputs = []string{
	"",
	"hello",
	"Секретні дані",
	"Конфіденційна інформація",
	"Простий текст",
	"emoji 🚀 and tabs\t\n",
	strings.Repeat("x", 1025),
}

func TestTransformOriginalSamples(t *testing.T) {
	tests := []struct {
		strategy string
		input    string
		want     string
	}{
		{"aes", "Секретні дані", "[AES] 0KHQtdC60YDQtdGC0L3RliDQtNCw0L3Rlg=="},
		{"rsa", "Конфіденційна інформація", "[RSA] " + base64.StdEncoding.EncodeToString([]byte("Конфіденційна інформація"))},
		{"base64", "Простий текст", base64.StdEncoding.EncodeToString([]byte("Простий текст"))},
		{"aes", "", "[AES] "},
		{"base64", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.strategy+"/"+tt.input, func(t *testing.T) {
			s, err := encoding.Create(tt.strategy)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Transform(tt.input))
		})
	}
}

func TestTransformRoundTrip(t *testing.T) {
	for name, prefix := range prefixes {
		s, err := encoding.Create(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name())

		for _, in := range inputs {
			out := s.Transform(in)
			require.True(t, strings.HasPrefix(out, prefix), "%s output %q lacks prefix", name, out)

			raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(out, prefix))
			require.NoError(t, err)
			assert.Equal(t, in, string(raw))

			back, err := encoding.Payload(s, out)
			require.NoError(t, err)
			assert.Equal(t, in, back)
		}
	}
}

func TestStrategiesShareThePayload(t *testing.T) {
	for _, in := range inputs {
		var payloads []string
		for name, prefix := range prefixes {
			s, err := encoding.Create(name)
			require.NoError(t, err)
			payloads = append(payloads, strings.TrimPrefix(s.Transform(in), prefix))
		}
		assert.Equal(t, payloads[0], payloads[1])
		assert.Equal(t, payloads[1], payloads[2])
	}
}

func TestTransformIsDeterministic(t *testing.T) {
	s, err := encoding.Create("rsa")
	require.NoError(t, err)
	assert.Equal(t, s.Transform("дані"), s.Transform("дані"))
}

func TestCreateUnknownStrategy(t *testing.T) {
	_, err := encoding.Create("des")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownVariant))
}

func TestCreateAlias(t *testing.T) {
	s, err := encoding.Create("B64")
	require.NoError(t, err)
	assert.Equal(t, encoding.StrategyBase64, s.Name())
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"aes", "base64", "rsa"}, encoding.Names())
}

func TestPayloadErrors(t *testing.T) {
	aes, err := encoding.Create("aes")
	require.NoError(t, err)

	_, err = encoding.Payload(aes, "aGVsbG8=")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = encoding.Payload(aes, "[AES] !!!")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestEncryptor(t *testing.T) {
	var buf bytes.Buffer

	for _, name := range []string{"aes", "rsa", "base64"} {
		s, err := encoding.Create(name)
		require.NoError(t, err)
		require.NoError(t, encoding.NewEncryptor(s).EncryptTo(&buf, "hi"))
	}

	assert.Equal(t, "[AES] aGk=\n[RSA] aGk=\naGk=\n", buf.String())
}

func TestEncryptorKeepsItsStrategy(t *testing.T) {
	aes, _ := encoding.Create("aes")
	rsa, _ := encoding.Create("rsa")

	first := encoding.NewEncryptor(aes)
	second := encoding.NewEncryptor(rsa)

	assert.Equal(t, "aes", first.Strategy().Name())
	assert.Equal(t, "[AES] aGk=", first.Encrypt("hi"))
	assert.Equal(t, "[RSA] aGk=", second.Encrypt("hi"))
}
