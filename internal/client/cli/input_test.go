package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func stubPassword(t *testing.T, secret string, err error) {
	t.Helper()
	old := readPassword
	readPassword = func(int) ([]byte, error) {
		if err != nil {
			return nil, err
		}
		return []byte(secret), nil
	}
	t.Cleanup(func() { readPassword = old })
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  hello world \n"), "Name?", &out)
	require.NoError(t, err)
	require.Equal(t, "hello world", got)
	require.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	require.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestGetOptionalText(t *testing.T) {
	var out bytes.Buffer

	got, err := GetOptionalText(rdr("\n"), "URL", &out)
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = GetOptionalText(rdr("https://example.org\n"), "URL", &out)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "https://example.org", *got)
	require.Contains(t, out.String(), "URL (empty to skip)")
}

func TestGetSecret(t *testing.T) {
	stubPassword(t, "s3cr3t", nil)

	var out bytes.Buffer
	got, err := GetSecret(&out, "Secret")
	require.NoError(t, err)
	require.Equal(t, []byte("s3cr3t"), got)
	require.Equal(t, "Secret: \n", out.String())
}

func TestGetSecret_Error(t *testing.T) {
	stubPassword(t, "", errors.New("boom"))

	var out bytes.Buffer
	_, err := GetSecret(&out, "Secret")
	require.Error(t, err)
}

func TestWipe(t *testing.T) {
	b := []byte("secret")
	wipe(b)
	require.Equal(t, make([]byte, 6), b)
}

func TestYes(t *testing.T) {
	for _, s := range []string{"y", "Y", " yes ", "true", "1"} {
		require.True(t, yes(s), s)
	}
	for _, s := range []string{"", "n", "no", "maybe"} {
		require.False(t, yes(s), s)
	}
}
