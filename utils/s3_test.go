package utils_test

import (
	"encoding/base64"
	"testing"

	"github.com/JavaChrist/in-shape/utils"

	"github.com/stretchr/testify/require"
)

func TestDecodeBase64Image(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(payload)

	raw, contentType, err := utils.DecodeBase64Image(dataURL)
	require.NoError(t, err)
	require.Equal(t, payload, raw)
	require.Equal(t, "image/jpeg", contentType)
}

func TestDecodeBase64Image_Invalid(t *testing.T) {
	for _, input := range []string{
		"",
		"not a data url",
		"image/png;base64,AAAA",       // missing data: prefix
		"data:image/png;base64,@@@@@", // bad base64 payload
	} {
		_, _, err := utils.DecodeBase64Image(input)
		require.Error(t, err, "input %q", input)
	}
}
