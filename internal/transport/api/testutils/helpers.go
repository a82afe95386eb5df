package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// GenerateOverBytesUnderRunes генерирует строку, длина которой в рунах будет всегда меньше длины в байтах.
func GenerateOverBytesUnderRunes(count int) string {
	symbol := "😁" // 4 байта, 1 руна
	return strings.Repeat(symbol, count)
}

// DecodeJSON читает тело ответа в dst и закрывает его.
func DecodeJSON(res *http.Response, dst any) error {
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err //nolint:wrapcheck
	}
	return json.Unmarshal(body, dst) //nolint:wrapcheck
}
