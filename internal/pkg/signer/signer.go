// Package signer computes PTV Timetable API request signatures.
package signer

import (
	"crypto"
	"crypto/hmac"
	_ "crypto/sha1"
	"encoding/hex"
	"strings"

	"github.com/jhlee0214/wakemeup/internal/pkg/errors"
)

// Sign returns the uppercase hex HMAC-SHA1 of pathWithQuery keyed by secretKey.
// pathWithQuery must exclude the base URL and the signature parameter.
func Sign(pathWithQuery, secretKey string) (string, error) {
	return sign(crypto.SHA1, pathWithQuery, secretKey)
}

func sign(h crypto.Hash, pathWithQuery, secretKey string) (string, error) {
	if !h.Available() {
		return "", errors.ErrCryptoUnavailable
	}

	mac := hmac.New(h.New, []byte(secretKey))
	mac.Write([]byte(pathWithQuery))
	return strings.ToUpper(hex.EncodeToString(mac.Sum(nil))), nil
}
