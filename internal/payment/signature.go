package payment

import (
	"crypto/sha512"
	"encoding/hex"
)

// Signature returns the lowercase hex SHA-512 of orderID, statusCode,
// grossAmount and secret concatenated in that order with no delimiters.
func Signature(orderID, statusCode, grossAmount, secret string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + secret))
	return hex.EncodeToString(sum[:])
}

// VerifySignature reports whether provided is exactly the signature of the
// given fields. The comparison is case-sensitive.
func VerifySignature(orderID, statusCode, grossAmount, secret, provided string) bool {
	return Signature(orderID, statusCode, grossAmount, secret) == provided
}
