// Package qrcode provides QR code generation utilities with base64 encoding
// support. It generates PNG QR codes with medium error correction, suitable
// for web display and mobile device scanning, as either raw PNG bytes or
// base64 data URIs for direct HTML embedding.
package qrcode
