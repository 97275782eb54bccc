package utils

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/skip2/go-qrcode"
)

// GenerateQRCode returns content encoded as a PNG QR code
func GenerateQRCode(content string, size int) ([]byte, error) {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, qr.Image(size)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// BoardingPassContent is what the boarding-pass QR encodes.
func BoardingPassContent(paymentCode string, cruiseId uint, passengers int, date string) string {
	return fmt.Sprintf("SOGNUDIMARE|%s|cruise:%d|pax:%d|date:%s", paymentCode, cruiseId, passengers, date)
}
