package service

import (
	"strings"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(target string) ([]byte, error)
}

// DefaultQRGenerator renders a PNG. Relative targets are resolved against
// BaseURL.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(target string) ([]byte, error) {
	if strings.HasPrefix(target, "/") && g.BaseURL != "" {
		target = strings.TrimRight(g.BaseURL, "/") + target
	}
	return qrcode.Encode(target, qrcode.Medium, 256)
}
