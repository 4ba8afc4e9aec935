package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(visitID int) ([]byte, error)
}

// DefaultQRGenerator encodes the check-in link staff scan when the party arrives.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(visitID int) ([]byte, error) {
	return qrcode.Encode(fmt.Sprintf("%s/visits/%d/check-in", g.BaseURL, visitID), qrcode.Medium, 256)
}
