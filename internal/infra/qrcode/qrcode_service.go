package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"shopscore/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const shopPathPrefix = "/shops/"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service that encodes "<baseURL>/shops/<id>".
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateShopQR renders the shop URL as a PNG
func (s *qrcodeService) GenerateShopQR(shopID string) ([]byte, error) {
	if shopID == "" {
		return nil, fmt.Errorf("shop ID is required")
	}

	content := s.baseURL + shopPathPrefix + url.PathEscape(shopID)

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseShopQR extracts the shop ID from a scanned shop URL
func (s *qrcodeService) ParseShopQR(qrData string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return "", fmt.Errorf("failed to parse QR code URL: %w", err)
	}

	idx := strings.LastIndex(parsed.Path, shopPathPrefix)
	if idx < 0 {
		return "", fmt.Errorf("QR code does not reference a shop: %s", qrData)
	}

	shopID := strings.Trim(parsed.Path[idx+len(shopPathPrefix):], "/")
	if shopID == "" || strings.Contains(shopID, "/") {
		return "", fmt.Errorf("QR code does not reference a shop: %s", qrData)
	}

	return shopID, nil
}
