package service

// QRCodeService defines the interface for shop QR code generation and parsing
type QRCodeService interface {
	// GenerateShopQR renders a PNG QR code pointing customers at a shop's rating page
	GenerateShopQR(shopID string) ([]byte, error)

	// ParseShopQR extracts the shop ID from decoded QR code content
	ParseShopQR(qrData string) (string, error)
}
