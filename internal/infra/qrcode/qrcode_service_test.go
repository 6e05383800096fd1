package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(256, tt.errorCorrectionLevel, "http://127.0.0.1:8000")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateShopQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "http://127.0.0.1:8000/")

	qrBytes, err := service.GenerateShopQR("shop_1")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])

	_, err = service.GenerateShopQR("")
	assert.Error(t, err)
}

func TestQRCodeService_ParseShopQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "http://127.0.0.1:8000")

	tests := []struct {
		name    string
		data    string
		want    string
		wantErr bool
	}{
		{name: "shop url", data: "http://127.0.0.1:8000/shops/shop_12", want: "shop_12"},
		{name: "trailing slash", data: "https://food.example/shops/shop_3/", want: "shop_3"},
		{name: "not a shop url", data: "https://food.example/users/a", wantErr: true},
		{name: "nested path", data: "https://food.example/shops/shop_3/scorecard", wantErr: true},
		{name: "empty id", data: "https://food.example/shops/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseShopQR(tt.data)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
