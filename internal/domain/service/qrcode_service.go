package service

// QRCodeService renders public share links as scannable codes.
type QRCodeService interface {
	// ShareURL builds the public link for a share token.
	ShareURL(token string) string

	// GenerateShareQR returns a PNG QR code encoding the share link of token.
	GenerateShareQR(token string) ([]byte, error)
}
