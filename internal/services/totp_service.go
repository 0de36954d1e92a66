package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"resto-backend/internal/auth"
	"resto-backend/internal/repositories"
)

const totpIssuer = "RestoBackend"

// TOTPSetup carries the provisioning secret and QR code back to the client
type TOTPSetup struct {
	Secret      string `json:"secret"`
	QRCode      string `json:"qr_code"`
	AccountName string `json:"account_name"`
}

type TOTPService struct {
	userRepo *repositories.UserRepository
}

func NewTOTPService(userRepo *repositories.UserRepository) *TOTPService {
	return &TOTPService{userRepo: userRepo}
}

// GenerateSetup creates a fresh TOTP secret for the user and returns a
// base64 QR code for authenticator apps. The secret is stored disabled
// until VerifyAndEnable confirms the user scanned it.
func (s *TOTPService) GenerateSetup(ctx context.Context, userID string) (*TOTPSetup, error) {
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: user.Email,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.SetTOTP(ctx, userID, key.Secret(), false); err != nil {
		return nil, err
	}

	qrImage, err := key.Image(200, 200)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, qrImage); err != nil {
		return nil, err
	}

	return &TOTPSetup{
		Secret:      key.Secret(),
		QRCode:      "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		AccountName: user.Email,
	}, nil
}

// VerifyAndEnable turns 2FA on after the user proves they hold the secret
func (s *TOTPService) VerifyAndEnable(ctx context.Context, userID, code string) error {
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return err
	}
	if user.TOTPSecret == "" {
		return fmt.Errorf("2fa setup not initiated")
	}
	if !totp.Validate(code, user.TOTPSecret) {
		return ErrInvalidTOTPCode
	}
	return s.userRepo.SetTOTP(ctx, userID, user.TOTPSecret, true)
}

// Disable turns 2FA off after verifying the password and a current code
func (s *TOTPService) Disable(ctx context.Context, userID, password, code string) error {
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return ErrInvalidCredentials
	}
	if !totp.Validate(code, user.TOTPSecret) {
		return ErrInvalidTOTPCode
	}
	return s.userRepo.SetTOTP(ctx, userID, "", false)
}
