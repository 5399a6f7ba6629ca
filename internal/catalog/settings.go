package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/alizaqureshi939-lab/Lafz-Box/internal/apperr"
	"github.com/alizaqureshi939-lab/Lafz-Box/internal/models"
	"github.com/alizaqureshi939-lab/Lafz-Box/internal/validate"
)

// UpdatePaymentConfig replaces the global payment settings wholesale; there is
// no partial update. All three fields must be present.
func (c *Catalog) UpdatePaymentConfig(ctx context.Context, cfg models.PaymentConfig) error {
	cfg.UPIID = validate.SanitizeString(cfg.UPIID)
	cfg.QRCodeURL = validate.SanitizeString(cfg.QRCodeURL)
	cfg.InstructionText = validate.SanitizeString(cfg.InstructionText)

	verr := &apperr.ValidationError{}
	if cfg.UPIID == "" {
		verr.Add("upiId", "required", "UPI id is required")
	}
	if cfg.QRCodeURL == "" {
		verr.Add("qrCodeUrl", "required", "QR code URL is required")
	}
	if cfg.InstructionText == "" {
		verr.Add("instructionText", "required", "instruction text is required")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	if err := c.store.PutPaymentConfig(ctx, cfg); err != nil {
		c.log.Error("save payment settings failed", zap.Error(err))
		return apperr.Store("update payment config", err)
	}

	c.log.Info("payment settings saved", zap.String("upiId", cfg.UPIID))
	return nil
}
