package main

import (
	"context"
	"fmt"
	"time"

	"github.com/alizaqureshi939-lab/Lafz-Box/internal/apperr"
	"github.com/alizaqureshi939-lab/Lafz-Box/internal/models"
)

// purchaseFlow walks one paid story through the confirmation workflow. The
// payment-config snapshot is captured at open; an admin editing settings
// mid-flow does not retarget an open purchase.
func (a *app) purchaseFlow(ctx context.Context, s models.Story) {
	released := make(chan models.Story, 1)
	if err := a.wf.Start(s, a.cat.PaymentConfig(), func(st models.Story) { released <- st }); err != nil {
		fmt.Println("Cannot start purchase:", err)
		return
	}

	cfg := a.wf.Config()
	fmt.Println()
	fmt.Println("-- Buy PDF --")
	fmt.Printf("%s — %s\n", s.Title, s.Price)
	if cfg.QRCodeURL != "" {
		fmt.Println("QR code:", cfg.QRCodeURL)
	}
	fmt.Println("UPI ID:", cfg.UPIID)
	fmt.Println(cfg.InstructionText)

	for {
		ref := a.prompt("Transaction ID / UTR (blank to cancel): ")
		if ref == "" {
			a.wf.Close()
			fmt.Println("Purchase cancelled.")
			return
		}
		err := a.wf.Submit(ref)
		if err == nil {
			break
		}
		if apperr.IsValidation(err) {
			fmt.Println("Please enter a valid Transaction ID.")
			continue
		}
		fmt.Println("Purchase failed:", err)
		return
	}

	fmt.Println("Verifying Transaction... This may take a few seconds.")

	// The workflow auto-advances; wait for the release callback.
	timeout := a.cfg.Purchase.ProcessingDelay + a.cfg.Purchase.SuccessDelay + 5*time.Second
	select {
	case <-ctx.Done():
		a.wf.Close()
		return
	case <-time.After(timeout):
		a.wf.Close()
		fmt.Println("Verification did not complete; please try again.")
	case st := <-released:
		fmt.Println("Payment Verified!")
		if st.PDFURL != "" {
			fmt.Println("Your PDF is opening now:", st.PDFURL)
		} else {
			fmt.Println("Payment Verified! Downloading PDF...")
		}
	}
}
