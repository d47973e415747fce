package main

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
)

const (
	webhookURL = "http://localhost:9000/webhooks/payment"
	fixedID    = "cs_test_abc"
)

type address struct {
	Line1      string `json:"line1"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type sessionObject struct {
	ID              string `json:"id"`
	PaymentIntent   string `json:"payment_intent,omitempty"`
	CustomerEmail   string `json:"customer_email,omitempty"`
	ShippingDetails *struct {
		Address address `json:"address"`
	} `json:"shipping_details,omitempty"`
}

type event struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Created int64  `json:"created"`
	Data    struct {
		Object sessionObject `json:"object"`
	} `json:"data"`
}

func generateEvent() event {
	var ev event
	ev.ID = "evt_" + uuid.NewString()
	ev.Created = time.Now().Unix()

	ev.Data.Object.ID = fixedID
	if rand.Intn(5) == 0 {
		ev.Data.Object.ID = "cs_test_" + uuid.NewString()
	}

	if rand.Intn(3) == 0 {
		ev.Type = "checkout.session.expired"
		return ev
	}

	ev.Type = "checkout.session.completed"
	ev.Data.Object.PaymentIntent = "pi_" + uuid.NewString()
	ev.Data.Object.CustomerEmail = fmt.Sprintf("user%d@example.com", rand.Intn(1000))
	if rand.Intn(2) == 0 {
		ev.Data.Object.ShippingDetails = &struct {
			Address address `json:"address"`
		}{Address: address{
			Line1:      fmt.Sprintf("%d Main St", rand.Intn(100)),
			City:       "Springfield",
			PostalCode: fmt.Sprintf("%05d", rand.Intn(99999)),
			Country:    "US",
		}}
	}
	return ev
}

func sign(payload []byte, secret string, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func deliver(secret string, ev event) {
	payload, _ := json.Marshal(ev)
	req, _ := http.NewRequest(http.MethodPost, webhookURL, bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", sign(payload, secret, time.Now()))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Println("delivery failed:", err)
		return
	}
	resp.Body.Close()
	log.Println(ev.Type, ev.Data.Object.ID, "->", resp.Status)
}

func main() {
	secret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	if secret == "" {
		log.Fatal("STRIPE_WEBHOOK_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			ev := generateEvent()
			deliver(secret, ev)
			// Redeliver some events to exercise idempotent handling.
			if rand.Intn(3) == 0 {
				deliver(secret, ev)
			}
		case <-ctx.Done():
			return
		}
	}
}
