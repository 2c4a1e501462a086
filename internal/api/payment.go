package api

import (
	"context"
	"net/http"

	"github.com/parvecare/storefront/internal/model"
)

type createPaymentRequest struct {
	Items   []model.CartItem `json:"items"`
	Address string           `json:"address"`
}

type paymentOrderEnvelope struct {
	Order model.PaymentOrder `json:"order"`
}

type paymentKeyEnvelope struct {
	Key string `json:"key"`
}

type paymentVerifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// CreatePaymentOrder asks the backend to open a gateway order for the given
// cart contents and delivery address.
func (c *Client) CreatePaymentOrder(ctx context.Context, items []model.CartItem, address string) (model.PaymentOrder, error) {
	var env paymentOrderEnvelope
	if err := c.do(ctx, http.MethodPost, "/payment/create-order", createPaymentRequest{Items: items, Address: address}, &env, true); err != nil {
		return model.PaymentOrder{}, err
	}
	return env.Order, nil
}

// VerifyPayment submits the gateway's signed checkout result for server-side
// verification. Returns false when the backend rejects the signature.
func (c *Client) VerifyPayment(ctx context.Context, v model.PaymentVerification) (bool, error) {
	var res paymentVerifyResponse
	if err := c.do(ctx, http.MethodPost, "/payment/verify", v, &res, true); err != nil {
		return false, err
	}
	return res.Success, nil
}

// PaymentKey returns the gateway's publishable key for checkout widgets.
func (c *Client) PaymentKey(ctx context.Context) (string, error) {
	var env paymentKeyEnvelope
	if err := c.do(ctx, http.MethodGet, "/payment/key", nil, &env, false); err != nil {
		return "", err
	}
	return env.Key, nil
}
