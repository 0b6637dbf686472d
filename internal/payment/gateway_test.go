package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"limo-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewGateway_SelectsByProvider(t *testing.T) {
	log := zap.NewNop()

	assert.Equal(t, "authorizenet", NewGateway(utils.PaymentConfig{Provider: "authorizenet"}, log).Name())
	assert.Equal(t, "stripe", NewGateway(utils.PaymentConfig{Provider: "stripe"}, log).Name())
	assert.Equal(t, "stripe", NewGateway(utils.PaymentConfig{}, log).Name())
}

func TestStripeGateway_MissingCredentials(t *testing.T) {
	gateway := NewStripeGateway(utils.PaymentConfig{}, zap.NewNop())

	result, err := gateway.Authorize(context.Background(), 10000, "pm_card_visa")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrMissingConfig)
}

func TestAuthorizeNetGateway_MissingCredentials(t *testing.T) {
	gateway := NewAuthorizeNetGateway(utils.PaymentConfig{}, zap.NewNop())

	result, err := gateway.Authorize(context.Background(), 10000, "opaque-token")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrMissingConfig)
}

func authNetConfig(endpoint string) utils.PaymentConfig {
	return utils.PaymentConfig{
		AuthNetLoginID:        "login",
		AuthNetTransactionKey: "key",
		AuthNetEndpoint:       endpoint,
	}
}

func TestAuthorizeNetGateway_Approved(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Authorize.Net prefixes its JSON with a UTF-8 BOM.
		w.Write([]byte("\xef\xbb\xbf" + `{
			"transactionResponse": {"responseCode": "1", "transId": "60157012345"},
			"messages": {"resultCode": "Ok", "message": [{"text": "Successful."}]}
		}`))
	}))
	defer server.Close()

	gateway := NewAuthorizeNetGateway(authNetConfig(server.URL), zap.NewNop())
	result, err := gateway.Authorize(context.Background(), 24500, "opaque-token")

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "60157012345", result.TransactionID)
}

func TestAuthorizeNetGateway_Declined(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"transactionResponse": {"responseCode": "2", "errors": [{"errorText": "This transaction has been declined."}]},
			"messages": {"resultCode": "Error", "message": [{"text": "The transaction was unsuccessful."}]}
		}`))
	}))
	defer server.Close()

	gateway := NewAuthorizeNetGateway(authNetConfig(server.URL), zap.NewNop())
	result, err := gateway.Authorize(context.Background(), 24500, "opaque-token")

	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "This transaction has been declined.", result.Message)
}

func TestAuthorizeNetGateway_SendsDollarAmount(t *testing.T) {
	var received string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req authNetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			received = req.CreateTransactionRequest.TransactionRequest.Amount
		}
		w.Write([]byte(`{
			"transactionResponse": {"responseCode": "1", "transId": "1"},
			"messages": {"resultCode": "Ok"}
		}`))
	}))
	defer server.Close()

	gateway := NewAuthorizeNetGateway(authNetConfig(server.URL), zap.NewNop())
	_, err := gateway.Authorize(context.Background(), 24549, "opaque-token")

	assert.NoError(t, err)
	assert.Equal(t, "245.49", received)
}
