package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"limo-booking/pkg/utils"

	"go.uber.org/zap"
)

// AuthorizeNetGateway charges through the Authorize.Net JSON API. The token is
// Accept.js opaque data produced in the browser.
type AuthorizeNetGateway struct {
	cfg    utils.PaymentConfig
	client *http.Client
	log    *zap.Logger
}

func NewAuthorizeNetGateway(cfg utils.PaymentConfig, log *zap.Logger) *AuthorizeNetGateway {
	return &AuthorizeNetGateway{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
		log:    log.With(zap.String("gateway", "authorizenet")),
	}
}

func (g *AuthorizeNetGateway) Name() string {
	return "authorizenet"
}

type authNetRequest struct {
	CreateTransactionRequest struct {
		MerchantAuthentication struct {
			Name           string `json:"name"`
			TransactionKey string `json:"transactionKey"`
		} `json:"merchantAuthentication"`
		TransactionRequest struct {
			TransactionType string `json:"transactionType"`
			Amount          string `json:"amount"`
			Payment         struct {
				OpaqueData struct {
					DataDescriptor string `json:"dataDescriptor"`
					DataValue      string `json:"dataValue"`
				} `json:"opaqueData"`
			} `json:"payment"`
		} `json:"transactionRequest"`
	} `json:"createTransactionRequest"`
}

type authNetResponse struct {
	TransactionResponse struct {
		ResponseCode string `json:"responseCode"`
		TransID      string `json:"transId"`
		Errors       []struct {
			ErrorText string `json:"errorText"`
		} `json:"errors"`
	} `json:"transactionResponse"`
	Messages struct {
		ResultCode string `json:"resultCode"`
		Message    []struct {
			Text string `json:"text"`
		} `json:"message"`
	} `json:"messages"`
}

func (g *AuthorizeNetGateway) Authorize(ctx context.Context, amountCents int64, token string) (*Result, error) {
	if g.cfg.AuthNetLoginID == "" || g.cfg.AuthNetTransactionKey == "" {
		return nil, ErrMissingConfig
	}

	var payload authNetRequest
	payload.CreateTransactionRequest.MerchantAuthentication.Name = g.cfg.AuthNetLoginID
	payload.CreateTransactionRequest.MerchantAuthentication.TransactionKey = g.cfg.AuthNetTransactionKey
	payload.CreateTransactionRequest.TransactionRequest.TransactionType = "authCaptureTransaction"
	payload.CreateTransactionRequest.TransactionRequest.Amount = fmt.Sprintf("%.2f", float64(amountCents)/100)
	payload.CreateTransactionRequest.TransactionRequest.Payment.OpaqueData.DataDescriptor = "COMMON.ACCEPT.INAPP.PAYMENT"
	payload.CreateTransactionRequest.TransactionRequest.Payment.OpaqueData.DataValue = token

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal charge request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.AuthNetEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build charge request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		g.log.Error("Authorize.Net request failed", zap.Error(err))
		return nil, fmt.Errorf("authorize.net request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read charge response: %w", err)
	}

	// The gateway prefixes responses with a UTF-8 BOM.
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))

	var result authNetResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decode charge response: %w", err)
	}

	if result.Messages.ResultCode != "Ok" || result.TransactionResponse.ResponseCode != "1" {
		message := "card was declined"
		if len(result.TransactionResponse.Errors) > 0 {
			message = result.TransactionResponse.Errors[0].ErrorText
		} else if len(result.Messages.Message) > 0 {
			message = result.Messages.Message[0].Text
		}
		g.log.Warn("Charge declined",
			zap.String("result_code", result.Messages.ResultCode),
			zap.String("response_code", result.TransactionResponse.ResponseCode),
			zap.Int64("amount_cents", amountCents),
		)
		return &Result{Success: false, Message: message}, nil
	}

	g.log.Info("Payment authorized",
		zap.String("transaction_id", result.TransactionResponse.TransID),
		zap.Int64("amount_cents", amountCents),
	)

	return &Result{
		Success:       true,
		TransactionID: result.TransactionResponse.TransID,
	}, nil
}
