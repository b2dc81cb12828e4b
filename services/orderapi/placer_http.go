package orderapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MarcGrol/shopcheckout/lib/myerrors"
	"github.com/MarcGrol/shopcheckout/lib/myhttpclient"
)

const purchasePath = "/api/checkout/purchase"

type httpOrderPlacer struct {
	sender  myhttpclient.HTTPSender
	baseURL string
}

// NewHTTPOrderPlacer places orders at a remote order backend
func NewHTTPOrderPlacer(sender myhttpclient.HTTPSender, baseURL string) OrderPlacer {
	return &httpOrderPlacer{
		sender:  sender,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

type errorResponse struct {
	Message string
}

func (p *httpOrderPlacer) PlaceOrder(c context.Context, purchase Purchase) (PurchaseResponse, error) {
	body, err := json.Marshal(purchase)
	if err != nil {
		return PurchaseResponse{}, myerrors.NewInternalError(fmt.Errorf("error marshalling purchase: %s", err))
	}

	httpStatus, respBody, err := p.sender.Send(c, http.MethodPost, p.baseURL+purchasePath, body)
	if err != nil {
		return PurchaseResponse{}, myerrors.NewUnavailableError(err)
	}

	if httpStatus < 200 || httpStatus >= 300 {
		return PurchaseResponse{}, myerrors.NewUpstreamError(fmt.Errorf("%s", serverMessage(httpStatus, respBody)))
	}

	resp := PurchaseResponse{}
	err = json.Unmarshal(respBody, &resp)
	if err != nil {
		return PurchaseResponse{}, myerrors.NewUpstreamError(fmt.Errorf("error parsing order response: %s", err))
	}
	if resp.OrderTrackingNumber == "" {
		return PurchaseResponse{}, myerrors.NewUpstreamError(fmt.Errorf("order response lacks tracking number"))
	}

	return resp, nil
}

func serverMessage(httpStatus int, respBody []byte) string {
	resp := errorResponse{}
	err := json.Unmarshal(respBody, &resp)
	if err == nil && resp.Message != "" {
		return resp.Message
	}
	return fmt.Sprintf("order backend responded with http-status %d", httpStatus)
}
