package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/alimikegami/e-commerce/storefront-service/config"
	"github.com/alimikegami/e-commerce/storefront-service/internal/dto"
	circuitbreaker "github.com/alimikegami/e-commerce/storefront-service/internal/infrastructure/circuit-breaker"
	"github.com/alimikegami/e-commerce/storefront-service/pkg/errs"
	"github.com/alimikegami/e-commerce/storefront-service/pkg/httpclient"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

var supportedCouriers = []string{"jne", "pos", "tiki", "anteraja"}

type rajaOngkirEnvelope struct {
	RajaOngkir struct {
		Status struct {
			Code        int    `json:"code"`
			Description string `json:"description"`
		} `json:"status"`
		Results json.RawMessage `json:"results"`
		Result  json.RawMessage `json:"result"`
	} `json:"rajaongkir"`
}

type ShippingServiceImpl struct {
	config *config.Config
	cb     *gobreaker.CircuitBreaker[[]byte]
}

func CreateShippingService(config *config.Config) ShippingService {
	return &ShippingServiceImpl{
		config: config,
		cb:     circuitbreaker.CreateCircuitBreaker[[]byte]("rajaongkir"),
	}
}

func (s *ShippingServiceImpl) GetCouriers() []string {
	couriers := make([]string, len(supportedCouriers))
	copy(couriers, supportedCouriers)
	return couriers
}

func (s *ShippingServiceImpl) GetShippingCosts(ctx context.Context, req dto.ShippingCostRequest) (resp json.RawMessage, err error) {
	if err = req.Validate(); err != nil {
		return
	}

	form := url.Values{}
	form.Set("origin", req.Origin)
	form.Set("originType", req.OriginType)
	form.Set("destination", req.Destination)
	form.Set("destinationType", req.DestinationType)
	form.Set("weight", strconv.FormatInt(req.Weight, 10))
	form.Set("courier", req.Courier)

	envelope, err := s.call(ctx, http.MethodPost, "/api/cost", form)
	if err != nil {
		return
	}

	return nonEmpty(envelope.RajaOngkir.Results)
}

func (s *ShippingServiceImpl) GetProvinces(ctx context.Context) (resp json.RawMessage, err error) {
	envelope, err := s.call(ctx, http.MethodGet, "/api/province", nil)
	if err != nil {
		return
	}

	return nonEmpty(envelope.RajaOngkir.Results)
}

func (s *ShippingServiceImpl) GetCities(ctx context.Context, provinceID string) (resp json.RawMessage, err error) {
	envelope, err := s.call(ctx, http.MethodGet, "/api/city?province="+url.QueryEscape(provinceID), nil)
	if err != nil {
		return
	}

	return nonEmpty(envelope.RajaOngkir.Results)
}

func (s *ShippingServiceImpl) CheckWaybill(ctx context.Context, req dto.WaybillRequest) (resp json.RawMessage, err error) {
	if err = req.Validate(); err != nil {
		return
	}

	form := url.Values{}
	form.Set("waybill", req.Waybill)
	form.Set("courier", req.Courier)

	envelope, err := s.call(ctx, http.MethodPost, "/api/waybill", form)
	if err != nil {
		return
	}

	return nonEmpty(envelope.RajaOngkir.Result)
}

func nonEmpty(raw json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte("[]")) {
		return nil, errs.ErrNotFound
	}

	return raw, nil
}

func (s *ShippingServiceImpl) call(ctx context.Context, method string, path string, form url.Values) (envelope rajaOngkirEnvelope, err error) {
	req := httpclient.FormRequest(method, s.config.ShippingConfig.BaseURL+path, form, map[string]string{
		"key": s.config.ShippingConfig.APIKey,
	})

	body, err := s.cb.Execute(func() ([]byte, error) {
		resp, err := httpclient.Do(ctx, req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, fmt.Errorf("shipping provider returned status %d", resp.StatusCode)
		}
		return resp.Body, nil
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ShippingCall").Str("path", path).Msg("")
		return envelope, fmt.Errorf("%w: %v", errs.ErrShippingProvider, err)
	}

	if err = json.Unmarshal(body, &envelope); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ShippingCall").Str("path", path).Msg("")
		return envelope, fmt.Errorf("%w: error parsing response", errs.ErrShippingProvider)
	}

	if envelope.RajaOngkir.Status.Code != http.StatusOK {
		description := envelope.RajaOngkir.Status.Description
		if description == "" {
			description = "error from shipping provider"
		}
		return envelope, fmt.Errorf("%w: %s", errs.ErrShippingProvider, description)
	}

	return envelope, nil
}
