package server

import (
	"context"
	"strings"

	"connectrpc.com/connect"
)

// TripClient calls a TripService over the JSON codec.
type TripClient struct {
	chat            *connect.Client[ChatRequest, ChatResponse]
	checkAttraction *connect.Client[CheckAttractionRequest, CheckAttractionResponse]
	listAttractions *connect.Client[ListAttractionsRequest, ListAttractionsResponse]
	getWeather      *connect.Client[GetWeatherRequest, GetWeatherResponse]
}

func NewTripClient(httpClient connect.HTTPClient, baseURL string) *TripClient {
	baseURL = strings.TrimRight(baseURL, "/")
	codec := connect.WithCodec(jsonCodec{})
	return &TripClient{
		chat:            connect.NewClient[ChatRequest, ChatResponse](httpClient, baseURL+ChatProcedure, codec),
		checkAttraction: connect.NewClient[CheckAttractionRequest, CheckAttractionResponse](httpClient, baseURL+CheckAttractionProcedure, codec),
		listAttractions: connect.NewClient[ListAttractionsRequest, ListAttractionsResponse](httpClient, baseURL+ListAttractionsProcedure, codec),
		getWeather:      connect.NewClient[GetWeatherRequest, GetWeatherResponse](httpClient, baseURL+GetWeatherProcedure, codec),
	}
}

func (c *TripClient) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	res, err := c.chat.CallUnary(ctx, connect.NewRequest(req))
	if err != nil {
		return nil, err
	}
	return res.Msg, nil
}

func (c *TripClient) CheckAttraction(ctx context.Context, req *CheckAttractionRequest) (*CheckAttractionResponse, error) {
	res, err := c.checkAttraction.CallUnary(ctx, connect.NewRequest(req))
	if err != nil {
		return nil, err
	}
	return res.Msg, nil
}

func (c *TripClient) ListAttractions(ctx context.Context) (*ListAttractionsResponse, error) {
	res, err := c.listAttractions.CallUnary(ctx, connect.NewRequest(&ListAttractionsRequest{}))
	if err != nil {
		return nil, err
	}
	return res.Msg, nil
}

func (c *TripClient) GetWeather(ctx context.Context, date string) (*GetWeatherResponse, error) {
	res, err := c.getWeather.CallUnary(ctx, connect.NewRequest(&GetWeatherRequest{Date: date}))
	if err != nil {
		return nil, err
	}
	return res.Msg, nil
}
