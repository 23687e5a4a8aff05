// Package server exposes the assistants and the trip tools as a connect-RPC
// service with a JSON codec, plus Prometheus metrics.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/va6996/tripmate/agents"
	"github.com/va6996/tripmate/bootstrap"
	logcontext "github.com/va6996/tripmate/context"
	"github.com/va6996/tripmate/core"
	"github.com/va6996/tripmate/log"
	"github.com/va6996/tripmate/metrics"
	"github.com/va6996/tripmate/plugins/attractions"
	"github.com/va6996/tripmate/plugins/weather"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// TripServer implements tripmate.v1.TripService.
type TripServer struct {
	router      *agents.Router
	attractions *attractions.Client
	weather     *weather.Client
	metrics     *metrics.Metrics
}

func NewTripServer(router *agents.Router, attractions *attractions.Client, weather *weather.Client, m *metrics.Metrics) *TripServer {
	if m == nil {
		m = metrics.New()
	}
	return &TripServer{router: router, attractions: attractions, weather: weather, metrics: m}
}

// FromApp builds a server over a bootstrapped application.
func FromApp(app *bootstrap.App) *TripServer {
	return NewTripServer(app.Router, app.Attractions, app.Weather, app.Metrics)
}

func (s *TripServer) Chat(ctx context.Context, req *connect.Request[ChatRequest]) (*connect.Response[ChatResponse], error) {
	if s.router == nil {
		return nil, connect.NewError(connect.CodeUnimplemented, errors.New("no assistants configured"))
	}
	assistant, err := s.router.Get(req.Msg.Mode)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	log.Infof(ctx, "Received chat request (mode=%s): %s", assistant.Name(), req.Msg.Message)

	start := time.Now()
	reply, err := s.router.Chat(ctx, assistant.Name(), req.Msg.Message, req.Msg.History)
	s.metrics.ObserveChat(assistant.Name(), err, time.Since(start))
	if err != nil {
		if errors.Is(err, agents.ErrEmptyMessage) {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		log.Errorf(ctx, "Error processing chat: %v", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&ChatResponse{
		Reply:     reply,
		Mode:      assistant.Name(),
		RequestID: logcontext.RequestIDFromContext(ctx),
	}), nil
}

func (s *TripServer) CheckAttraction(ctx context.Context, req *connect.Request[CheckAttractionRequest]) (*connect.Response[CheckAttractionResponse], error) {
	if req.Msg.Attraction == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("attraction is required"))
	}

	formatter := s.attractions.Formatter()
	res, err := s.attractions.Resolver().Resolve(ctx, req.Msg.Attraction, req.Msg.Date)
	if err != nil {
		var nf *core.NotFoundError
		if errors.As(err, &nf) {
			return connect.NewResponse(&CheckAttractionResponse{
				Found:    false,
				ValidIDs: nf.ValidIDs,
				Text:     formatter.NotFound(nf),
			}), nil
		}
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	attraction := res.Attraction
	return connect.NewResponse(&CheckAttractionResponse{
		Found:       true,
		Status:      res.Status.String(),
		Attraction:  &attraction,
		Alternative: res.Alternative,
		Text:        formatter.Availability(res),
	}), nil
}

func (s *TripServer) ListAttractions(ctx context.Context, req *connect.Request[ListAttractionsRequest]) (*connect.Response[ListAttractionsResponse], error) {
	resolver := s.attractions.Resolver()
	return connect.NewResponse(&ListAttractionsResponse{
		Currency:    resolver.Catalog().Currency(),
		Attractions: resolver.ListAll(),
	}), nil
}

func (s *TripServer) GetWeather(ctx context.Context, req *connect.Request[GetWeatherRequest]) (*connect.Response[GetWeatherResponse], error) {
	report, err := s.weather.For(req.Msg.Date)
	if err != nil {
		var invalid *weather.InvalidDateError
		if errors.As(err, &invalid) {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&GetWeatherResponse{Report: report, Text: report.String()}), nil
}

const requestIDHeader = "X-Request-Id"

// requestIDInterceptor tags each call with a fresh request id and counts it.
func (s *TripServer) requestIDInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			requestID := logcontext.NewRequestID()
			ctx = logcontext.WithRequestID(ctx, requestID)

			res, err := next(ctx, req)

			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			s.metrics.ObserveRPC(req.Spec().Procedure, code)
			// On error res is a typed nil, so the id travels in the error metadata.
			if err != nil {
				var connectErr *connect.Error
				if errors.As(err, &connectErr) {
					connectErr.Meta().Set(requestIDHeader, requestID)
				}
				return res, err
			}
			res.Header().Set(requestIDHeader, requestID)
			return res, nil
		}
	}
}

// Routes mounts every procedure plus /metrics and /healthz.
func (s *TripServer) Routes() *http.ServeMux {
	opts := []connect.HandlerOption{
		connect.WithCodec(jsonCodec{}),
		connect.WithInterceptors(s.requestIDInterceptor()),
	}

	mux := http.NewServeMux()
	mux.Handle(ChatProcedure, connect.NewUnaryHandler(ChatProcedure, s.Chat, opts...))
	mux.Handle(CheckAttractionProcedure, connect.NewUnaryHandler(CheckAttractionProcedure, s.CheckAttraction, opts...))
	mux.Handle(ListAttractionsProcedure, connect.NewUnaryHandler(ListAttractionsProcedure, s.ListAttractions, opts...))
	mux.Handle(GetWeatherProcedure, connect.NewUnaryHandler(GetWeatherProcedure, s.GetWeather, opts...))
	mux.Handle("/metrics", s.metrics.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// CORS allows browser clients from any origin.
func CORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "X-Request-Id")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// NewHTTPServer serves h over HTTP/1.1 and cleartext HTTP/2.
func NewHTTPServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h2c.NewHandler(CORS(h), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		log.Infof(ctx, "Starting server on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info(context.Background(), "Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		return nil
	}
}
