package main

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambda"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/violet-to-doctrine/parser/internal/config"
	"github.com/violet-to-doctrine/parser/internal/export"
	"github.com/violet-to-doctrine/parser/internal/logger"
	"github.com/violet-to-doctrine/parser/internal/parser"
	"github.com/violet-to-doctrine/parser/internal/result"
)

// LambdaEvent is the invocation payload (e.g. from API Gateway).
type LambdaEvent struct {
	Body     string `json:"body"` // Violet XML (raw or base64 if isBase64)
	IsBase64 bool   `json:"isBase64,omitempty"`
	Format   string `json:"format,omitempty"`
}

// LambdaResponse is returned to the client (API Gateway).
type LambdaResponse struct {
	StatusCode int               `json:"statusCode"`
	Success    bool              `json:"success"`
	Errors     []result.Error    `json:"errors,omitempty"`
	Warnings   []result.Warning  `json:"warnings,omitempty"`
	Files      map[string]string `json:"files,omitempty"` // filename -> content (base64)
}

// APIGatewayResponse is the shape expected by API Gateway proxy integration (body = JSON string).
type APIGatewayResponse struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       string            `json:"body"`
}

// Handler parses diagrams and memoises responses by document digest.
type Handler struct {
	parser *parser.DiagramParser
	format export.Format
	cache  *lru.Cache[string, APIGatewayResponse]
	log    *slog.Logger
}

// NewHandler builds a Handler from cfg.
func NewHandler(cfg *config.Config) (*Handler, error) {
	cache, err := lru.New[string, APIGatewayResponse](cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	lg := logger.New(cfg.LogLevel)
	return &Handler{
		parser: parser.New(parser.Options{
			MaxDocumentBytes: cfg.MaxDocumentBytes,
			MaxDepth:         cfg.MaxDepth,
			Logger:           lg,
		}),
		format: cfg.ExportFormat,
		cache:  cache,
		log:    lg,
	}, nil
}

// Handle is the lambda entry point.
func (h *Handler) Handle(ctx context.Context, event LambdaEvent) (APIGatewayResponse, error) {
	body := []byte(event.Body)
	if event.IsBase64 {
		dec, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return wrap(failure(400, "invalid_input", "invalid base64 body: "+err.Error())), nil
		}
		body = dec
	}

	format := h.format
	if event.Format != "" {
		f, err := export.ParseFormat(event.Format)
		if err != nil {
			return wrap(failure(400, "invalid_format", err.Error())), nil
		}
		format = f
	}

	key := digest(format, body)
	if resp, ok := h.cache.Get(key); ok {
		h.log.Debug("response cache hit", "key", key)
		resp.Headers = jsonHeaders()
		return resp, nil
	}

	res, err := h.parser.Parse(body)
	if err != nil {
		if errors.Is(err, result.ErrMalformedDiagram) {
			resp := wrap(failure(422, "malformed_diagram", err.Error()))
			h.cache.Add(key, resp)
			return resp, nil
		}
		return wrap(failure(500, "parse_error", err.Error())), nil
	}

	files, err := export.Render(res, format)
	if err != nil {
		return wrap(failure(500, "render_error", err.Error())), nil
	}
	out := LambdaResponse{
		StatusCode: 200,
		Success:    res.Success,
		Errors:     res.Errors,
		Warnings:   res.Warnings,
		Files:      make(map[string]string, len(files)),
	}
	for name, content := range files {
		out.Files[name] = base64.StdEncoding.EncodeToString(content)
	}
	resp := wrap(out)
	h.cache.Add(key, resp)
	return resp, nil
}

func failure(status int, kind, message string) LambdaResponse {
	return LambdaResponse{
		StatusCode: status,
		Errors:     []result.Error{{Type: kind, Severity: "error", Message: message}},
	}
}

func digest(format export.Format, body []byte) string {
	h := sha256.New()
	h.Write([]byte(format))
	h.Write([]byte{0})
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

func jsonHeaders() map[string]string {
	return map[string]string{"Content-Type": "application/json"}
}

func wrap(out LambdaResponse) APIGatewayResponse {
	bodyBytes, _ := json.Marshal(out)
	return APIGatewayResponse{
		StatusCode: out.StatusCode,
		Headers:    jsonHeaders(),
		Body:       string(bodyBytes),
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	h, err := NewHandler(cfg)
	if err != nil {
		log.Fatalf("handler: %v", err)
	}
	lambda.Start(h.Handle)
}
