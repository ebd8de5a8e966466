package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/serroba/linx/internal/events"
	"github.com/serroba/linx/internal/messaging"
	"github.com/serroba/linx/internal/shortener"
	"go.uber.org/zap"
)

// URLHandler handles URL shortening operations.
type URLHandler struct {
	service            *shortener.Service
	baseURL            string
	publishLinkCreated messaging.Publish[events.LinkCreatedEvent]
	logger             *zap.Logger
}

// NewURLHandler creates a new URL handler. Short URLs are built as
// baseURL + "/" + code.
func NewURLHandler(
	service *shortener.Service,
	baseURL string,
	publishLinkCreated messaging.Publish[events.LinkCreatedEvent],
	logger *zap.Logger,
) *URLHandler {
	return &URLHandler{
		service:            service,
		baseURL:            strings.TrimSuffix(baseURL, "/"),
		publishLinkCreated: publishLinkCreated,
		logger:             logger,
	}
}

// reservedCodes are first path segments served by fixed routes. A link
// stored under one of them could never be reached through GET /{code}.
var reservedCodes = map[shortener.Code]struct{}{
	"shorten": {},
	"health":  {},
	"metrics": {},
	"docs":    {},
}

type requestMetaKey struct{}

// RequestMeta holds HTTP request metadata used for logging.
type RequestMeta struct {
	RequestID string
	ClientIP  string
}

// ContextWithRequestMeta adds request metadata to context.
func ContextWithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey{}, meta)
}

// RequestMetaFromContext extracts request metadata from context.
func RequestMetaFromContext(ctx context.Context) RequestMeta {
	if v, ok := ctx.Value(requestMetaKey{}).(RequestMeta); ok {
		return v
	}

	return RequestMeta{}
}

func (h *URLHandler) CreateShortURL(ctx context.Context, req *CreateShortURLRequest) (*CreateShortURLResponse, error) {
	if code := shortener.NormalizeCode(req.Body.Code); isReserved(code) {
		return nil, toHTTPError(fmt.Errorf("%w: %q is a reserved path", shortener.ErrInvalidCode, code))
	}

	link, err := h.service.Create(ctx, req.Body.URL, req.Body.Code)
	if err != nil {
		return nil, h.fail(ctx, "create short url", err)
	}

	meta := RequestMetaFromContext(ctx)
	event := &events.LinkCreatedEvent{
		Code:      string(link.Code),
		URL:       link.URL,
		Generated: shortener.NormalizeCode(req.Body.Code) == "",
		CreatedAt: time.Now().UTC(),
		RequestID: meta.RequestID,
	}

	if err := h.publishLinkCreated(ctx, event); err != nil {
		h.logger.Error("failed to publish link created event",
			zap.String("code", event.Code),
			zap.String("requestId", meta.RequestID),
			zap.Error(err),
		)
	}

	shortURL := h.baseURL + "/" + string(link.Code)

	resp := &CreateShortURLResponse{}
	resp.Location = shortURL
	resp.Body.Code = string(link.Code)
	resp.Body.ShortURL = shortURL
	resp.Body.URL = link.URL

	return resp, nil
}

func (h *URLHandler) RedirectToURL(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	link, err := h.service.Resolve(ctx, shortener.Code(req.Code))
	if err != nil {
		return nil, h.fail(ctx, "resolve short url", err)
	}

	return &RedirectResponse{
		Status:   http.StatusMovedPermanently,
		Location: link.URL,
	}, nil
}

func isReserved(code shortener.Code) bool {
	_, ok := reservedCodes[code]

	return ok
}

// fail logs internal errors with their cause and maps err for the client.
func (h *URLHandler) fail(ctx context.Context, op string, err error) error {
	if errors.Is(err, shortener.ErrInternal) {
		h.logger.Error(op+" failed",
			zap.String("requestId", RequestMetaFromContext(ctx).RequestID),
			zap.Error(err),
		)
	}

	return toHTTPError(err)
}
