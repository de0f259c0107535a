package services

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	wstools "github.com/xdoubleu/essentia/v2/pkg/communication/wstools"
	"github.com/xdoubleu/essentia/v2/pkg/logging"

	"calendra.dev/internal/dtos"
	"calendra.dev/internal/models"
)

// InvalidationService pushes affected occurrence ranges to subscribed
// clients so they can drop cached query windows after an edit or delete.
type InvalidationService struct {
	logger         *slog.Logger
	allowedOrigins []string
	handler        *wstools.WebSocketHandler[dtos.SubscribeMessageDto]
	mu             sync.Mutex
	topics         map[string]*wstools.Topic
}

func NewInvalidationService(
	logger *slog.Logger,
	allowedOrigins []string,
) *InvalidationService {
	handler := wstools.CreateWebSocketHandler[dtos.SubscribeMessageDto](
		logger,
		1,
		100, //nolint:mnd //no magic number
	)

	return &InvalidationService{
		logger:         logger,
		allowedOrigins: allowedOrigins,
		handler:        &handler,
		topics:         make(map[string]*wstools.Topic),
	}
}

func (service *InvalidationService) Handler() http.HandlerFunc {
	return service.handler.Handler()
}

// Publish broadcasts the invalidated range to the calendar's topic. Topics
// are registered lazily on first use.
func (service *InvalidationService) Publish(
	calendarID models.CalendarID,
	affected models.DateRange,
) {
	topic, err := service.topic(string(calendarID))
	if err != nil {
		service.logger.Warn(
			"failed to register invalidation topic",
			slog.String("calendarId", string(calendarID)),
			logging.ErrAttr(err),
		)
		return
	}

	topic.EnqueueEvent(dtos.InvalidatedRangeDto{
		CalendarID: string(calendarID),
		Start:      affected.Start,
		End:        affected.End,
	})
}

func (service *InvalidationService) topic(name string) (*wstools.Topic, error) {
	service.mu.Lock()
	defer service.mu.Unlock()

	if topic, ok := service.topics[name]; ok {
		return topic, nil
	}

	topic, err := service.handler.AddTopic(
		name,
		service.allowedOrigins,
		func(_ context.Context, _ *wstools.Topic) (any, error) {
			return nil, nil
		},
	)
	if err != nil {
		return nil, err
	}

	service.topics[name] = topic
	return topic, nil
}
