package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"restaurant-booking/visit-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaSettlementPublisher forwards restaurant payouts to the settlement
// topic, keyed by restaurant so one restaurant's events stay ordered.
type KafkaSettlementPublisher struct {
	Writer MessageWriter
	now    func() time.Time
}

func NewKafkaSettlementPublisher(writer MessageWriter) *KafkaSettlementPublisher {
	return &KafkaSettlementPublisher{Writer: writer, now: time.Now}
}

func (p *KafkaSettlementPublisher) Notify(ctx context.Context, settlement domain.Settlement) error {
	payload, err := json.Marshal(domain.SettlementMessage{
		ID:           uuid.NewString(),
		Type:         settlement.Kind,
		RestaurantID: settlement.RestaurantID,
		VisitID:      settlement.VisitID,
		Amount:       settlement.Amount,
		Timestamp:    p.now().UTC(),
	})
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(settlement.RestaurantID)),
		Value: payload,
	})
}
