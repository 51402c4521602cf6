package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/marketplace-connector/internal/connector/stub"
	"github.com/SergeyBogomolovv/marketplace-connector/internal/wire"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

var platforms = []string{"ebay", "amazon", "etsy"}

func randomKey() string {
	key := uuid.NewString()
	switch rand.Intn(10) {
	case 0:
		return stub.SentinelRateLimit + key
	case 1:
		return stub.SentinelRetry + key
	default:
		return key
	}
}

func generateRandomOrder(key string) wire.OrderRequest {
	sku := fmt.Sprintf("SKU-%04d", rand.Intn(10000))
	return wire.OrderRequest{
		Platform:        platforms[rand.Intn(len(platforms))],
		SellerAccountID: fmt.Sprintf("seller-%d", rand.Intn(10)),
		SKU:             sku,
		Buyer: &wire.Buyer{
			Name: "John Doe",
			Address: wire.Address{
				Line1:   fmt.Sprintf("Street %d", rand.Intn(100)),
				City:    "Springfield",
				Region:  "IL",
				Postal:  fmt.Sprintf("%05d", rand.Intn(99999)),
				Country: "us",
			},
		},
		Items: []wire.OrderItem{
			{
				SKU:      sku,
				Quantity: rand.Intn(3) + 1,
				Price: wire.Price{
					Amount:   fmt.Sprintf("%d.%02d", rand.Intn(500)+1, rand.Intn(100)),
					Currency: "USD",
				},
			},
		},
		IdempotencyKey: key,
	}
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated kafka brokers")
	topic := flag.String("topic", "marketplace-orders", "order submissions topic")
	interval := flag.Duration("interval", 2*time.Second, "delay between messages")
	flag.Parse()

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(*brokers, ",")...),
		Topic:                  *topic,
		AllowAutoTopicCreation: true,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	var lastKey string
	ticker := time.NewTicker(*interval)
	for {
		select {
		case <-ticker.C:
			// иногда повторяем предыдущий ключ, чтобы проверить идемпотентность
			key := randomKey()
			if lastKey != "" && rand.Intn(4) == 0 {
				key = lastKey
			}
			lastKey = key

			data, err := json.Marshal(generateRandomOrder(key))
			if err != nil {
				log.Println("failed to marshal order:", err)
				continue
			}
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: data}); err != nil {
				log.Println("failed to write order:", err)
				continue
			}
			log.Println("order generated", key)
		case <-ctx.Done():
			return
		}
	}
}
