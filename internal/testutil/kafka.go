//go:build integration

package testutil

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// UniqueTopic — уникальный топик на основе базового префикса.
// Пример: base="crm-itest" → "crm-itest-20260826T010203123456789".
func UniqueTopic(base string) string {
	s := time.Now().UTC().Format("20060102T150405.000000000")
	s = strings.ReplaceAll(s, ".", "")
	return fmt.Sprintf("%s-%s", base, s)
}

// EnsureTopic — создаёт топик (существующий — это OK) и ждёт его готовности.
// Параметр broker может быть:
//   - "host:port"
//   - "PLAINTEXT://host:port" (как отдаёт testcontainers)
//   - "host1:port1,host2:port2" (берётся первый)
func EnsureTopic(ctx context.Context, broker, topic string) error {
	addr := firstBootstrap(broker)

	conn, err := kafka.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	// admin-коннект к контроллеру кластера
	ctrl, err := conn.Controller()
	if err != nil {
		return err
	}
	admin, err := kafka.Dial("tcp", net.JoinHostPort(ctrl.Host, strconv.Itoa(ctrl.Port)))
	if err != nil {
		return err
	}
	defer admin.Close()

	err = admin.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	})
	if err != nil {
		// формулировка зависит от кластера, проверяем подстроку
		if !strings.Contains(strings.ToLower(err.Error()), "already exists") {
			return err
		}
	}

	return waitTopicReady(ctx, addr, topic)
}

// firstBootstrap — первый адрес из bootstrap-строки, без схемы "PLAINTEXT://".
func firstBootstrap(raw string) string {
	first := strings.TrimSpace(strings.Split(raw, ",")[0])
	if strings.Contains(first, "://") {
		if u, err := url.Parse(first); err == nil && u.Host != "" {
			return u.Host
		}
	}
	return first
}

func waitTopicReady(ctx context.Context, broker, topic string) error {
	deadline := time.Now().Add(5 * time.Second)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		c, err := kafka.Dial("tcp", broker)
		if err == nil {
			parts, perr := c.ReadPartitions(topic)
			_ = c.Close()
			if perr == nil && len(parts) > 0 {
				return nil
			}
			err = perr
		}

		if time.Now().After(deadline) {
			if err != nil {
				return fmt.Errorf("topic %q not ready: %w", topic, err)
			}
			return fmt.Errorf("topic %q not ready", topic)
		}
		time.Sleep(200 * time.Millisecond)
	}
}
