package core

import (
	"fmt"
	"testing"
)

func benchmarkFanout(b *testing.B, recipients int) {
	reg := NewRegistry()
	errs := make(chan error, 1)
	p := NewMessagePipeline(nil, errs)

	sender := NewClient("sender")
	sender.UserID = "sender"
	reg.Register(sender)

	members := make([]string, 0, recipients+1)
	members = append(members, "sender")
	for i := 0; i < recipients; i++ {
		id := fmt.Sprintf("u%d", i)
		c := NewClient("conn-" + id)
		c.UserID = id
		reg.Register(c)
		members = append(members, id)

		// Drain to avoid channel backpressure.
		go func(cl *Client) {
			for range cl.Events {
			}
		}(c)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p.Ingest(reg, sender, "bench", members, "payload")
		<-sender.Events
		<-sender.Events
	}
}

func BenchmarkFanout_10(b *testing.B)  { benchmarkFanout(b, 10) }
func BenchmarkFanout_100(b *testing.B) { benchmarkFanout(b, 100) }
func BenchmarkFanout_500(b *testing.B) { benchmarkFanout(b, 500) }
