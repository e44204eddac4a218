// Command ws_chat is a small interactive client for manual smoke
// testing against a running server. Obtain a token via /api/register
// or /api/guest first.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/askohli/talkio-server/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_chat: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:8080/ws", "WebSocket address")
	token := flag.String("token", "", "JWT token")
	userID := flag.String("user", "", "own user id (for presence)")
	chat := flag.String("chat", "c1", "chat id")
	members := flag.String("members", "", "comma-separated member user ids")
	flag.Parse()

	if *token == "" {
		return fmt.Errorf("-token is required")
	}
	memberIDs := strings.Split(*members, ",")

	baseCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(baseCtx)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *addr+"?token="+*token, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	send := func(typ string, data any) {
		payload, marshalErr := json.Marshal(data)
		if marshalErr != nil {
			log.Printf("marshal %s: %v", typ, marshalErr)
			return
		}
		if writeErr := wsjson.Write(ctx, conn, proto.Inbound{Type: typ, Data: payload}); writeErr != nil {
			cancel()
			log.Printf("send: %v", writeErr)
		}
	}

	send(proto.InboundTypePresenceJoin, proto.PresenceData{UserID: *userID, Members: memberIDs})

	go func() {
		for {
			var outbound struct {
				Type  string          `json:"type"`
				Event string          `json:"event"`
				Data  json.RawMessage `json:"data"`
				Error *proto.Error    `json:"error"`
			}
			if readErr := wsjson.Read(ctx, conn, &outbound); readErr != nil {
				cancel()
				return
			}
			if outbound.Error != nil {
				fmt.Printf("[error] %s: %s\n", outbound.Error.Code, outbound.Error.Msg)
				continue
			}
			fmt.Printf("[%s] %s\n", outbound.Event, string(outbound.Data))
		}
	}()

	fmt.Println("type a message and press enter; /typing toggles the indicator; ctrl-c to quit")
	scanner := bufio.NewScanner(os.Stdin)
	typing := false
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line := scanner.Text()
		if line == "" {
			continue
		}
		if line == "/typing" {
			typ := proto.InboundTypeTypingStart
			if typing {
				typ = proto.InboundTypeTypingStop
			}
			typing = !typing
			send(typ, proto.TypingData{ChatID: *chat, Members: memberIDs})
			continue
		}

		send(proto.InboundTypeMessageSend, proto.MessageSendData{
			ChatID:  *chat,
			Members: memberIDs,
			Message: line,
		})
	}
	return scanner.Err()
}
