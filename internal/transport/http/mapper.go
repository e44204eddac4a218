package http

import (
	"encoding/json"

	"github.com/askohli/talkio-server/internal/core"
	"github.com/askohli/talkio-server/internal/proto"
)

func inboundToCommand(client *core.Client, inbound proto.Inbound) (*core.Command, *proto.Error, error) {
	switch inbound.Type {
	case proto.InboundTypeMessageSend:
		var data proto.MessageSendData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		if data.ChatID == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "chatId is required"}, nil
		}
		if data.Message == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "message is required"}, nil
		}
		return &core.Command{
			Kind:    core.CommandMessageSend,
			ChatID:  data.ChatID,
			Members: data.Members,
			Content: data.Message,
		}, nil, nil
	case proto.InboundTypeTypingStart, proto.InboundTypeTypingStop:
		var data proto.TypingData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		if data.ChatID == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "chatId is required"}, nil
		}
		kind := core.CommandTypingStart
		if inbound.Type == proto.InboundTypeTypingStop {
			kind = core.CommandTypingStop
		}
		return &core.Command{
			Kind:    kind,
			ChatID:  data.ChatID,
			Members: data.Members,
		}, nil, nil
	case proto.InboundTypePresenceJoin, proto.InboundTypePresenceLeave:
		var data proto.PresenceData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		userID := data.UserID
		if userID == "" {
			userID = client.UserID
		}
		kind := core.CommandPresenceJoin
		if inbound.Type == proto.InboundTypePresenceLeave {
			kind = core.CommandPresenceLeave
		}
		return &core.Command{
			Kind:    kind,
			UserID:  userID,
			Members: data.Members,
		}, nil, nil
	default:
		return nil, &proto.Error{Code: "invalid_message", Msg: "unknown message type"}, nil
	}
}

func outboundFromEvent(event core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventNewMessage:
		msg := proto.RealtimeMessage{}
		if event.Message != nil {
			msg = proto.RealtimeMessage{
				ID:      event.Message.ID,
				Content: event.Message.Content,
				Sender: proto.MessageSender{
					ID:   event.Message.Sender.ID,
					Name: event.Message.Sender.Name,
				},
				Chat:      event.Message.ChatID,
				CreatedAt: event.Message.CreatedAt,
			}
		}
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNewMessage,
			Data: proto.NewMessageData{
				ChatID:  event.ChatID,
				Message: msg,
			},
		}
	case core.EventNewMessageAlert:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNewMessageAlert,
			Data:  proto.ChatAlertData{ChatID: event.ChatID},
		}
	case core.EventTypingStart:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventTypingStart,
			Data:  proto.ChatAlertData{ChatID: event.ChatID},
		}
	case core.EventTypingStop:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventTypingStop,
			Data:  proto.ChatAlertData{ChatID: event.ChatID},
		}
	case core.EventOnlineUsers:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventOnlineUsers,
			Data:  proto.OnlineUsersData(event.Users),
		}
	default:
		return proto.Outbound{Type: proto.OutboundTypeEvent}
	}
}
