package network

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cbodonnell/corebreaker/pkg/log"
	"github.com/cbodonnell/corebreaker/pkg/messages"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// CommandHandler resolves one command read from a connection.
// An error ends the stream.
type CommandHandler func(input string) (messages.CommandResponse, error)

// AcceptWS upgrades the request to a WebSocket connection.
// Origins are not checked.
func AcceptWS(w http.ResponseWriter, r *http.Request) (*websocket.Conn, error) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upgrade to WebSocket: %v", err)
	}
	conn.SetReadLimit(messages.MessageBufferSize)
	return conn, nil
}

// ServeCommands answers every command frame on conn with one response frame
// until the peer closes the connection, ctx is done or handler fails. Frames
// are handled strictly in the order they arrive. A handler failure closes the
// connection with StatusGoingAway.
func ServeCommands(ctx context.Context, conn *websocket.Conn, handler CommandHandler) error {
	defer conn.CloseNow()

	for {
		req, err := ReadCommandFromWS(ctx, conn)
		if err != nil {
			if isNormalClose(err) || errors.Is(err, context.Canceled) {
				log.Trace("WebSocket connection closed: %v", err)
				return nil
			}
			return err
		}

		resp, err := handler(req.Input)
		if err != nil {
			log.Debug("Closing WebSocket connection: %v", err)
			conn.Close(websocket.StatusGoingAway, err.Error())
			return nil
		}
		if err := WriteResponseToWS(ctx, conn, resp); err != nil {
			return err
		}
	}
}

func isNormalClose(err error) bool {
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		return true
	}
	return false
}

// WriteResponseToWS writes a CommandResponse to a WebSocket connection
func WriteResponseToWS(ctx context.Context, conn *websocket.Conn, resp messages.CommandResponse) error {
	if err := wsjson.Write(ctx, conn, resp); err != nil {
		return fmt.Errorf("failed to write message to WebSocket connection: %v", err)
	}
	return nil
}

// ReadCommandFromWS reads a CommandRequest from a WebSocket connection
func ReadCommandFromWS(ctx context.Context, conn *websocket.Conn) (*messages.CommandRequest, error) {
	req := &messages.CommandRequest{}
	if err := wsjson.Read(ctx, conn, req); err != nil {
		return nil, err
	}
	return req, nil
}
