package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/cbodonnell/corebreaker/pkg/log"
	"github.com/cbodonnell/corebreaker/pkg/messages"
	"github.com/cbodonnell/corebreaker/pkg/network"
	"github.com/cbodonnell/corebreaker/pkg/sessions"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"nhooyr.io/websocket"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messages.ErrorResponse{Error: msg})
}

// decodeBody decodes a JSON request body into v. An empty body leaves v untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	body := http.MaxBytesReader(w, r.Body, messages.MessageBufferSize)
	if err := json.NewDecoder(body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// sessionFromRequest resolves the {sessionID} route variable, writing
// the error response itself when it cannot.
func sessionFromRequest(w http.ResponseWriter, r *http.Request, sm *sessions.SessionManager) (*sessions.Session, bool) {
	id, err := uuid.Parse(mux.Vars(r)["sessionID"])
	if err != nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return nil, false
	}
	session, err := sm.GetSession(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return nil, false
	}
	return session, true
}

func HandleCreateSession(sm *sessions.SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := messages.CreateSessionRequest{}
		if err := decodeBody(w, r, &req); err != nil {
			log.Debug("failed to decode create session request: %v", err)
			writeError(w, http.StatusBadRequest, "Malformed request body")
			return
		}

		session, intro, err := sm.CreateSession(req.Slot)
		if err != nil {
			if sessions.IsSlotInUse(err) {
				writeError(w, http.StatusConflict, err.Error())
				return
			}
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		resp := session.Snapshot()
		resp.Entries = intro
		writeJSON(w, http.StatusCreated, resp)
	}
}

func HandleGetSession(sm *sessions.SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionFromRequest(w, r, sm)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, session.Snapshot())
	}
}

func HandleDeleteSession(sm *sessions.SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionFromRequest(w, r, sm)
		if !ok {
			return
		}
		if err := sm.RemoveSession(session.ID); err != nil {
			writeError(w, http.StatusNotFound, "Session not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func HandleCommand(sm *sessions.SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionFromRequest(w, r, sm)
		if !ok {
			return
		}

		req := messages.CommandRequest{}
		if err := decodeBody(w, r, &req); err != nil {
			log.Debug("failed to decode command request: %v", err)
			writeError(w, http.StatusBadRequest, "Malformed request body")
			return
		}

		resp, err := session.HandleInput(req.Input)
		if err != nil {
			writeError(w, http.StatusNotFound, "Session not found")
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func HandleCommandStream(sm *sessions.SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionFromRequest(w, r, sm)
		if !ok {
			return
		}

		conn, err := network.AcceptWS(w, r)
		if err != nil {
			log.Error("%v", err)
			return
		}
		log.Debug("New WebSocket connection for session %s from %s", session.ID, r.RemoteAddr)

		// removing the session ends the stream even while it waits on a frame
		stop := context.AfterFunc(session.Context(), func() {
			conn.Close(websocket.StatusGoingAway, "session closed")
		})
		defer stop()

		if err := network.ServeCommands(r.Context(), conn, session.HandleInput); err != nil && session.Context().Err() == nil {
			log.Warn("WebSocket stream for session %s ended: %v", session.ID, err)
		}
	}
}

func HandleHelp() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, messages.HelpResponse{Help: messages.HelpText})
	}
}
