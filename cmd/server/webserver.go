package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/bytedance/sonic"
	"github.com/coder/websocket"

	julia "github.com/marben/dist_julia"
	"github.com/marben/dist_julia/render"
)

// maxCloseReason is the longest close reason a websocket control frame carries.
const maxCloseReason = 123

// webServer creates server serving files in ./static folder
// and the /ws endpoint streaming animation frames from fp.
func webServer(port int, fp julia.FrameProvider) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(fp))
	mux.Handle("/", http.FileServer(http.Dir("./static")))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost:%d", port)
	return srv
}

// websocketHandler handles the http ws endpoint
// each accepted connection carries exactly one animation stream
func websocketHandler(fp julia.FrameProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: restrict to the served origin once deployed behind a known host
		})
		if err != nil {
			log.Println(err)
			return
		}
		defer c.CloseNow()

		if err := serveStream(r.Context(), c, fp); err != nil {
			log.Printf("stream from %s: %v", r.RemoteAddr, err)
		}
	}
}

// serveStream reads the animation request and writes a header and a PNG
// message per frame. The connection is closed with a status describing the outcome.
func serveStream(ctx context.Context, c *websocket.Conn, fp julia.FrameProvider) error {
	typ, data, err := c.Read(ctx)
	if err != nil {
		return fmt.Errorf("read request: %w", err)
	}
	if typ != websocket.MessageText {
		c.Close(websocket.StatusUnsupportedData, "expected a JSON request")
		return errors.New("binary request")
	}

	req := julia.DefaultAnimationRequest()
	if err := sonic.Unmarshal(data, &req); err != nil {
		c.Close(websocket.StatusPolicyViolation, closeReason(err))
		return fmt.Errorf("decode request: %w", err)
	}

	err = fp.Frames(ctx, req, func(h julia.FrameHeader, img []byte) error {
		hdr, err := sonic.Marshal(h)
		if err != nil {
			return fmt.Errorf("encode header: %w", err)
		}
		if err := c.Write(ctx, websocket.MessageText, hdr); err != nil {
			return err
		}
		return c.Write(ctx, websocket.MessageBinary, img)
	})
	switch {
	case errors.Is(err, render.ErrInvalidDimensions), errors.Is(err, render.ErrInvalidConfig):
		c.Close(websocket.StatusPolicyViolation, closeReason(err))
		return err
	case err != nil:
		c.Close(websocket.StatusInternalError, closeReason(err))
		return err
	}
	return c.Close(websocket.StatusNormalClosure, "")
}

func closeReason(err error) string {
	s := err.Error()
	if len(s) > maxCloseReason {
		s = s[:maxCloseReason]
		for !utf8.ValidString(s) {
			s = s[:len(s)-1]
		}
	}
	return s
}
