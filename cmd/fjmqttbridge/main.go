// Command fjmqttbridge subscribes to an MQTT topic carrying JPEG camera
// snapshots, decodes each one, and re-serves the RGB565 pixels to any
// connected browser over a WebSocket — a desk-side way to watch what an
// edge board (see package edge) is seeing, without a second screen.
package main

import (
	"encoding/binary"
	"flag"
	"log"
	"net/http"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"golang.org/x/net/websocket"

	"github.com/tinyimage/fjpeg/image/jpeg"
	"github.com/tinyimage/fjpeg/sinks"
)

func main() {
	broker := flag.String("broker", "tcp://localhost:1883", "MQTT broker URL")
	topic := flag.String("topic", "camera/snapshot", "MQTT topic carrying JPEG frames")
	addr := flag.String("addr", ":8080", "HTTP listen address for the preview WebSocket")
	flag.Parse()

	hub := newHub()

	opts := mqtt.NewClientOptions().AddBroker(*broker).SetClientID("fjmqttbridge")
	opts.SetOnConnectHandler(func(c mqtt.Client) {
		log.Printf("fjmqttbridge: connected to %s", *broker)
		if token := c.Subscribe(*topic, 0, hub.onMessage); token.Wait() && token.Error() != nil {
			log.Fatalf("fjmqttbridge: subscribe failed: %v", token.Error())
		}
	})

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("fjmqttbridge: connect failed: %v", token.Error())
	}
	defer client.Disconnect(250)

	http.Handle("/preview", websocket.Handler(hub.serve))
	log.Printf("fjmqttbridge: serving preview on %s/preview", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}

// hub decodes incoming JPEG frames and fans the resulting RGB565 rows
// out to every connected preview client.
type hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func newHub() *hub {
	return &hub{clients: make(map[*websocket.Conn]bool)}
}

func (h *hub) serve(ws *websocket.Conn) {
	h.mu.Lock()
	h.clients[ws] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, ws)
		h.mu.Unlock()
		ws.Close()
	}()

	// Block until the client disconnects; all writes happen from
	// onMessage as frames arrive.
	buf := make([]byte, 1)
	for {
		if _, err := ws.Read(buf); err != nil {
			return
		}
	}
}

// onMessage decodes one MQTT publish payload and broadcasts it as a
// little-endian header (width, height uint16) followed by the RGB565
// pixel stream.
func (h *hub) onMessage(_ mqtt.Client, msg mqtt.Message) {
	data := msg.Payload()

	w, height, err := jpeg.Info(data)
	if err != nil {
		log.Printf("fjmqttbridge: bad frame: %v", err)
		return
	}
	fb := sinks.NewFrameBuffer(w, height)

	if err := jpeg.Decode(data, fb.Collect, nil); err != nil {
		log.Printf("fjmqttbridge: decode failed: %v", err)
		return
	}

	out := make([]byte, 4+len(fb.Pix())*2)
	binary.LittleEndian.PutUint16(out[0:2], uint16(w))
	binary.LittleEndian.PutUint16(out[2:4], uint16(height))
	for i, px := range fb.Pix() {
		binary.LittleEndian.PutUint16(out[4+i*2:], px)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for ws := range h.clients {
		if _, err := ws.Write(out); err != nil {
			log.Printf("fjmqttbridge: write to client failed: %v", err)
		}
	}
}
