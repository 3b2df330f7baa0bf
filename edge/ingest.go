// Package edge implements the on-device half of a camera-snapshot
// pipeline: subscribe to an MQTT topic carrying JPEG snapshots, decode
// each one with image/jpeg, and drive the result into a FrameBuffer (and
// optionally straight on to a display or LED sink) without ever holding
// a second full-image buffer.
package edge

import (
	"context"
	"fmt"
	"io"
	"net"
	"time"

	mqtt "github.com/soypat/natiu-mqtt"

	"github.com/tinyimage/fjpeg/image/jpeg"
	"github.com/tinyimage/fjpeg/sinks"
)

// debug gates trace logging, matching the same debugf-on-a-bool pattern
// used in netdiscover and kept off by default for embedded builds.
var debug = false

func debugf(format string, args ...any) {
	if debug {
		fmt.Printf(format+"\n", args...)
	}
}

// Config configures an Ingester.
type Config struct {
	Broker        string        // host:port of the MQTT broker
	ClientID      string
	SnapshotTopic string
	KeepAlive     time.Duration
}

// Ingester subscribes to Config.SnapshotTopic and decodes each incoming
// payload as a baseline JPEG frame.
type Ingester struct {
	cfg    Config
	client *mqtt.Client
	fb     *sinks.FrameBuffer
	extra  jpeg.RowSink
}

// NewIngester builds an Ingester. extra, if non-nil, is invoked for
// every decoded row in addition to the FrameBuffer collection — the hook
// a caller uses to also drive an e-paper or LED sink straight off the
// same decode pass.
func NewIngester(cfg Config, extra jpeg.RowSink) *Ingester {
	ing := &Ingester{cfg: cfg, extra: extra}
	ing.client = mqtt.NewClient(mqtt.ClientConfig{
		Decoder: mqtt.DecoderNoAlloc{UserBuffer: make([]byte, 8192)},
		OnPub:   ing.onPublish,
	})
	return ing
}

// Run dials the broker, subscribes, and processes publishes until ctx is
// canceled or the connection drops.
func (ing *Ingester) Run(ctx context.Context) error {
	conn, err := net.Dial("tcp", ing.cfg.Broker)
	if err != nil {
		return err
	}

	var varConn mqtt.VariablesConnect
	varConn.SetDefaultMQTT([]byte(ing.cfg.ClientID))
	varConn.KeepAlive = uint16(ing.cfg.KeepAlive / time.Second)

	if err := ing.client.Connect(ctx, conn, &varConn); err != nil {
		return err
	}
	debugf("edge: connected to %s as %s", ing.cfg.Broker, ing.cfg.ClientID)

	varSub := mqtt.VariablesSubscribe{
		TopicFilters: []mqtt.SubscribeRequest{
			{TopicFilter: []byte(ing.cfg.SnapshotTopic), QoS: mqtt.QoS0},
		},
	}
	if err := ing.client.Subscribe(ctx, varSub); err != nil {
		return err
	}
	debugf("edge: subscribed to %s", ing.cfg.SnapshotTopic)

	for ing.client.IsConnected() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := ing.client.HandleNext(); err != nil {
			return err
		}
	}
	return nil
}

// onPublish decodes one MQTT publish payload as a JPEG frame.
func (ing *Ingester) onPublish(_ mqtt.Header, _ mqtt.VariablesPublish, r io.Reader) error {
	buf, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	w, h, err := jpeg.Info(buf)
	if err != nil {
		debugf("edge: bad snapshot: %v", err)
		return err
	}
	ing.fb = sinks.NewFrameBuffer(w, h)

	return jpeg.Decode(buf, func(y, width int, pix []uint16, ctx any) {
		ing.fb.Collect(y, width, pix, ctx)
		if ing.extra != nil {
			ing.extra(y, width, pix, ctx)
		}
	}, nil)
}

// FrameBuffer returns the most recently decoded frame, or nil if none
// has arrived yet.
func (ing *Ingester) FrameBuffer() *sinks.FrameBuffer { return ing.fb }
