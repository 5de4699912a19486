// Command cockpit-demo renders a simulated drone instrument panel to a
// sequence of PNG frames. With a joystick configured, stick and button
// input drives the panel instead of the built-in simulation.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/go-cockpit/cockpit/cmd/cockpit-demo/internal/config"
	"github.com/go-cockpit/cockpit/pkg/gamepad"
	"github.com/go-cockpit/cockpit/pkg/graphics"
	"github.com/go-cockpit/cockpit/pkg/raster"
	"github.com/go-cockpit/cockpit/pkg/scene"
	"github.com/go-cockpit/cockpit/pkg/texcache"
	"github.com/go-cockpit/cockpit/pkg/theme"
	"github.com/go-cockpit/cockpit/pkg/widgets"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cockpit-demo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "cockpit.yaml", "path to the demo configuration")
	flag.Parse()

	cfg, err := config.Resolve(*configPath)
	if err != nil {
		return err
	}

	th := theme.Default()
	tree := scene.NewTree(scene.Config{DefaultStyle: th.WidgetStyle})
	panel, err := buildPanel(tree, th, cfg)
	if err != nil {
		return err
	}

	var pad *gamepad.Reader
	if cfg.Gamepad.Enabled {
		pad, err = gamepad.Open(cfg.Gamepad.Device, gamepad.XboxMapping())
		if err != nil {
			return err
		}
		defer pad.Close()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go pad.Run(ctx)
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return err
	}

	canvas := raster.New(cfg.Display.Width, cfg.Display.Height)
	for frame := 0; frame < cfg.Display.Frames; frame++ {
		t := float64(frame) / float64(cfg.Display.FPS)
		if pad != nil {
			panel.applyGamepad(pad.State())
		} else {
			panel.simulate(t)
		}

		canvas.Clear(th.Background)
		tree.DrawFrame(canvas)

		path := filepath.Join(cfg.Output.Dir, fmt.Sprintf("frame_%04d.png", frame))
		if err := writePNG(path, canvas); err != nil {
			return err
		}
	}
	fmt.Printf("wrote %d frames to %s\n", cfg.Display.Frames, cfg.Output.Dir)
	return nil
}

// panel bundles the widgets the telemetry loop updates every frame.
type panel struct {
	speed    *widgets.Gauge
	altitude *widgets.Gauge
	throttle *widgets.Slider
	arm      *widgets.Button
	compass  *widgets.Compass
	horizon  *widgets.Horizon
	stick    *widgets.Joystick
	battery  *widgets.Battery
	signal   *widgets.Signal
	thrust   *widgets.Thrust
	beacon   *widgets.Beacon
	feed     *widgets.VideoFeed
	carousel *widgets.Carousel

	feedBuf []byte
	feedW   int
	feedH   int
}

func buildPanel(tree *scene.Tree, th theme.Theme, cfg *config.Config) (*panel, error) {
	w := float64(cfg.Display.Width)
	h := float64(cfg.Display.Height)
	p := &panel{}

	var err error
	p.speed, err = widgets.NewGauge(graphics.Rect{X: 10, Y: 10, Width: 150, Height: 150}, th.WidgetStyle, 0, 120)
	if err != nil {
		return nil, err
	}
	p.speed.Label = "m/s"

	p.altitude, err = widgets.NewGauge(graphics.Rect{X: 10, Y: 170, Width: 150, Height: 150}, th.WidgetStyle, 0, 500)
	if err != nil {
		return nil, err
	}
	p.altitude.Label = "alt"

	p.throttle, err = widgets.NewSlider(graphics.Rect{X: 10, Y: h - 50, Width: 200, Height: 30}, th.WidgetStyle, 0, 100)
	if err != nil {
		return nil, err
	}

	p.arm = widgets.NewButton(graphics.Rect{X: 220, Y: h - 50, Width: 90, Height: 30}, th.Style(th.Background, th.Danger), "ARM")
	p.arm.OnTap = func() {
		if p.arm.Label == "ARM" {
			p.arm.Label = "DISARM"
		} else {
			p.arm.Label = "ARM"
		}
	}
	p.compass = widgets.NewCompass(graphics.Rect{X: w - 160, Y: 10, Width: 150, Height: 150}, th.WidgetStyle)
	p.horizon = widgets.NewHorizon(graphics.Rect{X: w/2 - 90, Y: 10, Width: 180, Height: 180}, th.Style(theme.ColorSky, th.Accent), 40, 180)
	p.stick = widgets.NewJoystick(graphics.Rect{X: w - 160, Y: h - 170, Width: 150, Height: 150}, th.WidgetStyle)
	p.battery = widgets.NewBattery(graphics.Rect{X: w - 110, Y: 170, Width: 100, Height: 36}, th.WidgetStyle)
	p.signal = widgets.NewSignal(graphics.Rect{X: w - 160, Y: 170, Width: 40, Height: 36}, th.WidgetStyle)
	p.thrust = widgets.NewThrust(graphics.Rect{X: w/2 + 100, Y: 10, Width: 26, Height: 180}, th.WidgetStyle)
	p.beacon = widgets.NewBeacon(graphics.Rect{X: w - 40, Y: 216, Width: 30, Height: 30}, th.WidgetStyle)

	p.feedW, p.feedH = 96, 54
	p.feedBuf = make([]byte, p.feedW*p.feedH*3)
	p.feed = widgets.NewVideoFeed(graphics.Rect{X: w/2 - 90, Y: 200, Width: 180, Height: 110}, th.WidgetStyle)

	for _, wd := range []scene.Widget{
		p.speed, p.altitude, p.throttle, p.arm, p.compass,
		p.horizon, p.stick, p.battery, p.signal, p.thrust,
		p.beacon, p.feed,
	} {
		tree.Insert(wd)
	}

	if cfg.Images.Dir != "" {
		p.carousel, err = widgets.NewCarousel(
			graphics.Rect{X: w/2 - 90, Y: 320, Width: 180, Height: 60},
			th.WidgetStyle, texcache.New(), cfg.Images.Dir)
		if err != nil {
			return nil, err
		}
		tree.Insert(p.carousel)
	}
	return p, nil
}

// simulate drives the panel from synthetic telemetry at time t seconds.
func (p *panel) simulate(t float64) {
	p.speed.SetValue(60 + 40*math.Sin(t/2))
	p.altitude.SetValue(120 + 80*math.Sin(t/5))
	p.throttle.SetValue(50 + 50*math.Sin(t/3))
	p.compass.SetHeading(t * 24)
	p.horizon.SetAttitude(15*math.Sin(t), 25*math.Sin(t/1.7))
	p.stick.SetStick(math.Sin(t*1.3)*0.8, math.Cos(t*1.1)*0.8)
	p.battery.SetLevel(1 - t/180)
	p.signal.SetStrength(0.7 + 0.3*math.Sin(t/4))
	p.thrust.SetValue(math.Sin(t / 2))
	if math.Mod(t, 1) < 0.05 {
		p.beacon.Trigger()
	}
	p.updateFeed(t)
}

// applyGamepad drives the panel from live controller state.
func (p *panel) applyGamepad(s *gamepad.State) {
	x, y := s.LeftStick()
	p.stick.SetStick(x, y)
	p.thrust.SetValue(-y)
	p.throttle.SetValue(s.RightTrigger() * 100)
	rx, ry := s.RightStick()
	p.horizon.SetAttitude(ry*40, rx*60)
	if s.ButtonClicked(gamepad.XboxMapping().ButtonA) && p.arm.OnTap != nil {
		p.arm.OnTap()
	}
	p.beacon.Trigger()
}

// updateFeed fills the frame buffer with a moving gradient standing in
// for a camera stream.
func (p *panel) updateFeed(t float64) {
	for y := 0; y < p.feedH; y++ {
		for x := 0; x < p.feedW; x++ {
			i := (y*p.feedW + x) * 3
			v := math.Sin(float64(x)/8+t*2) * math.Cos(float64(y)/6)
			p.feedBuf[i] = uint8(40 + 40*v)
			p.feedBuf[i+1] = uint8(80 + 60*v)
			p.feedBuf[i+2] = uint8(110 + 70*v)
		}
	}
	p.feed.SetFrameRGB(p.feedBuf, p.feedW, p.feedH)
}

func writePNG(path string, canvas *raster.Canvas) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, canvas.Image()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
