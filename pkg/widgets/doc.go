// Package widgets provides the concrete instrument widgets: ranged dials
// (Gauge, Slider), attitude instruments (Compass, Horizon), input pads
// (Button, Joystick), and status indicators (Battery, Signal, Thrust,
// Beacon), plus image-backed widgets (VideoFeed, Carousel).
//
// Every widget embeds scene.WidgetBase and follows the same contract:
// Layout runs only when bounds change and caches derived geometry, Draw
// issues canvas primitives without mutating value state, and telemetry
// setters clamp or wrap silently so live sensor noise never surfaces as an
// error. Only construction validates: a ranged widget given min > max is
// rejected with the errors.KindInvalidRange kind.
package widgets
