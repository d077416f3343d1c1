/*
Package editor contains the controller of the timeline editor.

The Timeline struct owns a horizontal time axis with a ruler on top, a stack
of text tracks (each optionally bound to an audio track whose waveform is
painted on an overlay canvas), a navigation slider at the bottom, a playback
time marker and an optional AB-repeat range. It does not draw on any
particular surface: it is given a Mount which provides two Canvases, the
main canvas and an overlay canvas, and all drawing goes through them.

Pointer input is fed to the Timeline with PointerDown, PointerMove, PointerUp,
PointerLeave and Wheel. How the input is interpreted depends on the current
ToolMode and on the gesture that the last PointerDown started. Gestures that
keep moving the view while the pointer is held still (auto scrolling and auto
resizing) run on timers obtained from a Clock. The default Clock posts its
ticks through the Broker, so all state changes happen on the goroutine that
calls Timeline.ProcessMsg; the Timeline itself is not safe for concurrent use.

Observers subscribe to the events of the Timeline with On; see EventName for
the list of events.
*/
package editor
