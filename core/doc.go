// Package core defines the values that travel through the avlog bridge.
//
// A native log call carries three things besides its format string and
// arguments: an opaque Context handle, an integer Level and, after
// rendering, the finished message. Context and Level are never
// interpreted by the bridge. They are copied from the native caller to
// the sink exactly as received, so a Level outside the known constants
// is as valid as LevelInfo.
//
// The Level constants mirror the values libavutil uses for av_log. They
// exist for sinks that want to translate a native level into their own
// scale; the bridge itself never compares them.
//
// The package also provides a coarse wall clock (StartCoarseClock,
// CoarseNow) used by sinks that timestamp every line and do not need
// sub-millisecond precision.
package core
