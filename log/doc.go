// Package log wraps the host log interface (IUnityLog).
//
// Logger sends single messages to the host console. NewHandler and NewCore
// adapt it to log/slog and zap so plugin code can use a regular structured
// logger whose output ends up in the host's log.
package log
