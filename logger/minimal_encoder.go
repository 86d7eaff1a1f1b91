package logger

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
)

// Gruvbox Dark palette (warm, muted, easy on eyes)
const (
	colorFg       = "\x1b[38;5;223m" // Soft cream (#ebdbb2)
	colorAqua     = "\x1b[38;5;108m" // Muted cyan-green (#8ec07c)
	colorOrange   = "\x1b[38;5;208m" // Warm orange (#fe8019)
	colorYellow   = "\x1b[38;5;214m" // Soft yellow (#fabd2f)
	colorBlue     = "\x1b[38;5;109m" // Soft blue (#83a598)
	colorPurple   = "\x1b[38;5;175m" // Muted purple (#d3869b)
	colorRed      = "\x1b[38;5;167m" // Warm red (#fb4934)
	colorRedBg    = "\x1b[48;5;88m"
	colorYellowBg = "\x1b[48;5;58m"
)

var bufferPool = buffer.NewPool()

// minimalEncoder implements a calm, compact console encoder.
// Format: "13:04:35  t.engine  Generated group  namespace=geo types=3"
// Fields added through With() accumulate in the embedded map encoder.
type minimalEncoder struct {
	*zapcore.MapObjectEncoder
}

func newMinimalEncoder() *minimalEncoder {
	return &minimalEncoder{MapObjectEncoder: zapcore.NewMapObjectEncoder()}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	clone := zapcore.NewMapObjectEncoder()
	for k, v := range enc.Fields {
		clone.Fields[k] = v
	}
	return &minimalEncoder{MapObjectEncoder: clone}
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	final := bufferPool.Get()

	final.AppendString(colorAqua)
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	// Level: only shown when it is not INFO
	if ent.Level != zapcore.InfoLevel {
		final.AppendString("  ")
		final.AppendString(levelColorString(ent.Level))
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(colorComponent(ent.LoggerName))
		final.AppendString(abbreviateName(ent.LoggerName))
		final.AppendString(colorReset)
	}

	final.AppendString("  ")
	final.AppendString(colorFg)
	final.AppendString(ent.Message)
	final.AppendString(colorReset)

	if rendered := renderFields(enc.Fields, fields); rendered != "" {
		final.AppendString("  ")
		final.AppendString(rendered)
	}

	final.AppendString("\n")
	return final, nil
}

// levelColorString returns bold + colored + background for non-INFO levels
func levelColorString(level zapcore.Level) string {
	switch level {
	case zapcore.DebugLevel:
		return colorPurple + "DEBUG" + colorReset
	case zapcore.WarnLevel:
		return colorBold + colorYellowBg + colorYellow + "WARN" + colorReset
	case zapcore.ErrorLevel:
		return colorBold + colorRedBg + colorRed + "ERROR" + colorReset
	default:
		return colorBold + colorRedBg + colorRed + level.CapitalString() + colorReset
	}
}

// colorComponent hashes the component name for a stable color per component
func colorComponent(name string) string {
	hash := 0
	for _, c := range name {
		hash += int(c)
	}
	if hash%2 == 0 {
		return colorOrange
	}
	return colorYellow
}

// abbreviateName shortens component names: typegen.engine -> t.engine
func abbreviateName(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) > 1 && parts[0] != "" {
		return string(parts[0][0]) + "." + strings.Join(parts[1:], ".")
	}
	return name
}

// renderFields renders context and entry fields as key=value, sorted by key.
// Fields are never dropped; anything zap can encode ends up in the line.
func renderFields(context map[string]interface{}, fields []zapcore.Field) string {
	if len(context) == 0 && len(fields) == 0 {
		return ""
	}

	enc := zapcore.NewMapObjectEncoder()
	for k, v := range context {
		enc.Fields[k] = v
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, colorBlue+k+colorReset+"="+fmt.Sprintf("%v", enc.Fields[k]))
	}
	return strings.Join(parts, " ")
}
