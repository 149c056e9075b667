package optix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionConstructors(t *testing.T) {
	flag := NewFlag("verbose")
	assert.Equal(t, "--", flag.Prefix())
	assert.Equal(t, KindBool, flag.Kind())
	assert.True(t, flag.MatchStyle(StyleBoolean))
	assert.True(t, flag.MatchStyle(StyleCombined))

	short := NewFlag("v")
	assert.Equal(t, "-", short.Prefix())

	valued := NewValued("count", KindInt)
	assert.True(t, valued.MatchStyle(StyleArgument))
	assert.False(t, valued.MatchStyle(StyleBoolean))

	pos := NewPositional("file", ForwardIndex(2))
	assert.Equal(t, "", pos.Prefix())
	assert.True(t, pos.MatchStyle(StylePos))
	assert.True(t, pos.MatchName("anything"))

	cmd := NewCommand("list")
	assert.True(t, cmd.MatchStyle(StyleCmd))
	assert.Equal(t, ForwardIndex(1), cmd.Index())
	assert.False(t, cmd.MatchName("other"))

	main := NewMain("main")
	assert.True(t, main.MatchStyle(StyleMain))
	assert.True(t, main.MatchName(""))
}

func TestOptionConfigFuncs(t *testing.T) {
	opt := NewValued("opt", KindString)
	for _, config := range []ConfigureOptionFunc{
		WithAlias("-", "o"),
		WithPrefix("-"),
		WithIndexString("@2"),
		WithAction(ActionApp),
		WithKind(KindInt),
		WithRequired(true),
		WithDeactivatable(true),
		WithNoDelay(true),
		WithDefault(IntValue(7)),
		WithDescription("a test option"),
	} {
		assert.NoError(t, config(opt))
	}

	assert.Equal(t, []Alias{{Prefix: "-", Name: "o"}}, opt.Aliases())
	assert.Equal(t, "-", opt.Prefix())
	assert.Equal(t, ForwardIndex(2), opt.Index())
	assert.Equal(t, ActionApp, opt.Action())
	assert.Equal(t, KindInt, opt.Kind())
	assert.True(t, opt.Required())
	assert.True(t, opt.Deactivatable())
	assert.Equal(t, "a test option", opt.Description())

	assert.Error(t, WithIndexString("bogus")(opt))
}

func TestOptionVal(t *testing.T) {
	opt := NewValued("opt", KindInt)

	_, ok := opt.Val()
	assert.False(t, ok)

	opt.defaultValue = &Value{Kind: KindInt, Int: 3}
	v, ok := opt.Val()
	assert.True(t, ok)
	assert.Equal(t, IntValue(3), v)

	opt.values = []Value{IntValue(1), IntValue(2)}
	v, ok = opt.Val()
	assert.True(t, ok)
	assert.Equal(t, IntValue(2), v)
}

func TestOptionCustomParser(t *testing.T) {
	opt := NewValued("mode", KindString)
	opt.parser = func(raw string) (Value, error) {
		if raw != "fast" && raw != "slow" {
			return Value{}, kindError(KindString, raw)
		}
		return StringValue(raw), nil
	}

	v, err := opt.parseValue("fast")
	assert.NoError(t, err)
	assert.Equal(t, StringValue("fast"), v)

	_, err = opt.parseValue("medium")
	assert.Error(t, err)
}

func TestOptionHint(t *testing.T) {
	assert.Equal(t, "--verbose", NewFlag("verbose").Hint())
	assert.Equal(t, "-v", NewFlag("v").Hint())
	assert.Equal(t, "file", NewPositional("file", ForwardIndex(1)).Hint())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "text", StringValue("text").String())
	assert.Equal(t, "true", BoolValue(true).String())
	assert.Equal(t, "-3", IntValue(-3).String())
	assert.Equal(t, "7", UintValue(7).String())
	assert.Equal(t, "1.5", FloatValue(1.5).String())
	assert.Equal(t, "1h0m0s", DurationValue(3600e9).String())
}
