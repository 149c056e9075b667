package optix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBasic(t *testing.T) {
	p := NewParser()
	p.Add(NewValued("opt", KindInt))
	_, err := p.AddWith(NewFlag("debug"), WithAlias("-", "d"))
	assert.NoError(t, err)
	p.Add(NewPositional("file", ForwardIndex(1)))

	ok := p.Parse([]string{"app", "--opt=42", "-d", "notes.txt"})
	assert.True(t, ok, "errors: %v", p.Errors())

	n, ok := p.GetInt("opt")
	assert.True(t, ok)
	assert.Equal(t, int64(42), n)

	b, ok := p.GetBool("debug")
	assert.True(t, ok)
	assert.True(t, b)

	s, ok := p.GetString("file")
	assert.True(t, ok)
	assert.Equal(t, "notes.txt", s)
}

func TestParseArgumentStyleConsumesNext(t *testing.T) {
	p := NewParser()
	p.Add(NewValued("opt", KindInt))
	p.Add(NewPositional("rest", ForwardIndex(1)))

	ok := p.Parse([]string{"app", "--opt", "42", "target"})
	assert.True(t, ok, "errors: %v", p.Errors())

	n, _ := p.GetInt("opt")
	assert.Equal(t, int64(42), n)
	s, _ := p.GetString("rest")
	assert.Equal(t, "target", s)
}

func TestParseEmbeddedValue(t *testing.T) {
	p := NewParser()
	p.Add(NewValued("i", KindInt))

	ok := p.Parse([]string{"app", "-i42"})
	assert.True(t, ok, "errors: %v", p.Errors())

	n, _ := p.GetInt("i")
	assert.Equal(t, int64(42), n)
}

func TestParseCountingFlag(t *testing.T) {
	p := NewParser()
	_, err := p.AddWith(NewFlag("v"), WithAction(ActionCnt))
	assert.NoError(t, err)

	ok := p.Parse([]string{"app", "-v", "-v", "-v"})
	assert.True(t, ok, "errors: %v", p.Errors())
	assert.Equal(t, 3, p.Count("v"))
}

func TestParseAppendAction(t *testing.T) {
	p := NewParser()
	_, err := p.AddWith(NewValued("include", KindString), WithAction(ActionApp))
	assert.NoError(t, err)

	ok := p.Parse([]string{"app", "--include=a", "--include=b"})
	assert.True(t, ok, "errors: %v", p.Errors())

	opt := p.lookup("include")
	assert.Equal(t, []Value{StringValue("a"), StringValue("b")}, opt.Values())
}

func TestStrictRejectsUnknown(t *testing.T) {
	p := NewParser()
	p.Add(NewFlag("known"))

	ok := p.Parse([]string{"app", "--nope"})
	assert.False(t, ok)
	assert.ErrorIs(t, p.Error(), ErrUnknownOption)
}

func TestLenientDemotesUnknownToNOA(t *testing.T) {
	p, err := NewParserWith(WithStrict(false))
	assert.NoError(t, err)
	p.Add(NewPositional("catch", ForwardIndex(1)))

	ok := p.Parse([]string{"app", "--nope"})
	assert.True(t, ok, "errors: %v", p.Errors())

	s, _ := p.GetString("catch")
	assert.Equal(t, "--nope", s)
}

func TestOverloadSharedName(t *testing.T) {
	p, err := NewParserWith(WithOverload(true))
	assert.NoError(t, err)

	iuid, err := p.AddWith(NewValued("flag", KindInt), WithPrefix("-"))
	assert.NoError(t, err)
	suid, err := p.AddWith(NewValued("flag", KindString), WithPrefix("-"))
	assert.NoError(t, err)
	buid, err := p.AddWith(NewFlag("flag"), WithPrefix("-"))
	assert.NoError(t, err)

	ok := p.Parse([]string{"app", "-flag=foo", "-flag=42", "-flag"})
	assert.True(t, ok, "errors: %v", p.Errors())

	iv, _ := p.Opt(iuid).Val()
	assert.Equal(t, IntValue(42), iv)
	sv, _ := p.Opt(suid).Val()
	assert.Equal(t, StringValue("foo"), sv)
	bv, _ := p.Opt(buid).Val()
	assert.Equal(t, BoolValue(true), bv)
}

func TestValueRejectionIsTerminalWithoutOverload(t *testing.T) {
	p := NewParser()
	_, err := p.AddWith(NewValued("flag", KindInt), WithPrefix("-"))
	assert.NoError(t, err)

	ok := p.Parse([]string{"app", "-flag=foo"})
	assert.False(t, ok)
	assert.ErrorIs(t, p.Error(), ErrInvalidValue)
}

func TestRequiredOption(t *testing.T) {
	p := NewParser()
	_, err := p.AddWith(NewValued("name", KindString), WithRequired(true))
	assert.NoError(t, err)

	ok := p.Parse([]string{"app"})
	assert.False(t, ok)
	assert.ErrorIs(t, p.Error(), ErrOptionRequired)

	ok = p.Parse([]string{"app", "--name=x"})
	assert.True(t, ok, "errors: %v", p.Errors())
}

func TestRequiredPositional(t *testing.T) {
	p := NewParser()
	_, err := p.AddWith(NewPositional("src", ForwardIndex(1)), WithRequired(true))
	assert.NoError(t, err)

	ok := p.Parse([]string{"app"})
	assert.False(t, ok)
	assert.ErrorIs(t, p.Error(), ErrOptionRequired)
}

func TestCommands(t *testing.T) {
	p := NewParser()
	p.Add(NewCommand("list"))
	p.Add(NewCommand("add"))

	ok := p.Parse([]string{"app", "list"})
	assert.True(t, ok, "errors: %v", p.Errors())
	b, _ := p.GetBool("list")
	assert.True(t, b)

	ok = p.Parse([]string{"app"})
	assert.False(t, ok)
	assert.ErrorIs(t, p.Error(), ErrCommandRequired)
}

func TestPositionalConstraints(t *testing.T) {
	p := NewParser()
	p.Add(NewFlag("afl"))
	p.Add(NewValued("bfl", KindInt))
	p.Add(NewPositional("first", ForwardIndex(1)))
	p.Add(NewPositional("last", BackwardIndex(1)))

	ok := p.Parse([]string{"app", "--afl", "pos1", "--bfl=42", "pos2", "pos3"})
	assert.True(t, ok, "errors: %v", p.Errors())

	s, _ := p.GetString("first")
	assert.Equal(t, "pos1", s)
	s, _ = p.GetString("last")
	assert.Equal(t, "pos3", s)
}

func TestPositionalPresence(t *testing.T) {
	p := NewParser()
	_, err := p.AddWith(NewPositional("first", ForwardIndex(1)), WithKind(KindBool))
	assert.NoError(t, err)

	ok := p.Parse([]string{"app", "list"})
	assert.True(t, ok, "errors: %v", p.Errors())

	b, ok := p.GetBool("first")
	assert.True(t, ok)
	assert.True(t, b)
}

func TestDeactivation(t *testing.T) {
	p := NewParser()
	_, err := p.AddWith(NewFlag("cache"), WithDeactivatable(true),
		WithDefault(BoolValue(true)))
	assert.NoError(t, err)

	ok := p.Parse([]string{"app", "--/cache"})
	assert.True(t, ok, "errors: %v", p.Errors())
	b, _ := p.GetBool("cache")
	assert.False(t, b)
}

func TestDeactivationRejected(t *testing.T) {
	p := NewParser()
	p.Add(NewFlag("cache"))

	ok := p.Parse([]string{"app", "--/cache"})
	assert.False(t, ok)
	assert.ErrorIs(t, p.Error(), ErrIllegalDeactivation)
}

func TestMainReceivesAllNOAs(t *testing.T) {
	var seen []string
	p := NewParser()
	_, err := p.AddWith(NewMain("main"), WithCallback(func(ctx *InvokeContext) error {
		seen = ctx.Args
		return nil
	}))
	assert.NoError(t, err)
	p.Add(NewFlag("x"))

	ok := p.Parse([]string{"app", "a", "-x", "b"})
	assert.True(t, ok, "errors: %v", p.Errors())
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestCallbackError(t *testing.T) {
	p := NewParser()
	_, err := p.AddWith(NewFlag("boom"), WithCallback(func(ctx *InvokeContext) error {
		return assert.AnError
	}))
	assert.NoError(t, err)

	ok := p.Parse([]string{"app", "--boom"})
	assert.False(t, ok)
	assert.ErrorIs(t, p.Error(), ErrCallbackFailed)
}

func TestDefaultValue(t *testing.T) {
	p := NewParser()
	_, err := p.AddWith(NewValued("level", KindInt), WithDefault(IntValue(3)))
	assert.NoError(t, err)

	ok := p.Parse([]string{"app"})
	assert.True(t, ok, "errors: %v", p.Errors())

	n, ok := p.GetInt("level")
	assert.True(t, ok)
	assert.Equal(t, int64(3), n)
}

func TestParseString(t *testing.T) {
	p := NewParser()
	p.Add(NewValued("name", KindString))

	ok := p.ParseString(`app --name="hello world"`)
	assert.True(t, ok, "errors: %v", p.Errors())

	s, _ := p.GetString("name")
	assert.Equal(t, "hello world", s)
}

func TestSecureOption(t *testing.T) {
	p, err := NewParserWith(WithSecureInput(func(prompt string) (string, error) {
		assert.Equal(t, "Password: ", prompt)
		return "s3cret", nil
	}))
	assert.NoError(t, err)
	_, err = p.AddWith(NewOption("password", StyleBoolean), WithSecure("Password: "))
	assert.NoError(t, err)

	ok := p.Parse([]string{"app", "--password"})
	assert.True(t, ok, "errors: %v", p.Errors())

	s, _ := p.GetString("password")
	assert.Equal(t, "s3cret", s)
}

func TestCombinedBareCluster(t *testing.T) {
	p, err := NewParserWith(
		WithCombinedBare(true),
		WithUserStyle(UserStyleCombinedOption),
	)
	assert.NoError(t, err)
	_, err = p.AddWith(NewFlag("a"), WithAlias("", "a"))
	assert.NoError(t, err)
	_, err = p.AddWith(NewFlag("b"), WithAlias("", "b"))
	assert.NoError(t, err)

	ok := p.Parse([]string{"app", "ab"})
	assert.True(t, ok, "errors: %v", p.Errors())

	av, _ := p.GetBool("a")
	bv, _ := p.GetBool("b")
	assert.True(t, av)
	assert.True(t, bv)
}

func TestBindingsLog(t *testing.T) {
	p := NewParser()
	opt := NewValued("opt", KindInt)
	uid := p.Add(opt)
	p.Add(NewPositional("file", ForwardIndex(1)))

	ok := p.Parse([]string{"app", "--opt=42", "x"})
	assert.True(t, ok, "errors: %v", p.Errors())

	bindings := p.Bindings()
	assert.Len(t, bindings, 2)
	assert.Equal(t, uid, bindings[0].Uid)
	assert.Equal(t, IntValue(42), bindings[0].Value)
	assert.Equal(t, -1, bindings[0].Index)
	assert.Equal(t, 1, bindings[1].Index)
	assert.Equal(t, "x", bindings[1].Raw)
}

func TestFlagDefaultStaysWhenUnmatched(t *testing.T) {
	p := NewParser()
	p.Add(NewFlag("f"))
	_, err := p.AddWith(NewFlag("flag"), WithDefault(BoolValue(false)))
	assert.NoError(t, err)

	ok := p.Parse([]string{"app", "-f"})
	assert.True(t, ok, "errors: %v", p.Errors())

	fv, _ := p.GetBool("f")
	assert.True(t, fv)
	flagv, _ := p.GetBool("flag")
	assert.False(t, flagv)
}

func TestCommandWithPositionals(t *testing.T) {
	p := NewParser()
	p.Add(NewCommand("list"))
	_, err := p.AddWith(NewPositional("first", ForwardIndex(1)), WithKind(KindBool))
	assert.NoError(t, err)
	p.Add(NewPositional("second", ForwardIndex(2)))
	_, err = p.AddWith(NewValued("foo", KindString))
	assert.NoError(t, err)

	ok := p.Parse([]string{"app", "list", "--foo", "value", "bar"})
	assert.True(t, ok, "errors: %v", p.Errors())

	listv, _ := p.GetBool("list")
	assert.True(t, listv)
	firstv, _ := p.GetBool("first")
	assert.True(t, firstv)
	secondv, _ := p.GetString("second")
	assert.Equal(t, "bar", secondv)
	foov, _ := p.GetString("foo")
	assert.Equal(t, "value", foov)
}

func TestStrictFailureNamesTheToken(t *testing.T) {
	p := NewParser()
	p.Add(NewFlag("a"))
	p.Add(NewFlag("b"))

	ok := p.Parse([]string{"app", "--opt-a"})
	assert.False(t, ok)
	assert.ErrorIs(t, p.Error(), ErrUnknownOption)
	assert.Contains(t, p.Error().Error(), "--opt-a")
}

func TestPositionalStableUnderOptionInsertion(t *testing.T) {
	build := func() *Parser {
		p := NewParser()
		p.Add(NewFlag("flag"))
		p.Add(NewPositional("second", ForwardIndex(2)))
		return p
	}

	plain := build()
	assert.True(t, plain.Parse([]string{"app", "one", "two"}))

	spread := build()
	assert.True(t, spread.Parse([]string{"app", "one", "--flag", "two"}))

	a, _ := plain.GetString("second")
	b, _ := spread.GetString("second")
	assert.Equal(t, "two", a)
	assert.Equal(t, a, b)
}

func TestZeroValueParserIsUsable(t *testing.T) {
	var p Parser
	p.Add(NewFlag("verbose"))

	// zero-value parsers are lenient
	ok := p.Parse([]string{"app", "--verbose", "--nope"})
	assert.True(t, ok, "errors: %v", p.Errors())

	b, _ := p.GetBool("verbose")
	assert.True(t, b)
}

func TestRunStateResetsBetweenParses(t *testing.T) {
	p := NewParser()
	_, err := p.AddWith(NewValued("include", KindString), WithAction(ActionApp))
	assert.NoError(t, err)

	assert.True(t, p.Parse([]string{"app", "--include=a"}))
	assert.True(t, p.Parse([]string{"app", "--include=b"}))

	opt := p.lookup("include")
	assert.Equal(t, []Value{StringValue("b")}, opt.Values())
	assert.Len(t, p.Bindings(), 1)
}
