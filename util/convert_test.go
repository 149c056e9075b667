package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToBool(t *testing.T) {
	v, err := ToBool("true")
	assert.NoError(t, err)
	assert.True(t, v)

	v, err = ToBool("0")
	assert.NoError(t, err)
	assert.False(t, v)

	_, err = ToBool("maybe")
	assert.Error(t, err)
}

func TestToInt(t *testing.T) {
	v, err := ToInt("-42")
	assert.NoError(t, err)
	assert.Equal(t, int64(-42), v)

	_, err = ToInt("abc")
	assert.Error(t, err)
	_, err = ToInt("1.5")
	assert.Error(t, err)
}

func TestToUint(t *testing.T) {
	v, err := ToUint("42")
	assert.NoError(t, err)
	assert.Equal(t, uint64(42), v)

	_, err = ToUint("-1")
	assert.Error(t, err)
}

func TestToFloat(t *testing.T) {
	v, err := ToFloat("1.5")
	assert.NoError(t, err)
	assert.Equal(t, 1.5, v)

	_, err = ToFloat("x")
	assert.Error(t, err)
}

func TestToTime(t *testing.T) {
	v, err := ToTime("2021-03-04")
	assert.NoError(t, err)
	assert.Equal(t, 2021, v.Year())
	assert.Equal(t, time.March, v.Month())
	assert.Equal(t, 4, v.Day())

	_, err = ToTime("not a date")
	assert.Error(t, err)
}

func TestToDuration(t *testing.T) {
	v, err := ToDuration("1h30m")
	assert.NoError(t, err)
	assert.Equal(t, 90*time.Minute, v)

	_, err = ToDuration("90")
	assert.Error(t, err)
}
