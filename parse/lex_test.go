package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	args, err := Split(`app --name="hello world" -v 'single quoted'`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"app", "--name=hello world", "-v", "single quoted"}, args)
}

func TestSplitUnbalancedQuote(t *testing.T) {
	_, err := Split(`app "unterminated`)
	assert.Error(t, err)
}
